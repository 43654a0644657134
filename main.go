package main

import "github.com/killallgit/zeroshot/cmd"

func main() {
	cmd.Execute()
}
