// Package render formats comparison results for terminal display.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/zeroshot/pkg/compare"
)

var (
	// Variant name header - bold with an accent color
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB000"))

	// Output body - indented block
	bodyStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// Failed variant - dim red
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6347")).
			PaddingLeft(2)

	// Divider between variants
	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))
)

// Comparison renders results as labeled blocks in run order, one per
// variant, with failures shown inline rather than dropped.
func Comparison(results []compare.Result) string {
	var sb strings.Builder

	for i, result := range results {
		if i > 0 {
			sb.WriteString(dividerStyle.Render(strings.Repeat("-", 40)))
			sb.WriteString("\n")
		}

		sb.WriteString(headerStyle.Render(fmt.Sprintf("[%d/%d] %s", i+1, len(results), result.Name)))
		sb.WriteString("\n")

		if result.Err != nil {
			sb.WriteString(errorStyle.Render(fmt.Sprintf("failed: %v", result.Err)))
		} else {
			sb.WriteString(bodyStyle.Render(result.Output))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Single renders one named output block
func Single(name, output string) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(name))
	sb.WriteString("\n")
	sb.WriteString(bodyStyle.Render(output))
	sb.WriteString("\n")

	return sb.String()
}
