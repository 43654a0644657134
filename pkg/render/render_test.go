package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/killallgit/zeroshot/pkg/compare"
	"github.com/stretchr/testify/assert"
)

func TestComparison(t *testing.T) {
	t.Run("renders every variant in order with its output", func(t *testing.T) {
		results := []compare.Result{
			{Name: "Basic", Output: "text A"},
			{Name: "Structured", Output: "text B"},
		}

		out := Comparison(results)

		assert.Contains(t, out, "Basic")
		assert.Contains(t, out, "text A")
		assert.Contains(t, out, "Structured")
		assert.Contains(t, out, "text B")
		assert.Less(t, strings.Index(out, "Basic"), strings.Index(out, "Structured"))
	})

	t.Run("failed variants are shown inline", func(t *testing.T) {
		results := []compare.Result{
			{Name: "ok", Output: "fine"},
			{Name: "broken", Err: errors.New("quota exceeded")},
		}

		out := Comparison(results)

		assert.Contains(t, out, "broken")
		assert.Contains(t, out, "quota exceeded")
	})

	t.Run("empty results render empty", func(t *testing.T) {
		assert.Empty(t, Comparison(nil))
	})
}

func TestSingle(t *testing.T) {
	out := Single("direct", "the answer")
	assert.Contains(t, out, "direct")
	assert.Contains(t, out, "the answer")
}
