package bubbletea

import (
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	t.Parallel()

	t.Run("short text fits on one line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"hello"}, wrapText("hello", 80))
	})

	t.Run("empty text yields one empty line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{""}, wrapText("", 80))
	})

	t.Run("wraps at word boundaries", func(t *testing.T) {
		t.Parallel()
		got := wrapText("one two three four", 9)
		assert.Equal(t, []string{"one two", "three", "four"}, got)
	})

	t.Run("breaks overlong words mid-word", func(t *testing.T) {
		t.Parallel()
		got := wrapText("abcdefghij", 4)
		assert.Equal(t, []string{"abcd", "efgh", "ij"}, got)
	})

	t.Run("measures display width of wide characters", func(t *testing.T) {
		t.Parallel()
		// Each CJK character is two cells wide.
		got := wrapText("你好 世界", 4)
		assert.Equal(t, []string{"你好", "世界"}, got)
	})

	t.Run("collapses runs of whitespace", func(t *testing.T) {
		t.Parallel()
		got := wrapText("a  b\nc", 80)
		assert.Equal(t, []string{"a b c"}, got)
	})

	t.Run("never exceeds the width", func(t *testing.T) {
		t.Parallel()
		for _, line := range wrapText("the quick brown fox jumps over the lazy dog", 10) {
			assert.LessOrEqual(t, uniseg.StringWidth(line), 10)
		}
	})

	t.Run("non-positive width returns text unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"hello world"}, wrapText("hello world", 0))
	})
}
