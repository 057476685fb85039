package bubbletea

import (
	"strings"
	"unicode"

	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// wrapText word-wraps plain (unstyled) text to the given display width,
// measuring grapheme clusters rather than runes so wide characters and
// emoji wrap correctly. It always returns at least one line.
func wrapText(s string, width int) []string {
	if width <= 0 || s == "" {
		return []string{s}
	}

	var (
		lines = []string{""}
		word  strings.Builder
	)
	flush := func() {
		if word.Len() == 0 {
			return
		}
		cur := lines[len(lines)-1]
		w := word.String()
		switch {
		case cur == "":
			lines[len(lines)-1] = w
		case uniseg.StringWidth(cur)+1+uniseg.StringWidth(w) <= width:
			lines[len(lines)-1] = cur + " " + w
		default:
			lines = append(lines, w)
		}
		word.Reset()
	}

	for _, r := range s {
		if unicode.IsSpace(r) {
			flush()
			continue
		}
		// Break overlong words mid-word rather than overflowing.
		if uniseg.StringWidth(word.String())+rw.RuneWidth(r) > width {
			flush()
		}
		word.WriteRune(r)
	}
	flush()
	return lines
}
