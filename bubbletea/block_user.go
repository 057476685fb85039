package bubbletea

import "strings"

var _ MessageBlock = (*UserMessageBlock)(nil)

// UserMessageBlock renders a user message with a "> " prefix and an
// attachment marker when an image was sent.
type UserMessageBlock struct {
	text     string
	hasImage bool
	styles   Styles
}

// NewUserMessageBlock creates a UserMessageBlock.
func NewUserMessageBlock(text string, hasImage bool, styles Styles) *UserMessageBlock {
	return &UserMessageBlock{text: text, hasImage: hasImage, styles: styles}
}

func (b *UserMessageBlock) View(width int) string {
	lines := wrapText(b.text, width-2)
	if b.hasImage {
		// The marker is styled after wrapping so escape codes don't
		// count against the line width.
		marker := b.styles.Muted.Render("[image]")
		last := len(lines) - 1
		if lines[last] == "" {
			lines[last] = marker
		} else {
			lines[last] += " " + marker
		}
	}
	prefix := b.styles.UserMsg.Render("> ")
	for i, line := range lines {
		if i == 0 {
			lines[i] = prefix + line
		} else {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}
