package bubbletea

import (
	"github.com/banterhq/banter"
	"github.com/banterhq/banter/goldmark"
)

var _ MessageBlock = (*AssistantBlock)(nil)

// AssistantBlock renders an assistant reply as ANSI-styled markdown. The
// fixed failure reply is styled as an error instead.
type AssistantBlock struct {
	text   string
	theme  banter.Theme
	styles Styles
}

// NewAssistantBlock creates an AssistantBlock.
func NewAssistantBlock(text string, theme banter.Theme, styles Styles) *AssistantBlock {
	return &AssistantBlock{text: text, theme: theme, styles: styles}
}

func (b *AssistantBlock) View(width int) string {
	if b.text == banter.ErrorReply {
		return b.styles.Error.Render(b.text)
	}
	return goldmark.Render(b.text, width, b.theme)
}
