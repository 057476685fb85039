package banter

import (
	"encoding/base64"
	"time"
)

// Message is one turn in a conversation. Messages are immutable once
// appended; there are no in-place edits.
type Message struct {
	Role      Role
	Content   string // may be empty only when Image is set
	Image     *Image // optional attachment, user messages only in practice
	Timestamp time.Time
}

// HasText reports whether the message carries any text content.
func (m Message) HasText() bool { return m.Content != "" }

// Image is an inline image attachment.
type Image struct {
	Data     []byte
	MimeType string
}

// DataURI encodes the image as a data URI suitable for APIs that accept
// inline base64 payloads.
func (i Image) DataURI() string {
	return "data:" + i.MimeType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}
