// Package json encodes the session list to and from its persisted JSON
// form: a versioned envelope holding the whole session array. Stores use it
// as their wire format so every backend persists the same shape.
package json

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/banterhq/banter"
)

// envelope is the v1 wire format for the persisted session list.
type envelope struct {
	Version  int          `json:"version"`
	Sessions []sessionDTO `json:"sessions"`
}

type sessionDTO struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	CreatedAt time.Time    `json:"created_at"`
	Messages  []messageDTO `json:"messages"`
}

type messageDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Image     *imageDTO `json:"image,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type imageDTO struct {
	Data     string `json:"data"` // base64
	MimeType string `json:"mime_type"`
}

// MarshalSessions serializes the session list in v1 envelope format.
func MarshalSessions(sessions []banter.Session) ([]byte, error) {
	env := envelope{
		Version:  1,
		Sessions: make([]sessionDTO, len(sessions)),
	}
	for i, s := range sessions {
		env.Sessions[i] = sessionDTO{
			ID:        s.ID,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
			Messages:  marshalMessages(s.Messages),
		}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalSessions deserializes a session list from v1 envelope format.
func UnmarshalSessions(data []byte) ([]banter.Session, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	sessions := make([]banter.Session, len(env.Sessions))
	for i, dto := range env.Sessions {
		msgs, err := unmarshalMessages(dto.Messages)
		if err != nil {
			return nil, fmt.Errorf("session %q: %w", dto.ID, err)
		}
		sessions[i] = banter.Session{
			ID:        dto.ID,
			Title:     dto.Title,
			CreatedAt: dto.CreatedAt,
			Messages:  msgs,
		}
	}
	return sessions, nil
}

// MarshalMessages serializes a message list on its own, without the
// envelope. Used by stores that keep per-session message columns.
func MarshalMessages(msgs []banter.Message) ([]byte, error) {
	return json.Marshal(marshalMessages(msgs))
}

// UnmarshalMessages is the inverse of MarshalMessages.
func UnmarshalMessages(data []byte) ([]banter.Message, error) {
	var dtos []messageDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("unmarshal messages: %w", err)
	}
	return unmarshalMessages(dtos)
}

func marshalMessages(msgs []banter.Message) []messageDTO {
	out := make([]messageDTO, len(msgs))
	for i, m := range msgs {
		dto := messageDTO{
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
		if m.Image != nil {
			dto.Image = &imageDTO{
				Data:     base64.StdEncoding.EncodeToString(m.Image.Data),
				MimeType: m.Image.MimeType,
			}
		}
		out[i] = dto
	}
	return out
}

func unmarshalMessages(dtos []messageDTO) ([]banter.Message, error) {
	msgs := make([]banter.Message, len(dtos))
	for i, dto := range dtos {
		msg := banter.Message{
			Role:      banter.Role(dto.Role),
			Content:   dto.Content,
			Timestamp: dto.Timestamp,
		}
		switch msg.Role {
		case banter.RoleUser, banter.RoleAssistant:
		default:
			return nil, fmt.Errorf("message %d: unknown role %q", i, dto.Role)
		}
		if dto.Image != nil {
			data, err := base64.StdEncoding.DecodeString(dto.Image.Data)
			if err != nil {
				return nil, fmt.Errorf("message %d: decode image: %w", i, err)
			}
			msg.Image = &banter.Image{Data: data, MimeType: dto.Image.MimeType}
		}
		msgs[i] = msg
	}
	return msgs, nil
}
