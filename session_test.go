package banter_test

import (
	"strings"
	"testing"

	"github.com/banterhq/banter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Parallel()
	s := banter.NewSession()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, banter.DefaultTitle, s.Title)
	assert.Empty(t, s.Messages)
	assert.False(t, s.CreatedAt.IsZero())

	other := banter.NewSession()
	assert.NotEqual(t, s.ID, other.ID)
}

func TestSession_Append(t *testing.T) {
	t.Parallel()

	t.Run("appends in order", func(t *testing.T) {
		t.Parallel()
		var s banter.Session
		s.Append(banter.Message{Role: banter.RoleUser, Content: "one"}, 50)
		s.Append(banter.Message{Role: banter.RoleAssistant, Content: "two"}, 50)
		require.Len(t, s.Messages, 2)
		assert.Equal(t, "one", s.Messages[0].Content)
		assert.Equal(t, "two", s.Messages[1].Content)
	})

	t.Run("trims oldest beyond cap", func(t *testing.T) {
		t.Parallel()
		var s banter.Session
		for i := 0; i < 5; i++ {
			s.Append(banter.Message{Content: string(rune('a' + i))}, 3)
		}
		require.Len(t, s.Messages, 3)
		assert.Equal(t, "c", s.Messages[0].Content)
		assert.Equal(t, "e", s.Messages[2].Content)
	})
}

func TestSession_DeriveTitle(t *testing.T) {
	t.Parallel()

	t.Run("uses first message text", func(t *testing.T) {
		t.Parallel()
		s := banter.NewSession()
		s.DeriveTitle(banter.Message{Role: banter.RoleUser, Content: "  hello there  "})
		assert.Equal(t, "hello there", s.Title)
	})

	t.Run("truncates long text to 30 runes", func(t *testing.T) {
		t.Parallel()
		s := banter.NewSession()
		long := strings.Repeat("x", 40)
		s.DeriveTitle(banter.Message{Role: banter.RoleUser, Content: long})
		assert.Equal(t, strings.Repeat("x", 30)+"...", s.Title)
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()
		s := banter.NewSession()
		long := strings.Repeat("é", 31)
		s.DeriveTitle(banter.Message{Role: banter.RoleUser, Content: long})
		assert.Equal(t, strings.Repeat("é", 30)+"...", s.Title)
	})

	t.Run("image-only message gets fixed label", func(t *testing.T) {
		t.Parallel()
		s := banter.NewSession()
		s.DeriveTitle(banter.Message{Role: banter.RoleUser, Image: &banter.Image{Data: []byte{1}, MimeType: "image/png"}})
		assert.Equal(t, "Image chat", s.Title)
	})

	t.Run("skipped when session already has messages", func(t *testing.T) {
		t.Parallel()
		s := banter.NewSession()
		s.Append(banter.Message{Role: banter.RoleUser, Content: "first"}, 50)
		s.DeriveTitle(banter.Message{Role: banter.RoleUser, Content: "second"})
		assert.Equal(t, banter.DefaultTitle, s.Title)
	})

	t.Run("skipped when title was renamed", func(t *testing.T) {
		t.Parallel()
		s := banter.NewSession()
		s.Title = "my chat"
		s.DeriveTitle(banter.Message{Role: banter.RoleUser, Content: "hello"})
		assert.Equal(t, "my chat", s.Title)
	})
}

func TestSession_Clone(t *testing.T) {
	t.Parallel()
	s := banter.NewSession()
	s.Append(banter.Message{Role: banter.RoleUser, Content: "hi"}, 50)

	clone := s.Clone()
	clone.Messages[0].Content = "changed"
	clone.Append(banter.Message{Role: banter.RoleAssistant, Content: "extra"}, 50)

	assert.Equal(t, "hi", s.Messages[0].Content)
	assert.Len(t, s.Messages, 1)
}

func TestGenerateRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("prompt only", func(t *testing.T) {
		t.Parallel()
		req := banter.GenerateRequest{Prompt: "hello"}
		assert.NoError(t, req.Validate())
	})

	t.Run("image only", func(t *testing.T) {
		t.Parallel()
		req := banter.GenerateRequest{Image: &banter.Image{Data: []byte{1}, MimeType: "image/png"}}
		assert.NoError(t, req.Validate())
	})

	t.Run("neither", func(t *testing.T) {
		t.Parallel()
		req := banter.GenerateRequest{}
		assert.ErrorIs(t, req.Validate(), banter.ErrValidation)
	})
}

func TestImage_DataURI(t *testing.T) {
	t.Parallel()
	img := banter.Image{Data: []byte("abc"), MimeType: "image/png"}
	assert.Equal(t, "data:image/png;base64,YWJj", img.DataURI())
}
