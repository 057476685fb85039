package json_test

import (
	"testing"
	"time"

	"github.com/banterhq/banter"
	"github.com/banterhq/banter/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessions() []banter.Session {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []banter.Session{
		{
			ID:        "s1",
			Title:     "greetings",
			CreatedAt: created,
			Messages: []banter.Message{
				{Role: banter.RoleUser, Content: "hello", Timestamp: created},
				{Role: banter.RoleAssistant, Content: "hi there", Timestamp: created.Add(time.Second)},
			},
		},
		{
			ID:        "s2",
			Title:     "Image chat",
			CreatedAt: created,
			Messages: []banter.Message{
				{
					Role:      banter.RoleUser,
					Image:     &banter.Image{Data: []byte{0x89, 0x50, 0x4e, 0x47}, MimeType: "image/png"},
					Timestamp: created,
				},
			},
		},
	}
}

func TestSessions_RoundTrip(t *testing.T) {
	t.Parallel()
	sessions := testSessions()

	data, err := json.MarshalSessions(sessions)
	require.NoError(t, err)

	got, err := json.UnmarshalSessions(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, sessions[0].Title, got[0].Title)
	assert.True(t, sessions[0].CreatedAt.Equal(got[0].CreatedAt))
	require.Len(t, got[0].Messages, 2)
	assert.Equal(t, "hello", got[0].Messages[0].Content)
	assert.Equal(t, banter.RoleAssistant, got[0].Messages[1].Role)

	require.NotNil(t, got[1].Messages[0].Image)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, got[1].Messages[0].Image.Data)
	assert.Equal(t, "image/png", got[1].Messages[0].Image.MimeType)
}

func TestUnmarshalSessions_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := json.UnmarshalSessions([]byte("not json"))
		assert.Error(t, err)
	})

	t.Run("unsupported version", func(t *testing.T) {
		t.Parallel()
		_, err := json.UnmarshalSessions([]byte(`{"version": 2, "sessions": []}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "version")
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()
		data := []byte(`{"version": 1, "sessions": [{"id": "s1", "title": "t", "messages": [{"role": "system", "content": "x"}]}]}`)
		_, err := json.UnmarshalSessions(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown role")
	})

	t.Run("corrupt image payload", func(t *testing.T) {
		t.Parallel()
		data := []byte(`{"version": 1, "sessions": [{"id": "s1", "title": "t", "messages": [{"role": "user", "content": "x", "image": {"data": "!!!", "mime_type": "image/png"}}]}]}`)
		_, err := json.UnmarshalSessions(data)
		assert.Error(t, err)
	})
}

func TestMessages_RoundTrip(t *testing.T) {
	t.Parallel()
	msgs := testSessions()[0].Messages

	data, err := json.MarshalMessages(msgs)
	require.NoError(t, err)

	got, err := json.UnmarshalMessages(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, msgs[0].Content, got[0].Content)
	assert.Equal(t, msgs[1].Role, got[1].Role)
}

func TestMarshalSessions_EmptyList(t *testing.T) {
	t.Parallel()
	data, err := json.MarshalSessions(nil)
	require.NoError(t, err)

	got, err := json.UnmarshalSessions(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}
