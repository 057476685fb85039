package gemini_test

import (
	"testing"

	"github.com/banterhq/banter"
	"github.com/banterhq/banter/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestConvertRequest(t *testing.T) {
	t.Parallel()

	t.Run("text only", func(t *testing.T) {
		t.Parallel()
		got := gemini.ConvertRequest(banter.GenerateRequest{Prompt: "Hello"})
		require.Len(t, got, 1)
		assert.Equal(t, "user", got[0].Role)
		require.Len(t, got[0].Parts, 1)
		assert.Equal(t, "Hello", got[0].Parts[0].Text)
	})

	t.Run("text with image", func(t *testing.T) {
		t.Parallel()
		req := banter.GenerateRequest{
			Prompt: "describe this",
			Image:  &banter.Image{Data: []byte{0x89, 0x50}, MimeType: "image/png"},
		}
		got := gemini.ConvertRequest(req)
		require.Len(t, got, 1)
		require.Len(t, got[0].Parts, 2)
		assert.Equal(t, "describe this", got[0].Parts[0].Text)
		require.NotNil(t, got[0].Parts[1].InlineData)
		assert.Equal(t, "image/png", got[0].Parts[1].InlineData.MIMEType)
		assert.Equal(t, []byte{0x89, 0x50}, got[0].Parts[1].InlineData.Data)
	})

	t.Run("image only", func(t *testing.T) {
		t.Parallel()
		req := banter.GenerateRequest{
			Image: &banter.Image{Data: []byte{1}, MimeType: "image/jpeg"},
		}
		got := gemini.ConvertRequest(req)
		require.Len(t, got, 1)
		require.Len(t, got[0].Parts, 1)
		require.NotNil(t, got[0].Parts[0].InlineData)
	})
}

func TestReplyText(t *testing.T) {
	t.Parallel()

	t.Run("joins text parts", func(t *testing.T) {
		t.Parallel()
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "Hello"},
					{Text: ", world!"},
				}},
				FinishReason: genai.FinishReasonStop,
			}},
		}
		got, err := gemini.ReplyText(resp)
		require.NoError(t, err)
		assert.Equal(t, "Hello, world!", got)
	})

	t.Run("skips thought parts", func(t *testing.T) {
		t.Parallel()
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "internal reasoning", Thought: true},
					{Text: "the answer"},
				}},
			}},
		}
		got, err := gemini.ReplyText(resp)
		require.NoError(t, err)
		assert.Equal(t, "the answer", got)
	})

	t.Run("blocked prompt", func(t *testing.T) {
		t.Parallel()
		resp := &genai.GenerateContentResponse{
			PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
				BlockReason: genai.BlockedReasonSafety,
			},
		}
		_, err := gemini.ReplyText(resp)
		assert.ErrorIs(t, err, gemini.ErrBlocked)
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()
		_, err := gemini.ReplyText(&genai.GenerateContentResponse{})
		assert.ErrorIs(t, err, gemini.ErrEmpty)
	})

	t.Run("candidate without text", func(t *testing.T) {
		t.Parallel()
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content:      &genai.Content{},
				FinishReason: genai.FinishReasonMaxTokens,
			}},
		}
		_, err := gemini.ReplyText(resp)
		require.ErrorIs(t, err, gemini.ErrEmpty)
		assert.Contains(t, err.Error(), string(genai.FinishReasonMaxTokens))
	})
}
