package notefetch_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/notefetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtractionResult(t *testing.T) {
	t.Parallel()

	t.Run("encodes blocks with type tags in order", func(t *testing.T) {
		t.Parallel()

		meta := notefetch.PageMetadata{Title: "Hi", Description: "D"}
		result := notefetch.NewExtractionResult("example.com", meta, []notefetch.ContentBlock{
			notefetch.Heading{Level: 1, Text: "Title"},
			notefetch.Paragraph{Text: "Body"},
			notefetch.Email{Text: "Mail", Href: "mailto:a@b.com"},
		})

		data, err := json.Marshal(result)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"success": 1,
			"link": "example.com",
			"meta": {"title": "Hi", "description": "D", "imageUrl": ""},
			"content": [
				{"type": "heading", "level": 1, "text": "Title"},
				{"type": "paragraph", "text": "Body"},
				{"type": "email", "text": "Mail", "href": "mailto:a@b.com"}
			]
		}`, string(data))
	})

	t.Run("encodes empty content as an array", func(t *testing.T) {
		t.Parallel()

		result := notefetch.NewExtractionResult("a.com", notefetch.PageMetadata{}, nil)

		data, err := json.Marshal(result)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"content":[]`)
		assert.True(t, result.OK())
	})

	t.Run("encodes links with nullable preview image", func(t *testing.T) {
		t.Parallel()

		preview := "thumb.png"
		data, err := json.Marshal([]notefetch.ContentBlock{
			notefetch.Link{Text: "About", Href: "https://a.com/about"},
			notefetch.Link{Text: "Pic", Href: "https://a.com/pic", PreviewImage: &preview},
			notefetch.Image{Src: "https://a.com/x.png", Alt: "x"},
		})
		require.NoError(t, err)

		assert.JSONEq(t, `[
			{"type": "link", "text": "About", "href": "https://a.com/about", "previewImage": null},
			{"type": "link", "text": "Pic", "href": "https://a.com/pic", "previewImage": "thumb.png"},
			{"type": "image", "src": "https://a.com/x.png", "alt": "x"}
		]`, string(data))
	})
}

func TestNewFailureResult(t *testing.T) {
	t.Parallel()

	t.Run("reports application error message", func(t *testing.T) {
		t.Parallel()

		result := notefetch.NewFailureResult("bad", notefetch.Errorf(notefetch.ENETWORK, "dial tcp: no such host"))

		assert.False(t, result.OK())
		assert.Equal(t, 0, result.Success)
		assert.Equal(t, "dial tcp: no such host", result.Error)
		assert.NotNil(t, result.Content)
	})

	t.Run("reports plain error text", func(t *testing.T) {
		t.Parallel()

		result := notefetch.NewFailureResult("bad", errors.New("boom"))

		assert.Equal(t, "boom", result.Error)
	})

	t.Run("falls back to default message", func(t *testing.T) {
		t.Parallel()

		result := notefetch.NewFailureResult("bad", notefetch.Errorf(notefetch.EPARSE, ""))

		assert.Equal(t, notefetch.DefaultFailureMessage, result.Error)
	})

	t.Run("encodes error field", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(notefetch.NewFailureResult("x", errors.New("boom")))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.EqualValues(t, 0, decoded["success"])
		assert.Equal(t, "boom", decoded["error"])
	})
}
