package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/notefetch"
	"github.com/fwojciec/notefetch/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h1>Title</h1><h3>Section</h3><p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "### Section")
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts strikethrough", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p><del>old</del> new</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "~~old~~")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert(" \n")

		require.Error(t, err)
		assert.Equal(t, notefetch.EINVALID, notefetch.ErrorCode(err))
	})
}

func TestConverter_Blocks(t *testing.T) {
	t.Parallel()

	preview := "thumb.png"
	blocks := []notefetch.ContentBlock{
		notefetch.Heading{Level: 2, Text: "Intro"},
		notefetch.Paragraph{Text: "Some literal text"},
		notefetch.Image{Src: "https://a.com/x.png", Alt: "x"},
		notefetch.Link{Text: "About", Href: "https://a.com/about", PreviewImage: &preview},
		notefetch.Email{Text: "Mail", Href: "mailto:a@b.com"},
	}

	md, err := notefetch.BlocksMarkdown(htmltomarkdown.NewConverter(), blocks)

	require.NoError(t, err)
	assert.Contains(t, md, "## Intro")
	assert.Contains(t, md, "Some literal text")
	assert.Contains(t, md, "![x](https://a.com/x.png)")
	assert.Contains(t, md, "[About](https://a.com/about)")
	assert.Contains(t, md, "[Mail](mailto:a@b.com)")
}

func TestConverter_Note(t *testing.T) {
	t.Parallel()

	note := &notefetch.Note{
		Title: "Saved",
		Content: notefetch.NoteContent{Blocks: notefetch.EditorBlocks([]notefetch.ContentBlock{
			notefetch.Heading{Level: 1, Text: "Saved page"},
			notefetch.Paragraph{Text: "Body"},
			notefetch.Link{Text: "Next", Href: "https://a.com/next"},
		})},
	}

	md, err := notefetch.NoteMarkdown(htmltomarkdown.NewConverter(), note)

	require.NoError(t, err)
	assert.Contains(t, md, "# Saved page")
	assert.Contains(t, md, "Body")
	assert.Contains(t, md, "[Next](https://a.com/next)")
}
