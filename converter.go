package notefetch

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Returns EINVALID for empty input.
	Convert(html string) (string, error)
}

// BlocksMarkdown renders content blocks to Markdown using c.
// No blocks render to an empty string.
func BlocksMarkdown(c Converter, blocks []ContentBlock) (string, error) {
	html := RenderHTML(blocks)
	if html == "" {
		return "", nil
	}
	return c.Convert(html)
}

// NoteMarkdown renders the body of a note to Markdown using c.
// A note without renderable blocks renders to an empty string.
func NoteMarkdown(c Converter, n *Note) (string, error) {
	html := RenderEditorHTML(n.Content.Blocks)
	if html == "" {
		return "", nil
	}
	return c.Convert(html)
}
