package notefetch

import (
	"html"
	"strings"
)

// Editor block types understood by the block editor.
const (
	EditorHeader    = "header"
	EditorParagraph = "paragraph"
	EditorImage     = "image"
	EditorLinkTool  = "linkTool"
)

// EditorBlock is a block in the editor's saved-document format.
type EditorBlock struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// textEscaper escapes rich text the way the block editor stores it. Quotes
// are left alone.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Text returns the block's text data, or "" if it has none.
func (b EditorBlock) Text() string {
	s, _ := b.Data["text"].(string)
	return s
}

// EditorBlocks maps content blocks onto editor blocks, one to one and in
// order. Text destined for rich-text fields has &, < and > escaped.
func EditorBlocks(blocks []ContentBlock) []EditorBlock {
	out := make([]EditorBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, editorBlock(b))
	}
	return out
}

func editorBlock(b ContentBlock) EditorBlock {
	switch b := b.(type) {
	case Heading:
		return EditorBlock{Type: EditorHeader, Data: map[string]any{
			"text":  textEscaper.Replace(b.Text),
			"level": b.Level,
		}}
	case Paragraph:
		return EditorBlock{Type: EditorParagraph, Data: map[string]any{
			"text": textEscaper.Replace(b.Text),
		}}
	case Image:
		return EditorBlock{Type: EditorImage, Data: map[string]any{
			"file":           map[string]any{"url": b.Src},
			"caption":        textEscaper.Replace(b.Alt),
			"withBorder":     false,
			"stretched":      false,
			"withBackground": false,
		}}
	case Link:
		image := ""
		if b.PreviewImage != nil {
			image = *b.PreviewImage
		}
		return EditorBlock{Type: EditorLinkTool, Data: map[string]any{
			"link": b.Href,
			"meta": map[string]any{
				"title": b.Text,
				"image": map[string]any{"url": image},
			},
		}}
	case Email:
		return EditorBlock{Type: EditorParagraph, Data: map[string]any{
			"text": mailtoAnchor(b),
		}}
	}
	return EditorBlock{Type: EditorParagraph, Data: map[string]any{"text": ""}}
}

func mailtoAnchor(e Email) string {
	var sb strings.Builder
	sb.WriteString(`<a href="`)
	sb.WriteString(html.EscapeString(e.Href))
	sb.WriteString(`">`)
	sb.WriteString(textEscaper.Replace(e.Text))
	sb.WriteString("</a>")
	return sb.String()
}

// RenderHTML renders content blocks as a minimal HTML fragment, suitable
// for conversion to other document formats.
func RenderHTML(blocks []ContentBlock) string {
	var sb strings.Builder
	for _, b := range blocks {
		switch b := b.(type) {
		case Heading:
			tag := "h" + string(rune('0'+headerLevel(b.Level)))
			sb.WriteString("<" + tag + ">" + html.EscapeString(b.Text) + "</" + tag + ">\n")
		case Paragraph:
			sb.WriteString("<p>" + html.EscapeString(b.Text) + "</p>\n")
		case Image:
			sb.WriteString(`<p><img src="` + html.EscapeString(b.Src) + `" alt="` + html.EscapeString(b.Alt) + `"></p>` + "\n")
		case Link:
			text := b.Text
			if text == "" {
				text = b.Href
			}
			sb.WriteString(`<p><a href="` + html.EscapeString(b.Href) + `">` + html.EscapeString(text) + "</a></p>\n")
		case Email:
			sb.WriteString("<p>" + mailtoAnchor(b) + "</p>\n")
		}
	}
	return sb.String()
}

// RenderEditorHTML renders editor blocks as an HTML fragment. Text fields
// already hold rich-text HTML and are written as-is.
func RenderEditorHTML(blocks []EditorBlock) string {
	var sb strings.Builder
	for _, b := range blocks {
		switch b.Type {
		case EditorHeader:
			tag := "h" + string(rune('0'+headerLevel(b.Data["level"])))
			sb.WriteString("<" + tag + ">" + b.Text() + "</" + tag + ">\n")
		case EditorParagraph:
			sb.WriteString("<p>" + b.Text() + "</p>\n")
		case EditorImage:
			file, _ := b.Data["file"].(map[string]any)
			src, _ := file["url"].(string)
			caption, _ := b.Data["caption"].(string)
			sb.WriteString(`<p><img src="` + html.EscapeString(src) + `" alt="` + strings.ReplaceAll(caption, `"`, "&#34;") + `"></p>` + "\n")
		case EditorLinkTool:
			link, _ := b.Data["link"].(string)
			meta, _ := b.Data["meta"].(map[string]any)
			title, _ := meta["title"].(string)
			if title == "" {
				title = link
			}
			sb.WriteString(`<p><a href="` + html.EscapeString(link) + `">` + html.EscapeString(title) + "</a></p>\n")
		}
	}
	return sb.String()
}

// headerLevel reads a header level that may have been decoded from JSON.
func headerLevel(v any) int {
	var level int
	switch v := v.(type) {
	case int:
		level = v
	case float64:
		level = int(v)
	}
	if level < 1 || level > 6 {
		return 1
	}
	return level
}
