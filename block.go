package notefetch

import "encoding/json"

// BlockType identifies a ContentBlock variant in serialized output.
type BlockType string

// Content block variants.
const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockImage     BlockType = "image"
	BlockLink      BlockType = "link"
	BlockEmail     BlockType = "email"
)

// ContentBlock is one unit of linearized page content. The set of variants
// is closed: Heading, Paragraph, Image, Link and Email.
type ContentBlock interface {
	BlockType() BlockType
	contentBlock()
}

// Heading is an h1..h6 element with non-empty text.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a p element with non-empty text.
type Paragraph struct {
	Text string
}

// Image is a reachable image. Src is always absolute.
type Image struct {
	Src string
	Alt string
}

// Link is a hyperlink. Href is always absolute.
// PreviewImage holds the unresolved src of an image nested in the anchor, if any.
type Link struct {
	Text         string
	Href         string
	PreviewImage *string
}

// Email is a mailto: anchor. Href is always "mailto:" followed by the address.
type Email struct {
	Text string
	Href string
}

func (Heading) BlockType() BlockType   { return BlockHeading }
func (Paragraph) BlockType() BlockType { return BlockParagraph }
func (Image) BlockType() BlockType     { return BlockImage }
func (Link) BlockType() BlockType      { return BlockLink }
func (Email) BlockType() BlockType     { return BlockEmail }

func (Heading) contentBlock()   {}
func (Paragraph) contentBlock() {}
func (Image) contentBlock()     {}
func (Link) contentBlock()      {}
func (Email) contentBlock()     {}

// MarshalJSON encodes the heading with its type tag.
func (b Heading) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  BlockType `json:"type"`
		Level int       `json:"level"`
		Text  string    `json:"text"`
	}{BlockHeading, b.Level, b.Text})
}

// MarshalJSON encodes the paragraph with its type tag.
func (b Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		Text string    `json:"text"`
	}{BlockParagraph, b.Text})
}

// MarshalJSON encodes the image with its type tag.
func (b Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		Src  string    `json:"src"`
		Alt  string    `json:"alt"`
	}{BlockImage, b.Src, b.Alt})
}

// MarshalJSON encodes the link with its type tag. A missing preview image
// is encoded as null.
func (b Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         BlockType `json:"type"`
		Text         string    `json:"text"`
		Href         string    `json:"href"`
		PreviewImage *string   `json:"previewImage"`
	}{BlockLink, b.Text, b.Href, b.PreviewImage})
}

// MarshalJSON encodes the email link with its type tag.
func (b Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		Text string    `json:"text"`
		Href string    `json:"href"`
	}{BlockEmail, b.Text, b.Href})
}
