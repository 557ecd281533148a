package notefetch

// DefaultFailureMessage is reported when a failure carries no message.
const DefaultFailureMessage = "could not fetch URL metadata"

// PageMetadata holds page-level metadata. Absent fields are empty strings.
type PageMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// ExtractionResult is the response contract for a single extraction.
// Success is 1 when the page was fetched and parsed, 0 otherwise; a
// successful result with no content means the page had nothing
// recognizable.
type ExtractionResult struct {
	Success int            `json:"success"`
	Link    string         `json:"link"`
	Meta    PageMetadata   `json:"meta"`
	Content []ContentBlock `json:"content"`
	Error   string         `json:"error,omitempty"`
}

// OK reports whether the result represents a successful extraction.
func (r *ExtractionResult) OK() bool {
	return r.Success == 1
}

// NewExtractionResult assembles a successful result from the extracted
// metadata and ordered content.
func NewExtractionResult(link string, meta PageMetadata, content []ContentBlock) *ExtractionResult {
	if content == nil {
		content = []ContentBlock{}
	}
	return &ExtractionResult{
		Success: 1,
		Link:    link,
		Meta:    meta,
		Content: content,
	}
}

// NewFailureResult wraps a page-level failure into a result with a
// human-readable message.
func NewFailureResult(link string, err error) *ExtractionResult {
	return &ExtractionResult{
		Success: 0,
		Link:    link,
		Content: []ContentBlock{},
		Error:   FailureMessage(err),
	}
}

// FailureMessage returns the message reported to callers for err.
// Application errors report their message; other errors report their text.
func FailureMessage(err error) string {
	var msg string
	switch ErrorCode(err) {
	case "":
	case EINTERNAL:
		msg = err.Error()
	default:
		msg = ErrorMessage(err)
	}
	if msg == "" {
		return DefaultFailureMessage
	}
	return msg
}
