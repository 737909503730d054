package domain

// ContentKind selects the type of creative to generate.
type ContentKind string

const (
	ContentImage ContentKind = "image"
	ContentVideo ContentKind = "video"
	ContentCopy  ContentKind = "copy"
)

// Valid reports whether k is a supported content kind.
func (k ContentKind) Valid() bool {
	switch k {
	case ContentImage, ContentVideo, ContentCopy:
		return true
	}
	return false
}

// Dimensions is the pixel size requested for an image.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ContentRequest describes a creative to generate.
type ContentRequest struct {
	Kind       ContentKind `json:"type"`
	Prompt     string      `json:"prompt"`
	Style      string      `json:"style,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}

// Content is a generated creative. Which fields are set depends on Kind:
// images and videos carry a URL, copy carries Headline/Body/CTA. Status,
// Message and Error describe asynchronous or degraded results.
type Content struct {
	Kind        ContentKind `json:"type"`
	URL         string      `json:"url,omitempty"`
	Prompt      string      `json:"prompt"`
	Style       string      `json:"style,omitempty"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
	Headline    string      `json:"headline,omitempty"`
	Body        string      `json:"body,omitempty"`
	CTA         string      `json:"cta,omitempty"`
	Status      string      `json:"status,omitempty"`
	Message     string      `json:"message,omitempty"`
	JobID       string      `json:"jobId,omitempty"`
	StatusURL   string      `json:"statusUrl,omitempty"`
	SourceImage string      `json:"sourceImage,omitempty"`
	Error       string      `json:"error,omitempty"`
}
