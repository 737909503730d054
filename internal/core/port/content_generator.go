package port

import (
	"context"

	"adcraft/internal/core/domain"
)

// ContentGenerator renders media through an external AI provider. Errors
// wrap ErrGenerationTimeout or ErrUpstream.
type ContentGenerator interface {
	GenerateImage(ctx context.Context, req domain.ContentRequest) (domain.Content, error)
	// GenerateVideo starts a video job and returns as soon as the provider
	// has accepted it; the result carries the job id and status URL.
	GenerateVideo(ctx context.Context, req domain.ContentRequest) (domain.Content, error)
}

// Copywriter writes ad copy for a prompt.
type Copywriter interface {
	Write(req domain.ContentRequest) domain.Content
}
