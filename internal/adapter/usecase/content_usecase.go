package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

const (
	placeholderImage = "https://via.placeholder.com/1200x628/667eea/ffffff?text="
	placeholderVideo = "https://example.com/demo-video.mp4"
)

// ContentUseCase implements port.ContentUseCase. Copy is written locally;
// images and videos go to the generator when one is configured.
type ContentUseCase struct {
	gen    port.ContentGenerator
	writer port.Copywriter
	logger *slog.Logger
}

// NewContentUseCase returns a content use case. gen may be nil, in which
// case media requests are answered with placeholders.
func NewContentUseCase(gen port.ContentGenerator, writer port.Copywriter, logger *slog.Logger) *ContentUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentUseCase{gen: gen, writer: writer, logger: logger}
}

// Generate routes copy requests to the copywriter and media requests to the
// generator, falling back to placeholder media when the provider fails.
func (u *ContentUseCase) Generate(ctx context.Context, req domain.ContentRequest) (*domain.Content, error) {
	var (
		c   domain.Content
		err error
	)
	switch req.Kind {
	case domain.ContentCopy:
		c = u.writer.Write(req)
		return &c, nil
	case domain.ContentImage:
		if u.gen == nil {
			c = imageFallback(req)
			return &c, nil
		}
		c, err = u.gen.GenerateImage(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			u.logger.Warn("image generation failed, using placeholder", slog.Any("error", err))
			c = imageFallback(req)
		}
		return &c, nil
	case domain.ContentVideo:
		if u.gen == nil {
			c = videoFallback(req)
			return &c, nil
		}
		c, err = u.gen.GenerateVideo(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			u.logger.Warn("video generation failed", slog.Any("error", err))
			c = videoFallback(req)
		}
		return &c, nil
	}
	return nil, fmt.Errorf("%w: %q", port.ErrInvalidContentKind, req.Kind)
}

func imageFallback(req domain.ContentRequest) domain.Content {
	text := req.Prompt
	if text == "" {
		text = "AI Generated Image"
	}
	return domain.Content{
		Kind:   domain.ContentImage,
		URL:    placeholderImage + strings.ReplaceAll(url.QueryEscape(text), "+", "%20"),
		Prompt: req.Prompt,
		Style:  req.Style,
		Error:  "Failed to generate with Higgsfield, using placeholder",
	}
}

func videoFallback(req domain.ContentRequest) domain.Content {
	return domain.Content{
		Kind:    domain.ContentVideo,
		URL:     placeholderVideo,
		Prompt:  req.Prompt,
		Status:  "error",
		Message: "Failed to start video generation",
	}
}
