// Package higgsfield is a client for the Higgsfield media generation API.
// Jobs are submitted and then polled until they complete or fail.
package higgsfield

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"adcraft/internal/config/configs"
	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

const (
	imagePath = "/higgsfield-ai/soul/standard"
	videoPath = "/higgsfield-ai/dop/standard"

	statusCompleted = "completed"
	statusFailed    = "failed"

	videoDurationSeconds = 5
)

var defaultDimensions = domain.Dimensions{Width: 1200, Height: 628}

// HTTPDoer is the interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements port.ContentGenerator.
type Client struct {
	http         HTTPDoer
	baseURL      string
	auth         string
	pollInterval time.Duration
	maxAttempts  int
	logger       *slog.Logger
}

// NewClient builds a client from cfg. A nil doer uses an http.Client with
// cfg.RequestTimeout.
func NewClient(cfg configs.Content, doer HTTPDoer, logger *slog.Logger) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: cfg.RequestTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 60
	}
	return &Client{
		http:         doer,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		auth:         fmt.Sprintf("Key %s:%s", cfg.KeyID, cfg.KeySecret),
		pollInterval: interval,
		maxAttempts:  attempts,
		logger:       logger,
	}
}

type imageJob struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
	Resolution  string `json:"resolution"`
}

type videoJob struct {
	ImageURL string `json:"image_url"`
	Prompt   string `json:"prompt"`
	Duration int    `json:"duration"`
}

type submitResponse struct {
	RequestID string `json:"request_id"`
	StatusURL string `json:"status_url"`
}

type statusResponse struct {
	Status string `json:"status"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Error string `json:"error"`
}

// GenerateImage renders an image and waits for the result.
func (c *Client) GenerateImage(ctx context.Context, req domain.ContentRequest) (domain.Content, error) {
	url, err := c.renderImage(ctx, req)
	if err != nil {
		return domain.Content{}, err
	}
	dims := defaultDimensions
	if req.Dimensions != nil {
		dims = *req.Dimensions
	}
	return domain.Content{
		Kind:       domain.ContentImage,
		URL:        url,
		Prompt:     req.Prompt,
		Style:      req.Style,
		Dimensions: &dims,
	}, nil
}

// GenerateVideo renders a base image, submits it for animation and returns
// without waiting for the video.
func (c *Client) GenerateVideo(ctx context.Context, req domain.ContentRequest) (domain.Content, error) {
	source, err := c.renderImage(ctx, req)
	if err != nil {
		return domain.Content{}, fmt.Errorf("base image: %w", err)
	}
	job, err := c.submit(ctx, videoPath, videoJob{
		ImageURL: source,
		Prompt:   fullPrompt(req),
		Duration: videoDurationSeconds,
	})
	if err != nil {
		return domain.Content{}, err
	}
	c.logger.Info("video generation started", slog.String("request_id", job.RequestID))
	return domain.Content{
		Kind:        domain.ContentVideo,
		Prompt:      req.Prompt,
		Style:       req.Style,
		Status:      "processing",
		Message:     "Video generation started. Please check back later.",
		JobID:       job.RequestID,
		StatusURL:   job.StatusURL,
		SourceImage: source,
	}, nil
}

func (c *Client) renderImage(ctx context.Context, req domain.ContentRequest) (string, error) {
	job, err := c.submit(ctx, imagePath, imageJob{
		Prompt:      fullPrompt(req),
		AspectRatio: "16:9",
		Resolution:  "720p",
	})
	if err != nil {
		return "", err
	}
	res, err := c.poll(ctx, job.StatusURL)
	if err != nil {
		return "", err
	}
	if len(res.Images) == 0 || res.Images[0].URL == "" {
		return "", fmt.Errorf("%w: completed job %s has no images", port.ErrUpstream, job.RequestID)
	}
	return res.Images[0].URL, nil
}

func (c *Client) submit(ctx context.Context, path string, body any) (*submitResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	var out submitResponse
	if err = c.do(req, &out); err != nil {
		return nil, err
	}
	if out.StatusURL == "" {
		return nil, fmt.Errorf("%w: submit %s returned no status url", port.ErrUpstream, path)
	}
	return &out, nil
}

// poll checks the job status every pollInterval until it completes, fails
// or maxAttempts checks have been made.
func (c *Client) poll(ctx context.Context, statusURL string) (*statusResponse, error) {
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
		if err != nil {
			return nil, err
		}
		var res statusResponse
		if err = c.do(req, &res); err != nil {
			return nil, err
		}
		switch res.Status {
		case statusCompleted:
			return &res, nil
		case statusFailed:
			msg := res.Error
			if msg == "" {
				msg = "unknown error"
			}
			return nil, fmt.Errorf("%w: generation failed: %s", port.ErrUpstream, msg)
		}
		c.logger.Debug("generation pending",
			slog.String("status", res.Status), slog.Int("attempt", attempt))

		if attempt == c.maxAttempts {
			break
		}
		timer := time.NewTimer(c.pollInterval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("%w after %d attempts", port.ErrGenerationTimeout, c.maxAttempts)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return req.Context().Err()
		}
		return fmt.Errorf("%w: %s %s: %v", port.ErrUpstream, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s returned %d: %s",
			port.ErrUpstream, req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", port.ErrUpstream, req.URL.Path, err)
	}
	return nil
}

func fullPrompt(req domain.ContentRequest) string {
	if req.Style == "" {
		return req.Prompt
	}
	return req.Prompt + ", " + req.Style
}
