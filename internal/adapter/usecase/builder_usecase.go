package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"adcraft/internal/core/builder"
	"adcraft/internal/core/domain"
	"adcraft/internal/core/metrics"
	"adcraft/internal/core/port"
)

// BuilderUseCase implements port.BuilderUseCase. Finished campaigns are
// appended to the repository on the turn that creates them.
type BuilderUseCase struct {
	machine  *builder.Machine
	repo     port.CampaignRepository
	sessions port.SessionStore
	synth    *metrics.Synthesizer
	logger   *slog.Logger
	now      func() time.Time
}

// NewBuilderUseCase wires the builder state machine to its stores. A nil
// synth stores campaigns without metrics.
func NewBuilderUseCase(machine *builder.Machine, repo port.CampaignRepository, sessions port.SessionStore, synth *metrics.Synthesizer, logger *slog.Logger) *BuilderUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuilderUseCase{
		machine:  machine,
		repo:     repo,
		sessions: sessions,
		synth:    synth,
		logger:   logger,
		now:      time.Now,
	}
}

// Turn advances a conversation whose state the caller echoes back.
func (u *BuilderUseCase) Turn(ctx context.Context, req port.BuilderRequest) (*port.BuilderResponse, error) {
	out := u.machine.Advance(builder.Input{
		Message: req.Message,
		Draft:   req.Draft,
		Phase:   req.Phase,
		History: req.History,
	})
	if err := u.persist(ctx, out.Campaign); err != nil {
		return nil, err
	}
	return response(out), nil
}

// Converse advances a server-side conversation. The session is created on
// the first message and dropped once the campaign is created, so the next
// message under the same id starts over.
func (u *BuilderUseCase) Converse(ctx context.Context, conversationID, message string) (*port.BuilderResponse, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, fmt.Errorf("%w: conversation id is required", port.ErrInvalidArgument)
	}

	unlock, err := u.sessions.Lock(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if uerr := unlock(context.WithoutCancel(ctx)); uerr != nil {
			u.logger.Warn("failed to release conversation lock",
				slog.String("conversation", conversationID), slog.Any("error", uerr))
		}
	}()

	sess, err := u.sessions.Load(ctx, conversationID)
	switch {
	case errors.Is(err, port.ErrSessionNotFound):
		sess = &domain.Session{ID: conversationID, Phase: domain.PhaseInitial}
	case err != nil:
		return nil, err
	}

	out := u.machine.Advance(builder.Input{
		Message: message,
		Draft:   sess.Draft,
		Phase:   sess.Phase,
		History: sess.History,
	})
	if err = u.persist(ctx, out.Campaign); err != nil {
		return nil, err
	}

	if out.Phase == domain.PhaseReady {
		if err = u.sessions.Delete(ctx, conversationID); err != nil {
			return nil, err
		}
		return response(out), nil
	}

	sess.Phase = out.Phase
	sess.Draft = out.Draft
	sess.History = append(sess.History,
		domain.Turn{Role: "user", Content: message},
		domain.Turn{Role: "assistant", Content: out.Reply},
	)
	sess.UpdatedAt = u.now().UTC()
	if err = u.sessions.Save(ctx, *sess); err != nil {
		return nil, err
	}
	return response(out), nil
}

func (u *BuilderUseCase) persist(ctx context.Context, c *domain.Campaign) error {
	if c == nil {
		return nil
	}
	if u.synth != nil {
		m := u.synth.Synthesize(*c)
		c.Metrics = &m
	}
	if err := u.repo.Append(ctx, *c); err != nil {
		return fmt.Errorf("store campaign %s: %w", c.ID, err)
	}
	u.logger.Info("campaign created by builder",
		slog.String("id", c.ID), slog.String("name", c.Name), slog.String("platform", string(c.Platform)))
	return nil
}

func response(out builder.Output) *port.BuilderResponse {
	return &port.BuilderResponse{
		Message:  out.Reply,
		Draft:    out.Draft,
		Phase:    out.Phase,
		Campaign: out.Campaign,
	}
}
