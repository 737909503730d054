package mcpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"adcraft/internal/core/builder"
	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

func (s *Server) createCampaign(ctx context.Context, _ *mcp.CallToolRequest, in CreateCampaignInput) (*mcp.CallToolResult, CreateCampaignResult, error) {
	audience, err := audienceOf(in.TargetAudience)
	if err != nil {
		return nil, CreateCampaignResult{}, err
	}
	c, err := s.campaigns.Create(ctx, port.CampaignInput{
		Name:           in.Name,
		Platform:       domain.Platform(strings.ToLower(strings.TrimSpace(in.Platform))),
		Objective:      objectiveOf(in.Objective),
		Budget:         in.Budget,
		TargetAudience: audience,
		Status:         s.status,
	})
	if err != nil {
		return nil, CreateCampaignResult{}, fmt.Errorf("create campaign: %w", err)
	}

	var generated GeneratedContent
	if t := in.GenerateContent; t != nil {
		g, gctx := errgroup.WithContext(ctx)
		if t.Image {
			g.Go(func() error {
				var err error
				generated.Image, err = s.content.Generate(gctx, domain.ContentRequest{
					Kind:       domain.ContentImage,
					Prompt:     "Professional advertising image for " + c.Name,
					Dimensions: &domain.Dimensions{Width: 1200, Height: 628},
				})
				return err
			})
		}
		if t.Video {
			g.Go(func() error {
				var err error
				generated.Video, err = s.content.Generate(gctx, domain.ContentRequest{
					Kind:   domain.ContentVideo,
					Prompt: "Engaging video ad for " + c.Name,
				})
				return err
			})
		}
		if t.Copy {
			g.Go(func() error {
				var err error
				generated.Copy, err = s.content.Generate(gctx, domain.ContentRequest{
					Kind:   domain.ContentCopy,
					Prompt: fmt.Sprintf("Compelling ad copy for %s, objective: %s", c.Name, in.Objective),
				})
				return err
			})
		}
		if err = g.Wait(); err != nil {
			s.logger.Warn("campaign created without content",
				slog.String("id", c.ID), slog.Any("error", err))
			return nil, CreateCampaignResult{}, fmt.Errorf("campaign %s created, content generation failed: %w", c.ID, err)
		}
	}

	return nil, CreateCampaignResult{
		Success:          true,
		Campaign:         summarize(*c),
		GeneratedContent: generated,
		Message:          fmt.Sprintf("Campaign %q created successfully on %s", c.Name, c.Platform),
	}, nil
}

func (s *Server) generateContent(ctx context.Context, _ *mcp.CallToolRequest, in GenerateContentInput) (*mcp.CallToolResult, GenerateContentResult, error) {
	req := domain.ContentRequest{
		Kind:   domain.ContentKind(strings.ToLower(in.Type)),
		Prompt: in.Prompt,
		Style:  in.Style,
	}
	if in.Dimensions != nil {
		req.Dimensions = &domain.Dimensions{Width: in.Dimensions.Width, Height: in.Dimensions.Height}
	}
	c, err := s.content.Generate(ctx, req)
	if err != nil {
		return nil, GenerateContentResult{}, err
	}
	return nil, GenerateContentResult{Success: true, Content: *c}, nil
}

func (s *Server) campaignROI(ctx context.Context, _ *mcp.CallToolRequest, in CampaignROIInput) (*mcp.CallToolResult, CampaignROIResult, error) {
	if strings.TrimSpace(in.CampaignID) == "" {
		return nil, CampaignROIResult{}, fmt.Errorf("campaign_id is required")
	}
	p, err := s.campaigns.CampaignPerformance(ctx, in.CampaignID)
	if err != nil {
		return nil, CampaignROIResult{}, err
	}
	return nil, CampaignROIResult{
		Success: true,
		ROI: ROIReport{
			CampaignID:     p.ID,
			Name:           p.Name,
			Spend:          p.Spend,
			Revenue:        p.Revenue,
			ROI:            p.ROI,
			ROAS:           p.ROAS,
			Impressions:    p.Impressions,
			Clicks:         p.Clicks,
			Conversions:    p.Conversions,
			CTR:            p.CTR,
			CPC:            p.CPC,
			CPM:            p.CPM,
			ConversionRate: p.ConversionRate,
			DateRange:      in.DateRange,
		},
	}, nil
}

func (s *Server) optimizeCampaign(ctx context.Context, _ *mcp.CallToolRequest, in OptimizeCampaignInput) (*mcp.CallToolResult, OptimizeCampaignResult, error) {
	goal := domain.OptimizationGoal(strings.ToLower(strings.TrimSpace(in.OptimizationGoal)))
	rec, err := s.campaigns.Optimize(ctx, in.CampaignID, goal)
	if err != nil {
		return nil, OptimizeCampaignResult{}, err
	}
	return nil, OptimizeCampaignResult{Success: true, Optimization: *rec}, nil
}

func (s *Server) listCampaigns(ctx context.Context, _ *mcp.CallToolRequest, in ListCampaignsInput) (*mcp.CallToolResult, ListCampaignsResult, error) {
	campaigns, err := s.campaigns.List(ctx, domain.CampaignFilter{Platform: in.Platform, Status: in.Status})
	if err != nil {
		return nil, ListCampaignsResult{}, err
	}
	return nil, ListCampaignsResult{Success: true, Campaigns: summarizeAll(campaigns)}, nil
}

// objectiveOf accepts either a canonical objective or free text such as
// "brand_awareness", which is classified like a builder answer.
func objectiveOf(s string) domain.Objective {
	o := domain.Objective(strings.ToLower(strings.TrimSpace(s)))
	switch o {
	case domain.ObjectiveConversions, domain.ObjectiveLeads, domain.ObjectiveAwareness, domain.ObjectiveTraffic:
		return o
	}
	return builder.ExtractObjective(s).Value
}

func audienceOf(in AudienceInput) (*domain.Audience, error) {
	a := domain.Audience{
		AgeRange:  builder.Defaults.AgeRange,
		Locations: append([]string(nil), in.Locations...),
		Interests: append([]string(nil), in.Interests...),
	}
	switch len(in.AgeRange) {
	case 0:
	case 2:
		if in.AgeRange[0] > in.AgeRange[1] {
			return nil, fmt.Errorf("%w: age_range min exceeds max", port.ErrInvalidCampaign)
		}
		a.AgeRange = [2]int{in.AgeRange[0], in.AgeRange[1]}
	default:
		return nil, fmt.Errorf("%w: age_range needs exactly two values", port.ErrInvalidCampaign)
	}
	if len(a.Locations) == 0 {
		a.Locations = append([]string(nil), builder.Defaults.Locations...)
	}
	return &a, nil
}
