package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"adcraft/internal/core/domain"
)

func (s *Server) readActiveCampaigns(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	campaigns, err := s.campaigns.List(ctx, domain.CampaignFilter{Status: string(domain.StatusActive)})
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}
	return jsonResource(req, summarizeAll(campaigns))
}

func (s *Server) readAnalyticsOverview(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	o, err := s.campaigns.Overview(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("analytics overview: %w", err)
	}
	return jsonResource(req, o)
}

func jsonResource(req *mcp.ReadResourceRequest, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
