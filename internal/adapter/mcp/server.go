// Package mcpadapter exposes campaign management, analytics and content
// generation as Model Context Protocol tools and resources.
package mcpadapter

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

const (
	serverName = "ai-marketing-platform"

	activeCampaignsURI   = "campaign://active"
	analyticsOverviewURI = "analytics://overview"
)

// Server is the MCP inbound adapter.
type Server struct {
	campaigns port.CampaignUseCase
	content   port.ContentUseCase
	status    domain.Status
	logger    *slog.Logger
	mcpServer *mcp.Server
}

// NewServer registers every tool and resource. Campaigns created through
// tools get status.
func NewServer(campaigns port.CampaignUseCase, content port.ContentUseCase, status domain.Status, version string, logger *slog.Logger) *Server {
	if !status.Valid() {
		status = domain.StatusActive
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		campaigns: campaigns,
		content:   content,
		status:    status,
		logger:    logger,
		mcpServer: mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// Run serves MCP over stdin/stdout until ctx is done or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server running on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single session over transport.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcpServer.Connect(ctx, transport, nil)
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_ad_campaign",
		Description: "Create a new advertising campaign with AI-generated content across Meta, Google, TikTok or LinkedIn",
	}, s.createCampaign)
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_content",
		Description: "Generate AI content (images, videos, or copy)",
	}, s.generateContent)
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_campaign_roi",
		Description: "Get ROI analytics and performance metrics for a campaign",
	}, s.campaignROI)
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "optimize_campaign",
		Description: "Campaign optimization recommendations for a performance goal",
	}, s.optimizeCampaign)
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_campaigns",
		Description: "List campaigns with their current status",
	}, s.listCampaigns)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         activeCampaignsURI,
		Name:        "Active Campaigns",
		Description: "List of all active advertising campaigns",
		MIMEType:    "application/json",
	}, s.readActiveCampaigns)
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         analyticsOverviewURI,
		Name:        "Analytics Overview",
		Description: "Overall platform analytics and ROI metrics",
		MIMEType:    "application/json",
	}, s.readAnalyticsOverview)
}
