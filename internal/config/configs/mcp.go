package configs

// MCP configures the protocol-tool server.
type MCP struct {
	// CampaignStatus is the status of campaigns created through tools.
	CampaignStatus string `env:"CAMPAIGN_STATUS" envDefault:"active"`
}
