package port

import "errors"

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrInvalidCampaign    = errors.New("invalid campaign")
	ErrSessionNotFound    = errors.New("session not found")
	ErrConversationBusy   = errors.New("conversation is busy")
	ErrGenerationTimeout  = errors.New("content generation timed out")
	ErrUpstream           = errors.New("content provider error")
	ErrInvalidContentKind = errors.New("invalid content type")
	ErrInvalidArgument    = errors.New("invalid argument")
)
