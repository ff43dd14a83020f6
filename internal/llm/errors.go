package llm

import "errors"

// Provider failures are classified into two sentinels. Callers never see
// either: Generate swallows them into fixed placeholder strings. They
// exist so logs and metrics can tell quota exhaustion from breakage.
var (
	ErrUsageLimit = errors.New("usage limit reached")
	ErrProvider   = errors.New("provider error")
)

// Placeholder strings returned in place of generated content.
const (
	MsgUsageLimit       = "Service temporarily unavailable."
	MsgProviderError    = "Unable to generate content at this time."
	MsgGenerationFailed = "Content generation failed."
)

// Outcome labels a generation result for metrics: "ok" or the placeholder
// class it collapsed into.
func Outcome(text string) string {
	switch text {
	case MsgUsageLimit:
		return "usage_limit"
	case MsgProviderError:
		return "provider_error"
	case MsgGenerationFailed:
		return "failed"
	default:
		return "ok"
	}
}
