// Package copywriter writes ad copy from keyword rules. It needs no
// external service and never fails.
package copywriter

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"adcraft/internal/core/domain"
)

var (
	saleWords        = []string{"sale", "discount", "off"}
	techWords        = []string{"tech", "technology", "software"}
	urgentWords      = []string{"limited", "now", "today"}
	blackFridayWords = []string{"black friday", "cyber monday"}
)

// Writer implements port.Copywriter.
type Writer struct{}

// New returns a Writer.
func New() Writer {
	return Writer{}
}

// Write returns headline, body and call to action for req.Prompt. The
// "urgent" style forces the urgent variant when no stronger rule applies.
func (Writer) Write(req domain.ContentRequest) domain.Content {
	prompt := req.Prompt
	lower := strings.ToLower(prompt)

	sale := containsAny(lower, saleWords)
	tech := containsAny(lower, techWords)
	urgent := containsAny(lower, urgentWords) || strings.Contains(strings.ToLower(req.Style), "urgent")
	blackFriday := containsAny(lower, blackFridayWords)

	var headline, body, cta string
	switch {
	case blackFriday && tech:
		headline = "🔥 Black Friday Tech Blowout - Up to 70% Off!"
		body = "Don't miss out on the biggest tech deals of the year. Premium gadgets, software, " +
			"and electronics at unbeatable prices. Limited stock available!"
		cta = "Shop Now"
	case sale && tech:
		headline = "💻 Massive Tech Sale - Save Big Today!"
		body = "Upgrade your tech game with incredible discounts on the latest devices and software. Limited time offer!"
		cta = "Get Deals"
	case sale:
		headline = "🎉 Exclusive Sale - Don't Miss Out!"
		body = fmt.Sprintf("%s. Grab amazing deals while supplies last. Your perfect purchase awaits!", prompt)
		cta = "Shop Sale"
	case tech:
		headline = "🚀 Next-Gen Technology Awaits"
		body = fmt.Sprintf("%s. Experience cutting-edge innovation that transforms how you work and play.", prompt)
		cta = "Learn More"
	case urgent:
		headline = fmt.Sprintf("⚡ %s - Act Fast!", prompt)
		body = "Limited time opportunity! Don't let this amazing offer slip away. Available while supplies last."
		cta = "Claim Now"
	default:
		headline = "✨ " + capitalize(prompt)
		body = fmt.Sprintf("Discover amazing opportunities with %s. "+
			"Transform your experience with our premium solutions designed just for you.", prompt)
		cta = "Get Started"
	}

	return domain.Content{
		Kind:     domain.ContentCopy,
		Prompt:   prompt,
		Style:    req.Style,
		Headline: headline,
		Body:     body,
		CTA:      cta,
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
