package builder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"adcraft/internal/core/domain"
)

// Extraction is the result of running one extractor over a message. Text is
// the literal text the value was derived from and Matched is false when the
// value is the slot default.
type Extraction[T any] struct {
	Value   T
	Text    string
	Matched bool
}

var (
	budgetPattern   = regexp.MustCompile(`\$?(\d+,?\d*)`)
	agePattern      = regexp.MustCompile(`(\d+)[-\s](\d+)`)
	durationPattern = regexp.MustCompile(`(\d+)\s*(day|week|month)`)
)

// ExtractObjective maps the message to a campaign objective. Unrecognised
// messages default to conversions and keep the message verbatim as the
// objective text.
func ExtractObjective(msg string) Extraction[domain.Objective] {
	lower := strings.ToLower(msg)
	for _, entry := range objectiveKeywords {
		if containsAny(lower, entry.keywords) {
			return Extraction[domain.Objective]{Value: entry.objective, Text: entry.text, Matched: true}
		}
	}
	return Extraction[domain.Objective]{Value: Defaults.Objective, Text: msg}
}

// ExtractPlatform maps the message to an advertising platform.
func ExtractPlatform(msg string) Extraction[domain.Platform] {
	lower := strings.ToLower(msg)
	for _, entry := range platformKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return Extraction[domain.Platform]{Value: entry.platform, Text: kw, Matched: true}
			}
		}
	}
	return Extraction[domain.Platform]{Value: Defaults.Platform}
}

// MaxBudget is the largest budget ExtractBudget accepts.
const MaxBudget = 1_000_000_000_000

// MaxDurationDays is the longest duration ExtractDuration accepts.
const MaxDurationDays = 3650

// ExtractBudget parses the first number in the message, allowing a leading
// dollar sign and one thousands separator. Only the first digit run is
// used when the message contains several numbers. Amounts above MaxBudget
// fall back to the default.
func ExtractBudget(msg string) Extraction[int64] {
	m := budgetPattern.FindStringSubmatch(strings.ToLower(msg))
	if m == nil {
		return Extraction[int64]{Value: Defaults.Budget}
	}
	v, err := strconv.ParseInt(strings.Replace(m[1], ",", "", 1), 10, 64)
	if err != nil || v <= 0 || v > MaxBudget {
		return Extraction[int64]{Value: Defaults.Budget}
	}
	return Extraction[int64]{Value: v, Text: m[0], Matched: true}
}

// ExtractAgeRange reads the first two integers separated by a dash or a
// space as [min, max].
func ExtractAgeRange(msg string) Extraction[[2]int] {
	m := agePattern.FindStringSubmatch(msg)
	if m == nil {
		return Extraction[[2]int]{Value: Defaults.AgeRange}
	}
	lo, err1 := strconv.Atoi(m[1])
	hi, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return Extraction[[2]int]{Value: Defaults.AgeRange}
	}
	return Extraction[[2]int]{Value: [2]int{lo, hi}, Text: m[0], Matched: true}
}

// ExtractLocations returns every gazetteer entry found in the message,
// title-cased, in gazetteer order.
func ExtractLocations(msg string) Extraction[[]string] {
	lower := strings.ToLower(msg)
	caser := cases.Title(language.English)
	var found, texts []string
	for _, kw := range locationKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, caser.String(kw))
			texts = append(texts, kw)
		}
	}
	if len(found) == 0 {
		return Extraction[[]string]{Value: append([]string(nil), Defaults.Locations...)}
	}
	return Extraction[[]string]{Value: found, Text: strings.Join(texts, ", "), Matched: true}
}

// ExtractInterests returns every interest keyword found in the message.
func ExtractInterests(msg string) Extraction[[]string] {
	lower := strings.ToLower(msg)
	var found []string
	for _, kw := range interestKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	if len(found) == 0 {
		return Extraction[[]string]{Value: append([]string(nil), Defaults.Interests...)}
	}
	return Extraction[[]string]{Value: found, Text: strings.Join(found, ", "), Matched: true}
}

// ExtractAudience combines the age, location and interest extractors.
func ExtractAudience(msg string) Extraction[domain.Audience] {
	age := ExtractAgeRange(msg)
	locations := ExtractLocations(msg)
	interests := ExtractInterests(msg)
	var texts []string
	for _, t := range []string{age.Text, locations.Text, interests.Text} {
		if t != "" {
			texts = append(texts, t)
		}
	}
	return Extraction[domain.Audience]{
		Value: domain.Audience{
			AgeRange:  age.Value,
			Locations: locations.Value,
			Interests: interests.Value,
		},
		Text:    strings.Join(texts, "; "),
		Matched: age.Matched || locations.Matched || interests.Matched,
	}
}

// ExtractStartDate recognises "today", "tomorrow" and "next week" relative
// to now. Anything else starts today.
func ExtractStartDate(msg string, now time.Time) Extraction[time.Time] {
	lower := strings.ToLower(msg)
	today := startOfDay(now)
	switch {
	case strings.Contains(lower, "today"):
		return Extraction[time.Time]{Value: today, Text: "today", Matched: true}
	case strings.Contains(lower, "tomorrow"):
		return Extraction[time.Time]{Value: today.AddDate(0, 0, 1), Text: "tomorrow", Matched: true}
	case strings.Contains(lower, "next week"):
		return Extraction[time.Time]{Value: today.AddDate(0, 0, 7), Text: "next week", Matched: true}
	}
	return Extraction[time.Time]{Value: today}
}

// ExtractDuration reads "{n} day|week|month" and converts it to days, with
// a week counted as 7 days and a month as 30. Durations longer than
// MaxDurationDays fall back to the default.
func ExtractDuration(msg string) Extraction[int] {
	m := durationPattern.FindStringSubmatch(strings.ToLower(msg))
	if m == nil {
		return Extraction[int]{Value: Defaults.DurationDays}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return Extraction[int]{Value: Defaults.DurationDays}
	}
	unit := 1
	switch m[2] {
	case "week":
		unit = 7
	case "month":
		unit = 30
	}
	if n > MaxDurationDays/unit {
		return Extraction[int]{Value: Defaults.DurationDays}
	}
	n *= unit
	return Extraction[int]{Value: n, Text: m[0], Matched: true}
}

// ExtractSchedule combines the start date and duration extractors.
func ExtractSchedule(msg string, now time.Time) Extraction[domain.Schedule] {
	start := ExtractStartDate(msg, now)
	duration := ExtractDuration(msg)
	var texts []string
	for _, t := range []string{start.Text, duration.Text} {
		if t != "" {
			texts = append(texts, t)
		}
	}
	return Extraction[domain.Schedule]{
		Value: domain.Schedule{
			StartDate: start.Value.Format(dateLayout),
			EndDate:   start.Value.AddDate(0, 0, duration.Value).Format(dateLayout),
			Duration:  duration.Value,
		},
		Text:    strings.Join(texts, "; "),
		Matched: start.Matched || duration.Matched,
	}
}

// ExtractName uses the trimmed message as the campaign name, falling back
// to "{objectiveText} - {platform}".
func ExtractName(msg, objectiveText string, platform domain.Platform) Extraction[string] {
	if name := strings.TrimSpace(msg); name != "" {
		return Extraction[string]{Value: name, Text: name, Matched: true}
	}
	return Extraction[string]{Value: fmt.Sprintf("%s - %s", objectiveText, platform)}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
