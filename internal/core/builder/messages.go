package builder

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"adcraft/internal/core/domain"
)

const (
	dateLayout    = "2006-01-02"
	displayLayout = "Jan 2, 2006"
)

// Greeting is the assistant message that opens a conversation.
const Greeting = "Hi! I'm your campaign assistant. 👋\n\n" + askObjective

const (
	askObjective = "**What's the main goal of your campaign?** " +
		"(e.g., increase sales, generate leads, build brand awareness, drive website traffic)"
	askPlatform = "**Which platform would you like to advertise on?**\n\n" +
		"• Meta (Facebook & Instagram)\n• Google Ads\n• TikTok\n• LinkedIn\n• Multiple platforms"
	askBudget   = "**What's your total campaign budget?** (e.g., $5,000, $10,000)"
	askAudience = "**Who is your target audience?** Tell me about:\n" +
		"• Age range (e.g., 25-45)\n• Location (e.g., United States, Canada)\n" +
		"• Interests (e.g., technology, fitness, business)"
	askSchedule = "**How long should this campaign run?**\n" +
		"• Start date (e.g., today, tomorrow, next week)\n• Duration (e.g., 30 days, 2 months)"
	askName = "**Finally, what should we name this campaign?** (This helps you identify it later)"

	changeMenu = "No problem! What would you like to change? You can update:\n" +
		"• Campaign name\n• Budget\n• Target audience\n• Schedule\n• Platform"
)

var printer = message.NewPrinter(language.English)

func formatAmount(v int64) string {
	return printer.Sprintf("%d", v)
}

func formatDate(s string) string {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(displayLayout)
}

func ackObjective(d domain.Draft) string {
	return fmt.Sprintf("Perfect! I'll help you %s. 🎯", d.ObjectiveText)
}

func ackPlatform(d domain.Draft) string {
	return fmt.Sprintf("Great choice! %s is excellent for %s. 📱", platformOf(d).DisplayName(), d.ObjectiveText)
}

func ackBudget(d domain.Draft) string {
	return fmt.Sprintf("Perfect! Budget set to $%s. 💰\n\nI'll allocate approximately $%s/day.",
		formatAmount(budgetOf(d)), formatAmount(d.DailyBudget))
}

func ackAudience(domain.Draft) string {
	return "Excellent! I've got your target audience defined. 👥"
}

func ackSchedule(d domain.Draft) string {
	return fmt.Sprintf("Perfect! Campaign scheduled from %s to %s. 📅",
		formatDate(d.Schedule.StartDate), formatDate(d.Schedule.EndDate))
}

// summary enumerates every filled field of a complete draft.
func summary(d domain.Draft) string {
	var b strings.Builder
	b.WriteString("Awesome! Let me summarize your campaign:\n\n📋 **Campaign Summary**\n")
	if d.Name != nil {
		fmt.Fprintf(&b, "• **Name:** %s\n", *d.Name)
	}
	fmt.Fprintf(&b, "• **Goal:** %s\n", d.ObjectiveText)
	fmt.Fprintf(&b, "• **Platform:** %s\n", platformOf(d))
	fmt.Fprintf(&b, "• **Budget:** $%s (%s/day)\n", formatAmount(budgetOf(d)), formatAmount(d.DailyBudget))
	if a := d.TargetAudience; a != nil {
		fmt.Fprintf(&b, "• **Audience:** Ages %d-%d, %s\n", a.AgeRange[0], a.AgeRange[1], strings.Join(a.Locations, ", "))
		fmt.Fprintf(&b, "• **Interests:** %s\n", strings.Join(a.Interests, ", "))
	}
	if s := d.Schedule; s != nil {
		fmt.Fprintf(&b, "• **Duration:** %s - %s\n", formatDate(s.StartDate), formatDate(s.EndDate))
	}
	b.WriteString("\n**Does this look good?** Type \"yes\" to create the campaign, or tell me what you'd like to change.")
	return b.String()
}

func createdReply(c domain.Campaign) string {
	return fmt.Sprintf("🎉 **Campaign created successfully!**\n\nYour campaign %q is ready to launch. "+
		"You can review and activate it from your dashboard.\n\n"+
		"Would you like to generate AI-powered ad content for this campaign now?", c.Name)
}

func alreadyCreatedReply(d domain.Draft) string {
	name := ""
	if d.Name != nil {
		name = *d.Name
	}
	return fmt.Sprintf("Your campaign %q has already been created. Start a new conversation to build another one.", name)
}

func editReply(slots []domain.Slot, ask string) string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = slotLabel(s)
	}
	return fmt.Sprintf("No problem! Let's update the %s.\n\n%s", strings.Join(names, " and "), ask)
}

func slotLabel(s domain.Slot) string {
	switch s {
	case domain.SlotObjective:
		return "campaign goal"
	case domain.SlotAudience:
		return "target audience"
	case domain.SlotName:
		return "campaign name"
	}
	return string(s)
}

func platformOf(d domain.Draft) domain.Platform {
	if d.Platform == nil {
		return Defaults.Platform
	}
	return *d.Platform
}

func budgetOf(d domain.Draft) int64 {
	if d.Budget == nil {
		return 0
	}
	return *d.Budget
}
