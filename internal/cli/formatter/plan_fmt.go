package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/campaignforge/internal/domain"
)

// FormatPrompts formats the generated prompt script as a numbered sequence.
// Prompts are meant to be fed to a generative-text tool in this exact order.
func FormatPrompts(prompts []domain.PromptRecord) string {
	var b strings.Builder

	b.WriteString(Header("Sequential Prompt Script"))
	b.WriteString("\n\n")

	if len(prompts) == 0 {
		b.WriteString(Dim("No prompts generated yet."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(StyleGreen.Render(fmt.Sprintf("Generated %d sequential prompts for your campaign.", len(prompts))))
	b.WriteString("\n\n")

	for i, p := range prompts {
		tag := PhaseStyle(p.Phase).Render(p.Phase)
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			Bold(fmt.Sprintf("Step %d:", i+1)),
			tag,
			Dim("—"),
			StyleFg.Render(p.Platform),
		))
		for _, line := range strings.Split(p.Text, "\n") {
			b.WriteString("   " + line + "\n")
		}
		if i < len(prompts)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatTimeline formats timeline rows as an aligned table in generator order.
func FormatTimeline(rows []domain.TimelineRow) string {
	var b strings.Builder

	b.WriteString(Header("Campaign Timeline"))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(Dim("Select at least one phase and one platform to build a timeline."))
		b.WriteString("\n")
		return b.String()
	}

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.Week,
			r.Phase,
			r.Platform,
			r.Task,
			StyleGreen.Render(r.Status),
		})
	}
	b.WriteString(RenderTable([]string{"Week", "Phase", "Platform", "Task", "Status"}, tableRows))

	return b.String()
}

// quickStartGuide is the execution checklist shown on the final plan screen.
const quickStartGuide = `1. Start with the foundation prompt for overall strategy
2. Move to the platform-specific prompts for tailored content
3. Use the asset development prompt for actual copy and visuals
4. Execute in sequence, following the generated timeline`

// FormatSummary formats the final plan screen: campaign summary, prompt
// count, and the quick-start guide.
func FormatSummary(data domain.CampaignData, prompts []domain.PromptRecord) string {
	var b strings.Builder

	b.WriteString(Header("Campaign Summary"))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		if value == "" {
			value = Dim("(not set)")
		} else {
			value = StyleFg.Render(value)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Bold(label+":"), value))
	}

	writeField("Product", data.ProductName)
	writeField("Audience", data.TargetAudience)
	writeField("Key Message", data.KeyMessage)
	writeField("Duration", data.CampaignDuration)
	writeField("Goal", data.CampaignGoal)
	writeField("Budget", data.BudgetTier)
	writeField("Platforms", strings.Join(data.SelectedPlatforms, ", "))
	writeField("Phases", strings.Join(data.CampaignPhases, ", "))

	b.WriteString("\n")
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Total prompts generated: %d", len(prompts))))
	b.WriteString("\n\n")

	b.WriteString(Header("Quick Start"))
	b.WriteString("\n\n")
	b.WriteString(Dim(quickStartGuide))
	b.WriteString("\n")

	return b.String()
}
