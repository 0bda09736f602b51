package cli

import (
	"fmt"

	"github.com/alexanderramin/campaignforge/internal/cli/formatter"
	"github.com/alexanderramin/campaignforge/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// forgeHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func forgeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// foundationForm collects the core campaign parameters. Text fields bind
// directly to the session's CampaignData so revisits show prior answers;
// the selects bind to scratch variables because huh writes the highlighted
// option into a bound select value on init, and an untouched session must
// stay empty.
func foundationForm(data *domain.CampaignData, duration, goal, budget *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Product/Service Name").
				Placeholder("EcoVibe Reusable Bottles").
				Value(&data.ProductName),
			huh.NewText().
				Title("Target Audience").
				Placeholder("Eco-conscious millennials and Gen Z, aged 18-30...").
				Value(&data.TargetAudience),
			huh.NewSelect[string]().
				Title("Campaign Duration").
				Options(huh.NewOptions(domain.CampaignDurations...)...).
				Value(duration),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Key Message").
				Placeholder("Stylish sustainability for the modern eco-warrior...").
				Value(&data.KeyMessage),
			huh.NewSelect[string]().
				Title("Primary Campaign Goal").
				Options(huh.NewOptions(domain.CampaignGoals...)...).
				Value(goal),
			huh.NewSelect[string]().
				Title("Budget Tier").
				Options(huh.NewOptions(domain.BudgetTiers...)...).
				Value(budget),
		),
	).WithTheme(forgeHuhTheme()).WithShowHelp(false)
}

// platformPickForm selects distribution channels from the fixed catalog.
func platformPickForm(selection *[]string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Choose Your Platforms").
				Options(huh.NewOptions(domain.Platforms...)...).
				Value(selection),
		),
	).WithTheme(forgeHuhTheme()).WithShowHelp(false)
}

// platformGoalsForm collects a free-text goal per selected platform.
// vals must have the same length as platforms; inputs bind by index.
func platformGoalsForm(platforms []string, vals []string) *huh.Form {
	fields := make([]huh.Field, 0, len(platforms))
	for i, p := range platforms {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("Specific goals for %s", p)).
			Placeholder(fmt.Sprintf("What do you want to achieve on %s?", p)).
			Value(&vals[i]))
	}
	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithTheme(forgeHuhTheme()).WithShowHelp(false)
}

// phasePickForm selects campaign phases from the fixed catalog.
func phasePickForm(selection *[]string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select campaign phases").
				Options(huh.NewOptions(domain.Phases...)...).
				Value(selection),
		),
	).WithTheme(forgeHuhTheme()).WithShowHelp(false)
}

// phaseNotesForm collects strategy notes per selected phase.
func phaseNotesForm(phases []string, vals []string) *huh.Form {
	fields := make([]huh.Field, 0, len(phases))
	for i, p := range phases {
		fields = append(fields, huh.NewText().
			Title(fmt.Sprintf("%s phase notes", p)).
			Placeholder("Goals, key messages, call-to-action...").
			Value(&vals[i]))
	}
	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithTheme(forgeHuhTheme()).WithShowHelp(false)
}
