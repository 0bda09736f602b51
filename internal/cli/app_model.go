package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/campaignforge/internal/cli/formatter"
	"github.com/alexanderramin/campaignforge/internal/domain"
	"github.com/alexanderramin/campaignforge/internal/export"
	"github.com/alexanderramin/campaignforge/internal/generation"
	"github.com/alexanderramin/campaignforge/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 26

type wizardKeyMap struct {
	Quit       key.Binding
	QuitSoft   key.Binding
	Reset      key.Binding
	Back       key.Binding
	Continue   key.Binding
	Timeline   key.Binding
	ExportPlan key.Binding
	ExportCSV  key.Binding
}

var wizardKeys = wizardKeyMap{
	Quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	QuitSoft:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Reset:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Continue:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
	Timeline:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "timeline")),
	ExportPlan: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export json")),
	ExportCSV:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "export csv")),
}

// wizardModel is the root bubbletea model for the interactive campaign
// wizard. It renders a step sidebar next to either the active huh form
// (collection steps) or a scrollable viewport (prompt and plan steps).
// All step changes go through the wizard.Controller.
type wizardModel struct {
	app  *App
	ctrl *wizard.Controller

	// Active form for the current step, nil on viewer steps.
	// inDetail marks the follow-up form of a two-form step (platform
	// goals, phase notes).
	form     *huh.Form
	inDetail bool

	// Scratch selections bound to forms until the step completes.
	durationPick string
	goalPick     string
	budgetPick   string
	platformPick []string
	goalVals     []string
	phasePick    []string
	noteVals     []string

	vp           viewport.Model
	showTimeline bool
	status       string
	width        int
	height       int
	quitting     bool
}

func newWizardModel(app *App) *wizardModel {
	return &wizardModel{
		app:  app,
		ctrl: wizard.NewController(generation.GeneratePrompts),
		vp:   viewport.New(0, 0),
	}
}

// runWizard starts the interactive TUI over a fresh session.
func runWizard(app *App) error {
	p := tea.NewProgram(newWizardModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *wizardModel) Init() tea.Cmd {
	return m.enterStep()
}

// enterStep rebuilds the UI for the controller's current step and returns
// the new form's init command, if any.
func (m *wizardModel) enterStep() tea.Cmd {
	m.inDetail = false
	m.status = ""
	state := m.ctrl.State()

	switch state.Step {
	case domain.StepFoundation:
		m.durationPick = state.Data.CampaignDuration
		m.goalPick = state.Data.CampaignGoal
		m.budgetPick = state.Data.BudgetTier
		m.form = foundationForm(&state.Data, &m.durationPick, &m.goalPick, &m.budgetPick)

	case domain.StepPlatformSelection:
		m.platformPick = append([]string(nil), state.Data.SelectedPlatforms...)
		m.form = platformPickForm(&m.platformPick)

	case domain.StepContentStrategy:
		m.phasePick = append([]string(nil), state.Data.CampaignPhases...)
		if len(m.phasePick) == 0 {
			// First visit preselects every phase.
			m.phasePick = append(m.phasePick, domain.Phases...)
		}
		m.form = phasePickForm(&m.phasePick)

	case domain.StepPromptGeneration, domain.StepFinalPlan:
		m.form = nil
		m.showTimeline = false
		m.refreshContent()
	}

	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

// completeForm applies the finished form's values and moves the wizard
// forward, chaining into a detail form where the step has one.
func (m *wizardModel) completeForm() tea.Cmd {
	state := m.ctrl.State()

	switch state.Step {
	case domain.StepFoundation:
		state.Data.CampaignDuration = m.durationPick
		state.Data.CampaignGoal = m.goalPick
		state.Data.BudgetTier = m.budgetPick

	case domain.StepPlatformSelection:
		if !m.inDetail {
			state.Data.SetSelectedPlatforms(m.platformPick)
			if sel := state.Data.SelectedPlatforms; len(sel) > 0 {
				m.inDetail = true
				m.goalVals = make([]string, len(sel))
				for i, p := range sel {
					m.goalVals[i] = state.Data.PlatformGoals[p]
				}
				m.form = platformGoalsForm(sel, m.goalVals)
				return m.form.Init()
			}
		} else {
			for i, p := range state.Data.SelectedPlatforms {
				if m.goalVals[i] != "" {
					state.Data.SetPlatformGoal(p, m.goalVals[i])
				}
			}
		}

	case domain.StepContentStrategy:
		if !m.inDetail {
			state.Data.SetCampaignPhases(m.phasePick)
			if sel := state.Data.CampaignPhases; len(sel) > 0 {
				m.inDetail = true
				m.noteVals = make([]string, len(sel))
				for i, p := range sel {
					m.noteVals[i] = state.Data.PhaseNotes[p]
				}
				m.form = phaseNotesForm(sel, m.noteVals)
				return m.form.Init()
			}
		} else {
			for i, p := range state.Data.CampaignPhases {
				if m.noteVals[i] != "" {
					state.Data.SetPhaseNote(p, m.noteVals[i])
				}
			}
		}
	}

	m.ctrl.Advance()
	return m.enterStep()
}

// refreshContent rebuilds the viewport for the viewer steps.
func (m *wizardModel) refreshContent() {
	state := m.ctrl.State()
	var content string
	switch state.Step {
	case domain.StepPromptGeneration:
		if m.showTimeline {
			rows := generation.GenerateTimeline(state.Data.CampaignPhases, state.Data.SelectedPlatforms)
			content = formatter.FormatTimeline(rows)
		} else {
			content = formatter.FormatPrompts(state.Prompts)
		}
	case domain.StepFinalPlan:
		content = formatter.FormatSummary(state.Data, state.Prompts)
	}
	m.vp.SetContent(content)
	m.vp.GotoTop()
}

func (m *wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = max(20, msg.Width-sidebarWidth-2)
		m.vp.Height = max(5, msg.Height-4)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, wizardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, wizardKeys.Reset):
			m.ctrl.Reset()
			return m, m.enterStep()
		}

		if m.form == nil {
			return m.handleViewerKey(msg)
		}
		if msg.Type == tea.KeyEsc {
			m.ctrl.Retreat()
			return m, m.enterStep()
		}
	}

	if m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		if m.form.State == huh.StateCompleted {
			return m, m.completeForm()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// handleViewerKey handles keys on the prompt and plan steps, where no form
// is capturing input.
func (m *wizardModel) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.ctrl.State()

	switch {
	case key.Matches(msg, wizardKeys.QuitSoft):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, wizardKeys.Back):
		m.ctrl.Retreat()
		return m, m.enterStep()
	case key.Matches(msg, wizardKeys.Continue):
		m.ctrl.Advance()
		return m, m.enterStep()
	case key.Matches(msg, wizardKeys.Timeline) && state.Step == domain.StepPromptGeneration:
		m.showTimeline = !m.showTimeline
		m.refreshContent()
		return m, nil
	case key.Matches(msg, wizardKeys.ExportPlan):
		m.exportPlan()
		return m, nil
	case key.Matches(msg, wizardKeys.ExportCSV):
		m.exportTimeline()
		return m, nil
	}

	// Number keys jump directly to a step, sidebar style.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
		if err := m.ctrl.GoTo(domain.Step(s[0] - '1')); err == nil {
			return m, m.enterStep()
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *wizardModel) exportPlan() {
	state := m.ctrl.State()
	path := filepath.Join(m.app.ExportDir, export.DefaultPlanFile)
	f, err := os.Create(path)
	if err != nil {
		m.status = "Export failed: " + err.Error()
		return
	}
	defer f.Close()
	if err := export.NewExporter().WritePlan(f, state.Data, state.Prompts); err != nil {
		m.status = "Export failed: " + err.Error()
		return
	}
	m.status = "Campaign plan written to " + path
}

func (m *wizardModel) exportTimeline() {
	state := m.ctrl.State()
	rows := generation.GenerateTimeline(state.Data.CampaignPhases, state.Data.SelectedPlatforms)
	path := filepath.Join(m.app.ExportDir, export.DefaultTimelineFile)
	f, err := os.Create(path)
	if err != nil {
		m.status = "Export failed: " + err.Error()
		return
	}
	defer f.Close()
	if err := export.WriteTimelineCSV(f, rows); err != nil {
		m.status = "Export failed: " + err.Error()
		return
	}
	m.status = "Timeline written to " + path
}

// ── rendering ────────────────────────────────────────────────────────────────

var (
	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Padding(1, 2).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(formatter.ColorDim)
	contentStyle = lipgloss.NewStyle().Padding(1, 2)
)

func (m *wizardModel) renderSidebar() string {
	state := m.ctrl.State()
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render("CAMPAIGN BUILDER"))
	b.WriteString("\n\n")

	for _, step := range domain.Steps() {
		line := step.String()
		switch {
		case step == state.Step:
			b.WriteString(formatter.StyleHeader.Render("▸ " + line))
		case step < state.Step:
			b.WriteString(formatter.StyleGreen.Render("✓ " + line))
		default:
			b.WriteString(formatter.Dim("  " + line))
		}
		b.WriteString("\n")
	}

	return sidebarStyle.Render(b.String())
}

func (m *wizardModel) helpLine() string {
	if m.form != nil {
		return formatter.Dim("enter continue · esc back · ctrl+r reset · ctrl+c quit")
	}
	if m.ctrl.State().Step == domain.StepPromptGeneration {
		return formatter.Dim("enter continue · esc back · 1-5 jump · g timeline · e export json · t export csv · ctrl+r reset · q quit")
	}
	return formatter.Dim("esc back · 1-5 jump · e export json · t export csv · ctrl+r reset · q quit")
}

func (m *wizardModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	if m.form != nil {
		content = formatter.Header(m.ctrl.State().Step.String()) + "\n\n" + m.form.View()
	} else {
		content = m.vp.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(),
		contentStyle.Render(content),
	)

	footer := m.helpLine()
	if m.status != "" {
		footer = formatter.StyleGreen.Render(m.status) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
