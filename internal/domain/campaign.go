package domain

// CampaignData holds the parameters collected across the wizard steps.
// Every field is optional: prompt generation resolves absent values through
// documented defaults rather than erroring. JSON tags match the plan export
// format.
type CampaignData struct {
	ProductName      string `json:"product_name,omitempty"`
	TargetAudience   string `json:"target_audience,omitempty"`
	CampaignDuration string `json:"campaign_duration,omitempty"`
	KeyMessage       string `json:"key_message,omitempty"`
	CampaignGoal     string `json:"campaign_goal,omitempty"`
	BudgetTier       string `json:"budget_tier,omitempty"`

	// SelectedPlatforms and CampaignPhases are ordered selections from the
	// fixed catalogs; duplicates are disallowed (setters dedupe).
	SelectedPlatforms []string `json:"selected_platforms,omitempty"`
	CampaignPhases    []string `json:"campaign_phases,omitempty"`

	// Per-platform goals and per-phase strategy notes ride along in exports
	// but do not influence prompt derivation.
	PlatformGoals map[string]string `json:"platform_goals,omitempty"`
	PhaseNotes    map[string]string `json:"phase_notes,omitempty"`
}

// SetSelectedPlatforms replaces the platform selection, dropping duplicates
// while preserving selection order.
func (d *CampaignData) SetSelectedPlatforms(platforms []string) {
	d.SelectedPlatforms = UniqueStrings(platforms)
}

// SetCampaignPhases replaces the phase selection, dropping duplicates while
// preserving selection order.
func (d *CampaignData) SetCampaignPhases(phases []string) {
	d.CampaignPhases = UniqueStrings(phases)
}

// SetPlatformGoal records a free-text goal for one platform.
func (d *CampaignData) SetPlatformGoal(platform, goal string) {
	if d.PlatformGoals == nil {
		d.PlatformGoals = make(map[string]string)
	}
	d.PlatformGoals[platform] = goal
}

// SetPhaseNote records free-text strategy notes for one phase.
func (d *CampaignData) SetPhaseNote(phase, note string) {
	if d.PhaseNotes == nil {
		d.PhaseNotes = make(map[string]string)
	}
	d.PhaseNotes[phase] = note
}

// PromptRecord is one unit of generated template text, tagged with the
// phase and platform it targets. Records are immutable once produced.
type PromptRecord struct {
	Phase    string `json:"phase"`
	Platform string `json:"platform"`
	Text     string `json:"prompt"`
}

// TimelineRow is one scheduled task entry produced by crossing campaign
// phases with platforms. Rows are derived on demand and never stored.
type TimelineRow struct {
	Week     string `json:"week"`
	Phase    string `json:"phase"`
	Platform string `json:"platform"`
	Task     string `json:"task"`
	Status   string `json:"status"`
}
