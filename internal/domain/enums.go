package domain

// Step identifies one screen of the campaign wizard. Steps are ordered and
// only ever change through controller transitions.
type Step int

const (
	StepFoundation Step = iota
	StepPlatformSelection
	StepContentStrategy
	StepPromptGeneration
	StepFinalPlan
)

var stepNames = [...]string{
	"Campaign Foundation",
	"Platform Selection",
	"Content Strategy",
	"Prompt Generation",
	"Execution Plan",
}

// Steps returns all wizard steps in order.
func Steps() []Step {
	return []Step{
		StepFoundation,
		StepPlatformSelection,
		StepContentStrategy,
		StepPromptGeneration,
		StepFinalPlan,
	}
}

func (s Step) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stepNames[s]
}

// Valid reports whether s is one of the five defined wizard steps.
func (s Step) Valid() bool {
	return s >= StepFoundation && s <= StepFinalPlan
}

// Platform and phase catalogs. Fixed process-wide, never mutated.
const (
	PlatformInstagram = "Instagram"
	PlatformTikTok    = "TikTok"
	PlatformEmail     = "Email"
	PlatformTwitter   = "Twitter"
	PlatformLinkedIn  = "LinkedIn"
	PlatformFacebook  = "Facebook"
)

const (
	PhaseAwareness     = "Awareness"
	PhaseConsideration = "Consideration"
	PhaseConversion    = "Conversion"
	PhaseRetention     = "Retention"
)

// Platforms lists the supported distribution channels in catalog order.
var Platforms = []string{
	PlatformInstagram,
	PlatformTikTok,
	PlatformEmail,
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformFacebook,
}

// Phases lists the campaign lifecycle stages in catalog order.
var Phases = []string{
	PhaseAwareness,
	PhaseConsideration,
	PhaseConversion,
	PhaseRetention,
}

// ValidPlatforms is the canonical set of accepted platform names.
var ValidPlatforms = map[string]bool{
	PlatformInstagram: true, PlatformTikTok: true, PlatformEmail: true,
	PlatformTwitter: true, PlatformLinkedIn: true, PlatformFacebook: true,
}

// ValidPhases is the canonical set of accepted phase names.
var ValidPhases = map[string]bool{
	PhaseAwareness: true, PhaseConsideration: true,
	PhaseConversion: true, PhaseRetention: true,
}

// Foundation-step select options.
var (
	CampaignDurations = []string{"2 weeks", "4 weeks", "6 weeks", "8 weeks"}
	CampaignGoals     = []string{"Brand Awareness", "Lead Generation", "Product Launch", "Engagement", "Sales Conversion"}
	BudgetTiers       = []string{"Bootstrapped", "Moderate", "Amplified", "Enterprise"}
)
