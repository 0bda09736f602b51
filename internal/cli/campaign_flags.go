package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/campaignforge/internal/domain"
	"github.com/spf13/cobra"
)

// campaignFlags collects campaign parameters from command-line flags, the
// scriptable counterpart of the wizard's forms.
type campaignFlags struct {
	product   string
	audience  string
	message   string
	duration  string
	goal      string
	budget    string
	platforms []string
	phases    []string
}

func (f *campaignFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.product, "product", "", "Product or service name")
	cmd.Flags().StringVar(&f.audience, "audience", "", "Target audience description")
	cmd.Flags().StringVar(&f.message, "message", "", "Key campaign message")
	cmd.Flags().StringVar(&f.duration, "duration", "", "Campaign duration (e.g. \"4 weeks\")")
	cmd.Flags().StringVar(&f.goal, "goal", "", "Primary campaign goal")
	cmd.Flags().StringVar(&f.budget, "budget", "", "Budget tier")
	cmd.Flags().StringSliceVar(&f.platforms, "platforms", nil, "Platforms, comma-separated (e.g. Instagram,TikTok)")
	cmd.Flags().StringSliceVar(&f.phases, "phases", nil, "Campaign phases, comma-separated (e.g. Awareness,Conversion)")
}

// toData validates catalog-bound selections and assembles a CampaignData.
// Unset fields stay empty; prompt generation fills them with defaults.
func (f *campaignFlags) toData() (domain.CampaignData, error) {
	data := domain.CampaignData{
		ProductName:      f.product,
		TargetAudience:   f.audience,
		KeyMessage:       f.message,
		CampaignDuration: f.duration,
		CampaignGoal:     f.goal,
		BudgetTier:       f.budget,
	}

	for _, p := range f.platforms {
		if !domain.ValidPlatforms[p] {
			return domain.CampaignData{}, fmt.Errorf("unknown platform %q (valid: %s)", p, strings.Join(domain.Platforms, ", "))
		}
	}
	for _, p := range f.phases {
		if !domain.ValidPhases[p] {
			return domain.CampaignData{}, fmt.Errorf("unknown phase %q (valid: %s)", p, strings.Join(domain.Phases, ", "))
		}
	}

	data.SetSelectedPlatforms(f.platforms)
	data.SetCampaignPhases(f.phases)
	return data, nil
}
