// Package generation derives the prompt script and execution timeline from
// collected campaign parameters. Both derivations are pure: identical input
// always yields identical output, with no clock, randomness, or I/O.
package generation

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/campaignforge/internal/domain"
)

// Prompt phases tagged onto generated records. Foundation and asset prompts
// apply to every platform at once.
const (
	PromptPhaseFoundation = "Foundation"
	PromptPhaseContent    = "Content Creation"
	PromptPhaseAssets     = "Asset Development"

	PlatformAll = "All"
)

// Defaults substituted for absent campaign fields. Every lookup has a
// default, so generation never fails regardless of which fields are missing.
const (
	defaultProduct  = "Your Product"
	defaultAudience = "your target audience"
	defaultMessage  = "your key message"
)

var (
	defaultPlatforms = []string{domain.PlatformInstagram, domain.PlatformTikTok}
	defaultPhases    = []string{domain.PhaseAwareness}
)

// foundationPrompt frames the campaign for a strategist and asks for a
// weekly per-platform strategy.
const foundationPrompt = `Act as a senior marketing strategist. Create a multi-platform campaign for:

Product: %s
Target Audience: %s
Key Message: %s
Platforms: %s

Propose a weekly strategy with specific goals for each platform.`

// contentPrompt requests content ideas for one platform in the campaign's
// first selected phase.
const contentPrompt = `For %s, generate 3-5 content ideas for the %s phase targeting %s. Focus on:
- Platform-best practices for %s
- Content format recommendations
- Hashtag strategy
- Engagement tactics`

// assetPrompt is the closing prompt requesting concrete copy deliverables.
const assetPrompt = `Create specific copy and content guidelines for:
Product: %s

Include:
- 5 email subject lines
- 3 Instagram carousel concepts
- 2 TikTok script outlines
- Social media post templates`

// GeneratePrompts maps campaign parameters to the ordered prompt script:
// one foundation prompt, one content-creation prompt per selected platform
// in selection order, and one asset-development prompt. The order is a
// contract — downstream execution runs the script sequentially.
func GeneratePrompts(data domain.CampaignData) []domain.PromptRecord {
	product := domain.CoalesceStr(data.ProductName, defaultProduct)
	audience := domain.CoalesceStr(data.TargetAudience, defaultAudience)
	message := domain.CoalesceStr(data.KeyMessage, defaultMessage)
	platforms := domain.StrSliceWithDefault(defaultPlatforms, data.SelectedPlatforms)
	phases := domain.StrSliceWithDefault(defaultPhases, data.CampaignPhases)

	prompts := make([]domain.PromptRecord, 0, len(platforms)+2)

	prompts = append(prompts, domain.PromptRecord{
		Phase:    PromptPhaseFoundation,
		Platform: PlatformAll,
		Text:     fmt.Sprintf(foundationPrompt, product, audience, message, strings.Join(platforms, ", ")),
	})

	for _, platform := range platforms {
		prompts = append(prompts, domain.PromptRecord{
			Phase:    PromptPhaseContent,
			Platform: platform,
			Text:     fmt.Sprintf(contentPrompt, platform, phases[0], audience, platform),
		})
	}

	prompts = append(prompts, domain.PromptRecord{
		Phase:    PromptPhaseAssets,
		Platform: PlatformAll,
		Text:     fmt.Sprintf(assetPrompt, product),
	})

	return prompts
}
