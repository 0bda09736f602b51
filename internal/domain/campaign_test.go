package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetSelectedPlatforms_Dedupes(t *testing.T) {
	var d CampaignData
	d.SetSelectedPlatforms([]string{PlatformTikTok, PlatformInstagram, PlatformTikTok})
	assert.Equal(t, []string{PlatformTikTok, PlatformInstagram}, d.SelectedPlatforms,
		"selection order preserved, duplicates dropped")
}

func TestSetCampaignPhases_Dedupes(t *testing.T) {
	var d CampaignData
	d.SetCampaignPhases([]string{PhaseConversion, PhaseAwareness, PhaseConversion})
	assert.Equal(t, []string{PhaseConversion, PhaseAwareness}, d.CampaignPhases)
}

func TestSetPlatformGoal_InitializesMap(t *testing.T) {
	var d CampaignData
	d.SetPlatformGoal(PlatformEmail, "grow the list")
	assert.Equal(t, "grow the list", d.PlatformGoals[PlatformEmail])
}

func TestSetPhaseNote_InitializesMap(t *testing.T) {
	var d CampaignData
	d.SetPhaseNote(PhaseRetention, "monthly newsletter")
	assert.Equal(t, "monthly newsletter", d.PhaseNotes[PhaseRetention])
}
