package wizard

import (
	"testing"

	"github.com/alexanderramin/campaignforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerate returns one record per call so tests can count invocations.
func stubGenerate(calls *int) GenerateFunc {
	return func(data domain.CampaignData) []domain.PromptRecord {
		*calls++
		return []domain.PromptRecord{
			{Phase: "Foundation", Platform: "All", Text: "prompt"},
		}
	}
}

func TestNewController_StartsEmpty(t *testing.T) {
	c := NewController(nil)
	state := c.State()
	assert.Equal(t, domain.StepFoundation, state.Step)
	assert.Empty(t, state.Prompts)
	assert.Equal(t, domain.CampaignData{}, state.Data)
	assert.NotEmpty(t, state.ID)
}

func TestAdvance_ClampsAtFinalPlan(t *testing.T) {
	c := NewController(nil)
	for i := 0; i < 10; i++ {
		c.Advance()
	}
	assert.Equal(t, domain.StepFinalPlan, c.State().Step)
}

func TestRetreat_ClampsAtFoundation(t *testing.T) {
	c := NewController(nil)
	c.Retreat()
	assert.Equal(t, domain.StepFoundation, c.State().Step)

	c.Advance()
	c.Retreat()
	c.Retreat()
	assert.Equal(t, domain.StepFoundation, c.State().Step)
}

func TestAdvance_KeepsCollectedData(t *testing.T) {
	c := NewController(nil)
	c.State().Data.ProductName = "EcoVibe"
	c.Advance()
	c.Retreat()
	assert.Equal(t, "EcoVibe", c.State().Data.ProductName)
}

func TestGoTo_ValidSteps(t *testing.T) {
	c := NewController(nil)
	for _, step := range domain.Steps() {
		require.NoError(t, c.GoTo(step))
		assert.Equal(t, step, c.State().Step)
	}
}

func TestGoTo_InvalidStep(t *testing.T) {
	c := NewController(nil)
	c.Advance()

	err := c.GoTo(domain.Step(7))
	assert.ErrorIs(t, err, ErrInvalidStep)
	assert.Equal(t, domain.StepPlatformSelection, c.State().Step, "step must not be clamped")

	err = c.GoTo(domain.Step(-1))
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestGoTo_RevisitingKeepsLaterData(t *testing.T) {
	calls := 0
	c := NewController(stubGenerate(&calls))
	c.State().Data.ProductName = "EcoVibe"
	require.NoError(t, c.GoTo(domain.StepPromptGeneration))
	require.Len(t, c.State().Prompts, 1)

	require.NoError(t, c.GoTo(domain.StepFoundation))
	assert.Len(t, c.State().Prompts, 1, "jumping back must not discard prompts")
	assert.Equal(t, "EcoVibe", c.State().Data.ProductName)
}

func TestReset_ReplacesStateWholesale(t *testing.T) {
	calls := 0
	c := NewController(stubGenerate(&calls))
	c.State().Data.ProductName = "EcoVibe"
	oldID := c.State().ID
	require.NoError(t, c.GoTo(domain.StepFinalPlan))

	c.Reset()

	state := c.State()
	assert.Equal(t, domain.StepFoundation, state.Step)
	assert.Equal(t, domain.CampaignData{}, state.Data)
	assert.Empty(t, state.Prompts)
	assert.NotEqual(t, oldID, state.ID, "reset yields a fresh session")
}

func TestEnsurePrompts_GeneratesOncePerSession(t *testing.T) {
	calls := 0
	c := NewController(stubGenerate(&calls))

	c.Advance() // PlatformSelection
	c.Advance() // ContentStrategy
	assert.Equal(t, 0, calls, "no generation before the prompt step")

	c.Advance() // PromptGeneration
	assert.Equal(t, 1, calls)
	first := c.State().Prompts

	// Leaving and re-entering must not regenerate.
	c.Retreat()
	c.Advance()
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, c.State().Prompts)

	require.NoError(t, c.GoTo(domain.StepPromptGeneration))
	assert.Equal(t, 1, calls)
}

func TestEnsurePrompts_GeneratesOnBackwardEntry(t *testing.T) {
	calls := 0
	c := NewController(stubGenerate(&calls))

	// Jump past the prompt step, then step back onto it.
	require.NoError(t, c.GoTo(domain.StepFinalPlan))
	assert.Equal(t, 0, calls)

	c.Retreat()
	assert.Equal(t, domain.StepPromptGeneration, c.State().Step)
	assert.Equal(t, 1, calls, "backward entry generates like any other")
	assert.NotEmpty(t, c.State().Prompts)
}

func TestEnsurePrompts_RegeneratesAfterReset(t *testing.T) {
	calls := 0
	c := NewController(stubGenerate(&calls))
	require.NoError(t, c.GoTo(domain.StepPromptGeneration))
	assert.Equal(t, 1, calls)

	c.Reset()
	require.NoError(t, c.GoTo(domain.StepPromptGeneration))
	assert.Equal(t, 2, calls, "a fresh session generates again")
}

func TestEnsurePrompts_NilGenerator(t *testing.T) {
	c := NewController(nil)
	require.NoError(t, c.GoTo(domain.StepPromptGeneration))
	assert.Empty(t, c.State().Prompts)
}
