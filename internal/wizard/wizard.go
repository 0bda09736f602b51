// Package wizard implements the campaign builder's step state machine:
// a single-session CampaignState and the Controller that is the only way
// its current step changes.
package wizard

import (
	"errors"
	"time"

	"github.com/alexanderramin/campaignforge/internal/domain"
	"github.com/google/uuid"
)

// ErrInvalidStep is returned by GoTo when the target is not one of the five
// defined wizard steps. It is never clamped away: an out-of-range jump is an
// integration bug the caller should surface.
var ErrInvalidStep = errors.New("invalid wizard step")

// State is the mutable record one session of the wizard reads and writes.
// It is owned exclusively by that session; there are no concurrent writers.
type State struct {
	ID        string
	CreatedAt time.Time

	Step    domain.Step
	Data    domain.CampaignData
	Prompts []domain.PromptRecord
}

// NewState creates an empty session state positioned at the first step.
func NewState() *State {
	return &State{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Step:      domain.StepFoundation,
	}
}

// GenerateFunc derives the prompt sequence from collected campaign data.
type GenerateFunc func(domain.CampaignData) []domain.PromptRecord

// Controller enforces that the current step only changes through defined
// actions. The wizard is a linear chain of five steps with mirrored
// backward edges and a reset edge from every step.
type Controller struct {
	state    *State
	generate GenerateFunc
}

// NewController creates a controller over a fresh empty State.
// generate is invoked on entry to the prompt generation step.
func NewController(generate GenerateFunc) *Controller {
	return &Controller{
		state:    NewState(),
		generate: generate,
	}
}

// State returns the session state the controller owns.
func (c *Controller) State() *State {
	return c.state
}

// Advance moves forward one step, staying put at the final step.
// Collected data is never discarded by a step change.
func (c *Controller) Advance() {
	if c.state.Step < domain.StepFinalPlan {
		c.state.Step++
	}
	c.EnsurePrompts()
}

// Retreat moves back one step, staying put at the first step. Landing on
// the prompt generation step triggers generation like any other entry.
func (c *Controller) Retreat() {
	if c.state.Step > domain.StepFoundation {
		c.state.Step--
	}
	c.EnsurePrompts()
}

// GoTo jumps directly to any defined step, supporting sidebar-style
// navigation. Revisiting an earlier step never loses later-step data.
func (c *Controller) GoTo(step domain.Step) error {
	if !step.Valid() {
		return ErrInvalidStep
	}
	c.state.Step = step
	c.EnsurePrompts()
	return nil
}

// Reset replaces the entire session state with a fresh empty instance.
// This is the only abort path and is atomic from the caller's perspective.
func (c *Controller) Reset() {
	c.state = NewState()
}

// EnsurePrompts generates the prompt sequence when the wizard sits on the
// prompt generation step and no prompts exist yet. Re-entering the step
// after prompts exist is a no-op, so a session generates exactly once
// unless reset.
func (c *Controller) EnsurePrompts() {
	if c.state.Step != domain.StepPromptGeneration {
		return
	}
	if len(c.state.Prompts) > 0 || c.generate == nil {
		return
	}
	c.state.Prompts = c.generate(c.state.Data)
}
