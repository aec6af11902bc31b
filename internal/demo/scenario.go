// Package demo provides infrastructure for generating demos of notedeck.
// Scenarios drive the real app model with scripted input and capture the
// rendered frames, so recordings are deterministic and need no terminal.
package demo

import (
	"strconv"
	"time"

	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/sandbox"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepClickTrigger clicks the header menu trigger.
	StepClickTrigger
	// StepClickItem clicks a row of the open menu.
	StepClickItem
	// StepClickAt clicks an absolute cell.
	StepClickAt
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepClickItem
	Item int

	// For StepClickAt
	X, Y int

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 100)
	Height      int // Terminal height (default 30)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Collection to show; nil means the built-in pages
	Collection *document.Collection

	// Pages served to locator entries, keyed by locator
	Pages map[string]string

	Initial string
	Theme   string
	Policy  sandbox.Policy
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Collection: document.Builtin(),
		Policy:     sandbox.Strict(),
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 100
	}
	if s.Height <= 0 {
		s.Height = 30
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.Collection == nil {
		s.Setup.Collection = document.Builtin()
	}
	for i, step := range s.Steps {
		if step.Type == StepClickItem && (step.Item < 0 || step.Item >= s.Setup.Collection.Len()) {
			return &ValidationError{Field: "Steps", Message: "menu item out of range in step " + strconv.Itoa(i)}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// ClickTrigger creates a click on the menu trigger.
func ClickTrigger() Step {
	return Step{Type: StepClickTrigger}
}

// ClickItem creates a click on row i of the open menu.
func ClickItem(i int) Step {
	return Step{Type: StepClickItem, Item: i}
}

// ClickAt creates a click at an absolute cell.
func ClickAt(x, y int) Step {
	return Step{Type: StepClickAt, X: x, Y: y}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
