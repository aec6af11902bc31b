package demo

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/notedeck/notedeck/internal/app"
	"github.com/notedeck/notedeck/internal/keys"
	"github.com/notedeck/notedeck/internal/surface"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// KeyDelay is the delay after key presses (default: 400ms)
	KeyDelay time.Duration

	// ClickDelay is the delay after clicks (default: 600ms)
	ClickDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false,
		KeyDelay:         400 * time.Millisecond,
		ClickDelay:       600 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame
	copies int

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Model returns the model driven by the last Run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	e.setup(scenario)
	defer e.model.Close()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup builds the model. Locator entries are served from Setup.Pages.
func (e *Executor) setup(scenario *Scenario) {
	pages := scenario.Setup.Pages
	loader := surface.LoaderFunc(func(ctx context.Context, locator string) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, ok := pages[locator]
		if !ok {
			return nil, fmt.Errorf("demo has no page for %s", locator)
		}
		return []byte(body), nil
	})

	e.model = app.New(app.Options{
		Title:      "notedeck",
		Theme:      scenario.Setup.Theme,
		Version:    "demo",
		Collection: scenario.Setup.Collection,
		InitialID:  scenario.Setup.Initial,
		Policy:     scenario.Setup.Policy,
		Loader:     loader,
		CopyText:   func(string) error { e.copies++; return nil },
	})

	e.model.Init()
	e.send(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		if step.Key == "q" || step.Key == keys.CtrlC {
			return fmt.Errorf("quit keys end the model and cannot be scripted")
		}
		e.send(keyPress(step.Key))
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepClickTrigger:
		r := e.model.TriggerRect()
		e.click(index, r.X, r.Y)

	case StepClickItem:
		r := e.model.MenuRect()
		if r.Empty() {
			return fmt.Errorf("menu is not open")
		}
		e.click(index, r.X+2, r.Y+1+step.Item)

	case StepClickAt:
		e.click(index, step.X, step.Y)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)
	}

	return nil
}

func (e *Executor) click(index, x, y int) {
	e.send(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	if e.config.CaptureEveryStep {
		e.captureFrame(index, e.config.ClickDelay)
	}
}

// send delivers msg and settles the surface it leaves behind. The model's
// commands are never invoked: they hold timers, clipboard writes and
// notifications that have no place in a recording.
func (e *Executor) send(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
	e.settle()
}

// settle loads the current surface synchronously while it is loading.
func (e *Executor) settle() {
	s := e.model.Viewer().Current()
	if s == nil || s.Status() != surface.StatusLoading {
		return
	}
	load := s.Init()
	if load == nil {
		return
	}
	result, _ := e.model.Update(load())
	e.model = result.(*app.Model)
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// keyPress converts a key string to a tea.KeyPressMsg.
// Duplicated from the app tests to avoid an import cycle.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
