// Package controller implements the interactive menu loop as an explicit
// state machine over a ui.Terminal. Quit and interrupt signals raised by the
// input primitives unwind every nested flow and are handled once in Run.
package controller

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tamrielworks/buildrand/internal/builds"
	"github.com/tamrielworks/buildrand/internal/catalog"
	apperrors "github.com/tamrielworks/buildrand/internal/errors"
	"github.com/tamrielworks/buildrand/internal/ui"
)

// State identifies where the session currently is
type State int

const (
	StateMainMenu State = iota
	StateRandomBuild
	StateClassSelect
	StateBatch
	StateTerminated
)

const defaultBatchCount = 5

// Config holds the controller dependencies
type Config struct {
	Service   builds.Service
	Presenter ui.Presenter
	Terminal  ui.Terminal
}

// Controller drives the interactive session
type Controller struct {
	svc       builds.Service
	presenter ui.Presenter
	term      ui.Terminal
	state     State
}

// New creates a new interactive controller
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, apperrors.InvalidArgument("config is required")
	}
	if cfg.Service == nil {
		return nil, apperrors.InvalidArgument("build service is required")
	}
	if cfg.Presenter == nil {
		return nil, apperrors.InvalidArgument("presenter is required")
	}
	if cfg.Terminal == nil {
		return nil, apperrors.InvalidArgument("terminal is required")
	}

	return &Controller{
		svc:       cfg.Service,
		presenter: cfg.Presenter,
		term:      cfg.Terminal,
		state:     StateMainMenu,
	}, nil
}

// State returns the current session state
func (c *Controller) State() State {
	return c.state
}

// Run drives the menu loop until the session ends. It returns ui.ErrQuit or
// ui.ErrInterrupt for user-initiated termination so the caller can choose
// the farewell; other errors are reported and the menu resumes.
func (c *Controller) Run() error {
	c.term.Clear()

	for {
		err := c.mainMenu()
		if errors.Is(err, ui.ErrQuit) || errors.Is(err, ui.ErrInterrupt) {
			c.state = StateTerminated
			return err
		}
		if err != nil {
			fmt.Fprintf(c.term.Writer(), "An error occurred: %v\n\n", err)
		}
	}
}

func (c *Controller) mainMenu() error {
	c.state = StateMainMenu
	w := c.term.Writer()

	fmt.Fprintln(w, "ESO Build Randomizer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  1  Generate random build (any class)")
	fmt.Fprintln(w, "  2  Generate build for specific class")
	fmt.Fprintln(w, "  3  Generate multiple builds")
	fmt.Fprintln(w, "  Q  Quit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Choose an option...")

	key, err := c.term.ReadKey()
	if err != nil {
		return err
	}

	switch key {
	case '1':
		return c.randomBuildFlow()
	case '2':
		return c.classSelectFlow()
	case '3':
		return c.batchFlow()
	default:
		fmt.Fprintln(w, "Sorry, that's not a valid option. Try 1, 2, 3, or Q.")
		fmt.Fprintln(w)
		return nil
	}
}

// randomBuildFlow generates unpinned builds; every retry re-randomizes the
// class
func (c *Controller) randomBuildFlow() error {
	c.state = StateRandomBuild
	return c.buildLoop(nil)
}

// classSelectFlow pins the chosen class through all retries
func (c *Controller) classSelectFlow() error {
	c.state = StateClassSelect
	c.term.Clear()
	w := c.term.Writer()

	for {
		fmt.Fprintln(w, "Choose Your Class")
		fmt.Fprintln(w)
		for i, class := range catalog.ClassNames() {
			fmt.Fprintf(w, "  %d  %s\n", i+1, class)
		}
		fmt.Fprintln(w, "  Q  Quit")
		fmt.Fprintln(w)

		key, err := c.term.ReadKey()
		if err != nil {
			return err
		}

		classes := catalog.ClassNames()
		idx := int(key - '1')
		if idx < 0 || idx >= len(classes) {
			fmt.Fprintln(w, "Sorry, that's not a valid class number. Please try again!")
			fmt.Fprintln(w)
			continue
		}

		return c.buildLoop(&builds.GenerateInput{BaseClass: classes[idx]})
	}
}

// buildLoop generates and renders one build at a time until the user stops
// retrying. A nil input keeps every retry fully random; a pinned input keeps
// the class fixed.
func (c *Controller) buildLoop(input *builds.GenerateInput) error {
	for {
		c.term.Clear()

		build, err := c.svc.Generate(input)
		if err != nil {
			return err
		}
		c.presenter.Render(build)

		again, err := c.askRetry(input)
		if err != nil {
			return err
		}
		if !again {
			c.term.Clear()
			return nil
		}
	}
}

func (c *Controller) askRetry(input *builds.GenerateInput) (bool, error) {
	w := c.term.Writer()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "What's next?")
	if input != nil && input.BaseClass != "" {
		fmt.Fprintf(w, "  1  Generate another %s build\n", input.BaseClass)
	} else {
		fmt.Fprintln(w, "  1  Generate another random build")
	}
	fmt.Fprintln(w, "  2  Start over (back to main menu)")
	fmt.Fprintln(w, "  Q  Quit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Press 1, 2, or Q...")

	key, err := c.term.ReadKey()
	if err != nil {
		return false, err
	}

	switch key {
	case '1':
		return true, nil
	case '2':
		return false, nil
	default:
		fmt.Fprintln(w, "Sorry, that's not a valid option. Please try again.")
		return false, nil
	}
}

// batchFlow prompts for a count and an optional replacement-line count, then
// renders the whole batch at once
func (c *Controller) batchFlow() error {
	c.state = StateBatch
	c.term.Clear()
	w := c.term.Writer()

	for {
		fmt.Fprintln(w, "Multiple Build Generator")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Configure your batch generation settings.")
		fmt.Fprintln(w, "Press Q at any prompt to quit.")
		fmt.Fprintln(w)

		countStr, err := c.term.ReadLine("How many builds to generate?", strconv.Itoa(defaultBatchCount))
		if err != nil {
			return err
		}
		count, err := parsePromptInt(countStr)
		if err != nil {
			fmt.Fprintln(w, "Please enter a valid number.")
			fmt.Fprintln(w)
			continue
		}

		linesStr, err := c.term.ReadLine("How many skill lines to replace? (1, 2, or blank for random)", "")
		if err != nil {
			return err
		}
		numLines := 0
		if linesStr != "" {
			numLines, err = parsePromptInt(linesStr)
			if err != nil {
				fmt.Fprintln(w, "Please enter a valid number.")
				fmt.Fprintln(w)
				continue
			}
		}

		batch, err := c.svc.GenerateBatch(count, &builds.GenerateInput{NumLines: numLines})
		if err != nil {
			fmt.Fprintf(w, "%v\n\n", err)
			continue
		}

		c.term.Clear()
		c.presenter.RenderBatch(batch, fmt.Sprintf("%d Random ESO Builds", count))

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Press any key to continue...")
		if _, err := c.term.ReadKey(); err != nil {
			return err
		}

		c.term.Clear()
		return nil
	}
}

func parsePromptInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.Validationf("not a number: %q", s)
	}
	return v, nil
}
