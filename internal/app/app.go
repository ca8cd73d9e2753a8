package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/kls/internal/command"
	"github.com/atomicstack/kls/internal/kube"
	"github.com/atomicstack/kls/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	KubectlPath     string
	RefreshInterval time.Duration
	BindingsPath    string
	Mouse           bool
	Verbose         bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	bindings, err := command.Load(cfg.BindingsPath)
	if err != nil {
		return fmt.Errorf("load bindings: %w", err)
	}
	client := kube.NewClient(cfg.KubectlPath)
	model := ui.NewModel(client, bindings, cfg.RefreshInterval, cfg.Verbose)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
