package cmd

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=runner.go -destination=mock_runner_test.go -package=cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramRunner runs a bubbletea model until it quits and returns the
// final model.
type ProgramRunner interface {
	Run(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) (tea.Model, error)
}

// teaRunner runs models on a real terminal. Cancelling ctx kills the
// program.
type teaRunner struct{}

func (teaRunner) Run(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	opts = append(opts, tea.WithContext(ctx))
	return tea.NewProgram(model, opts...).Run()
}
