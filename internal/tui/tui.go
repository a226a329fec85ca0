package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/nightslot/internal/scheduler"
)

// Run starts the full-screen planner and blocks until the user quits
func Run(sched *scheduler.Scheduler) error {
	p := tea.NewProgram(NewModel(sched), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
