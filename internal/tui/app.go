package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/content"
)

// Run executes the terminal portfolio until the user quits or ctx is canceled.
func Run(ctx context.Context, p *content.Portfolio) error {
	m := NewModel(p, Options{})
	defer m.Close()

	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	return err
}
