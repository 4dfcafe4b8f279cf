package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cienicera/midi-fun-contract/config"
	"github.com/cienicera/midi-fun-contract/debug"
	"github.com/cienicera/midi-fun-contract/theme"
	"github.com/cienicera/midi-fun-contract/tui"
)

func main() {
	if os.Getenv("MIDIFUN_DEBUG") != "" {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	m := tui.NewModel(cfg, theme.New())
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
