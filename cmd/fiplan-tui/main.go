package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fiplan/fiplan/internal/tui"
)

func main() {
	// Get plan file path from arguments
	planPath := ""
	if len(os.Args) > 1 {
		planPath = os.Args[1]
	} else {
		fmt.Println("Usage: fiplan-tui <plan-file>")
		os.Exit(1)
	}

	// Check if plan file exists
	if _, err := os.Stat(planPath); os.IsNotExist(err) {
		fmt.Printf("Error: Plan file not found: %s\n", planPath)
		os.Exit(1)
	}

	// Create the application model
	model := tui.NewModel(planPath)

	// Create the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
