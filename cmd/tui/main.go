package main

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/issuetracker/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

func main() {
	client := tui.NewAPIClientFromEnv()

	// piped or redirected output gets a one-shot plain summary
	if !term.IsTerminal(os.Stdout.Fd()) {
		if err := printSummary(client); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(tui.NewApp(client), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running issue tracker tui: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(client *tui.APIClient) error {
	snapshot, err := client.Snapshot(context.Background())
	if err != nil {
		return err
	}

	out, err := tui.RenderPlain(*snapshot, 80)
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}
