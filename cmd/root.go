package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/claudebuildsapps/matrixmux/internal/mux"
)

var rootCmd = &cobra.Command{
	Use:   "matrixmux",
	Short: "A terminal multiplexer with a tiling pane layout",
	Long:  `matrixmux tiles PTY-backed panes across the host terminal, with directional focus navigation, layout presets, and a command-mode interpreter.`,
	RunE:  runMultiplexer,
}

// Execute runs the root command and returns its exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runMultiplexer(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// HostSetupError (spec.md §7): raw-mode entry failed at startup,
		// fatal, propagated to the process exit code.
		return fmt.Errorf("host setup: entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	app := mux.NewApp()
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running multiplexer: %w", err)
	}
	return nil
}
