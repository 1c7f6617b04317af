package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cubenav/cubenav/internal/ui"
)

var demoRotateMs int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the looping auto-shuffle showcase",
	Long: `Run the cube as a self-driving showcase: plain sub-cubes without face
markers, a slow continuous spin, and a random slice turn after each pause.
No input is taken beyond quitting.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntVar(&demoRotateMs, "rotate-ms", 0, "Slice rotation duration in milliseconds (0 = default)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	model := ui.NewModel(ui.Options{
		Demo:             true,
		RotationDuration: time.Duration(demoRotateMs) * time.Millisecond,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo error: %w", err)
	}
	return nil
}
