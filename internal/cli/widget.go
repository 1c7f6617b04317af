package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cubenav/cubenav/internal/recorder"
	"github.com/cubenav/cubenav/internal/ui"
)

var (
	widgetRecord   bool
	widgetNoIntro  bool
	widgetIntroMs  int
	widgetRotateMs int
)

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Run the interactive cube navigation widget",
	Long: `Run the interactive cube navigation widget in the terminal.

Keys 1-6 select a section face: the matching slice turns, the cube
reorients, and the section's visual preset applies. Selecting the displayed
face again (within the double-activation window) opens its content overlay.
Arrow keys spin the whole cube.

With --record, every performed move, face selection and solved event is
written to the session database and a compressed session log.`,
	RunE: runWidget,
}

func init() {
	rootCmd.AddCommand(widgetCmd)
	widgetCmd.Flags().BoolVarP(&widgetRecord, "record", "r", false, "Record the session to the database and a log file")
	widgetCmd.Flags().BoolVar(&widgetNoIntro, "no-intro", false, "Skip the intro animation")
	widgetCmd.Flags().IntVar(&widgetIntroMs, "intro-ms", 2000, "Intro animation duration in milliseconds")
	widgetCmd.Flags().IntVar(&widgetRotateMs, "rotate-ms", 0, "Slice rotation duration in milliseconds (0 = default)")
}

func runWidget(cmd *cobra.Command, args []string) error {
	opts := ui.Options{
		Intro:            !widgetNoIntro,
		IntroDuration:    time.Duration(widgetIntroMs) * time.Millisecond,
		RotationDuration: time.Duration(widgetRotateMs) * time.Millisecond,
	}

	var session *recorder.Session
	if widgetRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		logDir, err := defaultLogDir()
		if err != nil {
			return err
		}
		logger, err := recorder.StartLogger(logDir)
		if err != nil {
			return fmt.Errorf("failed to start session log: %w", err)
		}
		defer logger.Close()

		session = recorder.NewSession(db, logger)
		if err := session.Start(version); err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
		opts.Session = session

		if verbose {
			fmt.Printf("Recording session %s to %s\n", session.ID(), logger.Path())
		}
	}

	model := ui.NewModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("widget error: %w", err)
	}

	if session != nil {
		if err := session.End(model.Cube()); err != nil {
			return fmt.Errorf("failed to end session: %w", err)
		}
	}
	return nil
}
