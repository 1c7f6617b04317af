package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubenav/cubenav/internal/storage"
)

var (
	historyLimit int
	historyMoves bool
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "List recorded sessions",
	Long: `List recorded widget sessions, newest first.

With a session ID argument, show that session's details; add --moves to
print its full move sequence.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of sessions to list")
	historyCmd.Flags().BoolVar(&historyMoves, "moves", false, "Print the move sequence (with a session ID)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if len(args) == 1 {
		return showSession(db, args[0])
	}

	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions found. Record one with: cubenav widget --record")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %8s  %6s  %s\n", "SESSION", "STARTED", "DURATION", "MOVES", "SOLVED")
	for _, s := range sessions {
		duration := "-"
		if s.DurationMs != nil {
			duration = formatDurationMs(*s.DurationMs)
		}
		solved := ""
		if s.Solved {
			solved = "yes"
		}
		fmt.Printf("%-36s  %-20s  %8s  %6d  %s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration,
			s.MoveCount,
			solved,
		)
	}
	return nil
}

func showSession(db *storage.DB, sessionID string) error {
	s, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return err
	}
	moves, err := storage.NewMoveRepository(db).ListBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	fmt.Printf("Session: %s\n", s.SessionID)
	fmt.Printf("Started: %s\n", s.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if s.DurationMs != nil {
		fmt.Printf("Length:  %s\n", formatDurationMs(*s.DurationMs))
	}
	fmt.Printf("Moves:   %d\n", len(moves))
	if s.Solved {
		fmt.Println("Solved:  yes")
	}

	if len(moves) > 0 && (historyMoves || verbose) {
		notations := make([]string, len(moves))
		for i, m := range moves {
			notations[i] = m.Notation
		}
		fmt.Println()
		fmt.Println(strings.Join(notations, " "))
	}
	return nil
}

func formatDurationMs(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}
