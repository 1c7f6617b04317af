package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubenav/cubenav/internal/recorder"
)

var replayCmd = &cobra.Command{
	Use:   "replay [log-file]",
	Short: "Verify a recorded session log",
	Long: `Replay a recorded session log against a fresh cube and verify the state
fingerprint after every move. A mismatch means the log and the rotation
model have diverged.

If no log file is specified, lists available log files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	logDir, err := defaultLogDir()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return listLogs(logDir)
	}

	logPath := args[0]
	if !filepath.IsAbs(logPath) {
		if _, err := os.Stat(logPath); os.IsNotExist(err) {
			logPath = filepath.Join(logDir, logPath)
		}
	}

	log, err := recorder.LoadLog(logPath)
	if err != nil {
		return fmt.Errorf("failed to load log: %w", err)
	}

	fmt.Printf("Loaded log: %s\n", logPath)
	fmt.Printf("Created:    %s\n", log.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Events:     %d\n", len(log.Events))

	if verbose {
		for _, ev := range log.Events {
			switch ev.Type {
			case recorder.EventMove:
				fmt.Printf("  %6dms  move  %s\n", ev.ElapsedMs, ev.Notation)
			case recorder.EventFace:
				fmt.Printf("  %6dms  face  %d\n", ev.ElapsedMs, ev.Face)
			case recorder.EventSolved:
				fmt.Printf("  %6dms  solved\n", ev.ElapsedMs)
			}
		}
	}

	verified, err := recorder.VerifyLog(log)
	if err != nil {
		return fmt.Errorf("verification failed after %d moves: %w", verified, err)
	}
	fmt.Printf("Verified:   %d moves, all fingerprints match\n", verified)
	return nil
}

func listLogs(logDir string) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No log files found. Record a session first with: cubenav widget --record")
			return nil
		}
		return err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl.zst") {
			logs = append(logs, e.Name())
		}
	}
	if len(logs) == 0 {
		fmt.Println("No log files found. Record a session first with: cubenav widget --record")
		return nil
	}

	// Names start with a timestamp, so sorting puts the newest last.
	sort.Strings(logs)

	fmt.Println("Available log files:")
	fmt.Println()
	for _, log := range logs {
		fmt.Printf("  %s\n", log)
	}
	fmt.Println()
	fmt.Println("Usage: cubenav replay <filename>")
	return nil
}
