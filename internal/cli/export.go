package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubenav/cubenav"
	"github.com/cubenav/cubenav/internal/export"
)

var (
	exportOutput   string
	exportScramble string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the cube as a binary glTF model",
	Long: `Export the cube's geometry as a binary glTF (.glb) file, one colored box
per sub-cube, suitable for inspection in any glTF viewer.

By default the solved cube is exported; --apply takes a move sequence in
standard notation and exports the resulting state instead.

Examples:
  cubenav export -o cube.glb
  cubenav export --apply "R U R' U'" -o sexy.glb`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "cube.glb", "Output file")
	exportCmd.Flags().StringVar(&exportScramble, "apply", "", "Move sequence to apply before exporting")
}

func runExport(cmd *cobra.Command, args []string) error {
	cube := cubenav.NewCube(cubenav.DefaultConfig())

	if exportScramble != "" {
		moves, err := cubenav.ParseMoves(exportScramble)
		if err != nil {
			return err
		}
		if len(moves) == 0 {
			return fmt.Errorf("no valid moves in %q", exportScramble)
		}
		cube.ApplyMoves(moves)
		if verbose {
			fmt.Printf("Applied: %s\n", cubenav.FormatMoves(moves))
		}
	}

	if err := export.Save(cube, exportOutput); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	fmt.Printf("Exported %s\n", exportOutput)
	return nil
}
