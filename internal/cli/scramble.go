package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubenav/cubenav"
)

var (
	scrambleMoves int
	scrambleSeed  int64
	scrambleShow  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a scramble sequence",
	Long: `Generate a random scramble sequence and print it in standard notation.

With --show, also render the scrambled cube state and its fingerprint. A
fixed --seed makes the sequence reproducible.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "n", 20, "Number of moves to generate")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Render the scrambled cube state")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleMoves < 1 {
		return fmt.Errorf("--moves must be at least 1")
	}

	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	axes := []cubenav.Axis{cubenav.AxisX, cubenav.AxisY, cubenav.AxisZ}
	moves := make([]cubenav.Move, 0, scrambleMoves)
	var prev cubenav.Move
	for len(moves) < scrambleMoves {
		m := cubenav.Move{
			Axis:  axes[rng.Intn(3)],
			Slice: rng.Intn(3),
			Dir:   1 - 2*rng.Intn(2),
		}
		// Skip a move that just undoes the previous one.
		if len(moves) > 0 && m == prev.Inverse() {
			continue
		}
		moves = append(moves, m)
		prev = m
	}

	fmt.Println(cubenav.FormatMoves(moves))

	if scrambleShow || verbose {
		cube := cubenav.NewCube(cubenav.DefaultConfig())
		cube.ApplyMoves(moves)
		fmt.Println()
		fmt.Println(cube.String())
		fmt.Printf("fingerprint: %x\n", cube.Fingerprint())
	}
	return nil
}
