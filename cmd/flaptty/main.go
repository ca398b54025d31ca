// flaptty is a side-scrolling reflex game for the terminal.
//
// Usage:
//
//	flaptty play             - Play in the current terminal
//	flaptty serve            - Start SSH server for remote play
//	flaptty version          - Print the build version
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flaptty",
	Short: "flaptty - Flap through pipes in your terminal",
	Long: `flaptty is a terminal game: hold altitude against gravity and
slip through the gaps in an endless stream of pipes.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  version  - Print the build version

Examples:
  flaptty play
  flaptty play --seed 42
  flaptty serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
