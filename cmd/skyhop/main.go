// skyhop is a side-scrolling obstacle game for the terminal.
//
// Usage:
//
//	skyhop play              - Play the game
//	skyhop scores            - Show the best runs
//	skyhop serve             - Start SSH server for remote play
//	skyhop config            - Print or validate game configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyhop/scores.db)
//	--debug         - Log debug messages
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Skyhop - hop through the gaps in your terminal",
	Long: `Skyhop is a side-scrolling obstacle game played in the terminal.
Steer left and right, jump through the gaps, and score a point for every
obstacle you pass.

Available commands:
  play     - Play the game
  scores   - View the best runs
  serve    - Start SSH server for remote play
  config   - Print or validate the game configuration

Examples:
  skyhop play
  skyhop play --seed 42 --config ./easy.yaml
  skyhop scores --limit 20
  skyhop serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens ~/.skyhop/skyhop.log for appending.
// The alternate screen owns the terminal, so the game never logs to stderr.
// Logging is disabled when the file cannot be opened.
func openLogFile() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "skyhop"), func() {}
	}
	dir := filepath.Join(home, ".skyhop")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "skyhop"), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "skyhop.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, "skyhop"), func() {}
	}
	return newLogger(f, "skyhop"), func() { f.Close() }
}
