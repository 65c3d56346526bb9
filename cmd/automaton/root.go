package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automaton",
	Short: "Build, determinize and minimize finite automata from regular expressions",
	Long: `automaton compiles a regular expression into an NFA with the Thompson
construction, turns it into a DFA with the subset construction and minimizes
it with Moore's partition refinement.

Syntax: union 'a|b', concatenation 'ab', star 'a*', plus 'a+', optional 'a?',
grouping '(...)', the empty string '()', the empty language '#', character
classes '[a-z]' and '\' to escape a reserved character.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("stage", "min", "Automaton to use: nfa, dfa or min")
	rootCmd.PersistentFlags().Int("work-limit", 10000, "Maximum number of DFA states to create (0 for no limit)")
}

func setupLogger(cmd *cobra.Command, args []string) error {
	levelName, _ := cmd.Flags().GetString("log-level")

	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts)))
	return nil
}
