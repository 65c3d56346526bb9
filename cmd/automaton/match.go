package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"

	"github.com/geange/automaton/v2"
	"github.com/spf13/cobra"
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <regexp> [input...]",
	Short: "Report whether each input is accepted",
	Long: `Compiles the expression and prints "accept" or "reject" for every input.
Inputs are read one per line from standard input when none are given.
Inputs containing symbols outside the expression's alphabet are rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := compile(cmd, args[0])
		if err != nil {
			return err
		}

		accepts := matcher(a)
		report := func(input string) error {
			ok, err := accepts(input)
			if err != nil {
				return err
			}
			verdict := "reject"
			if ok {
				verdict = "accept"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", verdict, input)
			return err
		}

		if len(args) > 1 {
			for _, input := range args[1:] {
				if err := report(input); err != nil {
					return err
				}
			}
			return nil
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if err := report(scanner.Text()); err != nil {
				return err
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

// matcher uses a run table for deterministic automata and the set-of-states
// evaluator otherwise.
func matcher(a *automaton.Automaton) func(string) (bool, error) {
	if a.IsDeterministic() {
		r, err := automaton.NewRunAutomaton(a)
		if err == nil {
			return func(s string) (bool, error) {
				return r.Run(s), nil
			}
		}
	}

	return func(s string) (bool, error) {
		ok, err := automaton.Run(a, s)
		if errors.Is(err, automaton.ErrUnrecognizedSymbol) {
			slog.Debug("input outside alphabet", "input", s, "error", err)
			return false, nil
		}
		return ok, err
	}
}
