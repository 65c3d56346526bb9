package main

import (
	"fmt"

	"github.com/geange/automaton/v2"
	"github.com/spf13/cobra"
)

// equivCmd represents the equiv command
var equivCmd = &cobra.Command{
	Use:   "equiv <regexp> <regexp>",
	Short: "Check whether two expressions denote the same language",
	Long: `Check whether two expressions denote the same language.

Both expressions are determinized, bounded by --work-limit, and minimized
before they are compared, so --stage does not apply.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		workLimit, _ := cmd.Flags().GetInt("work-limit")

		automata := make([]*automaton.Automaton, len(args))
		for i, pattern := range args {
			re, err := automaton.NewRegExp(pattern)
			if err != nil {
				return fmt.Errorf("parse %q: %w", pattern, err)
			}
			automata[i] = re.ToAutomaton()
		}

		ok, err := automaton.Equivalent(automata[0], automata[1], workLimit)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "not equivalent")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(equivCmd)
}
