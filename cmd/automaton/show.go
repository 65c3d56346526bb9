package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <regexp>",
	Short: "Print the automaton built from an expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := compile(cmd, args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), a.String())
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
