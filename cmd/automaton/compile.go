package main

import (
	"fmt"
	"log/slog"

	"github.com/geange/automaton/v2"
	"github.com/spf13/cobra"
)

const (
	stageNFA = "nfa"
	stageDFA = "dfa"
	stageMin = "min"
)

// compile runs pattern through the pipeline up to the stage selected by --stage.
func compile(cmd *cobra.Command, pattern string) (*automaton.Automaton, error) {
	stage, _ := cmd.Flags().GetString("stage")
	workLimit, _ := cmd.Flags().GetInt("work-limit")

	switch stage {
	case stageNFA, stageDFA, stageMin:
	default:
		return nil, fmt.Errorf("unknown stage %q, want %s, %s or %s", stage, stageNFA, stageDFA, stageMin)
	}

	re, err := automaton.NewRegExp(pattern)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", pattern, err)
	}

	a := re.ToAutomaton()
	logStage(stageNFA, pattern, a)
	if stage == stageNFA {
		return a, nil
	}

	a, err = automaton.Determinize(a, workLimit)
	if err != nil {
		return nil, fmt.Errorf("determinize %q: %w", pattern, err)
	}
	logStage(stageDFA, pattern, a)
	if stage == stageDFA {
		return a, nil
	}

	a, err = automaton.Minimize(a)
	if err != nil {
		return nil, fmt.Errorf("minimize %q: %w", pattern, err)
	}
	logStage(stageMin, pattern, a)
	return a, nil
}

func logStage(stage, pattern string, a *automaton.Automaton) {
	slog.Debug("built automaton",
		"stage", stage,
		"pattern", pattern,
		"states", a.NumStates(),
		"transitions", a.NumTransitions(),
		"deterministic", a.IsDeterministic(),
	)
}
