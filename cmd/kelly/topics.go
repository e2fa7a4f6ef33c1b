package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/kelly/internal/library"
	"github.com/dshills/kelly/internal/persona"
	"github.com/dshills/kelly/internal/topic"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [question...]",
		Short: "Print the topic a question is classified under",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), topic.Classify(strings.Join(args, " ")))
			return err
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [TOPIC]",
		Short: "List topics in tie-break order, or print one topic's template poem",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				t, err := topic.Parse(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, library.Template(t))
				return err
			}
			for _, t := range topic.All() {
				kw := topic.Keywords(t)
				if len(kw) == 0 {
					if _, err := fmt.Fprintf(out, "%-14s (fallback)\n", t); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(out, "%-14s %s\n", t, strings.Join(kw, ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newPersonasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List the voices available to the remote poet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range persona.Names() {
				p, err := persona.Load(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", p.Name, p.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
