package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/kelly/internal/render"
	"github.com/dshills/kelly/internal/schema"
	"github.com/dshills/kelly/internal/scientist"
)

func newBatchCmd(a *app) *cobra.Command {
	f := &poemFlags{}
	var workers int
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Answer one question per line of FILE (- for stdin)",
		Long: `batch reads questions one per line and answers them concurrently.
Blank lines and lines starting with # are skipped. Answers are written in
input order; JSON output is a single array.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, format, err := f.build(cmd, a)
			if err != nil {
				return err
			}
			questions, err := readQuestions(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			answers, err := s.Batch(cmd.Context(), questions, f.suggest, workers)
			if err != nil {
				return err
			}
			return writeBatch(cmd.OutOrStdout(), answers, format)
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().IntVarP(&workers, "workers", "w", scientist.DefaultWorkers, "maximum concurrent answers")
	return cmd
}

func readQuestions(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening questions: %w", err)
		}
		defer file.Close()
		r = file
	}

	var questions []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		questions = append(questions, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading questions: %w", err)
	}
	return questions, nil
}

func writeBatch(w io.Writer, answers []schema.Answer, format render.Format) error {
	if format == render.FormatJSON {
		if answers == nil {
			answers = []schema.Answer{}
		}
		b, err := json.MarshalIndent(answers, "", "  ")
		if err != nil {
			return fmt.Errorf("render: json marshal: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}

	for i := range answers {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s\n", answers[i].Question); err != nil {
			return err
		}
		if err := render.Write(w, &answers[i], format); err != nil {
			return err
		}
	}
	return nil
}
