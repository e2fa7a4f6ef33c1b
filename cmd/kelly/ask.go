package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/kelly/internal/config"
	"github.com/dshills/kelly/internal/render"
	"github.com/dshills/kelly/internal/scientist"
)

// poemFlags are the generation flags shared by ask and batch. A flag only
// overrides the environment when it was set on the command line.
type poemFlags struct {
	suggest     []string
	stanzas     int
	lines       int
	strategy    string
	provider    string
	model       string
	persona     string
	personaFile string
	format      string
	offline     bool
	strict      bool
	timeout     time.Duration
}

func (f *poemFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.suggest, "suggest", "s", nil, "extra suggestion to weave in (repeatable)")
	fs.IntVar(&f.stanzas, "stanzas", 4, "number of stanzas")
	fs.IntVar(&f.lines, "lines", 4, "lines per stanza")
	fs.StringVar(&f.strategy, "strategy", "compositional", "deterministic strategy: compositional or template")
	fs.StringVar(&f.provider, "provider", "", "remote poet: anthropic, openai, google, ollama or none (default: auto)")
	fs.StringVar(&f.model, "model", "", "model name (default: provider's default)")
	fs.StringVar(&f.persona, "persona", "scientist", "voice for the remote poet")
	fs.StringVar(&f.personaFile, "persona-file", "", "YAML file defining a custom persona")
	fs.StringVarP(&f.format, "format", "f", "text", "output format: text, json or styled")
	fs.BoolVar(&f.offline, "offline", false, "never call a remote poet")
	fs.BoolVar(&f.strict, "strict", false, "require the remote poem to match the configured shape")
	fs.DurationVar(&f.timeout, "timeout", scientist.DefaultTimeout, "remote call timeout")
}

func (f *poemFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("stanzas") {
		cfg.Stanzas = f.stanzas
	}
	if fs.Changed("lines") {
		cfg.LinesPerStanza = f.lines
	}
	if fs.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fs.Changed("provider") {
		cfg.Provider = strings.ToLower(f.provider)
	}
	if fs.Changed("model") {
		cfg.Model = f.model
	}
	if fs.Changed("persona") {
		cfg.Persona = f.persona
	}
	if fs.Changed("persona-file") {
		cfg.PersonaFile = f.personaFile
	}
	if fs.Changed("strict") {
		cfg.Strict = f.strict
	}
	if fs.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if f.offline {
		cfg.Provider = "none"
	}
}

// build applies the flags and returns a ready scientist and output format.
func (f *poemFlags) build(cmd *cobra.Command, a *app) (*scientist.Scientist, render.Format, error) {
	format, err := render.ParseFormat(f.format)
	if err != nil {
		return nil, "", err
	}
	f.apply(cmd.Flags(), a.cfg)
	if err := a.cfg.Validate(); err != nil {
		return nil, "", err
	}
	opts, err := a.cfg.ScientistOptions()
	if err != nil {
		return nil, "", err
	}
	opts.Logger = a.log
	s, err := scientist.New(opts)
	if err != nil {
		return nil, "", err
	}
	if s.Delegates() {
		a.log.Debug("remote poet enabled", "provider", opts.LLM.Kind.String(), "model", opts.LLM.ModelOrDefault())
	}
	return s, format, nil
}

func newAskCmd(a *app) *cobra.Command {
	f := &poemFlags{}
	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Answer one question with a poem",
		Example: `  kelly ask "Will AI replace all jobs?"
  kelly ask --offline --stanzas 3 --lines 5 -s "Pilot before scaling." "Is AI biased?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, format, err := f.build(cmd, a)
			if err != nil {
				return err
			}
			question := strings.Join(args, " ")
			ans := s.Answer(cmd.Context(), question, f.suggest)
			ans.ID = uuid.NewString()
			if err := render.Write(cmd.OutOrStdout(), &ans, format); err != nil {
				return fmt.Errorf("writing answer: %w", err)
			}
			return nil
		},
	}
	f.register(cmd.Flags())
	return cmd
}
