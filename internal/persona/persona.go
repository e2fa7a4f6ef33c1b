// Package persona defines the voices the remote poet can be asked to write
// in. Each persona contributes a Voice paragraph that is appended to the
// system prompt sent to the LLM; the structural rules are the same for all.
package persona

import (
	"fmt"
	"sort"
	"strings"
)

// Default is the persona used when none is configured.
const Default = "scientist"

// Persona describes a poet's register.
type Persona struct {
	Name        string
	Description string
	Voice       string
}

// builtins is the registry of built-in personas keyed by name.
var builtins = map[string]Persona{
	"scientist": {
		Name:        "scientist",
		Description: "Skeptical, analytical AI scientist; the default voice.",
		Voice: "You are Kelly, an AI scientist and poet. Your tone is skeptical, analytical " +
			"and professional. You distrust hype in both directions and ask for the method " +
			"behind every claim.",
	},
	"reviewer": {
		Name:        "reviewer",
		Description: "Peer reviewer; terse, asks for baselines and ablations.",
		Voice: "You are Kelly, writing as a peer reviewer in verse. Be terse. Ask what the " +
			"baseline was, which ablations were run, and whether the result replicates. " +
			"Prefer concrete methodological critique over general doubt.",
	},
	"lecturer": {
		Name:        "lecturer",
		Description: "Patient lecturer; explains limitations to a general audience.",
		Voice: "You are Kelly, an AI scientist giving a public lecture in verse. Explain " +
			"limitations in plain words a general audience can follow, without condescension " +
			"and without jargon.",
	},
}

// Load returns the named built-in persona or an error if the name is unknown.
func Load(name string) (Persona, error) {
	if name == "" {
		name = Default
	}
	p, ok := builtins[name]
	if !ok {
		return Persona{}, fmt.Errorf("persona: unknown persona %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lists the built-in personas in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
