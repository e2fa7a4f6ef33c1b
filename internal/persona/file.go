package persona

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk YAML form of a custom persona:
//
//	name: skeptic
//	description: One-line summary
//	voice: |
//	  You are Kelly, ...
type document struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Voice       string `yaml:"voice"`
}

// LoadFile reads a custom persona from a YAML file.
func LoadFile(path string) (Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Persona{}, fmt.Errorf("persona: reading %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Persona{}, fmt.Errorf("persona: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML persona document. Name and voice are required.
func Parse(data []byte) (Persona, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Persona{}, fmt.Errorf("decoding yaml: %w", err)
	}
	p := Persona{
		Name:        strings.TrimSpace(doc.Name),
		Description: strings.TrimSpace(doc.Description),
		Voice:       strings.TrimSpace(doc.Voice),
	}
	if p.Name == "" {
		return Persona{}, fmt.Errorf("missing name")
	}
	if p.Voice == "" {
		return Persona{}, fmt.Errorf("persona %q has no voice", p.Name)
	}
	return p, nil
}
