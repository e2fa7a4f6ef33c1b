// Package library holds the fixed catalog of poem lines: the shared opener,
// limitation, suggestion and closer pools, a short block of lines per topic,
// and one complete hand-written poem per topic.
//
// All content is static and read-only. Accessors return copies so callers
// can never mutate the catalog.
package library

import (
	"fmt"

	"github.com/dshills/kelly/internal/topic"
)

// Role names a pool of lines.
type Role int

const (
	RoleOpener Role = iota + 1
	RoleLimitation
	RoleSuggestion
	RoleCloser
	RoleTopic
)

func (r Role) String() string {
	switch r {
	case RoleOpener:
		return "opener"
	case RoleLimitation:
		return "limitation"
	case RoleSuggestion:
		return "suggestion"
	case RoleCloser:
		return "closer"
	case RoleTopic:
		return "topic"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// LinesFor returns the pool for role. The topic argument is only consulted
// for RoleTopic; topics without a dedicated block get the general block.
func LinesFor(role Role, t topic.Topic) []string {
	switch role {
	case RoleOpener:
		return clone(openers)
	case RoleLimitation:
		return clone(limitations)
	case RoleSuggestion:
		return clone(suggestions)
	case RoleCloser:
		return clone(closers)
	case RoleTopic:
		if block, ok := blocks[t]; ok {
			return clone(block)
		}
		return clone(blocks[topic.General])
	default:
		return nil
	}
}

// HasBlock reports whether t has its own topic block.
func HasBlock(t topic.Topic) bool {
	_, ok := blocks[t]
	return ok
}

// Template returns the complete poem written for t, or the general poem when
// t has none.
func Template(t topic.Topic) string {
	if p, ok := templates[t]; ok {
		return p
	}
	return templates[topic.General]
}

// Validate checks that every pool, block and template is non-empty and that
// the general fallbacks exist. A failure is a build error in the catalog.
func Validate() error {
	shared := map[Role][]string{
		RoleOpener:     openers,
		RoleLimitation: limitations,
		RoleSuggestion: suggestions,
		RoleCloser:     closers,
	}
	for role, pool := range shared {
		if err := checkPool(role.String(), pool); err != nil {
			return err
		}
	}
	if _, ok := blocks[topic.General]; !ok {
		return fmt.Errorf("library: missing general topic block")
	}
	if _, ok := templates[topic.General]; !ok {
		return fmt.Errorf("library: missing general template")
	}
	for t, block := range blocks {
		if err := checkPool("topic block "+string(t), block); err != nil {
			return err
		}
	}
	for t, p := range templates {
		if p == "" {
			return fmt.Errorf("library: empty template for topic %q", t)
		}
	}
	return nil
}

func checkPool(name string, pool []string) error {
	if len(pool) == 0 {
		return fmt.Errorf("library: %s pool is empty", name)
	}
	for i, line := range pool {
		if line == "" {
			return fmt.Errorf("library: %s pool line %d is empty", name, i)
		}
	}
	return nil
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
