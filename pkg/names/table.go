package names

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the hand-curated source a Table is built from. Aliases map a
// canonical station name to its informal variants; Renames map a raw feed
// name (upper case, as the feed spells it) to conventional usage.
type Config struct {
	Aliases map[string][]string `yaml:"aliases"`
	Renames map[string]string   `yaml:"renames"`
}

// Table is the read-only alias and rename lookup injected into the loader
// and the schedule index. Built once, never mutated.
type Table struct {
	aliases map[string]string
	renames map[string]string
}

// NewTable builds a Table from a Config. Both sides of every alias are
// sanitized so lookups and config spelling never have to agree on
// punctuation.
func NewTable(config Config) *Table {
	table := &Table{
		aliases: map[string]string{},
		renames: map[string]string{},
	}

	for canonical, variants := range config.Aliases {
		key := Sanitize(canonical)
		for _, variant := range variants {
			table.aliases[Sanitize(variant)] = key
		}
	}

	for raw, conventional := range config.Renames {
		table.renames[raw] = conventional
	}

	return table
}

// Load reads a Config from yaml, for feeds whose informal names differ from
// the built-in listing.
func Load(data []byte) (*Table, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if len(config.Aliases) == 0 && len(config.Renames) == 0 {
		return nil, fmt.Errorf("name table config declares no aliases or renames")
	}

	return NewTable(config), nil
}

// Resolve maps a sanitized key through the alias table, returning the input
// unchanged when no alias matches.
func (t *Table) Resolve(key string) string {
	if canonical, exists := t.aliases[key]; exists {
		return canonical
	}
	return key
}

// Rename maps a raw upper-cased feed name to its conventional spelling,
// returning the input unchanged when no rename applies.
func (t *Table) Rename(raw string) string {
	if conventional, exists := t.renames[raw]; exists {
		return conventional
	}
	return raw
}
