package table

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/carte/internal/card"
	"github.com/arcanaland/carte/internal/registry"
)

// ErrCardNotFound is returned by GetCard for an unknown card ID.
var ErrCardNotFound = errors.New("card not found")

// Table is a set of cards loaded from a TOML file, registered in file
// order. The table owns its cards; its registry only borrows them.
type Table struct {
	ID          string
	Name        string
	Version     string
	Description string
	Path        string

	// Cards by ID, for lookup
	Cards    map[string]*card.Card
	Registry *registry.Registry

	order []string
}

// LoadTable loads a card table from a TOML file
func LoadTable(path string, opts ...registry.Option) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("table file not found: %s", path)
	}

	var config TableConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	t, err := build(&config, opts)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

// Parse builds a table from TOML text.
func Parse(data string, opts ...registry.Option) (*Table, error) {
	var config TableConfig
	if _, err := toml.Decode(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing table: %w", err)
	}
	return build(&config, opts)
}

func build(config *TableConfig, opts []registry.Option) (*Table, error) {
	t := &Table{
		ID:          config.Table.ID,
		Name:        config.Table.Name,
		Version:     config.Table.Version,
		Description: config.Table.Description,
		Cards:       make(map[string]*card.Card, len(config.Cards)),
		Registry:    registry.New(opts...),
	}

	// First pass: create every card so defeats can refer forward
	for i, cc := range config.Cards {
		if cc.ID == "" {
			return nil, fmt.Errorf("cards[%d]: missing id", i)
		}
		if _, dup := t.Cards[cc.ID]; dup {
			return nil, fmt.Errorf("cards[%d]: duplicate id %q", i, cc.ID)
		}

		c := card.New()
		c.ID = cc.ID
		if cc.Rank != card.RankUndefined {
			if err := c.SetRank(cc.Rank); err != nil {
				return nil, fmt.Errorf("card %s: %w", cc.ID, err)
			}
		}
		if cc.Suit != card.SuitUndefined {
			if err := c.SetSuit(cc.Suit); err != nil {
				return nil, fmt.Errorf("card %s: %w", cc.ID, err)
			}
		}
		if cc.Points != nil {
			if err := c.SetPoints(*cc.Points); err != nil {
				return nil, fmt.Errorf("card %s: %w", cc.ID, err)
			}
		}

		t.Cards[cc.ID] = c
		t.order = append(t.order, cc.ID)
	}

	// Second pass: wire defeats relations and register
	for _, cc := range config.Cards {
		c := t.Cards[cc.ID]
		for _, targetID := range cc.Defeats {
			target, ok := t.Cards[targetID]
			if !ok {
				return nil, fmt.Errorf("card %s: defeats unknown card %q", cc.ID, targetID)
			}
			if err := c.AddDefeats(target); err != nil {
				return nil, fmt.Errorf("card %s: defeats %s: %w", cc.ID, targetID, err)
			}
		}
		if err := t.Registry.Insert(c); err != nil {
			return nil, fmt.Errorf("card %s: %w", cc.ID, err)
		}
	}

	return t, nil
}

// GetCard gets a card by its ID
func (t *Table) GetCard(id string) (*card.Card, error) {
	c, ok := t.Cards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	return c, nil
}

// IDs returns the card IDs in file order.
func (t *Table) IDs() []string {
	return append([]string(nil), t.order...)
}

// Release clears the registry, then releases every card the table owns.
func (t *Table) Release() {
	t.Registry.Clear()
	for _, id := range t.order {
		t.Cards[id].Release()
	}
}

// TableConfig is the TOML layout of a table file.
type TableConfig struct {
	Table TableSection `toml:"table"`
	Cards []CardEntry  `toml:"cards"`
}

type TableSection struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	SchemaVersion string   `toml:"schema_version"`
	Author        string   `toml:"author"`
	Description   string   `toml:"description"`
	Tags          []string `toml:"tags"`
}

type CardEntry struct {
	ID      string    `toml:"id"`
	Rank    card.Rank `toml:"rank"`
	Suit    card.Suit `toml:"suit"`
	Points  *int      `toml:"points"`
	Defeats []string  `toml:"defeats"`
}
