package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/carte/internal/card"
)

const supportedSchemaVersion = "1.0"

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	TablePath string
	Results   ValidationResults

	config tableFile
}

// tableFile mirrors table.TableConfig with raw strings, so every bad value
// is reported instead of stopping at the first decode error.
type tableFile struct {
	Table struct {
		ID            string `toml:"id"`
		Name          string `toml:"name"`
		SchemaVersion string `toml:"schema_version"`
	} `toml:"table"`
	Cards []cardEntry `toml:"cards"`
}

type cardEntry struct {
	ID      string   `toml:"id"`
	Rank    string   `toml:"rank"`
	Suit    string   `toml:"suit"`
	Points  *int     `toml:"points"`
	Defeats []string `toml:"defeats"`
}

func NewValidator(tablePath string) *Validator {
	return &Validator{
		TablePath: tablePath,
		Results:   ValidationResults{},
	}
}

// Validate decodes the table file and checks it. The returned error is
// reserved for files that cannot be read or parsed at all; content problems
// are collected in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decode(); err != nil {
		return v.Results, err
	}

	v.validateHeader()
	ids := v.validateCardIDs()
	v.validateCardValues()
	v.validateDefeats(ids)

	return v.Results, nil
}

func (v *Validator) decode() error {
	info, err := os.Stat(v.TablePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("table file not found: %s", v.TablePath)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a table file", v.TablePath)
	}

	if _, err := toml.DecodeFile(v.TablePath, &v.config); err != nil {
		return fmt.Errorf("error parsing %s: %w", v.TablePath, err)
	}
	return nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateHeader checks the [table] section
func (v *Validator) validateHeader() {
	header := v.config.Table

	if header.ID == "" {
		v.errorf("table.id is required")
	}
	if header.Name == "" {
		v.errorf("table.name is required")
	}
	if header.SchemaVersion == "" {
		v.errorf("table.schema_version is required")
	} else if header.SchemaVersion != supportedSchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", header.SchemaVersion, supportedSchemaVersion)
	}

	if len(v.config.Cards) == 0 {
		v.warnf("table defines no cards")
	}
}

// validateCardIDs checks that every card has a unique ID and returns the
// set of IDs seen.
func (v *Validator) validateCardIDs() map[string]bool {
	ids := make(map[string]bool, len(v.config.Cards))
	for i, c := range v.config.Cards {
		if c.ID == "" {
			v.errorf("cards[%d].id is required", i)
			continue
		}
		if ids[c.ID] {
			v.errorf("duplicate card id: %s", c.ID)
			continue
		}
		ids[c.ID] = true
	}
	return ids
}

// validateCardValues checks rank and suit names
func (v *Validator) validateCardValues() {
	for i, c := range v.config.Cards {
		label := cardLabel(i, c)

		if c.Rank == "" {
			v.warnf("%s has no rank", label)
		} else if _, err := card.ParseRank(c.Rank); err != nil {
			v.errorf("%s: unknown rank %q", label, c.Rank)
		}

		if c.Suit == "" {
			v.warnf("%s has no suit", label)
		} else if _, err := card.ParseSuit(c.Suit); err != nil {
			v.errorf("%s: unknown suit %q", label, c.Suit)
		}
	}
}

// validateDefeats checks that every defeats entry names another known card
func (v *Validator) validateDefeats(ids map[string]bool) {
	for i, c := range v.config.Cards {
		label := cardLabel(i, c)
		seen := make(map[string]bool, len(c.Defeats))

		for _, target := range c.Defeats {
			switch {
			case target == c.ID && c.ID != "":
				v.errorf("%s cannot defeat itself", label)
			case !ids[target]:
				v.errorf("%s defeats unknown card %q", label, target)
			case seen[target]:
				v.warnf("%s lists %s more than once in defeats", label, target)
			}
			seen[target] = true
		}
	}
}

func cardLabel(i int, c cardEntry) string {
	if c.ID == "" {
		return fmt.Sprintf("cards[%d]", i)
	}
	return "card " + c.ID
}
