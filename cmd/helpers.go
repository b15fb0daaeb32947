package cmd

import (
	"fmt"
	"log/slog"

	"github.com/arcanaland/carte/internal/config"
	"github.com/arcanaland/carte/internal/registry"
	"github.com/arcanaland/carte/internal/table"
)

// openTable loads the table named by args[0], or the default table from
// the config when no argument is given. The config's max_cards setting
// bounds the table's registry.
func openTable(args []string) (*table.Table, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	name := cfg.DefaultTable
	if len(args) > 0 {
		name = args[0]
	}

	path, err := config.GetTablePath(name)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'carte table init' to install the demo table)", err)
	}

	t, err := table.LoadTable(path, registry.WithLimit(cfg.MaxCards))
	if err != nil {
		return nil, err
	}
	slog.Debug("table loaded", "id", t.ID, "path", path, "cards", len(t.Cards))
	return t, nil
}
