package table

import _ "embed"

// DemoTOML is the built-in demo table, installed by "carte table init".
//
//go:embed demo.toml
var DemoTOML string
