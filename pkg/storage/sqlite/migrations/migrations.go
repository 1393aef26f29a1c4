// Package migrations embeds the goose SQL migrations for this dialect.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
