// Package migrations embeds the versioned schema migrations for the
// sqlite store.
package migrations

import "embed"

// FS contains the migration SQL files.
//
//go:embed *.sql
var FS embed.FS
