// Package migrations holds the goose SQL migrations, embedded so that the
// server, cmd/migrate and integration tests apply the same files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
