// Package migrations embeds the SQL schema migrations applied by the
// schema sync worker.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
