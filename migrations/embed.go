// Package migrations embeds the goose SQL migration set so the binary can
// bring its own schema up to date without a migrations directory on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
