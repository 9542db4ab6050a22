// Package migrations embeds the goose SQL migrations of the course API.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
