// Package schema embeds the SQL schema files for the SQLite store.
package schema

import "embed"

// FS contains the schema SQL files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
