// Package db holds the SQL migrations for the artrights schema.
package db

import "embed"

// Migrations contains every *.sql file under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
