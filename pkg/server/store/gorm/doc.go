// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// Every collection maps to one PostgreSQL table created by the migrations
// under db/migrations. Rows are listed in created_at order so both backends
// agree on ordering.
package gorm
