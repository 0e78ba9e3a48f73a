//go:build cgo_sqlite

package content

import (
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDriver is the database/sql driver compiled into this build.
const DefaultDriver = "sqlite3"
