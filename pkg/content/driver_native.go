//go:build !cgo_sqlite

package content

import (
	_ "modernc.org/sqlite"
)

// DefaultDriver is the database/sql driver compiled into this build.
const DefaultDriver = "sqlite"
