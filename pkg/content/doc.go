// Package content stores the greetings shown on the hello-world page.
//
// The store is a SQLite database. The pure Go modernc.org/sqlite driver
// ("sqlite") is compiled in by default; building with -tags cgo_sqlite
// swaps in github.com/mattn/go-sqlite3 ("sqlite3").
//
//	store, err := content.Open(ctx, "", "htmlr.db")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//	greetings, err := store.Greetings(ctx)
package content
