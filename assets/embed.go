// assets/embed.go
//
// Files compiled into the binary:
//   - answers.txt / allowed.txt: default word lists, parsed by the words
//     package.
//   - sql/*.sql: schema migrations, applied in lexical order.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

//go:embed sql/*.sql
var migrations embed.FS

// Migrations exposes the sql directory as its own root.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "sql")
	if err != nil {
		// The pattern above guarantees the directory exists.
		panic(err)
	}
	return sub
}
