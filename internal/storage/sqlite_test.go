package storage

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-helper/assets"
)

func TestOpenCreatesParentDir(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "nested", "dir", "w.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Ping())
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := OpenTest(t)
	require.NoError(t, Migrate(db, assets.Migrations()))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)

	for _, table := range []string{"users", "game_results", "daily_results"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, table)
	}

	var won int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('daily_results') WHERE name='won'`).Scan(&won))
	assert.Equal(t, 1, won)
}

func TestMigrateOrderAndFailure(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "w.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"002_more.sql":  {Data: []byte(`INSERT INTO things(v) VALUES ('b');`)},
		"001_first.sql": {Data: []byte(`CREATE TABLE things (v TEXT); INSERT INTO things(v) VALUES ('a');`)},
		"README.md":     {Data: []byte(`ignored`)},
	}
	require.NoError(t, Migrate(db, fsys))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM things`).Scan(&n))
	assert.Equal(t, 2, n)

	fsys["003_broken.sql"] = &fstest.MapFile{Data: []byte(`NOT SQL AT ALL;`)}
	err = Migrate(db, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "003_broken.sql")

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n, "failed migration is not recorded")
}
