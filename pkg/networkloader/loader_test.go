package networkloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lintang/metronav/pkg/datastructure"
	"lintang/metronav/pkg/kv"
	"lintang/metronav/pkg/networkloader"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memKV(t *testing.T) *kv.KVDB {
	t.Helper()
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	k := kv.NewKVDB(db, false)
	t.Cleanup(func() { k.Close() })
	return k
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("text tables", func(t *testing.T) {
		dir := t.TempDir()
		opts := networkloader.Options{
			StationsFile:    filepath.Join(dir, "Stations.txt"),
			ConnectionsFile: filepath.Join(dir, "Time.txt"),
			VelocitiesFile:  filepath.Join(dir, "InfoVelocity.txt"),
		}
		require.NoError(t, os.WriteFile(opts.StationsFile, []byte("1\tSants\t1\t0\t0\n2\tEspanya\t1\t3\t4\n"), 0o644))
		require.NoError(t, os.WriteFile(opts.ConnectionsFile, []byte("1\t2\t5\n"), 0o644))
		require.NoError(t, os.WriteFile(opts.VelocitiesFile, []byte("1\t1\n"), 0o644))

		n, src, err := networkloader.Load(ctx, opts, memKV(t))
		require.NoError(t, err)
		assert.Equal(t, networkloader.SourceTables, src)
		assert.Equal(t, 2, n.NumStations())
	})

	t.Run("incomplete tables", func(t *testing.T) {
		_, _, err := networkloader.Load(ctx, networkloader.Options{StationsFile: "Stations.txt"}, nil)
		assert.Error(t, err)
	})

	t.Run("pebble snapshot", func(t *testing.T) {
		store := memKV(t)
		saved := datastructure.NewNetwork()
		saved.AddStation(datastructure.Station{ID: 7, Name: "Liceu", Line: 3, X: 1, Y: 1})
		require.NoError(t, store.SaveNetwork(saved))

		n, src, err := networkloader.Load(ctx, networkloader.Options{}, store)
		require.NoError(t, err)
		assert.Equal(t, networkloader.SourceSnapshot, src)
		assert.Equal(t, []int32{7}, n.StationIDs())
	})

	t.Run("nothing to load", func(t *testing.T) {
		_, _, err := networkloader.Load(ctx, networkloader.Options{}, memKV(t))
		assert.ErrorIs(t, err, networkloader.ErrNoSource)
		_, _, err = networkloader.Load(ctx, networkloader.Options{}, nil)
		assert.ErrorIs(t, err, networkloader.ErrNoSource)
	})
}
