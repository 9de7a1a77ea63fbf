package kv

import (
	"errors"
	"fmt"

	"lintang/metronav/pkg/datastructure"

	"github.com/cockroachdb/pebble"
)

const routePrefix = "route:"

// RouteKey route:<network fingerprint>:<alg>:<mode>:<origin>:<dest>. rute hasil network lain
// tidak pernah kebaca walaupun cache belum di-clear.
func RouteKey(network, alg, mode string, origin, destination int32) string {
	return fmt.Sprintf("%s%s:%s:%s:%d:%d", routePrefix, network, alg, mode, origin, destination)
}

// GetRoute ok=false kalau key belum ada di cache.
func (k *KVDB) GetRoute(key string) (*datastructure.Path, bool, error) {
	raw, err := k.get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	r, err := decompressDecode[RouteRecord](raw)
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return &datastructure.Path{Route: r.Route, G: r.G, H: r.H, F: r.F}, true, nil
}

func (k *KVDB) SaveRoute(key string, p *datastructure.Path) error {
	val, err := encodeCompress(RouteRecord{Route: p.Route, G: p.G, H: p.H, F: p.F})
	if err != nil {
		return err
	}
	return k.db.Set([]byte(key), val, pebble.NoSync)
}

// ClearRoutes hapus semua route cache. dipanggil setiap network berubah.
func (k *KVDB) ClearRoutes() error {
	return k.deletePrefix(routePrefix)
}
