package search

import "lintang/metronav/pkg/datastructure"

// Expand satu path baru untuk setiap edge keluar dari stasiun terakhir path. cost belum dihitung.
func Expand(p *datastructure.Path, n *datastructure.Network) []*datastructure.Path {
	conns := n.Connections(p.Last())
	paths := make([]*datastructure.Path, 0, len(conns))
	for _, c := range conns {
		paths = append(paths, p.Extend(c.To))
	}
	return paths
}

// RemoveCycles buang path yang mengunjungi stasiun yang sama lebih dari sekali.
func RemoveCycles(paths []*datastructure.Path) []*datastructure.Path {
	res := make([]*datastructure.Path, 0, len(paths))
	for _, p := range paths {
		if !hasCycle(p) {
			res = append(res, p)
		}
	}
	return res
}

func hasCycle(p *datastructure.Path) bool {
	seen := make(map[int32]struct{}, len(p.Route))
	for _, s := range p.Route {
		if _, ok := seen[s]; ok {
			return true
		}
		seen[s] = struct{}{}
	}
	return false
}
