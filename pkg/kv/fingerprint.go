package kv

import (
	"fmt"
	"strconv"

	"lintang/metronav/pkg/datastructure"

	"github.com/cespare/xxhash/v2"
)

// NetworkFingerprint hash xxhash dari semua stasiun, connection dan velocity network.
// dua network dengan fingerprint sama menghasilkan rute yang sama untuk query yang sama.
func NetworkFingerprint(n *datastructure.Network) string {
	d := xxhash.New()
	for _, id := range n.StationIDs() {
		s, _ := n.Station(id)
		fmt.Fprintf(d, "s|%d|%q|%d|%v|%v\n", s.ID, s.Name, s.Line, s.X, s.Y)
		for _, c := range n.Connections(id) {
			fmt.Fprintf(d, "c|%d|%d|%v\n", id, c.To, c.Weight)
		}
	}
	for _, line := range n.Lines() {
		if v, ok := n.Velocity(line); ok {
			fmt.Fprintf(d, "v|%d|%v\n", line, v)
		}
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
