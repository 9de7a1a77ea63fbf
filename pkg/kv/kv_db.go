package kv

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strconv"

	"lintang/metronav/pkg/concurrent"
	"lintang/metronav/pkg/datastructure"

	"github.com/cockroachdb/pebble"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

const (
	linePrefix  = "line:"
	metaLineKey = "meta:lines"
)

var ErrNoSnapshot = errors.New("no network snapshot stored")

type KVDB struct {
	db           *pebble.DB
	showProgress bool
}

func NewKVDB(db *pebble.DB, showProgress bool) *KVDB {
	return &KVDB{db: db, showProgress: showProgress}
}

func (k *KVDB) Close() error {
	return k.db.Close()
}

func lineKey(line int32) string {
	return linePrefix + strconv.FormatInt(int64(line), 10)
}

// prefixUpperBound key terkecil yang lebih besar dari semua key berprefix p.
func prefixUpperBound(p string) []byte {
	end := []byte(p)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func (k *KVDB) deletePrefix(prefix string) error {
	return k.db.DeleteRange([]byte(prefix), prefixUpperBound(prefix), pebble.Sync)
}

// lineRecords satu record per line. connection ikut line stasiun asal nya.
func lineRecords(n *datastructure.Network) []LineRecord {
	records := make(map[int32]*LineRecord)
	get := func(line int32) *LineRecord {
		r, ok := records[line]
		if !ok {
			r = &LineRecord{Line: line, Name: n.LineName(line)}
			if v, ok := n.Velocity(line); ok {
				r.Velocity, r.HasVelocity = v, true
			}
			records[line] = r
		}
		return r
	}

	for _, line := range n.Lines() {
		get(line)
	}
	for _, id := range n.StationIDs() {
		s, _ := n.Station(id)
		r := get(s.Line)
		r.Stations = append(r.Stations, StationRecord{ID: s.ID, Name: s.Name, X: s.X, Y: s.Y})
		for _, c := range n.Connections(id) {
			r.Connections = append(r.Connections, ConnectionRecord{From: id, To: c.To, Weight: c.Weight})
		}
	}

	res := make([]LineRecord, 0, len(records))
	for _, r := range records {
		res = append(res, *r)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Line < res[j].Line })
	return res
}

// SaveNetwork simpan snapshot network, satu key per line lewat worker pool, plus index meta:lines.
// snapshot lama dihapus dulu.
func (k *KVDB) SaveNetwork(n *datastructure.Network) error {
	records := lineRecords(n)

	if err := k.deletePrefix(linePrefix); err != nil {
		return err
	}

	bar := k.newBar(len(records), "[cyan][1/2][reset] encoding transit line...")
	workers := concurrent.NewWorkerPool[concurrent.SaveLineJobItem, error](runtime.NumCPU(), len(records))
	lines := make([]int32, 0, len(records))
	for _, r := range records {
		bb, err := Encode(r)
		if err != nil {
			return fmt.Errorf("encode line %d: %w", r.Line, err)
		}
		workers.AddJob(concurrent.SaveLineJobItem{KeyStr: lineKey(r.Line), Val: bb})
		lines = append(lines, r.Line)
		bar.Add(1)
	}
	fmt.Println("")
	workers.Close()

	workers.Start(k.SaveLine)
	workers.Wait()

	var saveErr error
	for err := range workers.CollectResults() {
		if err != nil && saveErr == nil {
			saveErr = err
		}
	}
	if saveErr != nil {
		return saveErr
	}

	meta, err := encodeCompress(lines)
	if err != nil {
		return err
	}
	return k.db.Set([]byte(metaLineKey), meta, pebble.Sync)
}

// SaveLine compress lalu tulis satu record line yang sudah di-encode.
func (k *KVDB) SaveLine(item concurrent.SaveLineJobItem) error {
	val, err := Compress(item.Val)
	if err != nil {
		return fmt.Errorf("compress %s: %w", item.KeyStr, err)
	}
	if err := k.db.Set([]byte(item.KeyStr), val, pebble.Sync); err != nil {
		return fmt.Errorf("save %s: %w", item.KeyStr, err)
	}
	return nil
}

func (k *KVDB) get(key string) ([]byte, error) {
	val, closer, err := k.db.Get([]byte(key))
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	res := make([]byte, len(val))
	copy(res, val)
	return res, nil
}

// LoadNetwork bangun ulang Network dari snapshot. ErrNoSnapshot kalau belum pernah SaveNetwork.
func (k *KVDB) LoadNetwork() (*datastructure.Network, error) {
	meta, err := k.get(metaLineKey)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	lines, err := decompressDecode[[]int32](meta)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", metaLineKey, err)
	}

	records := make([]LineRecord, 0, len(lines))
	bar := k.newBar(len(lines), "[cyan][2/2][reset] loading transit line dari pebble db...")
	for _, line := range lines {
		raw, err := k.get(lineKey(line))
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", lineKey(line), err)
		}
		bb, err := Decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", lineKey(line), err)
		}
		r, err := Decode[LineRecord](bb)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", lineKey(line), err)
		}
		records = append(records, r)
		bar.Add(1)
	}
	fmt.Println("")

	n := datastructure.NewNetwork()
	for _, r := range records {
		if r.Name != "" {
			n.SetLineName(r.Line, r.Name)
		}
		if r.HasVelocity {
			n.SetVelocity(r.Line, r.Velocity)
		}
		for _, s := range r.Stations {
			n.AddStation(datastructure.Station{ID: s.ID, Name: s.Name, Line: r.Line, X: s.X, Y: s.Y})
		}
	}
	for _, r := range records {
		for _, c := range r.Connections {
			n.AddConnection(c.From, c.To, c.Weight)
		}
	}
	return n, nil
}

func (k *KVDB) newBar(max int, desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetVisibility(k.showProgress),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
