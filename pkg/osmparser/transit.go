package osmparser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"lintang/metronav/pkg/datastructure"
	"lintang/metronav/pkg/geo"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

var ErrNoTransitLines = errors.New("no transit route relations found")

var ValidRouteType = map[string]bool{
	"subway":     true,
	"light_rail": true,
	"tram":       true,
	"train":      true,
	"monorail":   true,
}

var stopRoles = map[string]bool{
	"stop":            true,
	"stop_entry_only": true,
	"stop_exit_only":  true,
}

// transitLine satu route relation. Stops urut sesuai member relation.
type transitLine struct {
	Ref   string
	Stops []osm.NodeID
}

type stopNode struct {
	Name string
	Lat  float64
	Lon  float64
}

type OSMParser struct {
	// kecepatan rata-rata kereta dalam km/jam. weight connection dalam menit.
	speedKmh        float64
	transferPenalty float64
	showProgress    bool
}

func NewOSMParser(speedKmh, transferPenalty float64, showProgress bool) *OSMParser {
	return &OSMParser{speedKmh: speedKmh, transferPenalty: transferPenalty, showProgress: showProgress}
}

// ParseNetwork baca route relation subway/tram/train dari file .osm.pbf jadi Network.
// pass pertama ambil relation, pass kedua ambil node stop nya.
func (p *OSMParser) ParseNetwork(ctx context.Context, mapFile string) (*datastructure.Network, error) {
	if p.speedKmh <= 0 {
		return nil, fmt.Errorf("invalid speed %v km/h", p.speedKmh)
	}
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bar := p.newBar(-1, "[cyan][1/3][reset] memproses openstreetmap route relation...")
	scanner := osmpbf.New(ctx, f, 3)
	scanner.SkipNodes = true
	scanner.SkipWays = true

	lines := make([]transitLine, 0)
	wanted := make(map[osm.NodeID]bool)
	for scanner.Scan() {
		rel, ok := scanner.Object().(*osm.Relation)
		if !ok {
			continue
		}
		bar.Add(1)
		line, ok := lineFromRelation(rel)
		if !ok {
			continue
		}
		lines = append(lines, line)
		for _, id := range line.Stops {
			wanted[id] = true
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, err
	}
	scanner.Close()
	fmt.Println("")
	if len(lines) == 0 {
		return nil, ErrNoTransitLines
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	bar = p.newBar(len(wanted), "[cyan][2/3][reset] memproses openstreetmap stop node...")
	scanner = osmpbf.New(ctx, f, 3)
	scanner.SkipWays = true
	scanner.SkipRelations = true
	defer scanner.Close()

	stops := make(map[osm.NodeID]stopNode, len(wanted))
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok || !wanted[node.ID] {
			continue
		}
		stops[node.ID] = stopNode{Name: node.Tags.Find("name"), Lat: node.Lat, Lon: node.Lon}
		bar.Add(1)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	fmt.Println("")

	n := p.buildNetwork(lines, stops)
	fmt.Printf("jumlah line: %d, jumlah station: %d\n", len(n.Lines()), n.NumStations())
	return n, nil
}

func (p *OSMParser) newBar(max int, desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetVisibility(p.showProgress),
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

// lineFromRelation relation type=route dengan route subway/tram/train dkk. line id dari ref, kalau kosong pakai name.
func lineFromRelation(rel *osm.Relation) (transitLine, bool) {
	if rel.Tags.Find("type") != "route" || !ValidRouteType[rel.Tags.Find("route")] {
		return transitLine{}, false
	}
	ref := rel.Tags.Find("ref")
	if ref == "" {
		ref = rel.Tags.Find("name")
	}
	if ref == "" {
		ref = "relation/" + strconv.FormatInt(int64(rel.ID), 10)
	}

	line := transitLine{Ref: ref, Stops: make([]osm.NodeID, 0)}
	for _, m := range rel.Members {
		if m.Type != osm.TypeNode || !stopRoles[m.Role] {
			continue
		}
		line.Stops = append(line.Stops, osm.NodeID(m.Ref))
	}
	if len(line.Stops) == 0 {
		return transitLine{}, false
	}
	return line, true
}

type stationKey struct {
	line int32
	node osm.NodeID
}

// buildNetwork station = pasangan (line, node). stop berurutan di satu relation dihubungkan dua arah,
// stop dengan nama sama di line berbeda dapat connection transfer dengan weight transferPenalty.
func (p *OSMParser) buildNetwork(lines []transitLine, stops map[osm.NodeID]stopNode) *datastructure.Network {
	n := datastructure.NewNetwork()

	lineIDs := make(map[string]int32)
	stationIDs := make(map[stationKey]int32)
	byName := make(map[string][]int32)
	refSet := false
	var refLat, refLon float64

	bar := p.newBar(len(lines), "[cyan][3/3][reset] membuat transit network...")
	for _, line := range lines {
		lineID, ok := lineIDs[line.Ref]
		if !ok {
			lineID = int32(len(lineIDs) + 1)
			lineIDs[line.Ref] = lineID
			n.SetLineName(lineID, line.Ref)
			n.SetVelocity(lineID, p.speedKmh/60)
		}

		prev := int32(-1)
		var prevStop stopNode
		for _, nodeID := range line.Stops {
			stop, ok := stops[nodeID]
			if !ok {
				continue
			}
			if !refSet {
				refLat, refLon, refSet = stop.Lat, stop.Lon, true
			}
			key := stationKey{line: lineID, node: nodeID}
			id, ok := stationIDs[key]
			if !ok {
				id = int32(len(stationIDs) + 1)
				stationIDs[key] = id
				name := stop.Name
				if name == "" {
					name = "node/" + strconv.FormatInt(int64(nodeID), 10)
				}
				x, y := geo.ProjectEquirectangular(stop.Lat, stop.Lon, refLat, refLon)
				n.AddStation(datastructure.Station{ID: id, Name: name, Line: lineID, X: x, Y: y})
				byName[name] = append(byName[name], id)
			}
			if prev != -1 && prev != id {
				km := geo.HaversineDistance(geo.NewLocation(prevStop.Lat, prevStop.Lon), geo.NewLocation(stop.Lat, stop.Lon))
				minutes := km / p.speedKmh * 60
				n.AddConnection(prev, id, minutes)
				n.AddConnection(id, prev, minutes)
			}
			prev, prevStop = id, stop
		}
		bar.Add(1)
	}
	fmt.Println("")

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ids := byName[name]
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, _ := n.Station(ids[i])
				b, _ := n.Station(ids[j])
				if a.Line == b.Line {
					continue
				}
				n.AddConnection(a.ID, b.ID, p.transferPenalty)
				n.AddConnection(b.ID, a.ID, p.transferPenalty)
			}
		}
	}
	return n
}
