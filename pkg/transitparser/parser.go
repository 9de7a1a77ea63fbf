package transitparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lintang/metronav/pkg/datastructure"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var (
	ErrMalformedRow   = errors.New("malformed row")
	ErrUnknownStation = errors.New("connection references unknown station")
)

// ConnectionRow satu baris tabel connections. directed from -> to.
type ConnectionRow struct {
	From   int32
	To     int32
	Weight float64
}

// VelocityRow satu baris tabel velocities. Name opsional.
type VelocityRow struct {
	Line     int32
	Velocity float64
	Name     string
}

type row struct {
	line   int
	fields []string
}

type TransitParser struct {
	showProgress bool
}

func NewTransitParser(showProgress bool) *TransitParser {
	return &TransitParser{showProgress: showProgress}
}

// ParseNetwork baca 3 tabel tab-separated (stations, connections, velocities) jadi satu Network.
func (p *TransitParser) ParseNetwork(stationsFile, connectionsFile, velocitiesFile string) (*datastructure.Network, error) {
	stations, err := readFile(stationsFile, ReadStations)
	if err != nil {
		return nil, err
	}
	connections, err := readFile(connectionsFile, ReadConnections)
	if err != nil {
		return nil, err
	}
	velocities, err := readFile(velocitiesFile, ReadVelocities)
	if err != nil {
		return nil, err
	}

	n := datastructure.NewNetwork()
	bar := p.newBar(len(stations), "[cyan][1/3][reset] loading stations...")
	for _, s := range stations {
		n.AddStation(s)
		bar.Add(1)
	}
	fmt.Println("")

	bar = p.newBar(len(connections), "[cyan][2/3][reset] loading connections...")
	for i, c := range connections {
		if !n.HasStation(c.From) || !n.HasStation(c.To) {
			return nil, fmt.Errorf("%s: connection %d (%d -> %d): %w", filepath.Base(connectionsFile), i+1, c.From, c.To,
				ErrUnknownStation)
		}
		n.AddConnection(c.From, c.To, c.Weight)
		bar.Add(1)
	}
	fmt.Println("")

	bar = p.newBar(len(velocities), "[cyan][3/3][reset] loading line velocities...")
	for _, v := range velocities {
		n.SetVelocity(v.Line, v.Velocity)
		if v.Name != "" {
			n.SetLineName(v.Line, v.Name)
		}
		bar.Add(1)
	}
	fmt.Println("")
	return n, nil
}

func (p *TransitParser) newBar(max int, desc string) *progressbar.ProgressBar {
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

func readFile[T any](path string, read func(r io.Reader, name string) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return read(f, filepath.Base(path))
}

// readRows baris kosong & komentar (#) di-skip. nomor baris ikut disimpan buat pesan error.
func readRows(r io.Reader, name string, minFields int) ([]row, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	rows := make([]row, 0)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		fields := make([]string, 0, len(rec))
		for _, f := range rec {
			fields = append(fields, strings.TrimSpace(f))
		}
		if len(fields) == 1 && fields[0] == "" {
			continue
		}
		if len(fields) < minFields {
			return nil, fmt.Errorf("%s:%d: want at least %d fields, got %d: %w", name, line, minFields, len(fields), ErrMalformedRow)
		}
		rows = append(rows, row{line: line, fields: fields})
	}
	return rows, nil
}

// ReadStations kolom: id, name, line, x, y.
func ReadStations(r io.Reader, name string) ([]datastructure.Station, error) {
	rows, err := readRows(r, name, 5)
	if err != nil {
		return nil, err
	}
	stations := make([]datastructure.Station, 0, len(rows))
	for _, rw := range rows {
		id, err := parseID(rw.fields[0])
		if err != nil {
			return nil, rowError(name, rw, "id", err)
		}
		line, err := parseID(rw.fields[2])
		if err != nil {
			return nil, rowError(name, rw, "line", err)
		}
		x, err := strconv.ParseFloat(rw.fields[3], 64)
		if err != nil {
			return nil, rowError(name, rw, "x", err)
		}
		y, err := strconv.ParseFloat(rw.fields[4], 64)
		if err != nil {
			return nil, rowError(name, rw, "y", err)
		}
		stations = append(stations, datastructure.Station{ID: id, Name: rw.fields[1], Line: line, X: x, Y: y})
	}
	return stations, nil
}

// ReadConnections kolom: from, to, weight. urutan baris = urutan adjacency.
func ReadConnections(r io.Reader, name string) ([]ConnectionRow, error) {
	rows, err := readRows(r, name, 3)
	if err != nil {
		return nil, err
	}
	conns := make([]ConnectionRow, 0, len(rows))
	for _, rw := range rows {
		from, err := parseID(rw.fields[0])
		if err != nil {
			return nil, rowError(name, rw, "from", err)
		}
		to, err := parseID(rw.fields[1])
		if err != nil {
			return nil, rowError(name, rw, "to", err)
		}
		weight, err := parseNonNegative(rw.fields[2])
		if err != nil {
			return nil, rowError(name, rw, "weight", err)
		}
		conns = append(conns, ConnectionRow{From: from, To: to, Weight: weight})
	}
	return conns, nil
}

// ReadVelocities kolom: line, velocity, name (opsional).
func ReadVelocities(r io.Reader, name string) ([]VelocityRow, error) {
	rows, err := readRows(r, name, 2)
	if err != nil {
		return nil, err
	}
	vels := make([]VelocityRow, 0, len(rows))
	for _, rw := range rows {
		line, err := parseID(rw.fields[0])
		if err != nil {
			return nil, rowError(name, rw, "line", err)
		}
		velocity, err := parseNonNegative(rw.fields[1])
		if err != nil {
			return nil, rowError(name, rw, "velocity", err)
		}
		v := VelocityRow{Line: line, Velocity: velocity}
		if len(rw.fields) > 2 {
			v.Name = rw.fields[2]
		}
		vels = append(vels, v)
	}
	return vels, nil
}

// parseID id stasiun dan line harus >= 0, sama dengan yang diterima rest api dan cli.
func parseID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, fmt.Errorf("negative id %d", id)
	}
	return int32(id), nil
}

func parseNonNegative(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value %v", v)
	}
	return v, nil
}

func rowError(name string, rw row, column string, err error) error {
	return fmt.Errorf("%s:%d: column %s: %v: %w", name, rw.line, column, err, ErrMalformedRow)
}
