package trips

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/xxh3"
)

// zoneEntry holds one zone's aggregate state: the zone total and its 24
// hour-of-day buckets. Keeping both in one entry makes the two table updates
// for an accepted record a single step, so the zone total always equals the
// sum of its hour buckets.
type zoneEntry struct {
	name  string
	count int64
	hours [24]int64
	next  *zoneEntry // same-hash chain
}

// IngestStats counts what one ingestion run saw.
type IngestStats struct {
	Lines   int64 // non-empty data lines, header excluded
	Records int64 // lines accepted into the tables
	Skipped int64 // malformed lines dropped
}

// Analyzer owns the aggregate tables for one ingestion run. It is not safe
// for concurrent use: ingest first, query after.
type Analyzer struct {
	layout  Layout
	entries map[uint64]*zoneEntry
	zones   int // distinct zones
	slots   int // distinct (zone, hour) pairs
	stats   IngestStats

	commaBuf []int // recycled per line
}

// NewAnalyzer creates an empty session for the given record layout.
func NewAnalyzer(layout Layout) *Analyzer {
	return &Analyzer{
		layout:  layout,
		entries: make(map[uint64]*zoneEntry, 1024),
	}
}

func (a *Analyzer) reset() {
	a.entries = make(map[uint64]*zoneEntry, 1024)
	a.zones = 0
	a.slots = 0
	a.stats = IngestStats{}
}

// Ingest rebuilds both aggregate tables from the dataset at path. The tables
// are cleared first, so re-ingesting is idempotent and a failed open leaves
// them empty; the error exists only so callers can tell an unreadable file
// apart from an empty dataset. Malformed rows are dropped, never fatal.
func (a *Analyzer) Ingest(path string) error {
	a.reset()
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	a.scan(f)
	return nil
}

// IngestReader runs the same pipeline over an arbitrary reader.
func (a *Analyzer) IngestReader(r io.Reader) {
	a.reset()
	a.scan(r)
}

// Stats reports the line accounting of the last ingestion run.
func (a *Analyzer) Stats() IngestStats { return a.stats }

func (a *Analyzer) scan(r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	if a.layout.Header {
		if !sc.Scan() {
			return
		}
	}
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		a.stats.Lines++
		if a.ingestLine(line) {
			a.stats.Records++
		} else {
			a.stats.Skipped++
		}
	}
}

// ingestLine applies the layout to one record and updates both tables.
// Any failure along the way drops the line with no partial update.
func (a *Analyzer) ingestLine(line []byte) bool {
	a.commaBuf = commaPositions(line, a.commaBuf)

	zb, ze, ok := fieldRange(line, a.commaBuf, a.layout.ZoneField)
	if !ok {
		return false
	}
	zb, ze = trimRange(line, zb, ze)
	if zb >= ze {
		return false
	}

	hour := -1
	for _, idx := range a.layout.DateTimeFields {
		db, de, ok := fieldRange(line, a.commaBuf, idx)
		if !ok {
			continue
		}
		if h, ok := hourFromDateTime(line, db, de); ok {
			hour = h
			break
		}
	}
	if hour < 0 {
		return false
	}

	a.bump(line[zb:ze], hour)
	return true
}

// bump increments the zone count and its hour bucket together. Lookups hash
// the raw bytes; the zone string is copied only when a zone is first seen.
func (a *Analyzer) bump(zone []byte, hour int) {
	h := xxh3.Hash(zone)
	for e := a.entries[h]; e != nil; e = e.next {
		if e.name == string(zone) {
			e.count++
			if e.hours[hour] == 0 {
				a.slots++
			}
			e.hours[hour]++
			return
		}
	}
	e := &zoneEntry{name: string(zone), count: 1}
	e.hours[hour] = 1
	e.next = a.entries[h]
	a.entries[h] = e
	a.zones++
	a.slots++
}
