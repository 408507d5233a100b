package annotation

import (
	"maps"
	"slices"
)

// Record is the annotation of one path. Empty strings mean absent.
type Record struct {
	Path        Path
	Title       string
	Description string
	// Default is the JSON text of the schema default, if any.
	Default string
}

func (r *Record) IsEmpty() bool {
	return r.Title == "" && r.Description == "" && r.Default == ""
}

type Map struct {
	records map[string]*Record
}

func NewMap() *Map {
	return &Map{records: map[string]*Record{}}
}

func (m *Map) Get(p Path) *Record {
	return m.records[p.String()]
}

// Insert stores r, replacing any record already at r.Path. Empty records and
// records at the root are dropped.
func (m *Map) Insert(r *Record) {
	if r.IsEmpty() || r.Path.IsRoot() {
		return
	}
	m.records[r.Path.String()] = r
}

func (m *Map) Len() int {
	return len(m.records)
}

// Paths returns the stored paths, sorted.
func (m *Map) Paths() []string {
	return slices.Sorted(maps.Keys(m.records))
}

// Each calls f for every record in path order.
func (m *Map) Each(f func(*Record)) {
	for _, p := range m.Paths() {
		f(m.records[p])
	}
}

// Filter returns a new map holding the records for which keep returns true.
func (m *Map) Filter(keep func(*Record) (bool, error)) (*Map, error) {
	res := NewMap()
	for _, p := range m.Paths() {
		r := m.records[p]
		ok, err := keep(r)
		if err != nil {
			return nil, err
		}
		if ok {
			res.records[p] = r
		}
	}
	return res, nil
}
