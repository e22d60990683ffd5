package assets

import (
	"fmt"
)

// SheetNames is the full set of sheets the game references, in load order.
// Index positions are stable for a given load order, so sprite records may
// hold indexes instead of names.
var SheetNames = []string{
	"character-00",
	"character-01",
	"tile-dirt",
	"grass",
	"tool-shovel",
	"tool-watercan",
	"tool-packet",
	"tool-packet2",
	"crop-empty",
	"crop-leaf",
	"crop-flower",
	"cryopod",
	"terminal",
	"transition",
	"particle-dirt",
	"particle-water",
	"particle-heart",
}

// Store indexes loaded sheets by position and by name.
type Store struct {
	sheets []*Sheet
	byName map[string]int
}

// NewStore builds a store from loaded sheets, assigning indexes in order.
func NewStore(sheets []*Sheet) *Store {
	st := &Store{
		sheets: sheets,
		byName: make(map[string]int, len(sheets)),
	}
	for i, s := range sheets {
		s.Index = i
		st.byName[s.Name] = i
	}
	return st
}

// Count returns the number of loaded sheets.
func (st *Store) Count() int {
	return len(st.sheets)
}

// ByIndex returns the sheet at the given index. Indexes held by sprite
// records always originate from this store, so a bad index is a programming
// error and panics.
func (st *Store) ByIndex(i int) *Sheet {
	if i < 0 || i >= len(st.sheets) {
		panic(fmt.Sprintf("assets: sheet index %d out of range (%d sheets)", i, len(st.sheets)))
	}
	return st.sheets[i]
}

// ByName looks up a sheet by name.
func (st *Store) ByName(name string) (*Sheet, error) {
	i, ok := st.byName[name]
	if !ok {
		return nil, fmt.Errorf("assets: no sheet named %q", name)
	}
	return st.sheets[i], nil
}

// IndexByName returns the index of the named sheet.
func (st *Store) IndexByName(name string) (int, error) {
	i, ok := st.byName[name]
	if !ok {
		return 0, fmt.Errorf("assets: no sheet named %q", name)
	}
	return i, nil
}

// MustIndex returns the index of the named sheet, panicking if it is absent.
// A by-name miss during simulation is a content authoring bug, not a
// recoverable runtime condition.
func (st *Store) MustIndex(name string) int {
	i, ok := st.byName[name]
	if !ok {
		panic(fmt.Sprintf("assets: no sheet named %q", name))
	}
	return i
}

// Names returns the sheet names in index order.
func (st *Store) Names() []string {
	names := make([]string, len(st.sheets))
	for i, s := range st.sheets {
		names[i] = s.Name
	}
	return names
}
