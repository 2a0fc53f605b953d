package atomset

import (
	"fmt"
	"slices"
	"strings"
	"unsafe"

	"fortio.org/safecast"
	"github.com/cockroachdb/swiss"
)

// Set interns the atoms of one source unit.
//
// The zero value is not ready for use; construct with New or NewEmpty.
type Set struct {
	logging

	capacity int
	reserved int
	atoms    []string
	indices  *swiss.Map[string, Index]
	exported bool
}

// New returns a Set that already holds every common atom at its reserved
// index.
func New(opts ...Option) *Set {
	set := newSet(NumCommon, opts)
	set.reserved = NumCommon
	for i, atom := range commonAtoms {
		set.atoms = append(set.atoms, atom.text)
		set.indices.Put(atom.text, Index(i))
	}
	return set
}

// NewEmpty returns a Set with no atoms and no reserved indices.
func NewEmpty(opts ...Option) *Set {
	return newSet(0, opts)
}

func newSet(reserve int, opts []Option) *Set {
	var set Set
	options(opts).apply(&set)
	set.reset(reserve + set.capacity)
	return &set
}

func (set *Set) reset(capacity int) {
	set.atoms = make([]string, 0, capacity)
	set.indices = swiss.New[string, Index](capacity)
	set.reserved = 0
	set.exported = false
}

// Reserved returns the number of leading indices held by common atoms: either
// NumCommon or, for a set made by NewEmpty, zero.
func (set *Set) Reserved() int { return set.reserved }

// Len returns the number of atoms in the set.
func (set *Set) Len() int { return len(set.atoms) }

// Insert returns the index of s, adding a copy of it to the set if no equal
// string has been inserted before.
func (set *Set) Insert(s string) Index {
	if i, ok := set.indices.Get(s); ok {
		return i
	}
	return set.add(strings.Clone(s))
}

// InsertBytes is like Insert for text still held in a scanner buffer; b is
// only copied when it is new to the set.
func (set *Set) InsertBytes(b []byte) Index {
	// the lookup key must not outlive this call
	if i, ok := set.indices.Get(unsafe.String(unsafe.SliceData(b), len(b))); ok {
		return i
	}
	return set.add(string(b))
}

// add appends s, which must already be owned by the set.
func (set *Set) add(s string) Index {
	if set.exported {
		panic(fmt.Sprintf("atomset: insert of %q after Export", s))
	}
	n, err := safecast.Conv[uint32](len(set.atoms))
	if err != nil {
		panic(fmt.Errorf("atomset: too many atoms: %w", err))
	}
	i := Index(n)
	set.atoms = append(set.atoms, s)
	set.indices.Put(s, i)
	set.logf("+", "%v %q", i, s)
	return i
}

// Lookup returns the index of s without inserting it.
func (set *Set) Lookup(s string) (Index, bool) {
	return set.indices.Get(s)
}

// Get returns the text of an atom. It panics with an IndexError if i was not
// produced by this set.
func (set *Set) Get(i Index) string {
	if int(i) >= len(set.atoms) {
		panic(IndexError{i, len(set.atoms)})
	}
	return set.atoms[i]
}

// Export returns every atom in index order, position i holding the text of
// Index i. The set must not be inserted into afterward, though Get still
// works; the returned slice is the caller's to modify.
func (set *Set) Export() []string {
	set.exported = true
	return slices.Clone(set.atoms)
}

// Detach moves the full contents of set into a new Set, leaving set empty as
// if made by NewEmpty.
func (set *Set) Detach() *Set {
	moved := &Set{
		logging:  set.logging,
		capacity: set.capacity,
		reserved: set.reserved,
		atoms:    set.atoms,
		indices:  set.indices,
		exported: set.exported,
	}
	set.reset(set.capacity)
	return moved
}

// Adopt inserts every string of an exported atom list, in order, returning
// the index in set that each position maps to.
func (set *Set) Adopt(atoms []string) []Index {
	remap := make([]Index, len(atoms))
	for j, s := range atoms {
		remap[j] = set.Insert(s)
		set.logf("=", "%v <- @%d", remap[j], j)
	}
	return remap
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
