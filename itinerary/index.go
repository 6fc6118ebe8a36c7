package itinerary

import (
	"errors"
	"fmt"
)

// ErrUnresolved is returned when a reference has no matching definition
var ErrUnresolved = errors.New("unresolved reference")

// Key identifies a definition within its tag family
type Key struct {
	Family       string
	Name         string
	DocumentName string
	ID           string
}

func (k Key) String() string {
	return fmt.Sprintf("%s name=%q documentname=%q id=%q", k.Family, k.Name, k.DocumentName, k.ID)
}

// UnresolvedError names the reference that could not be resolved
type UnresolvedError struct {
	Itinerary string
	Key       Key
	Line      int
}

func (e *UnresolvedError) Error() string {
	msg := fmt.Sprintf("itinerary %q: %v: no definition in <%s>", e.Itinerary, e.Key, CollectionFor(e.Key.Family))
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	return msg
}

func (e *UnresolvedError) Unwrap() error { return ErrUnresolved }

// Index maps reference keys to definitions from the top-level collections
type Index struct {
	defs       map[Key]*Node
	duplicates []Key
	counts     map[string]int // family -> definitions
}

// BuildIndex indexes every pluralized collection under the document root.
// When several definitions share a key the first one wins.
func BuildIndex(doc *Document) *Index {
	idx := &Index{
		defs:   map[Key]*Node{},
		counts: map[string]int{},
	}
	if doc == nil || doc.Root == nil {
		return idx
	}
	for _, coll := range doc.Root.Children {
		if coll.Tag == CollectionItineraries {
			continue
		}
		family, ok := FamilyFor(coll.Tag)
		if !ok {
			continue
		}
		for _, def := range coll.Children {
			// members are matched on attributes alone, like the reference lookup
			k := Key{Family: family, Name: def.Name, DocumentName: def.DocumentName, ID: def.ID}
			if _, dup := idx.defs[k]; dup {
				idx.duplicates = append(idx.duplicates, k)
				continue
			}
			idx.defs[k] = def
			idx.counts[family]++
		}
	}
	return idx
}

// Resolve returns the definition matching ref
func (idx *Index) Resolve(ref *Node) (*Node, error) {
	if def, ok := idx.defs[ref.Key()]; ok {
		return def, nil
	}
	return nil, &UnresolvedError{Key: ref.Key(), Line: ref.Line}
}

// Lookup returns the definition for k, if any
func (idx *Index) Lookup(k Key) (*Node, bool) {
	def, ok := idx.defs[k]
	return def, ok
}

// Len returns the number of indexed definitions
func (idx *Index) Len() int { return len(idx.defs) }

// Count returns the number of definitions of a tag family
func (idx *Index) Count(family string) int { return idx.counts[family] }

// Duplicates returns keys that appeared more than once, in document order
func (idx *Index) Duplicates() []Key { return idx.duplicates }
