package itinerary

// Tag families
const (
	TagItinerary = "itinerary"
	TagPath      = "path"
	TagRoute     = "route"
	TagVertex    = "vertex"
)

// Collection names
const (
	CollectionItineraries = "itineraries"
	CollectionPaths       = "paths"
	CollectionRoutes      = "routes"
	CollectionVertices    = "vertices"
)

// Node is a tagged element with the attributes the turnback check reads
type Node struct {
	Tag          string
	Name         string
	DocumentName string
	ID           string
	NeighbourID  string
	Children     []*Node
	Line         int
}

// Key returns the identity of n within its tag family
func (n *Node) Key() Key {
	return Key{Family: n.Tag, Name: n.Name, DocumentName: n.DocumentName, ID: n.ID}
}

// Document is a parsed itinerary document after preprocessing
type Document struct {
	Root *Node
}

// Collections returns the direct children of the root with the given tag
func (d *Document) Collections(tag string) []*Node {
	if d == nil || d.Root == nil {
		return nil
	}
	var out []*Node
	for _, c := range d.Root.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Resolved reports whether the document no longer carries any definition
// collection, i.e. its itineraries already hold their paths, routes and
// vertices inline.
func (d *Document) Resolved() bool {
	for _, tag := range []string{CollectionPaths, CollectionRoutes, CollectionVertices} {
		if len(d.Collections(tag)) > 0 {
			return false
		}
	}
	return true
}

// CollectionFor returns the collection name holding definitions of tag
func CollectionFor(tag string) string {
	if tag == TagVertex {
		return CollectionVertices
	}
	return tag + "s"
}

// FamilyFor is the inverse of CollectionFor. ok is false for names that are
// not a pluralized tag.
func FamilyFor(collection string) (family string, ok bool) {
	if collection == CollectionVertices {
		return TagVertex, true
	}
	if len(collection) > 1 && collection[len(collection)-1] == 's' {
		return collection[:len(collection)-1], true
	}
	return "", false
}
