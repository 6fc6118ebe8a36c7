package itinerary

import (
	"errors"

	"github.com/theoremus-urban-solutions/itinerary-turnback/table"
)

// Vertex is a resolved vertex definition
type Vertex struct {
	Name         string
	DocumentName string
	ID           string
	NeighbourID  string
}

// Route is a resolved route with its vertices in document order
type Route struct {
	Name         string
	DocumentName string
	ID           string
	Vertices     []Vertex

	def *Node
}

// Path is a resolved path with its routes in document order
type Path struct {
	Name         string
	DocumentName string
	ID           string
	Routes       []Route

	def *Node
}

// Itinerary is a named, fully resolved path → route → vertex tree
type Itinerary struct {
	Name  string
	Paths []Path

	src *Node
}

// Network holds every resolved itinerary in document order
type Network struct {
	Itineraries []Itinerary
}

// Flatten resolves every itinerary of doc through idx. Paths are resolved
// first, then the routes of every resolved path, then the vertices of every
// resolved route; each pass only sees nodes produced by the previous one.
//
// A document that carries no definition collections is taken as already
// resolved and its inline tree is used as-is; a path or route reference
// without children in such a document is unresolved.
func Flatten(doc *Document, idx *Index) (*Network, error) {
	net := &Network{}
	for _, coll := range doc.Collections(CollectionItineraries) {
		for _, it := range coll.Children {
			net.Itineraries = append(net.Itineraries, Itinerary{Name: it.Name, src: it})
		}
	}
	resolve := idx.Resolve
	if doc.Resolved() {
		resolve = inline
	}

	// paths
	for i := range net.Itineraries {
		it := &net.Itineraries[i]
		for _, ref := range it.src.Children {
			def, err := resolve(ref)
			if err != nil {
				return nil, withItinerary(err, it.Name)
			}
			it.Paths = append(it.Paths, Path{Name: def.Name, DocumentName: def.DocumentName, ID: def.ID, def: def})
		}
	}
	// routes
	for i := range net.Itineraries {
		it := &net.Itineraries[i]
		for j := range it.Paths {
			p := &it.Paths[j]
			for _, ref := range p.def.Children {
				def, err := resolve(ref)
				if err != nil {
					return nil, withItinerary(err, it.Name)
				}
				p.Routes = append(p.Routes, Route{Name: def.Name, DocumentName: def.DocumentName, ID: def.ID, def: def})
			}
		}
	}
	// vertices
	for i := range net.Itineraries {
		it := &net.Itineraries[i]
		for j := range it.Paths {
			for k := range it.Paths[j].Routes {
				r := &it.Paths[j].Routes[k]
				for _, ref := range r.def.Children {
					def, err := resolve(ref)
					if err != nil {
						return nil, withItinerary(err, it.Name)
					}
					r.Vertices = append(r.Vertices, Vertex{
						Name:         def.Name,
						DocumentName: def.DocumentName,
						ID:           def.ID,
						NeighbourID:  def.NeighbourID,
					})
				}
			}
		}
	}
	return net, nil
}

// inline accepts a node of an already resolved tree as its own definition.
// A path or route without children is still a bare reference and, with no
// collection to look it up in, cannot be resolved.
func inline(n *Node) (*Node, error) {
	if n.Tag != TagVertex && len(n.Children) == 0 {
		return nil, &UnresolvedError{Key: n.Key(), Line: n.Line}
	}
	return n, nil
}

func withItinerary(err error, name string) error {
	var ue *UnresolvedError
	if errors.As(err, &ue) {
		ue.Itinerary = name
	}
	return err
}

// Rows serializes the network depth first, one row per vertex, with a
// sentinel row after every itinerary.
func (n *Network) Rows() []table.Row {
	var rows []table.Row
	for _, it := range n.Itineraries {
		for _, p := range it.Paths {
			for _, r := range p.Routes {
				for _, v := range r.Vertices {
					rows = append(rows, table.Row{
						Itinerary:    it.Name,
						Path:         p.Name,
						Route:        r.Name,
						DocumentName: v.DocumentName,
						VertexName:   v.Name,
						VertexID:     v.ID,
						NeighbourID:  v.NeighbourID,
					})
				}
			}
		}
		rows = append(rows, table.Sentinel)
	}
	return rows
}

// VertexCount returns the number of vertices across all itineraries
func (n *Network) VertexCount() int {
	c := 0
	for _, it := range n.Itineraries {
		for _, p := range it.Paths {
			for _, r := range p.Routes {
				c += len(r.Vertices)
			}
		}
	}
	return c
}
