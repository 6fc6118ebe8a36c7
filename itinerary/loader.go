package itinerary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/xsd/pkg/xmlstream"
)

// ErrNoRoot is returned for a document without a root element
var ErrNoRoot = errors.New("itinerary document has no root element")

// LoadOptions controls preprocessing applied while the document is read
type LoadOptions struct {
	// PruneTags are dropped together with their subtrees wherever they appear
	PruneTags []string
	// TagAliases renames tags, e.g. stationvertex -> vertex
	TagAliases map[string]string
}

// DefaultLoadOptions prunes shuntings, edges and aspects and treats
// stationvertex as vertex.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		PruneTags:  []string{"shuntings", "edges", "aspects"},
		TagAliases: map[string]string{"stationvertex": TagVertex},
	}
}

func (o LoadOptions) pruned(tag string) bool {
	for _, p := range o.PruneTags {
		if p == tag {
			return true
		}
	}
	return false
}

func (o LoadOptions) alias(tag string) string {
	if a, ok := o.TagAliases[tag]; ok {
		return a
	}
	return tag
}

// LoadFile opens and parses an itinerary document
func LoadFile(path string, opts LoadOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := LoadDocument(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadDocument parses an itinerary document from r
func LoadDocument(r io.Reader, opts LoadOptions) (*Document, error) {
	dec, err := xmlstream.NewStringReader(r)
	if err != nil {
		return nil, err
	}
	var root *Node
	var stack []*Node
	for {
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse itinerary document: %w", err)
		}
		switch ev.Kind {
		case xmlstream.EventStartElement:
			tag := ev.Name.Local
			if opts.pruned(tag) {
				if err := dec.SkipSubtree(); err != nil {
					return nil, fmt.Errorf("parse itinerary document: %w", err)
				}
				continue
			}
			n := &Node{Tag: opts.alias(tag), Line: ev.Line}
			for _, a := range ev.Attrs {
				setAttr(n, a.LocalName(), a.Value())
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("unexpected element %s after document end", tag)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xmlstream.EventEndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected end element %s", ev.Name.Local)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	if len(stack) != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return &Document{Root: root}, nil
}

// setAttr copies the attributes the check uses; keys are matched without case
// since the source format writes them lower-case.
func setAttr(n *Node, key, value string) {
	switch strings.ToLower(key) {
	case "name":
		n.Name = value
	case "documentname":
		n.DocumentName = value
	case "id":
		n.ID = value
	case "neighbourid":
		n.NeighbourID = value
	}
}
