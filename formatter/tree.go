package formatter

import (
	"io"
	"os"
	"strings"

	"github.com/theoremus-urban-solutions/itinerary-turnback/itinerary"
)

// WriteResolvedXML writes the resolved itinerary tree as tab-indented XML.
// Paths, routes and vertices are written inline under their itinerary, so the
// output loads back as an already resolved document.
func WriteResolvedXML(w io.Writer, net *itinerary.Network) error {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<network>\n")
	b.WriteString("\t<" + itinerary.CollectionItineraries + ">\n")
	for _, it := range net.Itineraries {
		if len(it.Paths) == 0 {
			writeTag(&b, 2, itinerary.TagItinerary, true, "name", it.Name)
			continue
		}
		writeTag(&b, 2, itinerary.TagItinerary, false, "name", it.Name)
		for _, p := range it.Paths {
			writeTag(&b, 3, itinerary.TagPath, len(p.Routes) == 0,
				"name", p.Name, "documentname", p.DocumentName, "id", p.ID)
			for _, r := range p.Routes {
				writeTag(&b, 4, itinerary.TagRoute, len(r.Vertices) == 0,
					"name", r.Name, "documentname", r.DocumentName, "id", r.ID)
				for _, v := range r.Vertices {
					writeTag(&b, 5, itinerary.TagVertex, true,
						"name", v.Name, "documentname", v.DocumentName, "id", v.ID, "neighbourid", v.NeighbourID)
				}
				if len(r.Vertices) > 0 {
					closeTag(&b, 4, itinerary.TagRoute)
				}
			}
			if len(p.Routes) > 0 {
				closeTag(&b, 3, itinerary.TagPath)
			}
		}
		closeTag(&b, 2, itinerary.TagItinerary)
	}
	b.WriteString("\t</" + itinerary.CollectionItineraries + ">\n")
	b.WriteString("</network>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteResolvedXMLFile writes the resolved tree to path
func WriteResolvedXMLFile(path string, net *itinerary.Network) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteResolvedXML(f, net); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeTag writes an opening tag; attrs are name/value pairs and empty values are omitted
func writeTag(b *strings.Builder, depth int, tag string, selfClose bool, attrs ...string) {
	b.WriteString(strings.Repeat("\t", depth))
	b.WriteString("<")
	b.WriteString(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		writeAttr(b, attrs[i], attrs[i+1])
	}
	if selfClose {
		b.WriteString("/>\n")
		return
	}
	b.WriteString(">\n")
}

func closeTag(b *strings.Builder, depth int, tag string) {
	b.WriteString(strings.Repeat("\t", depth))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">\n")
}
