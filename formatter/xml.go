package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/itinerary-turnback/converter"
	"github.com/theoremus-urban-solutions/itinerary-turnback/utils"
)

// BuildXML serializes a report to XML
func BuildXML(r *converter.Report) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("<TurnbackCheck")
	writeAttr(&b, "runId", r.RunID)
	writeAttr(&b, "generatedAt", utils.Iso8601FromTime(r.GeneratedAt))
	writeAttr(&b, "source", r.Source)
	b.WriteString(">")

	b.WriteString("<Stats>")
	writeIntElement(&b, "Itineraries", r.Stats.Itineraries)
	writeIntElement(&b, "Rows", r.Stats.Rows)
	writeIntElement(&b, "Vertices", r.Stats.Vertices)
	writeIntElement(&b, "Turnbacks", r.Stats.Turnbacks)
	writeIntElement(&b, "NotListed", r.Stats.NotListed)
	b.WriteString("</Stats>")

	b.WriteString("<Rows>")
	for _, row := range r.Rows {
		b.WriteString("<Row>")
		writeElement(&b, "Itinerary", row.Itinerary)
		// empty cells are kept so every row has the three columns
		writeElement(&b, "Turnback", row.Turnback)
		writeElement(&b, "CourseID", row.CourseID)
		b.WriteString("</Row>")
	}
	b.WriteString("</Rows>")
	b.WriteString("</TurnbackCheck>")
	return []byte(b.String())
}

func writeElement(b *strings.Builder, name, value string) {
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func writeIntElement(b *strings.Builder, name string, v int) {
	writeElement(b, name, strconv.Itoa(v))
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(xmlEscape(value))
	b.WriteString(`"`)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return escaper.Replace(s)
}
