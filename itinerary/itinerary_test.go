package itinerary

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/itinerary-turnback/table"
)

func fixturePath(name string) string {
	return filepath.Join("..", "testdata", name)
}

func loadFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := LoadFile(fixturePath("itinerary.xml"), DefaultLoadOptions())
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}
	return doc
}

func TestLoadDocument_Preprocessing(t *testing.T) {
	doc := loadFixture(t)

	if doc.Root.Tag != "network" {
		t.Errorf("expected root tag network, got %s", doc.Root.Tag)
	}
	for _, tag := range []string{"shuntings", "edges", "aspects"} {
		if n := len(doc.Collections(tag)); n != 0 {
			t.Errorf("%s should be pruned, found %d", tag, n)
		}
	}

	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Tag == "stationvertex" {
			t.Errorf("stationvertex should be renamed to vertex (line %d)", n.Line)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(doc.Root)

	its := doc.Collections(CollectionItineraries)
	if len(its) != 1 || len(its[0].Children) != 5 {
		t.Fatalf("expected 5 itineraries, got %+v", its)
	}
	ref := its[0].Children[0].Children[0]
	if ref.Tag != TagPath || ref.Name != "P1" || ref.DocumentName != "C1" || ref.ID != "100" {
		t.Errorf("unexpected path reference: %+v", ref)
	}
}

func TestLoadDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrNoRoot},
		{"comment only", "<!-- nothing -->", ErrNoRoot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDocument(strings.NewReader(tt.in), DefaultLoadOptions())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := LoadDocument(strings.NewReader("<network><itineraries></network>"), DefaultLoadOptions()); err == nil {
		t.Error("mismatched tags should fail")
	}
}

func TestLoadDocument_AttributeKeysIgnoreCase(t *testing.T) {
	doc, err := LoadDocument(strings.NewReader(`<r><vertices><vertex Name="A" documentName="C" ID="1" neighbourId="2"/></vertices></r>`), LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	v := doc.Root.Children[0].Children[0]
	if v.Name != "A" || v.DocumentName != "C" || v.ID != "1" || v.NeighbourID != "2" {
		t.Errorf("unexpected attributes: %+v", v)
	}
}

func TestCollectionFor(t *testing.T) {
	tests := []struct{ tag, want string }{
		{TagVertex, CollectionVertices},
		{TagRoute, CollectionRoutes},
		{TagPath, CollectionPaths},
		{TagItinerary, CollectionItineraries},
	}
	for _, tt := range tests {
		if got := CollectionFor(tt.tag); got != tt.want {
			t.Errorf("CollectionFor(%s): expected %s, got %s", tt.tag, tt.want, got)
		}
		if fam, ok := FamilyFor(tt.want); !ok || fam != tt.tag {
			t.Errorf("FamilyFor(%s): expected %s, got %s", tt.want, tt.tag, fam)
		}
	}
	if _, ok := FamilyFor("network"); ok {
		t.Error("network is not a collection name")
	}
}

func TestIndex_Resolve(t *testing.T) {
	idx := BuildIndex(loadFixture(t))

	if got := idx.Count(TagVertex); got != 6 {
		t.Errorf("expected 6 vertex definitions, got %d", got)
	}
	if got := idx.Count(TagPath); got != 3 {
		t.Errorf("expected 3 path definitions, got %d", got)
	}

	def, err := idx.Resolve(&Node{Tag: TagVertex, Name: "Stop A", DocumentName: "C1", ID: "1"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if def.NeighbourID != "101" {
		t.Errorf("duplicate definitions should resolve to the first, got neighbour %s", def.NeighbourID)
	}
	if d := idx.Duplicates(); len(d) != 1 || d[0].ID != "1" {
		t.Errorf("expected one duplicate key, got %v", d)
	}

	// same id, other corridor
	if _, err := idx.Resolve(&Node{Tag: TagVertex, Name: "Stop A", DocumentName: "C2", ID: "1"}); !errors.Is(err, ErrUnresolved) {
		t.Errorf("expected ErrUnresolved, got %v", err)
	}
	// same triple, other family
	if _, err := idx.Resolve(&Node{Tag: TagRoute, Name: "Stop A", DocumentName: "C1", ID: "1"}); !errors.Is(err, ErrUnresolved) {
		t.Errorf("expected ErrUnresolved across families, got %v", err)
	}
}

func expectedRows() []table.Row {
	a := table.Row{Itinerary: "R1-A", Path: "P1", Route: "RT1", DocumentName: "C1", VertexName: "Stop A", VertexID: "1", NeighbourID: "101"}
	return []table.Row{
		a,
		{Itinerary: "R1-A", Path: "P1", Route: "RT1", DocumentName: "C1", VertexName: "Stop B", VertexID: "2", NeighbourID: "102"},
		{Itinerary: "R1-A", Path: "P1", Route: "RT2", DocumentName: "C1", VertexName: "Stop B'", VertexID: "102", NeighbourID: "2"},
		{Itinerary: "R1-A", Path: "P1", Route: "RT2", DocumentName: "C1", VertexName: "Stop A'", VertexID: "101", NeighbourID: "1"},
		table.Sentinel,
		{Itinerary: "R1-B", Path: "P2", Route: "RT3", DocumentName: "C1", VertexName: "Stop B", VertexID: "2", NeighbourID: "102"},
		{Itinerary: "R1-B", Path: "P2", Route: "RT3", DocumentName: "C1", VertexName: "Stop C", VertexID: "3", NeighbourID: "103"},
		table.Sentinel,
		{Itinerary: "R1-C", Path: "P2", Route: "RT3", DocumentName: "C1", VertexName: "Stop B", VertexID: "2", NeighbourID: "102"},
		{Itinerary: "R1-C", Path: "P2", Route: "RT3", DocumentName: "C1", VertexName: "Stop C", VertexID: "3", NeighbourID: "103"},
		{Itinerary: "R1-C", Path: "P3", Route: "RT4", DocumentName: "C2", VertexName: "Yard", VertexID: "103", NeighbourID: "3"},
		table.Sentinel,
		table.Sentinel,
		{Itinerary: "R1-E", Path: "P1", Route: "RT1", DocumentName: "C1", VertexName: "Stop A", VertexID: "1", NeighbourID: "101"},
		{Itinerary: "R1-E", Path: "P1", Route: "RT1", DocumentName: "C1", VertexName: "Stop B", VertexID: "2", NeighbourID: "102"},
		{Itinerary: "R1-E", Path: "P1", Route: "RT2", DocumentName: "C1", VertexName: "Stop B'", VertexID: "102", NeighbourID: "2"},
		{Itinerary: "R1-E", Path: "P1", Route: "RT2", DocumentName: "C1", VertexName: "Stop A'", VertexID: "101", NeighbourID: "1"},
		table.Sentinel,
	}
}

func TestFlatten_Rows(t *testing.T) {
	doc := loadFixture(t)
	net, err := Flatten(doc, BuildIndex(doc))
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	rows := net.Rows()
	want := expectedRows()
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}

	if got := table.CountSentinels(rows); got != len(net.Itineraries) {
		t.Errorf("expected one sentinel per itinerary (%d), got %d", len(net.Itineraries), got)
	}
	if net.VertexCount() != 13 {
		t.Errorf("expected 13 vertices, got %d", net.VertexCount())
	}
	t.Logf("✓ Flattened %d itineraries into %d rows", len(net.Itineraries), len(rows))
}

func TestFlatten_DoesNotModifyDocument(t *testing.T) {
	doc := loadFixture(t)
	before := len(doc.Collections(CollectionItineraries)[0].Children[0].Children)
	if _, err := Flatten(doc, BuildIndex(doc)); err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	it := doc.Collections(CollectionItineraries)[0].Children[0]
	if len(it.Children) != before || len(it.Children[0].Children) != 0 {
		t.Error("flattening should leave the reference nodes untouched")
	}
	if len(doc.Collections(CollectionVertices)) != 1 {
		t.Error("definition collections should stay in the document")
	}
}

func TestFlatten_Unresolved(t *testing.T) {
	doc, err := LoadFile(fixturePath("broken.xml"), DefaultLoadOptions())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	_, err = Flatten(doc, BuildIndex(doc))
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	var ue *UnresolvedError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnresolvedError, got %T", err)
	}
	if ue.Itinerary != "R9" || ue.Key.Family != TagRoute || ue.Key.ID != "404" {
		t.Errorf("unexpected error detail: %+v", ue)
	}
	if !strings.Contains(err.Error(), "<routes>") {
		t.Errorf("error should name the collection searched: %v", err)
	}
}

const resolvedXML = `<network>
	<itineraries>
		<itinerary name="R1-B">
			<path name="P2" documentname="C1" id="101">
				<route name="RT3" documentname="C1" id="12">
					<vertex name="Stop B" documentname="C1" id="2" neighbourid="102"/>
					<vertex name="Stop C" documentname="C1" id="3" neighbourid="103"/>
				</route>
			</path>
		</itinerary>
	</itineraries>
</network>`

func TestFlatten_ResolvedDocumentIsNoOp(t *testing.T) {
	doc, err := LoadDocument(strings.NewReader(resolvedXML), DefaultLoadOptions())
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if !doc.Resolved() {
		t.Fatal("document without definition collections should be resolved")
	}
	net, err := Flatten(doc, BuildIndex(doc))
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	want := expectedRows()[5:8]
	if got := net.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestFlatten_BareReferenceWithoutCollections(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		key  Key
	}{
		{
			name: "path reference",
			xml: `<network>
	<itineraries>
		<itinerary name="R1">
			<path name="P1" documentname="C1" id="1"/>
		</itinerary>
	</itineraries>
</network>`,
			key: Key{Family: TagPath, Name: "P1", DocumentName: "C1", ID: "1"},
		},
		{
			name: "route reference",
			xml: `<network>
	<itineraries>
		<itinerary name="R1">
			<path name="P1" documentname="C1" id="1">
				<route name="RT1" documentname="C1" id="10"/>
			</path>
		</itinerary>
	</itineraries>
</network>`,
			key: Key{Family: TagRoute, Name: "RT1", DocumentName: "C1", ID: "10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := LoadDocument(strings.NewReader(tt.xml), DefaultLoadOptions())
			if err != nil {
				t.Fatalf("LoadDocument: %v", err)
			}
			net, err := Flatten(doc, BuildIndex(doc))
			if !errors.Is(err, ErrUnresolved) {
				t.Fatalf("expected ErrUnresolved, got err=%v net=%+v", err, net)
			}
			var ue *UnresolvedError
			if !errors.As(err, &ue) {
				t.Fatalf("expected *UnresolvedError, got %T", err)
			}
			if ue.Itinerary != "R1" {
				t.Errorf("expected itinerary R1, got %q", ue.Itinerary)
			}
			if ue.Key != tt.key {
				t.Errorf("expected key %v, got %v", tt.key, ue.Key)
			}
		})
	}
}
