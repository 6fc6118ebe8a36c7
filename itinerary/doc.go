/*
Package itinerary loads hierarchical itinerary documents and flattens them.

An itinerary document has top-level collections named after the pluralized
tag of their members:

	<root>
	  <itineraries>
	    <itinerary name="R1-A">
	      <path name="P1" documentname="C1" id="1"/>
	    </itinerary>
	  </itineraries>
	  <paths>
	    <path name="P1" documentname="C1" id="1">
	      <route name="RT1" documentname="C1" id="7"/>
	    </path>
	  </paths>
	  <routes>...</routes>
	  <vertices>...</vertices>
	</root>

Nodes nested under an itinerary are lightweight references; the fully
populated definitions live in the sibling collections. A reference is
matched to its definition on (tag family, name, documentname, id).

# Usage

	doc, err := itinerary.LoadFile("itinerary.xml", itinerary.DefaultLoadOptions())
	if err != nil {
	    return err
	}
	idx := itinerary.BuildIndex(doc)
	net, err := itinerary.Flatten(doc, idx)
	if err != nil {
	    // a reference without a definition: the document is invalid
	    return err
	}
	rows := net.Rows()

The parsed Document is never modified. Flatten builds a separate Network
through the Index in three passes (paths, then routes, then vertices), so
references are never removed or appended in place.
*/
package itinerary
