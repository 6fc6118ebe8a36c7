// Package turnback detects itineraries whose vehicle revisits a corridor.
//
// Every flat table row contributes a visited pair (documentName, vertexID)
// and a neighbour pair (documentName, neighbourID). At the end of an
// itinerary group the neighbour at position i is searched for among the
// visited pairs from position i onwards; any hit marks the group a turnback.
// Pairs are compared with their documentName so that vertices sharing an id
// on different corridors never match.
package turnback
