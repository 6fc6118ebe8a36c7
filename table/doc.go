/*
Package table holds the flat itinerary table and its on-disk forms.

A flat table is an ordered list of Row values, one per visited vertex,
grouped by itinerary. Groups carry no identifier of their own: every group
is terminated by a sentinel row whose fields are all blank, so grouping is
recovered solely from sentinels.

	itinerary,path,route,documentName,vertexName,vertexID,neighbourID
	R1-A,P1,RT1,C1,Stop A,10,11
	R1-A,P1,RT1,C1,Stop B,11,12
	,,,,,,

The table can be written and re-read as CSV (the header above) or as a
protobuf snapshot, which encodes the same rows as a structpb.ListValue of
string lists.
*/
package table
