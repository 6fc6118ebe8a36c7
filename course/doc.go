// Package course loads course (timetable) tables and cross-references
// turnback itineraries against them.
//
// A course table lists one course per row with at least an itinerary column
// and a course id column; other columns are ignored. Rows are expected to
// be grouped by itinerary: the courses of an itinerary are the contiguous
// run of rows starting at its first occurrence.
package course
