// Package formatter provides report sinks and XML serialization for turnback checks.
//
// This package is organized into:
// - wrapper.go: Report format selection and file output
// - xlsx.go: Spreadsheet report (the default)
// - csv.go: CSV report
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
// - tree.go: Resolved itinerary tree as indented XML
//
// XML is written manually for precise control over output format.
package formatter
