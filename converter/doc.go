// Package converter is the main entry point for the itinerary turnback check.
//
// This package ties the itinerary document, the flat table and the course table
// together and produces a Report with one row per itinerary.
//
// # Overview
//
// A run goes through the following stages:
//   - Flatten: load the itinerary XML, index the paths, routes and vertices
//     collections, resolve every itinerary and extract the flat table
//   - Handoff: write the flat table to the configured intermediate artifact
//     (CSV or protobuf snapshot) and read it back, or keep it in memory
//   - Check: detect turnback itineraries and look up their course ids
//
// # Usage
//
//	cfg, _ := config.Load("config.yml")
//	in, out := cfg.SelectDataset("")
//
//	courses, _ := course.LoadFile(in.CourseTable, course.LoadOptions{})
//	f, _ := os.Open(in.ItineraryXML)
//	defer f.Close()
//
//	conv := converter.NewConverter(converter.OptionsFromConfig(cfg, out), logger)
//	report, _, err := conv.Run(converter.Sources{Document: f, Name: in.ItineraryXML, Courses: courses})
//	if err != nil {
//	    return err
//	}
//	conv.Warnings.LogAll(conv.Logger, in.ItineraryXML)
//
// The stages can also be called on their own, which is what the flatten and
// check commands do.
//
// # Warnings
//
// Non-fatal findings (duplicate definitions, itineraries without vertices,
// repeated itinerary names, turnbacks missing from the course table) are
// collected by a WarningAggregator and logged once per type at the end.
// Unresolved references are fatal and returned as errors.
//
// # Thread Safety
//
// Converter instances are NOT thread-safe. Use one converter per run.
package converter
