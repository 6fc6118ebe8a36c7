// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The package supports multiple named datasets (itinerary document, course
// table and output locations) and allows dataset selection by name.
package config
