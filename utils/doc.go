// Package utils provides internal utility functions for the turnback check.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Elapsed time formatting
//   - Progress milestone computation
package utils
