// Package driven defines interfaces for infrastructure the core depends
// on. These are the "driven" ports in hexagonal architecture terminology:
// the application drives them.
//
// Implementations live in internal/adapters/driven.
package driven
