// Package adscout provides a local, CLI-based classified-ad scout.
// It fetches listing pages from classified-ad platforms, extracts a
// normalized listing record, classifies bicycle and motorcycle listings,
// stores them locally, and compares stored listings against each other.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package adscout
