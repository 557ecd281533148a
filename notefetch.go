// Package notefetch turns arbitrary web pages into structured note content.
// It fetches a page, extracts its metadata, and linearizes the main content
// into an ordered list of blocks that a block-based editor can re-hydrate.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package notefetch
