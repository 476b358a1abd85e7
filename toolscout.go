// Package toolscout extracts structured tool listings from directory
// websites, normalizes generic pages into text, links and videos, and
// renders the results for a human reader.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, rod/).
package toolscout
