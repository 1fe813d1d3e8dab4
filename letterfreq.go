// Package letterfreq crawls a literary website and counts how often each
// letter appears across its catalogued works, normalising Romanian
// orthography (soft c/g, ş/ţ variants, î/â) along the way.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package letterfreq
