// Package items holds the static Albion Online item table: a mapping
// from canonical item names to the raw identifiers the render CDN uses
// to address icon assets.
//
// The table ships embedded in the binary as a CSV asset and is parsed
// once at startup:
//
//	table, err := items.Load()
//	entry, ok := table.Lookup("Guardian Helmet")
//
// Lookups are normalized (case- and whitespace-insensitive). Some
// identifiers already carry their tier as a "T<n>_" prefix; Entry
// exposes that as EmbeddedTier so the resolver never re-parses it.
//
// A user overlay file (YAML name: identifier pairs) can be merged over
// the embedded data with ApplyOverlay to add items without rebuilding.
package items
