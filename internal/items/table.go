package items

import (
	"bufio"
	_ "embed"
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed items.csv
var embeddedCSV string

var (
	tierPrefixRx = regexp.MustCompile(`^T([1-8])_`)
	spaceRx      = regexp.MustCompile(`\s+`)
)

// Entry is one row of the item table.
type Entry struct {
	// Name is the canonical display name as it appears in the data asset.
	Name string

	// Identifier is the raw CDN identifier, possibly "T<n>_"-prefixed.
	Identifier string

	// EmbeddedTier is the tier parsed from the identifier prefix,
	// or 0 for untiered identifiers.
	EmbeddedTier int
}

// Table is an immutable name-to-identifier mapping.
//
// The embedded data asset is parsed once at startup via Load; lookups
// are pure and normalized, so "guardian  helmet" and "Guardian Helmet"
// resolve to the same entry. An optional user overlay can shadow or
// extend the embedded entries.
type Table struct {
	entries map[string]Entry
}

// NormalizeName returns the lookup key for an item name: trimmed,
// internal whitespace collapsed, case folded.
func NormalizeName(name string) string {
	return strings.ToLower(spaceRx.ReplaceAllString(strings.TrimSpace(name), " "))
}

// EmbeddedTier returns the tier encoded in an identifier's "T<n>_"
// prefix, or 0 when the identifier is untiered.
func EmbeddedTier(identifier string) int {
	m := tierPrefixRx.FindStringSubmatch(identifier)
	if m == nil {
		return 0
	}
	tier, _ := strconv.Atoi(m[1])
	return tier
}

// Load parses the embedded item data into a Table.
//
// Returns an error if the asset parses to an empty mapping, which would
// make every lookup fail.
func Load() (*Table, error) {
	entries, err := parseCSV(embeddedCSV)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded item data: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("embedded item data is empty")
	}
	return &Table{entries: entries}, nil
}

// ApplyOverlay merges a user-supplied YAML file of name: identifier
// pairs over the table. Overlay entries shadow embedded entries with
// the same normalized name.
func (t *Table) ApplyOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var overlay map[string]string
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay %s: %w", path, err)
	}

	for name, ident := range overlay {
		name = strings.TrimSpace(name)
		ident = strings.TrimSpace(ident)
		if name == "" || ident == "" {
			continue
		}
		t.entries[NormalizeName(name)] = Entry{
			Name:         name,
			Identifier:   ident,
			EmbeddedTier: EmbeddedTier(ident),
		}
	}

	return nil
}

// Lookup finds the entry for an item name. The name is normalized
// before matching.
func (t *Table) Lookup(name string) (Entry, bool) {
	entry, ok := t.entries[NormalizeName(name)]
	return entry, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// parseCSV parses "Name, IDENTIFIER" lines into an entry map.
// Blank lines and lines starting with '#' are skipped; rows with fewer
// than two fields are ignored.
func parseCSV(data string) (map[string]Entry, error) {
	var cleaned []string
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cleaned = append(cleaned, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	entries := make(map[string]Entry, len(cleaned))
	if len(cleaned) == 0 {
		return entries, nil
	}

	rdr := csv.NewReader(strings.NewReader(strings.Join(cleaned, "\n")))
	rdr.FieldsPerRecord = -1
	rows, err := rdr.ReadAll()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		ident := strings.TrimSpace(row[1])
		if name == "" || ident == "" {
			continue
		}
		entries[NormalizeName(name)] = Entry{
			Name:         name,
			Identifier:   ident,
			EmbeddedTier: EmbeddedTier(ident),
		}
	}

	return entries, nil
}
