package items

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmbeddedTable(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if table.Len() == 0 {
		t.Fatal("embedded table is empty")
	}

	entry, ok := table.Lookup("Guardian Helmet")
	if !ok {
		t.Fatal("Guardian Helmet not found")
	}
	if entry.Identifier != "HEAD_PLATE_SET3" {
		t.Errorf("Identifier = %q, want HEAD_PLATE_SET3", entry.Identifier)
	}
	if entry.EmbeddedTier != 0 {
		t.Errorf("EmbeddedTier = %d, want 0 for untiered identifier", entry.EmbeddedTier)
	}

	entry, ok = table.Lookup("Transport Mammoth")
	if !ok {
		t.Fatal("Transport Mammoth not found")
	}
	if entry.Identifier != "T8_MOUNT_MAMMOTH_TRANSPORT" {
		t.Errorf("Identifier = %q, want T8_MOUNT_MAMMOTH_TRANSPORT", entry.Identifier)
	}
	if entry.EmbeddedTier != 8 {
		t.Errorf("EmbeddedTier = %d, want 8", entry.EmbeddedTier)
	}
}

func TestLookup_Normalization(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	variants := []string{
		"guardian helmet",
		"GUARDIAN HELMET",
		"  Guardian   Helmet  ",
	}

	for _, name := range variants {
		t.Run(name, func(t *testing.T) {
			entry, ok := table.Lookup(name)
			if !ok {
				t.Fatalf("Lookup(%q) missed", name)
			}
			if entry.Name != "Guardian Helmet" {
				t.Errorf("entry.Name = %q, want canonical name", entry.Name)
			}
		})
	}

	if _, ok := table.Lookup("No Such Item"); ok {
		t.Error("Lookup of unknown name should miss")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Guardian Helmet", "guardian helmet"},
		{"  Guardian   Helmet ", "guardian helmet"},
		{"BOW", "bow"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEmbeddedTier(t *testing.T) {
	tests := []struct {
		identifier string
		want       int
	}{
		{"T8_MOUNT_MAMMOTH_TRANSPORT", 8},
		{"T1_MEAL_GRILLEDFISH", 1},
		{"HEAD_PLATE_SET3", 0},
		{"T9_NOT_A_TIER", 0},
		{"UNIQUE_MOUNT_RAM_XMAS", 0},
		{"2H_BOW", 0},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			if got := EmbeddedTier(tt.identifier); got != tt.want {
				t.Errorf("EmbeddedTier(%q) = %d, want %d", tt.identifier, got, tt.want)
			}
		})
	}
}

func TestApplyOverlay(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	overlay := filepath.Join(t.TempDir(), "items.yaml")
	content := "My Custom Item: T4_CUSTOM_THING\nGuardian Helmet: HEAD_PLATE_CUSTOM\n"
	if err := os.WriteFile(overlay, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := table.ApplyOverlay(overlay); err != nil {
		t.Fatalf("ApplyOverlay() error: %v", err)
	}

	entry, ok := table.Lookup("My Custom Item")
	if !ok {
		t.Fatal("overlay entry not found")
	}
	if entry.Identifier != "T4_CUSTOM_THING" {
		t.Errorf("Identifier = %q, want T4_CUSTOM_THING", entry.Identifier)
	}
	if entry.EmbeddedTier != 4 {
		t.Errorf("EmbeddedTier = %d, want 4", entry.EmbeddedTier)
	}

	// Overlay shadows embedded entries with the same name
	entry, ok = table.Lookup("Guardian Helmet")
	if !ok {
		t.Fatal("shadowed entry not found")
	}
	if entry.Identifier != "HEAD_PLATE_CUSTOM" {
		t.Errorf("Identifier = %q, want overlay value HEAD_PLATE_CUSTOM", entry.Identifier)
	}
}

func TestApplyOverlay_MissingFile(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if err := table.ApplyOverlay(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing overlay file")
	}
}

func TestParseCSV(t *testing.T) {
	data := `
# comment
Bow, 2H_BOW

Transport Mammoth, T8_MOUNT_MAMMOTH_TRANSPORT
incomplete row
`
	entries, err := parseCSV(data)
	if err != nil {
		t.Fatalf("parseCSV() error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries["bow"].Identifier != "2H_BOW" {
		t.Errorf("bow identifier = %q", entries["bow"].Identifier)
	}
}
