package resolve

import (
	"errors"
	"testing"

	"github.com/albiontools/icon-downloader/internal/items"
	"github.com/albiontools/icon-downloader/internal/model"
	"github.com/albiontools/icon-downloader/internal/request"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	table, err := items.Load()
	if err != nil {
		t.Fatalf("items.Load() error: %v", err)
	}
	return NewResolver(table)
}

func parsed(name string, tier, enchant, quality int) *request.ParsedLine {
	return &request.ParsedLine{Name: name, Tier: tier, Enchant: enchant, Quality: quality}
}

func TestResolve_UntieredIdentifier(t *testing.T) {
	r := newResolver(t)

	req, err := r.Resolve(parsed("Guardian Helmet", 6, request.FieldUnset, request.FieldUnset))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if req.Identifier != "HEAD_PLATE_SET3" {
		t.Errorf("Identifier = %q", req.Identifier)
	}
	if req.Tier != 6 {
		t.Errorf("Tier = %d, want user tier 6", req.Tier)
	}
	if req.HasEmbeddedTier() {
		t.Error("HasEmbeddedTier() should be false")
	}
	if req.Enchant != 0 {
		t.Errorf("Enchant = %d, want default 0", req.Enchant)
	}
	if req.Quality != model.QualityCommon {
		t.Errorf("Quality = %d, want default Common", req.Quality)
	}
	if req.TierConflict {
		t.Error("unexpected tier conflict")
	}
	if got := req.FileName(); got != "Guardian Helmet 6.png" {
		t.Errorf("FileName() = %q, want %q", got, "Guardian Helmet 6.png")
	}
}

func TestResolve_EmbeddedTierWins(t *testing.T) {
	r := newResolver(t)

	// Supplied tier 5 disagrees with the T8_ prefix: warn, use embedded.
	req, err := r.Resolve(parsed("Transport Mammoth", 5, request.FieldUnset, request.FieldUnset))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if !req.TierConflict {
		t.Error("expected TierConflict")
	}
	if req.Tier != 8 {
		t.Errorf("Tier = %d, want embedded tier 8", req.Tier)
	}
	if got := req.FileName(); got != "Transport Mammoth.png" {
		t.Errorf("FileName() = %q, want tierless %q", got, "Transport Mammoth.png")
	}
}

func TestResolve_EmbeddedTierMatchingUserTier(t *testing.T) {
	r := newResolver(t)

	req, err := r.Resolve(parsed("Transport Mammoth", 8, request.FieldUnset, request.FieldUnset))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if req.TierConflict {
		t.Error("matching tier should not conflict")
	}
}

func TestResolve_TierOmittedWithEmbeddedTier(t *testing.T) {
	r := newResolver(t)

	req, err := r.Resolve(parsed("Transport Mammoth", request.FieldUnset, request.FieldUnset, request.FieldUnset))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if req.Tier != 8 || req.TierConflict {
		t.Errorf("Tier = %d, TierConflict = %v", req.Tier, req.TierConflict)
	}
}

func TestResolve_Failures(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name string
		line *request.ParsedLine
		kind Kind
	}{
		{
			name: "unknown name",
			line: parsed("No Such Item", 4, request.FieldUnset, request.FieldUnset),
			kind: KindUnknownName,
		},
		{
			name: "missing tier for untiered identifier",
			line: parsed("Guardian Helmet", request.FieldUnset, request.FieldUnset, request.FieldUnset),
			kind: KindMissingTier,
		},
		{
			name: "tier above range",
			line: parsed("Guardian Helmet", 9, request.FieldUnset, request.FieldUnset),
			kind: KindInvalidTier,
		},
		{
			name: "tier below range",
			line: parsed("Guardian Helmet", 0, request.FieldUnset, request.FieldUnset),
			kind: KindInvalidTier,
		},
		{
			name: "enchant above range",
			line: parsed("Guardian Helmet", 6, 5, request.FieldUnset),
			kind: KindInvalidEnchant,
		},
		{
			name: "quality above range",
			line: parsed("Guardian Helmet", 6, 0, 6),
			kind: KindInvalidQuality,
		},
		{
			name: "quality zero",
			line: parsed("Guardian Helmet", 6, 0, 0),
			kind: KindInvalidQuality,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.line)
			if err == nil {
				t.Fatal("expected failure")
			}

			var failure *Failure
			if !errors.As(err, &failure) {
				t.Fatalf("error is %T, want *Failure", err)
			}
			if failure.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", failure.Kind, tt.kind)
			}
		})
	}
}

func TestResolve_EnchantAndQuality(t *testing.T) {
	r := newResolver(t)

	req, err := r.Resolve(parsed("Cleric Robe", 6, 1, 4))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if req.Enchant != 1 {
		t.Errorf("Enchant = %d, want 1", req.Enchant)
	}
	if req.Quality != model.QualityExcellent {
		t.Errorf("Quality = %d, want Excellent", req.Quality)
	}
	if got := req.FileName(); got != "Cleric Robe 6.1 Excellent.png" {
		t.Errorf("FileName() = %q, want %q", got, "Cleric Robe 6.1 Excellent.png")
	}
}

func TestMalformed(t *testing.T) {
	err := Malformed(errors.New(`line 3: bad tier "x"`))

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("error is %T, want *Failure", err)
	}
	if failure.Kind != KindMalformedLine {
		t.Errorf("Kind = %v, want KindMalformedLine", failure.Kind)
	}
	if failure.Error() != `line 3: bad tier "x"` {
		t.Errorf("Error() = %q", failure.Error())
	}
}

func TestKind_String(t *testing.T) {
	kinds := map[Kind]string{
		KindMalformedLine:  "malformed line",
		KindUnknownName:    "unknown name",
		KindMissingTier:    "missing tier",
		KindInvalidTier:    "invalid tier",
		KindInvalidEnchant: "invalid enchant",
		KindInvalidQuality: "invalid quality",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
