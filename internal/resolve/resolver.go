package resolve

import (
	"fmt"

	"github.com/albiontools/icon-downloader/internal/items"
	"github.com/albiontools/icon-downloader/internal/model"
	"github.com/albiontools/icon-downloader/internal/request"
)

// Kind classifies a per-line resolution failure.
type Kind int

const (
	KindMalformedLine Kind = iota
	KindUnknownName
	KindMissingTier
	KindInvalidTier
	KindInvalidEnchant
	KindInvalidQuality
)

// String returns a short label for the failure kind.
func (k Kind) String() string {
	switch k {
	case KindMalformedLine:
		return "malformed line"
	case KindUnknownName:
		return "unknown name"
	case KindMissingTier:
		return "missing tier"
	case KindInvalidTier:
		return "invalid tier"
	case KindInvalidEnchant:
		return "invalid enchant"
	case KindInvalidQuality:
		return "invalid quality"
	default:
		return "unknown failure"
	}
}

// Failure is a typed per-line resolution failure. It never aborts the
// run; the fetch loop reports it and retains the line.
type Failure struct {
	Kind   Kind
	Reason string
}

func (f *Failure) Error() string {
	return f.Reason
}

func failf(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Malformed wraps a line-parsing error in the failure taxonomy, so the
// fetch loop classifies parse and resolution failures the same way.
func Malformed(err error) *Failure {
	return &Failure{Kind: KindMalformedLine, Reason: err.Error()}
}

// Resolver turns parsed lines into fully validated icon requests by
// looking names up in the item table and reconciling tiers.
type Resolver struct {
	table *items.Table
}

// NewResolver creates a Resolver over the given item table.
func NewResolver(table *items.Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve validates a parsed line against the item table.
//
// Tier reconciliation: an embedded "T<n>_" identifier tier always wins;
// a conflicting user tier only sets TierConflict on the result so the
// caller can warn. Untiered identifiers require a user tier in 1-8.
// Enchant defaults to 0 and quality to Common when omitted.
//
// Failures are returned as *Failure so the caller can classify them.
func (r *Resolver) Resolve(line *request.ParsedLine) (*model.IconRequest, error) {
	entry, ok := r.table.Lookup(line.Name)
	if !ok {
		return nil, failf(KindUnknownName, "%q not in item data", line.Name)
	}

	req := &model.IconRequest{
		DisplayName:  entry.Name,
		Identifier:   entry.Identifier,
		EmbeddedTier: entry.EmbeddedTier,
	}

	if entry.EmbeddedTier != 0 {
		req.Tier = entry.EmbeddedTier
		if line.Tier != request.FieldUnset && line.Tier != entry.EmbeddedTier {
			req.TierConflict = true
		}
	} else {
		if line.Tier == request.FieldUnset {
			return nil, failf(KindMissingTier, "%q: tier required (identifier has no T<n>_ prefix)", line.Name)
		}
		if line.Tier < model.MinTier || line.Tier > model.MaxTier {
			return nil, failf(KindInvalidTier, "%q: tier %d out of range %d-%d", line.Name, line.Tier, model.MinTier, model.MaxTier)
		}
		req.Tier = line.Tier
	}

	req.Enchant = line.Enchant
	if req.Enchant == request.FieldUnset {
		req.Enchant = 0
	}
	if req.Enchant < model.MinEnchant || req.Enchant > model.MaxEnchant {
		return nil, failf(KindInvalidEnchant, "%q: enchant %d out of range %d-%d", line.Name, req.Enchant, model.MinEnchant, model.MaxEnchant)
	}

	quality := line.Quality
	if quality == request.FieldUnset {
		quality = int(model.QualityCommon)
	}
	req.Quality = model.Quality(quality)
	if !req.Quality.Valid() {
		return nil, failf(KindInvalidQuality, "%q: quality %d out of range 1-5", line.Name, quality)
	}

	return req, nil
}
