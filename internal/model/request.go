package model

import (
	"fmt"

	ioutils "github.com/albiontools/icon-downloader/internal/io"
)

// Quality is an item quality level, 1 (Common) through 5 (Masterpiece).
type Quality int

const (
	QualityCommon Quality = iota + 1
	QualityGood
	QualityOutstanding
	QualityExcellent
	QualityMasterpiece
)

// Word returns the display word for the quality level.
//
// Common returns an empty string because it is never appended to
// filenames; unknown values fall back to their numeric form.
func (q Quality) Word() string {
	switch q {
	case QualityCommon:
		return ""
	case QualityGood:
		return "Good"
	case QualityOutstanding:
		return "Outstanding"
	case QualityExcellent:
		return "Excellent"
	case QualityMasterpiece:
		return "Masterpiece"
	default:
		return fmt.Sprintf("%d", int(q))
	}
}

// Valid reports whether the quality is in the supported 1-5 range.
func (q Quality) Valid() bool {
	return q >= QualityCommon && q <= QualityMasterpiece
}

// Tier bounds for Albion items. Identifiers may carry the tier as a
// "T<n>_" prefix; untiered identifiers need a tier supplied per line.
const (
	MinTier = 1
	MaxTier = 8

	MinEnchant = 0
	MaxEnchant = 4
)

// IconRequest is a fully resolved icon download request.
//
// An IconRequest is produced by the resolver once a line has been
// matched against the item table and all fields validated. It is
// immutable after construction and deterministically maps to one CDN
// URL and one local filename:
//
//	req := &IconRequest{
//		DisplayName: "Cleric Robe",
//		Identifier:  "ARMOR_CLOTH_SET2",
//		Tier:        6,
//		Enchant:     1,
//		Quality:     QualityExcellent,
//	}
//	req.URL(baseURL) // https://render.albiononline.com/v1/item/T6_ARMOR_CLOTH_SET2@1.png?quality=4
//	req.FileName()   // "Cleric Robe 6.1 Excellent.png"
type IconRequest struct {
	// DisplayName is the canonical item name, used for the filename.
	DisplayName string

	// Identifier is the raw identifier from the item table, including
	// any embedded "T<n>_" tier prefix.
	Identifier string

	// EmbeddedTier is the tier encoded in the identifier prefix,
	// or 0 when the identifier is untiered.
	EmbeddedTier int

	// Tier is the effective tier: the embedded tier when present,
	// otherwise the tier supplied on the input line.
	Tier int

	// Enchant is the enchantment level, 0-4.
	Enchant int

	// Quality is the item quality, 1-5.
	Quality Quality

	// TierConflict is set when the input line supplied a tier that
	// disagrees with the embedded tier. The embedded tier wins; this
	// flag only drives a warning.
	TierConflict bool
}

// HasEmbeddedTier reports whether the identifier already encodes its tier.
func (r *IconRequest) HasEmbeddedTier() bool {
	return r.EmbeddedTier != 0
}

// urlIdentifier builds the identifier segment of the CDN URL.
// Untiered identifiers get the effective tier prefixed; enchanted
// items carry the enchant level after an "@".
func (r *IconRequest) urlIdentifier() string {
	ident := r.Identifier
	if !r.HasEmbeddedTier() {
		ident = fmt.Sprintf("T%d_%s", r.Tier, r.Identifier)
	}
	if r.Enchant > 0 {
		ident = fmt.Sprintf("%s@%d", ident, r.Enchant)
	}
	return ident
}

// URL returns the CDN fetch URL for the request.
//
// The render service addresses icons as <base><identifier>.png, with a
// quality query parameter only for qualities above Common.
func (r *IconRequest) URL(baseURL string) string {
	u := baseURL + r.urlIdentifier() + ".png"
	if r.Quality > QualityCommon {
		u = fmt.Sprintf("%s?quality=%d", u, int(r.Quality))
	}
	return u
}

// FileName returns the output filename for the request.
//
// The name starts with the display name; the tier is appended only for
// untiered identifiers (tiered identifiers already name a single
// concrete item). Enchant is appended as ".<n>" when above 0 and the
// quality word when above Common:
//
//	Guardian Helmet 6.png
//	Cleric Robe 6.1 Excellent.png
//	Transport Mammoth.png
func (r *IconRequest) FileName() string {
	stem := r.DisplayName
	if !r.HasEmbeddedTier() {
		stem = fmt.Sprintf("%s %d", stem, r.Tier)
	}
	if r.Enchant > 0 {
		stem = fmt.Sprintf("%s.%d", stem, r.Enchant)
	}
	if r.Quality > QualityCommon {
		stem = fmt.Sprintf("%s %s", stem, r.Quality.Word())
	}
	return ioutils.SanitizeFileName(stem) + ".png"
}
