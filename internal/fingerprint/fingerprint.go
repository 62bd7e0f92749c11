// Package fingerprint derives stable content signatures from tenancy documents.
// A fingerprint combines a digest of the normalized text with a coarse
// signature (key phrases and structural tags) used for near-duplicate
// matching inside a jurisdiction/document-type partition.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxKeyPhrases caps the number of phrases retained per document.
	MaxKeyPhrases = 20
	// MaxPhrasesPerPattern caps the matches retained for a single pattern.
	MaxPhrasesPerPattern = 3

	shortDocumentChars  = 3000
	mediumDocumentChars = 10000
)

// Size class tags.
const (
	SizeShort  = "short"
	SizeMedium = "medium"
	SizeLong   = "long"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Partition identifies the jurisdiction/document-type space a fingerprint belongs to.
type Partition struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
}

// String renders the partition as "category:subCategory".
func (p Partition) String() string {
	return p.Category + ":" + p.SubCategory
}

// Fingerprint is the derived signature of a document.
type Fingerprint struct {
	ContentHash        string   `json:"content_hash"`
	Length             int      `json:"length"`
	KeyPhrases         []string `json:"key_phrases"`
	StructuralElements []string `json:"structural_elements"`
	Category           string   `json:"category"`
	SubCategory        string   `json:"sub_category"`
}

// Generate computes the fingerprint of text within the given partition.
// It is a pure function of its inputs; blank text yields a degenerate fingerprint.
func Generate(text, category, subCategory string) Fingerprint {
	return Fingerprint{
		ContentHash:        Hash(text),
		Length:             utf8.RuneCountInString(text),
		KeyPhrases:         ExtractKeyPhrases(text),
		StructuralElements: ExtractStructure(text),
		Category:           category,
		SubCategory:        subCategory,
	}
}

// Hash returns the hex SHA-256 digest of the normalized text.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(Normalize(text)))
	return hex.EncodeToString(sum[:])
}

// Normalize lowercases text, collapses whitespace runs to one space and trims.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.ToLower(text), " "))
}

// Partition returns the partition the fingerprint belongs to.
func (f Fingerprint) Partition() Partition {
	return Partition{Category: f.Category, SubCategory: f.SubCategory}
}

// SizeClass returns the size tag for a character count.
func SizeClass(length int) string {
	switch {
	case length < shortDocumentChars:
		return SizeShort
	case length < mediumDocumentChars:
		return SizeMedium
	default:
		return SizeLong
	}
}

// Jaccard returns |a ∩ b| / |a ∪ b| over the distinct values of a and b.
// Two empty inputs score 0 so that signature-less documents never match.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}

	union := len(set)
	intersection := 0
	counted := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, dup := counted[v]; dup {
			continue
		}
		counted[v] = struct{}{}
		if _, ok := set[v]; ok {
			intersection++
		} else {
			union++
		}
	}

	return float64(intersection) / float64(union)
}
