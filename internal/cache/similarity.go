package cache

import (
	"time"

	"github.com/davidbz/tenancheck/internal/fingerprint"
)

const (
	// Only entries with demonstrated reuse take part in similarity matching.
	minAccessCount = 3

	minLengthRatio    = 0.8
	recencyWindow     = 7 * 24 * time.Hour
	popularityCeiling = 5.0

	phraseWeight    = 0.7
	structureWeight = 0.3

	overlapWeight    = 0.7
	recencyWeight    = 0.2
	popularityWeight = 0.1
)

// similarity scores a stored entry against a fingerprint from the same partition.
// The boolean is false when the entry is not a candidate at all.
func similarity(fp fingerprint.Fingerprint, e *entry, now time.Time) (float64, bool) {
	if e.accessCount < minAccessCount {
		return 0, false
	}

	if lengthRatio(fp.Length, e.length) < minLengthRatio {
		return 0, false
	}

	// Dates differ between tenancies cut from one template, so they are left out.
	overlap := phraseWeight*fingerprint.Jaccard(fingerprint.TemplatePhrases(fp.KeyPhrases), e.phrases) +
		structureWeight*fingerprint.Jaccard(fp.StructuralElements, e.structure)

	return overlapWeight*overlap +
		recencyWeight*recency(e.lastAccessedAt, now) +
		popularityWeight*popularity(e.accessCount), true
}

// recency decays linearly from 1 at the last access to 0 at the end of the window.
func recency(lastAccessedAt, now time.Time) float64 {
	age := now.Sub(lastAccessedAt)
	if age <= 0 {
		return 1
	}
	if age >= recencyWindow {
		return 0
	}
	return 1 - float64(age)/float64(recencyWindow)
}

func popularity(accessCount uint64) float64 {
	return min(float64(accessCount)/popularityCeiling, 1)
}

func lengthRatio(a, b int) float64 {
	if a == 0 && b == 0 {
		return 1
	}
	if a > b {
		a, b = b, a
	}
	return float64(a) / float64(b)
}
