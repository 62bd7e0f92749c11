package cache

import (
	"time"

	"github.com/davidbz/tenancheck/internal/fingerprint"
)

// entryOverheadBytes approximates the fixed cost of an entry's bookkeeping.
const entryOverheadBytes = 128

// Key is the exact-match index key of an entry.
type Key struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	ContentHash string `json:"content_hash"`
}

// KeyOf builds the key for a fingerprint.
func KeyOf(fp fingerprint.Fingerprint) Key {
	return Key{
		Category:    fp.Category,
		SubCategory: fp.SubCategory,
		ContentHash: fp.ContentHash,
	}
}

// Partition returns the partition the key belongs to.
func (k Key) Partition() fingerprint.Partition {
	return fingerprint.Partition{Category: k.Category, SubCategory: k.SubCategory}
}

// String renders the key as "category:subCategory:contentHash".
func (k Key) String() string {
	return k.Category + ":" + k.SubCategory + ":" + k.ContentHash
}

// entry is owned by the cache; only accessCount and lastAccessedAt change after insertion.
type entry struct {
	key            Key
	payload        []byte
	length         int
	phrases        []string
	structure      []string
	createdAt      time.Time
	lastAccessedAt time.Time
	accessCount    uint64
	ttl            time.Duration
}

func newEntry(fp fingerprint.Fingerprint, payload []byte, now time.Time, ttl time.Duration) *entry {
	return &entry{
		key:            KeyOf(fp),
		payload:        payload,
		length:         fp.Length,
		phrases:        fingerprint.TemplatePhrases(fp.KeyPhrases),
		structure:      fp.StructuralElements,
		createdAt:      now,
		lastAccessedAt: now,
		accessCount:    1,
		ttl:            ttl,
	}
}

func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.createdAt) > e.ttl
}

func (e *entry) touch(now time.Time) {
	e.accessCount++
	e.lastAccessedAt = now
}

func (e *entry) size() int64 {
	size := entryOverheadBytes + len(e.payload) + len(e.key.Category) + len(e.key.SubCategory) + len(e.key.ContentHash)
	for _, phrase := range e.phrases {
		size += len(phrase)
	}
	for _, element := range e.structure {
		size += len(element)
	}
	return int64(size)
}
