package store

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// SlugIndex maps portfolio slugs to project ids. A Bloom filter answers the
// common "no such slug" case without touching the map; it is rebuilt on Load
// because Bloom filters cannot forget entries.
type SlugIndex struct {
	ids               map[string]string
	bloom             *bloom.BloomFilter
	mutex             sync.RWMutex
	capacity          uint
	falsePositiveRate float64
}

// NewSlugIndex creates an index sized for capacity slugs.
func NewSlugIndex(capacity uint, falsePositiveRate float64) *SlugIndex {
	if capacity == 0 {
		capacity = 1
	}
	return &SlugIndex{
		ids:               make(map[string]string),
		bloom:             bloom.NewWithEstimates(capacity, falsePositiveRate),
		capacity:          capacity,
		falsePositiveRate: falsePositiveRate,
	}
}

// Lookup returns the id stored for slug.
func (si *SlugIndex) Lookup(slug string) (string, bool) {
	si.mutex.RLock()
	defer si.mutex.RUnlock()

	if !si.bloom.TestString(slug) {
		return "", false
	}

	id, exists := si.ids[slug]
	return id, exists
}

// Add indexes slug for id. Slugs are not unique: the latest writer wins.
func (si *SlugIndex) Add(slug, id string) {
	if slug == "" {
		return
	}

	si.mutex.Lock()
	defer si.mutex.Unlock()

	si.ids[slug] = id
	si.bloom.AddString(slug)
}

// Remove drops slug if it still points at id.
func (si *SlugIndex) Remove(slug, id string) {
	si.mutex.Lock()
	defer si.mutex.Unlock()

	if current, exists := si.ids[slug]; exists && current == id {
		delete(si.ids, slug)
	}
}

// Load clears the index and indexes the given slug→id pairs.
func (si *SlugIndex) Load(entries map[string]string) {
	si.mutex.Lock()
	defer si.mutex.Unlock()

	capacity := si.capacity
	if n := uint(len(entries)); n > capacity {
		capacity = n
	}

	si.ids = make(map[string]string, len(entries))
	si.bloom = bloom.NewWithEstimates(capacity, si.falsePositiveRate)
	for slug, id := range entries {
		if slug == "" {
			continue
		}
		si.ids[slug] = id
		si.bloom.AddString(slug)
	}
}
