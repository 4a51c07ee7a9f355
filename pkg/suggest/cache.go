package suggest

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
)

// CandidateCache remembers the candidate sets of recently queried words.
//
// A cache is tied to one dictionary and is thrown away with it on reload.
type CandidateCache struct {
	entries     map[string][]string
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	misses      int64
	maxWords    int
	mu          sync.Mutex
}

// NewCandidateCache creates a cache holding at most maxWords entries.
func NewCandidateCache(maxWords int) *CandidateCache {
	return &CandidateCache{
		entries:    make(map[string][]string, maxWords),
		accessTime: make(map[string]int64, maxWords),
		maxWords:   maxWords,
	}
}

// Get returns the cached candidates of word. The slice must not be modified.
func (cc *CandidateCache) Get(word string) ([]string, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cands, ok := cc.entries[word]
	if !ok {
		cc.misses++
		return nil, false
	}
	cc.hits++
	cc.markAccessed(word)
	return cands, true
}

// Put stores the candidates of word, evicting the least recently used entry when full.
func (cc *CandidateCache) Put(word string, cands []string) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if cc.maxWords <= 0 {
		return
	}
	if _, exists := cc.entries[word]; !exists && len(cc.entries) >= cc.maxWords {
		cc.evictLRU()
	}
	cc.entries[word] = cands
	cc.markAccessed(word)
}

// Len returns the number of cached words.
func (cc *CandidateCache) Len() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return len(cc.entries)
}

// Stats returns the cache size, capacity, hits and misses.
func (cc *CandidateCache) Stats() map[string]int {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	return map[string]int{
		"cachedWords":    len(cc.entries),
		"maxCachedWords": cc.maxWords,
		"cacheHits":      int(cc.hits),
		"cacheMisses":    int(cc.misses),
	}
}

func (cc *CandidateCache) markAccessed(word string) {
	cc.accessCount++
	cc.accessTime[word] = cc.accessCount
}

func (cc *CandidateCache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = math.MaxInt64

	for word, accessTime := range cc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestWord = word
		}
	}

	if oldestWord != "" {
		delete(cc.entries, oldestWord)
		delete(cc.accessTime, oldestWord)
		log.Debugf("Evicted '%s' from candidate cache", oldestWord)
	}
}
