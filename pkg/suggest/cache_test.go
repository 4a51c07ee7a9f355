package suggest

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestCandidateCacheGetPut(t *testing.T) {
	cache := NewCandidateCache(4)

	if _, ok := cache.Get("helo"); ok {
		t.Fatal("expected miss on empty cache")
	}
	cache.Put("helo", []string{"hello", "help"})

	got, ok := cache.Get("helo")
	if !ok || !reflect.DeepEqual(got, []string{"hello", "help"}) {
		t.Errorf("expected cached candidates, got %v (%v)", got, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", cache.Len())
	}
}

func TestCandidateCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCandidateCache(2)
	cache.Put("a", []string{"a"})
	cache.Put("b", []string{"b"})
	cache.Get("a")
	cache.Put("c", []string{"c"})

	if _, ok := cache.Get("b"); ok {
		t.Error("expected 'b' to be evicted")
	}
	for _, word := range []string{"a", "c"} {
		if _, ok := cache.Get(word); !ok {
			t.Errorf("expected '%s' to be cached", word)
		}
	}
	if cache.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", cache.Len())
	}
}

func TestCandidateCacheUpdateDoesNotEvict(t *testing.T) {
	cache := NewCandidateCache(2)
	cache.Put("a", []string{"a"})
	cache.Put("b", []string{"b"})
	cache.Put("a", []string{"aa"})

	if _, ok := cache.Get("b"); !ok {
		t.Error("expected overwriting an entry to keep the others")
	}
	if got, _ := cache.Get("a"); !reflect.DeepEqual(got, []string{"aa"}) {
		t.Errorf("expected updated entry, got %v", got)
	}
}

func TestCandidateCacheDisabled(t *testing.T) {
	cache := NewCandidateCache(0)
	cache.Put("a", []string{"a"})
	if cache.Len() != 0 {
		t.Errorf("expected zero-capacity cache to stay empty, got %d", cache.Len())
	}
}

func TestCandidateCacheStats(t *testing.T) {
	cache := NewCandidateCache(3)
	cache.Get("x")
	cache.Put("x", []string{"x"})
	cache.Get("x")
	cache.Get("x")

	expected := map[string]int{
		"cachedWords":    1,
		"maxCachedWords": 3,
		"cacheHits":      2,
		"cacheMisses":    1,
	}
	if got := cache.Stats(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestCandidateCacheConcurrent(t *testing.T) {
	cache := NewCandidateCache(16)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				word := fmt.Sprintf("w%d", (w*31+i)%40)
				if _, ok := cache.Get(word); !ok {
					cache.Put(word, []string{word})
				}
			}
		}(w)
	}
	wg.Wait()

	if cache.Len() > 16 {
		t.Errorf("expected at most 16 entries, got %d", cache.Len())
	}
}
