package suggest

import (
	"io"
	"strings"
	"sync"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// DefaultCacheSize is the number of query words whose candidates are remembered.
const DefaultCacheSize = 4096

// state is everything derived from one corpus. It is replaced as a whole on reload.
type state struct {
	corrector *Corrector
	cache     *CandidateCache
}

// Engine is a spelling session: it owns the current dictionary and replaces it
// atomically when a corpus is (re)loaded. It is safe for concurrent use.
type Engine struct {
	mu        sync.RWMutex
	current   *state
	loads     int
	cacheSize int
	log       *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCacheSize sets the candidate cache capacity; 0 disables caching.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		e.cacheSize = n
	}
}

// WithLogger sets the logger used for load and reload messages.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine creates an engine with an empty dictionary.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{cacheSize: DefaultCacheSize, log: logger.New("engine")}
	for _, opt := range opts {
		opt(e)
	}
	e.current = e.newState(dictionary.Empty())
	return e
}

func (e *Engine) newState(dict *dictionary.Dictionary) *state {
	var cache *CandidateCache
	if e.cacheSize > 0 {
		cache = NewCandidateCache(e.cacheSize)
	}
	return &state{
		corrector: NewCorrector(dict, cache),
		cache:     cache,
	}
}

func (e *Engine) snapshot() *state {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// install swaps in a fully built dictionary.
func (e *Engine) install(dict *dictionary.Dictionary) {
	next := e.newState(dict)

	e.mu.Lock()
	e.current = next
	e.loads++
	e.mu.Unlock()

	e.log.Debugf("Installed dictionary from %s: %d words", dict.Source, dict.Index.Len())
}

// LoadCorpus builds a dictionary from the corpus file at path and makes it current.
// On failure it returns a *LoadError and the previous dictionary stays in use.
func (e *Engine) LoadCorpus(path string) error {
	dict, err := dictionary.Load(path)
	if err != nil {
		return newLoadError(path, err)
	}
	e.install(dict)
	return nil
}

// LoadReader is LoadCorpus for an already open corpus; name is used in errors and stats.
func (e *Engine) LoadReader(name string, r io.Reader) error {
	dict, err := dictionary.Build(name, r)
	if err != nil {
		return newLoadError(name, err)
	}
	e.install(dict)
	return nil
}

// normalize trims the input and lowercases it for lookup.
func normalize(input string) (trimmed, word string, err error) {
	trimmed = strings.TrimSpace(input)
	if trimmed == "" {
		return "", "", ErrEmptyInput
	}
	return trimmed, strings.ToLower(trimmed), nil
}

// Correct returns the best correction of input, in the same letter case as input.
// The result equals the trimmed input when it is already correct or no correction
// was found.
func (e *Engine) Correct(input string) (string, error) {
	trimmed, word, err := normalize(input)
	if err != nil {
		return "", err
	}

	corrected := e.snapshot().corrector.Correct(word)
	if corrected == word {
		return trimmed, nil
	}
	return utils.MatchCase(corrected, trimmed), nil
}

// Suggest returns up to limit known words close to input, excluding input itself.
// limit <= 0 means no limit. An empty result is not an error.
func (e *Engine) Suggest(input string, limit int) ([]Suggestion, error) {
	trimmed, word, err := normalize(input)
	if err != nil {
		return nil, err
	}

	suggestions := e.snapshot().corrector.Suggest(word)
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	for i := range suggestions {
		suggestions[i].Word = utils.MatchCase(suggestions[i].Word, trimmed)
	}
	return suggestions, nil
}

// Contains reports whether word is known to the current dictionary.
func (e *Engine) Contains(word string) bool {
	return e.snapshot().corrector.Dictionary().Index.Contains(word)
}

// MostCommon returns the n most frequent words of the current corpus.
func (e *Engine) MostCommon(n int) []dictionary.WordCount {
	return e.snapshot().corrector.Dictionary().Freqs.MostCommon(n)
}

// Source returns the name of the corpus the current dictionary was built from.
func (e *Engine) Source() string {
	return e.snapshot().corrector.Dictionary().Source
}

// Stats returns dictionary, load and cache counters for the current state.
func (e *Engine) Stats() map[string]int {
	e.mu.RLock()
	st, loads := e.current, e.loads
	e.mu.RUnlock()

	dict := st.corrector.Dictionary()
	stats := map[string]int{
		"distinctWords": dict.Index.Len(),
		"totalTokens":   dict.Freqs.Total(),
		"loads":         loads,
	}
	if st.cache != nil {
		for k, v := range st.cache.Stats() {
			stats[k] = v
		}
	}
	return stats
}
