// Package cli handles cmd line input for correcting words interactively, mainly for DBG and testing
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const defaultTopCount = 10

var (
	wordStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	correctedStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
)

// InputHandler reads words from stdin, one per line, and prints the correction
// and suggestions for each. Lines starting with ':' are commands, see :help.
type InputHandler struct {
	speller       suggest.ISpeller
	in            io.Reader
	out           *log.Logger
	suggestLimit  int
	maxWordLen    int
	showFrequency bool
	noFilter      bool
	requestCount  int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(speller suggest.ISpeller, limit, maxWordLen int, showFrequency, noFilter bool) *InputHandler {
	h := &InputHandler{
		speller:       speller,
		suggestLimit:  limit,
		maxWordLen:    maxWordLen,
		showFrequency: showFrequency,
		noFilter:      noFilter,
	}
	return h.WithIO(os.Stdin, os.Stderr)
}

// WithIO replaces where input is read from and output written to.
func (h *InputHandler) WithIO(in io.Reader, out io.Writer) *InputHandler {
	h.in = in
	h.out = log.NewWithOptions(out, log.Options{
		ReportTimestamp: false,
		Level:           log.GetLevel(),
	})
	return h
}

// Start begins the interface loop. It returns nil when the input is exhausted.
func (h *InputHandler) Start() error {
	h.out.Print("SpellServe CLI [BETA]")
	h.out.Print("type a word and press Enter to correct it, :help for commands (Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := h.handleCommand(line); quit {
				return nil
			}
			continue
		}
		h.handleInput(line)
	}
	return scanner.Err()
}

// handleCommand runs a ':' command and reports whether the loop should end.
func (h *InputHandler) handleCommand(line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ":q", ":quit":
		return true
	case ":help":
		h.printHelp()
	case ":load":
		h.loadCorpus(arg)
	case ":stats":
		h.printStats()
	case ":top":
		n := defaultTopCount
		if arg != "" {
			parsed, err := strconv.Atoi(arg)
			if err != nil || parsed <= 0 {
				h.out.Errorf("Invalid count: '%s'", arg)
				return false
			}
			n = parsed
		}
		h.printTop(n)
	default:
		h.out.Errorf("Unknown command: %s (try :help)", name)
	}
	return false
}

func (h *InputHandler) printHelp() {
	h.out.Print("Commands:")
	h.out.Print("  :load <path>  replace the dictionary with a corpus file (.txt or .gz)")
	h.out.Print("  :stats        show dictionary and cache statistics")
	h.out.Print("  :top [n]      show the n most frequent words (default 10)")
	h.out.Print("  :quit         exit")
}

func (h *InputHandler) loadCorpus(path string) {
	if path == "" {
		h.out.Error("Usage: :load <path>")
		return
	}

	start := time.Now()
	if err := h.speller.LoadCorpus(path); err != nil {
		if errors.Is(err, suggest.ErrNotFound) {
			h.out.Errorf("Corpus not found: %s", path)
		} else {
			h.out.Errorf("Failed to load corpus: %v", err)
		}
		h.out.Print("Keeping the previous dictionary")
		return
	}
	h.out.Printf("Loaded %s words from %s in %v",
		utils.FormatWithCommas(h.speller.Stats()["distinctWords"]), path, time.Since(start).Round(time.Millisecond))
}

func (h *InputHandler) printStats() {
	stats := h.speller.Stats()
	for _, key := range slices.Sorted(maps.Keys(stats)) {
		h.out.Printf("%-16s %12s", key, utils.FormatWithCommas(stats[key]))
	}
}

func (h *InputHandler) printTop(n int) {
	top := h.speller.MostCommon(n)
	if len(top) == 0 {
		h.out.Warn("Dictionary is empty")
		return
	}
	for i, wc := range top {
		h.out.Printf("%2d. %-20s %12s", i+1, wordStyle.Render(wc.Word), utils.FormatWithCommas(wc.Count))
	}
}

// handleInput corrects a single word and prints its suggestions.
func (h *InputHandler) handleInput(word string) {
	h.requestCount++

	if utf8.RuneCountInString(word) > h.maxWordLen {
		h.out.Errorf("Word too long: %d characters (max %d)", utf8.RuneCountInString(word), h.maxWordLen)
		return
	}

	// input filtering by default (unless -no-filter flag is used)
	if !h.noFilter && !utils.IsValidInput(word) {
		h.out.Warnf("Skipping '%s': not a single word", word)
		return
	}

	start := time.Now()
	corrected, err := h.speller.Correct(word)
	if err != nil {
		h.out.Errorf("Correction failed: %v", err)
		return
	}
	// one extra suggestion tells a single recommendation apart from a truncated list
	fetch := h.suggestLimit
	if fetch > 0 {
		fetch++
	}
	suggestions, err := h.speller.Suggest(word, fetch)
	if err != nil {
		h.out.Errorf("Suggestion failed: %v", err)
		return
	}
	h.out.Debugf("Took [ %v ] for '%s' (request #%d)", time.Since(start), word, h.requestCount)

	if corrected == word {
		h.out.Printf("No correction found for '%s'.", word)
	} else {
		h.out.Printf("Corrected word: %s", correctedStyle.Render(corrected))
	}

	switch len(suggestions) {
	case 0:
		h.out.Print("No recommendations found.")
		return
	case 1:
		if suggestions[0].Word != word {
			h.out.Printf("Auto-complete: %s", correctedStyle.Render(suggestions[0].Word))
		}
	}
	if h.suggestLimit > 0 && len(suggestions) > h.suggestLimit {
		suggestions = suggestions[:h.suggestLimit]
	}

	h.out.Printf("Recommendations for '%s':", word)
	for i, s := range suggestions {
		line := fmt.Sprintf("%2d. %-20s", i+1, wordStyle.Render(s.Word))
		if h.showFrequency {
			line += fmt.Sprintf(" (freq: %8s, dist: %d)", utils.FormatWithCommas(s.Frequency), s.Distance)
		}
		h.out.Print(line)
	}
}
