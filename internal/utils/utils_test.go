package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMatchCase(t *testing.T) {
	testCases := []struct {
		word        string
		pattern     string
		expected    string
		description string
	}{
		{"hello", "helo", "hello", "Lowercase pattern"},
		{"hello", "Helo", "Hello", "Capitalized pattern"},
		{"hello", "HELO", "HELLO", "All caps pattern"},
		{"hello", "HeLo", "Hello", "Mixed case keeps first letter"},
		{"a", "I", "A", "Single capital letter"},
		{"i", "I", "I", "Single letter stays capitalized"},
		{"élan", "Elan", "Élan", "Non-ASCII first letter"},
		{"hello", "", "hello", "Empty pattern"},
		{"", "Helo", "", "Empty word"},
		{"2nd", "2ND", "2nd", "Leading digit is not a capital"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := MatchCase(tc.word, tc.pattern)
			if got != tc.expected {
				t.Errorf("Input '%s'/'%s': expected '%s', got '%s'", tc.word, tc.pattern, tc.expected, got)
			}
		})
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		32198:    "32,198",
		1105285:  "1,105,285",
		-1234567: "-1,234,567",
	}
	for input, expected := range testCases {
		if got := FormatWithCommas(input); got != expected {
			t.Errorf("Input %d: expected '%s', got '%s'", input, expected, got)
		}
	}
}

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input       string
		expected    bool
		description string
	}{
		{"speling", true, "Plain word"},
		{"Korrect", true, "Capitalized word"},
		{"utf8", true, "Letters and digits"},
		{"café", true, "Non-ASCII letters"},
		{"", false, "Empty"},
		{"12345", false, "Only numbers"},
		{"two words", false, "Contains a space"},
		{"don't", false, "Contains punctuation"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := IsValidInput(tc.input); got != tc.expected {
				t.Errorf("Input '%s': expected %v, got %v", tc.input, tc.expected, got)
			}
		})
	}
}

func TestRankByPosition(t *testing.T) {
	if got := RankByPosition(3); !reflect.DeepEqual(got, []uint16{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}
	if got := RankByPosition(0); len(got) != 0 || got == nil {
		t.Errorf("expected empty non-nil ranks, got %v", got)
	}
	ranks := RankByPosition(70000)
	if ranks[69999] != 65535 {
		t.Errorf("expected ranks to saturate at 65535, got %d", ranks[69999])
	}
}

func TestSuggestionFilter(t *testing.T) {
	filter := NewSuggestionFilter("Cat")

	if filter.ShouldInclude("cat") {
		t.Error("expected the input word to be excluded")
	}
	if !filter.ShouldInclude("cot") {
		t.Error("expected a new word to be included")
	}
	if filter.ShouldInclude("COT") {
		t.Error("expected a case-insensitive duplicate to be excluded")
	}
}

func TestSaveAndLoadTOMLFile(t *testing.T) {
	type section struct {
		Name  string `toml:"name"`
		Count int    `toml:"count"`
	}
	type doc struct {
		Main section `toml:"main"`
	}

	path := filepath.Join(t.TempDir(), "doc.toml")
	if err := SaveTOMLFile(doc{Main: section{Name: "corpus", Count: 3}}, path); err != nil {
		t.Fatalf("SaveTOMLFile failed: %v", err)
	}

	var loaded doc
	if err := LoadTOMLFile(path, &loaded); err != nil {
		t.Fatalf("LoadTOMLFile failed: %v", err)
	}
	if loaded.Main.Name != "corpus" || loaded.Main.Count != 3 {
		t.Errorf("expected saved values, got %+v", loaded)
	}

	generic, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatalf("ParseTOMLWithRecovery failed: %v", err)
	}
	main, ok := ExtractSection(generic, "main")
	if !ok {
		t.Fatal("expected section 'main'")
	}
	if name, ok := ExtractString(main, "name"); !ok || name != "corpus" {
		t.Errorf("expected name 'corpus', got '%s'", name)
	}
	if count, ok := ExtractInt(main, "count"); !ok || count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
	if _, ok := ExtractBool(main, "name"); ok {
		t.Error("expected a string not to extract as bool")
	}
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	result := CheckDirStatus(dir)
	if result.Error != nil || !result.Exists || !result.Writable {
		t.Errorf("expected a created writable dir, got %+v", result)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected write test to clean up, found %d entries", len(entries))
	}
}

func TestPathResolver(t *testing.T) {
	workDir := t.TempDir()
	configDir := t.TempDir()
	pr := &PathResolver{workDir: workDir, configDir: configDir}

	corpus := filepath.Join(configDir, "big.txt")
	if err := os.WriteFile(corpus, []byte("word"), 0644); err != nil {
		t.Fatal(err)
	}

	path, found := pr.ResolveFile("big.txt")
	if !found || path != corpus {
		t.Errorf("expected %s to be found, got %s (%v)", corpus, path, found)
	}

	path, found = pr.ResolveFile("missing.txt")
	if found || path != filepath.Join(workDir, "missing.txt") {
		t.Errorf("expected first candidate for a missing file, got %s (%v)", path, found)
	}

	if got := pr.Candidates(corpus); !reflect.DeepEqual(got, []string{corpus}) {
		t.Errorf("expected absolute path as its only candidate, got %v", got)
	}
}
