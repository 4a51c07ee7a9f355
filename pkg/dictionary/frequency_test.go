package dictionary

import (
	"reflect"
	"testing"

	"github.com/bastiangx/spellserve/pkg/tokenize"
)

func TestFrequenciesFromSentence(t *testing.T) {
	f := CountWords(tokenize.Words("the cat sat on the mat"))

	if got := f.Count("the"); got != 2 {
		t.Errorf("Count 'the': expected 2, got %d", got)
	}
	if got := f.Total(); got != 6 {
		t.Errorf("Total: expected 6, got %d", got)
	}
	if got := f.Len(); got != 5 {
		t.Errorf("Len: expected 5, got %d", got)
	}
	if got := f.Probability("the"); got != 1.0/3.0 {
		t.Errorf("Probability 'the': expected %v, got %v", 1.0/3.0, got)
	}
	if got := f.Probability("cat"); got != 1.0/6.0 {
		t.Errorf("Probability 'cat': expected %v, got %v", 1.0/6.0, got)
	}
}

func TestFrequenciesUnknownWord(t *testing.T) {
	testCases := []struct {
		table       *Frequencies
		description string
	}{
		{NewFrequencies(), "Empty table"},
		{CountWords([]string{"hello"}), "Word missing from table"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := tc.table.Probability("absent"); got != 0 {
				t.Errorf("expected probability 0, got %v", got)
			}
			if got := tc.table.Count("absent"); got != 0 {
				t.Errorf("expected count 0, got %d", got)
			}
		})
	}
}

func TestFrequenciesIgnoreEmptyWord(t *testing.T) {
	f := NewFrequencies()
	f.Add("")
	if f.Total() != 0 || f.Len() != 0 {
		t.Errorf("empty word should not be counted, got total=%d len=%d", f.Total(), f.Len())
	}
}

func TestMostCommon(t *testing.T) {
	f := CountWords(tokenize.Words("b a c a b a d"))

	expected := []WordCount{{"a", 3}, {"b", 2}, {"c", 1}}
	if got := f.MostCommon(3); !reflect.DeepEqual(got, expected) {
		t.Errorf("MostCommon(3): expected %v, got %v", expected, got)
	}
	if got := f.MostCommon(0); len(got) != 4 {
		t.Errorf("MostCommon(0): expected all 4 words, got %d", len(got))
	}
}
