package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "hello world", "hello world", 100},
		{"case and punctuation ignored", "Widget A", "widget a", 100},
		{"single char difference", "widget a", "widget b", 88},
		{"empty left", "", "hello", 0},
		{"empty right", "hello", "", 0},
		{"both empty", "", "", 0},
		{"only punctuation", "!!!", "abc", 0},
		{"completely different", "abc", "xyz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.a, tt.b))
		})
	}
}

func TestRatioSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"new york", "york new"},
		{"Acme Corp", "acme corporation"},
		{"a", "abcdef"},
	}
	for _, p := range pairs {
		assert.Equal(t, Ratio(p[0], p[1]), Ratio(p[1], p[0]), "Ratio(%q,%q)", p[0], p[1])
	}
}

func TestWRatioReorderedWords(t *testing.T) {
	// Same words in a different order: token sort lines them up.
	got := WRatio("hello world", "world hello")
	assert.Equal(t, 95, got)
}

func TestWRatioSubstring(t *testing.T) {
	// The shorter string appears verbatim inside the longer one.
	got := WRatio("new york mets", "new york mets vs atlanta braves")
	assert.Equal(t, 90, got)
}

func TestWRatioIdentical(t *testing.T) {
	assert.Equal(t, 100, WRatio("Gapdorf & Sons Ltd.", "gapdorf sons ltd"))
}

func TestWRatioEmpty(t *testing.T) {
	assert.Equal(t, 0, WRatio("", "anything"))
	assert.Equal(t, 0, WRatio("anything", ""))
}

func TestWRatioBeatsRatioOnNoisyInput(t *testing.T) {
	a := "Robert Smith Jr."
	b := "smith, robert"
	assert.Greater(t, WRatio(a, b), Ratio(a, b))
}

func TestScorerFor(t *testing.T) {
	a, b := "new york mets", "new york mets vs atlanta braves"
	assert.Equal(t, Ratio(a, b), ScorerFor(false)(a, b))
	assert.Equal(t, WRatio(a, b), ScorerFor(true)(a, b))
}

func TestScoresWithinRange(t *testing.T) {
	samples := []string{"", "a", "widget", "Widget A", "a much longer string with words", "1234"}
	for _, x := range samples {
		for _, y := range samples {
			for _, score := range []int{Ratio(x, y), WRatio(x, y)} {
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}
