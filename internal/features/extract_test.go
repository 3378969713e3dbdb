package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_EmptyString(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("   "))
}

func TestExtract_NoMatches(t *testing.T) {
	assert.Empty(t, Extract("Met at the coffee shop on Monday"))
}

func TestExtract_TableOrderNotTextOrder(t *testing.T) {
	got := Extract("She has curly red hair and round glasses")
	assert.Equal(t, []string{"red hair", "curly", "glasses", "round glasses"}, got)
}

func TestExtract_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Extract("big beard, goatee"), Extract("BIG BEARD, Goatee"))
}

func TestExtract_SingleOrigin(t *testing.T) {
	got := Extract("My friend from Mexico, half Colombian")

	var origins []string
	for _, k := range got {
		if strings.HasPrefix(k, "from ") {
			origins = append(origins, k)
		}
	}
	assert.Equal(t, []string{"from colombia"}, origins)
}

func TestExtract_DescriptiveKeywordsPassThrough(t *testing.T) {
	got := Extract("Tall guy with a warm smile")
	assert.Contains(t, got, "tall")
	assert.Contains(t, got, "warm smile")
	assert.True(t, Parse(got).IsZero())
}

func TestExtract_NoDuplicatePhrases(t *testing.T) {
	got := Extract("wavy hair, wavy hair, wavy hair")
	assert.Equal(t, []string{"wavy", "wavy hair"}, got)
}

func TestExtract_Deterministic(t *testing.T) {
	text := "Older man from Ireland, gray beard, aviator glasses, tanned, friendly smile"
	first := Extract(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Extract(text))
	}
}
