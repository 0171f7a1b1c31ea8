package strength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verte-zerg/tuipass/internal/model"
)

func TestScore(t *testing.T) {
	cases := []struct {
		name     string
		password string
		score    int
		bar      int
		label    model.Label
		color    string
	}{
		{"empty", "", 0, 5, model.LabelWeak, "#fc8181"},
		{"short lowercase", "abc", 21, 21, model.LabelWeak, "#fc8181"},
		{"short all classes capped", "aB3!", 40, 40, model.LabelMedium, "#fbd38d"},
		{"eight lowercase", "abcdefgh", 31, 31, model.LabelWeak, "#fc8181"},
		{"long lowercase", strings.Repeat("a", 20), 55, 55, model.LabelMedium, "#fbd38d"},
		{"twelve all classes", "aB3!aB3!aB3!", 84, 84, model.LabelStrong, "#68d391"},
		{"twenty all classes", strings.Repeat("aB3!", 5), 100, 100, model.LabelStrong, "#68d391"},
		{"just below medium", "abcdefghijkl", 39, 39, model.LabelWeak, "#fc8181"},
		{"exactly seventy", strings.Repeat("a", 19) + "!", 70, 70, model.LabelStrong, "#68d391"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Score(tc.password)
			assert.Equal(t, tc.score, r.Score)
			assert.Equal(t, tc.bar, r.BarWidth)
			assert.Equal(t, tc.label, r.Label)
			assert.Equal(t, tc.color, r.Color)
			assert.NotEmpty(t, r.Description)
		})
	}
}

func TestScoreShortPasswordNeverExceedsForty(t *testing.T) {
	for _, pw := range []string{"a", "aB", "aB3", "aB3!", "aB3!a", "aB3!aB", "aB3!aB3"} {
		assert.LessOrEqual(t, Score(pw).Score, 40, pw)
	}
}

func TestScoreSymbolPatternRange(t *testing.T) {
	// "/" and uppercase letters fall inside the ")-_" range of the symbol pattern.
	assert.Equal(t, 18+15+15, Score("abcdefgh/").Score)
	assert.Equal(t, 20+15+15, Score("ABCDEFGHIJ").Score)
	// "~" lies outside the pattern.
	assert.Equal(t, 22+15, Score("abcdefghij~").Score)
}

func TestScoreCountsRunes(t *testing.T) {
	r := Score("ééééééééé")
	assert.Equal(t, 18, r.Score)
}

func TestEstimatePassword(t *testing.T) {
	weak := EstimatePassword("password")
	strong := EstimatePassword("x9$Kq!2mZr#7Lw@4")
	assert.Less(t, weak.Entropy, strong.Entropy)
	assert.LessOrEqual(t, weak.Score, strong.Score)
	assert.NotEmpty(t, strong.CrackTimeDisplay)
}
