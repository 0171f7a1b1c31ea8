// Package strength rates passwords with a length and class-diversity heuristic.
package strength

import (
	"regexp"
	"unicode/utf8"

	"github.com/verte-zerg/tuipass/internal/model"
)

const (
	lengthWeight  = 2
	lengthCap     = 40
	classBonus    = 15
	shortLength   = 8
	shortScoreCap = 40
	mediumFloor   = 40
	strongFloor   = 70
	minBarWidth   = 5
	maxBarWidth   = 100
	weakColor     = "#fc8181"
	mediumColor   = "#fbd38d"
	strongColor   = "#68d391"
	weakText      = "Your password is weak. Consider increasing length and adding more character types."
	mediumText    = "Your password is moderately strong. Adding more character types or length would improve it."
	strongText    = "Your password is strong and secure. Good job!"
)

// ")-_" in symbolPattern is a range: it also matches digits, uppercase
// letters and '/'.
var (
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
	symbolPattern = regexp.MustCompile(`[!@#$%^&*()-_=+[\]{}|;:,.<>?]`)
)

// Score rates password. The label is derived from the raw score, the bar
// width from the same score clamped to [5, 100].
func Score(password string) model.Rating {
	length := utf8.RuneCountInString(password)

	score := min(length*lengthWeight, lengthCap)
	for _, p := range []*regexp.Regexp{upperPattern, lowerPattern, digitPattern, symbolPattern} {
		if p.MatchString(password) {
			score += classBonus
		}
	}
	if length < shortLength {
		score = min(score, shortScoreCap)
	}

	rating := model.Rating{
		Score:    score,
		BarWidth: max(minBarWidth, min(maxBarWidth, score)),
	}
	switch {
	case score < mediumFloor:
		rating.Label = model.LabelWeak
		rating.Color = weakColor
		rating.Description = weakText
	case score < strongFloor:
		rating.Label = model.LabelMedium
		rating.Color = mediumColor
		rating.Description = mediumText
	default:
		rating.Label = model.LabelStrong
		rating.Color = strongColor
		rating.Description = strongText
	}
	return rating
}
