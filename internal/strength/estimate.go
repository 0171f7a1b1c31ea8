package strength

import "github.com/nbutton23/zxcvbn-go"

// Estimate is a pattern-aware strength estimate, independent of Score.
type Estimate struct {
	Entropy          float64
	CrackTimeSeconds float64
	CrackTimeDisplay string
	Score            int
}

// EstimatePassword runs zxcvbn over password.
func EstimatePassword(password string) Estimate {
	res := zxcvbn.PasswordStrength(password, nil)
	return Estimate{
		Entropy:          res.Entropy,
		CrackTimeSeconds: res.CrackTime,
		CrackTimeDisplay: res.CrackTimeDisplay,
		Score:            res.Score,
	}
}
