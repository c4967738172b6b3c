package types

// ModelScore is the computed fit between a quiz profile and one business
// model. Percentage is an integer 0-100.
type ModelScore struct {
	ModelID     string `json:"model_id"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	Percentage  int    `json:"percentage"`
}

// RankedModelList holds every configured model's score sorted by
// percentage descending. Ties keep the models' declaration order, so
// repeated rankings of identical answers produce identical orderings.
type RankedModelList struct {
	Models []ModelScore `json:"models"`
}

// TopMatches returns the n best matches, best first. If fewer than n
// models are configured, all of them are returned.
func (l RankedModelList) TopMatches(n int) []ModelScore {
	if n < 0 {
		n = 0
	}
	if n > len(l.Models) {
		n = len(l.Models)
	}
	out := make([]ModelScore, n)
	copy(out, l.Models[:n])
	return out
}

// BottomMatches returns the n worst matches, worst first. The result is
// the tail of the descending-sorted list reversed, so the single worst
// model always leads the slice.
func (l RankedModelList) BottomMatches(n int) []ModelScore {
	if n < 0 {
		n = 0
	}
	if n > len(l.Models) {
		n = len(l.Models)
	}
	tail := l.Models[len(l.Models)-n:]
	out := make([]ModelScore, n)
	for i, m := range tail {
		out[n-1-i] = m
	}
	return out
}
