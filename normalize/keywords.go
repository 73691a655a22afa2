package normalize

// Keywords holds the per-slot keyword sets used to classify documents and
// movements into canonical indicator slots. A candidate matches a slot
// when every keyword in its set occurs, case-insensitively, in the
// document title or movement description.
//
// These literals are versioned interface data alongside the policy text:
// changing them changes observable output.
type Keywords struct {
	MeritJudgment   []string // document titles
	FinalJudgment   []string // document titles
	Enforcement     []string // movement descriptions
	Calculations    []string // document titles
	PublicNotice    []string // movement descriptions
	ObjectionPeriod []string // movement descriptions
	PaymentOrder    []string // document titles
	Assignment      []string // document titles
	Substitution    []string // document titles, every keyword must occur
	PlaintiffDeath  []string // document titles
}

// DefaultKeywords returns the keyword sets the service ships with.
func DefaultKeywords() Keywords {
	return Keywords{
		MeritJudgment:   []string{"sentença"},
		FinalJudgment:   []string{"trânsito"},
		Enforcement:     []string{"cumprimento definitivo"},
		Calculations:    []string{"cálculo"},
		PublicNotice:    []string{"intimação"},
		ObjectionPeriod: []string{"impugnação"},
		PaymentOrder:    []string{"rpv"},
		Assignment:      []string{"cessão"},
		Substitution:    []string{"substabelecimento", "sem reserva"},
		PlaintiffDeath:  []string{"óbito"},
	}
}
