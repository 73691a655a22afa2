package models

// Result represents the verdict issued for a process
type Result string

const (
	ResultApproved   Result = "approved"
	ResultRejected   Result = "rejected"
	ResultIncomplete Result = "incomplete"
)

// Valid reports whether r is one of the three known verdicts.
func (r Result) Valid() bool {
	switch r {
	case ResultApproved, ResultRejected, ResultIncomplete:
		return true
	}
	return false
}

// Decision is the structured verdict returned by the decision
// collaborator. Citations keep their original order and duplicates.
type Decision struct {
	Result        Result   `json:"resultado"`
	Justification string   `json:"justificativa"`
	Citations     []string `json:"citacoes"`
}
