package models

import (
	"fmt"
	"time"
)

// ValidationError reports a field that violates a structural invariant of
// the canonical record. It is surfaced to callers as a client error and
// never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Document is a file attached to a process, exactly as received from the
// court system. Value carries the monetary amount some payment documents
// declare.
type Document struct {
	ID         string    `json:"id"`
	AttachedAt time.Time `json:"dataHoraJuntada"`
	Name       string    `json:"nome"`
	Text       string    `json:"texto"`
	Value      *float64  `json:"valor,omitempty"`
}

// Movement is a procedural event recorded on a process docket.
type Movement struct {
	OccurredAt  time.Time `json:"dataHora"`
	Description string    `json:"descricao"`
}

// Process is a raw judicial process as received from the source system.
// It is read-only input for the normalizer.
type Process struct {
	Number           string     `json:"numeroProcesso" binding:"required"`
	Class            string     `json:"classe"`
	Court            string     `json:"orgaoJulgador"`
	LastDistribution time.Time  `json:"ultimaDistribuicao"`
	Subject          string     `json:"assunto"`
	ClaimValue       *float64   `json:"valorCausa"`
	AwardValue       *float64   `json:"valorCondenacao"`
	UnderSeal        bool       `json:"segredoJustica"`
	LegalAid         bool       `json:"justicaGratuita"`
	CourtCode        string     `json:"siglaTribunal"`
	Sphere           string     `json:"esfera"`
	Documents        []Document `json:"documentos"`
	Movements        []Movement `json:"movimentos"`
	Fees             FeeMap     `json:"honorarios,omitempty"`
}

// MinimalProcess is the canonical projection of a Process: the same
// pass-through metadata with the raw documents and movements replaced by
// the ten canonical indicator slots. It is built once by the normalizer
// and never mutated afterwards.
type MinimalProcess struct {
	Number           string    `json:"numeroProcesso"`
	Class            string    `json:"classe"`
	Court            string    `json:"orgaoJulgador"`
	LastDistribution time.Time `json:"ultimaDistribuicao"`
	ClaimValue       *float64  `json:"valorCausa,omitempty"`
	Subject          string    `json:"assunto"`
	UnderSeal        bool      `json:"segredoJustica"`
	LegalAid         bool      `json:"justicaGratuita"`
	CourtCode        string    `json:"siglaTribunal"`
	Sphere           string    `json:"esfera"`
	AwardValue       *float64  `json:"valorCondenacao,omitempty"`
	Documents        Fields    `json:"documentos"`
	Fees             FeeMap    `json:"honorarios,omitempty"`
}

// Validate enforces the canonical-record invariants.
func (p *MinimalProcess) Validate() error {
	if p.AwardValue != nil && *p.AwardValue < 0 {
		return &ValidationError{
			Field:   "valorCondenacao",
			Message: "award value cannot be negative",
		}
	}
	return nil
}
