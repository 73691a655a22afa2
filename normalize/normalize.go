package normalize

import (
	"strings"

	"processcheck-backend/models"
)

// Status markers attached to each indicator slot.
const (
	StatusYes = "Sim"
	StatusNo  = "Não"
)

// excerptLen is the number of characters of a document body kept as the
// slot excerpt.
const excerptLen = 50

// Normalizer turns raw court records into canonical minimal records.
type Normalizer struct {
	keywords Keywords
}

// NewNormalizer creates a normalizer using the given keyword sets.
func NewNormalizer(keywords Keywords) *Normalizer {
	return &Normalizer{keywords: keywords}
}

// Minimize runs every classification rule against the raw process and
// returns the canonical minimal record. Pass-through metadata is copied
// unchanged; the fee map is carried only when non-empty. The canonical
// record is validated before it is handed out.
func (n *Normalizer) Minimize(p *models.Process) (*models.MinimalProcess, error) {
	minimal := &models.MinimalProcess{
		Number:           p.Number,
		Class:            p.Class,
		Court:            p.Court,
		LastDistribution: p.LastDistribution,
		ClaimValue:       p.ClaimValue,
		Subject:          p.Subject,
		UnderSeal:        p.UnderSeal,
		LegalAid:         p.LegalAid,
		CourtCode:        p.CourtCode,
		Sphere:           p.Sphere,
		AwardValue:       p.AwardValue,
		Documents:        n.classify(p),
	}
	if len(p.Fees) > 0 {
		minimal.Fees = p.Fees
	}

	if err := minimal.Validate(); err != nil {
		return nil, err
	}
	return minimal, nil
}

// classify runs the ten indicator rules in slot order and re-keys the
// resulting map to the canonical camelCase form. Only the first matching
// document or movement in input order feeds a slot; later matches are
// ignored on purpose.
func (n *Normalizer) classify(p *models.Process) models.Fields {
	slots := models.Fields{}

	merit := models.Fields{
		{Key: "data", Value: nil},
		{Key: "resumo", Value: nil},
	}
	if doc := firstDocument(p.Documents, n.keywords.MeritJudgment); doc != nil {
		merit = models.Fields{
			{Key: "data", Value: doc.AttachedAt},
			{Key: "resumo", Value: excerpt(doc.Text)},
		}
	}
	slots = append(slots, models.Field{Key: "sentenca_merito", Value: merit})

	final := models.Fields{
		{Key: "status", Value: StatusNo},
		{Key: "indicacao", Value: nil},
	}
	if doc := firstDocument(p.Documents, n.keywords.FinalJudgment); doc != nil {
		final = models.Fields{
			{Key: "status", Value: StatusYes},
			{Key: "indicacao", Value: doc.Name},
		}
	}
	slots = append(slots, models.Field{Key: "transito_julgado", Value: final})

	enforcement := models.Fields{
		{Key: "status", Value: StatusNo},
		{Key: "data", Value: nil},
	}
	if mov := firstMovement(p.Movements, n.keywords.Enforcement); mov != nil {
		enforcement = models.Fields{
			{Key: "status", Value: StatusYes},
			{Key: "data", Value: mov.OccurredAt},
		}
	}
	slots = append(slots, models.Field{Key: "cumprimento_definitivo_iniciado", Value: enforcement})

	calculations := models.Fields{
		{Key: "status", Value: StatusNo},
		{Key: "data", Value: nil},
	}
	if doc := firstDocument(p.Documents, n.keywords.Calculations); doc != nil {
		calculations = models.Fields{
			{Key: "status", Value: StatusYes},
			{Key: "data", Value: doc.AttachedAt},
		}
	}
	slots = append(slots, models.Field{Key: "calculos_apresentados", Value: calculations})

	notice := models.Fields{
		{Key: "status", Value: StatusNo},
		{Key: "data", Value: nil},
	}
	if mov := firstMovement(p.Movements, n.keywords.PublicNotice); mov != nil {
		notice = models.Fields{
			{Key: "status", Value: StatusYes},
			{Key: "data", Value: mov.OccurredAt},
		}
	}
	slots = append(slots, models.Field{Key: "intimacao_ente_publico", Value: notice})

	objection := models.Fields{
		{Key: "status", Value: StatusNo},
		{Key: "data", Value: nil},
	}
	if mov := firstMovement(p.Movements, n.keywords.ObjectionPeriod); mov != nil {
		objection = models.Fields{
			{Key: "status", Value: StatusYes},
			{Key: "data", Value: mov.OccurredAt},
		}
	}
	slots = append(slots, models.Field{Key: "prazo_impugnacao_aberto", Value: objection})

	order := models.Fields{
		{Key: "tipo", Value: nil},
		{Key: "valor", Value: nil},
		{Key: "data_expedicao", Value: nil},
	}
	if doc := firstDocument(p.Documents, n.keywords.PaymentOrder); doc != nil {
		var amount any
		if doc.Value != nil {
			amount = *doc.Value
		}
		order = models.Fields{
			{Key: "tipo", Value: "RPV"},
			{Key: "valor", Value: amount},
			{Key: "data_expedicao", Value: doc.AttachedAt},
		}
	}
	slots = append(slots, models.Field{Key: "requisitorio", Value: order})

	assignment := models.Fields{
		{Key: "status", Value: StatusNo},
		{Key: "detalhes", Value: ""},
	}
	if doc := firstDocument(p.Documents, n.keywords.Assignment); doc != nil {
		assignment = models.Fields{
			{Key: "status", Value: StatusYes},
			{Key: "detalhes", Value: excerpt(doc.Text)},
		}
	}
	slots = append(slots, models.Field{Key: "cessao_previa_pagamento", Value: assignment})

	substitution := models.Fields{{Key: "status", Value: StatusNo}}
	if firstDocument(p.Documents, n.keywords.Substitution) != nil {
		substitution = models.Fields{{Key: "status", Value: StatusYes}}
	}
	slots = append(slots, models.Field{Key: "substabelecimento_sem_reserva", Value: substitution})

	death := models.Fields{{Key: "status", Value: StatusNo}}
	if firstDocument(p.Documents, n.keywords.PlaintiffDeath) != nil {
		death = models.Fields{{Key: "status", Value: StatusYes}}
	}
	slots = append(slots, models.Field{Key: "obito_autor", Value: death})

	camel := make(models.Fields, 0, len(slots))
	for _, slot := range slots {
		camel = append(camel, models.Field{Key: SnakeToCamel(slot.Key), Value: slot.Value})
	}
	return camel
}

// firstDocument returns the first document whose title matches every
// keyword, or nil when none does.
func firstDocument(docs []models.Document, keywords []string) *models.Document {
	for i := range docs {
		if matches(docs[i].Name, keywords) {
			return &docs[i]
		}
	}
	return nil
}

// firstMovement returns the first movement whose description matches every
// keyword, or nil when none does.
func firstMovement(movements []models.Movement, keywords []string) *models.Movement {
	for i := range movements {
		if matches(movements[i].Description, keywords) {
			return &movements[i]
		}
	}
	return nil
}

// matches reports whether every keyword is a case-insensitive substring of
// text. An empty keyword set never matches.
func matches(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if !strings.Contains(lower, strings.ToLower(keyword)) {
			return false
		}
	}
	return true
}

// excerpt returns the first characters of a document body.
func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) > excerptLen {
		return string(runes[:excerptLen])
	}
	return text
}
