package policy

import (
	"fmt"
	"strings"
)

// Rule is one purchasing-policy rule with its stable identifier. IDs are
// cited verbatim in decisions.
type Rule struct {
	ID   string
	Text string
}

// Rules lists every policy rule in the order it is presented to the
// decision collaborator: eligibility (POL-1, POL-2), restrictions (POL-3
// to POL-6) and data completeness (POL-7, POL-8). This text is versioned
// interface data together with the classifier keywords and the rendering
// tables.
var Rules = []Rule{
	{
		ID: "POL-1",
		Text: "Apenas compramos créditos de processos transitados em julgado e em fase de execução. " +
			"Exemplo: um processo com certidão de trânsito em julgado e movimento de 'cumprimento definitivo iniciado'.",
	},
	{
		ID: "POL-2",
		Text: "É obrigatório informar o valor da condenação (campo valorCondenacao). " +
			"Exemplo: valorCondenacao = 67.592,00.",
	},
	{
		ID: "POL-3",
		Text: "Se o valor da condenação for menor que R$ 1.000,00, não compramos. " +
			"Exemplo: valorCondenacao = 500,00.",
	},
	{
		ID: "POL-4",
		Text: "Condenações na esfera trabalhista não são aceitas. " +
			"Exemplo: esfera = 'Trabalhista'.",
	},
	{
		ID: "POL-5",
		Text: "Se houver óbito do autor sem habilitação no inventário, não compramos. " +
			"Exemplo: documento indica óbito do autor, mas não há habilitação de herdeiros.",
	},
	{
		ID: "POL-6",
		Text: "Se houver substabelecimento sem reserva de poderes, não compramos. " +
			"Exemplo: documento intitulado 'Substabelecimento sem reserva de poderes'.",
	},
	{
		ID: "POL-7",
		Text: "É obrigatório informar honorários contratuais, periciais e sucumbenciais quando existirem. " +
			"Exemplo: sentença fixou honorários sucumbenciais, periciais, sucumbenciais.",
	},
	{
		ID: "POL-8",
		Text: "Se faltar qualquer documento essencial, o processo deve ser marcado como 'incomplete'. " +
			"Essenciais incluem: certidão de trânsito em julgado, valor da condenação e cumprimento definitivo iniciado. " +
			"Exemplo: processo sem certidão de trânsito em julgado, sem valor da condenação informado ou sem cumprimento definitivo iniciado.",
	},
}

// Text returns the concatenated policy text sent to the decision
// collaborator, one "ID: description" line per rule.
func Text() string {
	lines := make([]string, 0, len(Rules))
	for _, rule := range Rules {
		lines = append(lines, fmt.Sprintf("%s: %s", rule.ID, rule.Text))
	}
	return strings.Join(lines, "\n")
}
