package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"processcheck-backend/models"
)

// TopLevelOrder is the fixed order applied to the top-level keys of a
// rendered result. Keys not listed here are appended in lexicographic
// order. The layout is a display contract; changing this table is a
// breaking interface change.
var TopLevelOrder = []string{
	"numeroProcesso", "classe", "orgaoJulgador", "ultimaDistribuicao",
	"valorCausa", "assunto", "segredoJustica", "justicaGratuita",
	"siglaTribunal", "esfera", "valorCondenacao",
	"documentos",
	"honorarios", "resultado", "justificativa", "citacoes",
}

// DocsOrder is the fixed order applied to the indicator slots inside the
// documentos object. Unknown slots are appended in lexicographic order.
var DocsOrder = []string{
	"sentencaMerito",
	"transitoJulgado",
	"cumprimentoDefinitivoIniciado",
	"calculosApresentados",
	"intimacaoEntePublico",
	"prazoImpugnacaoAberto",
	"requisitorio",
	"cessaoPreviaPagamento",
	"substabelecimentoSemReserva",
	"obitoAutor",
}

// Render produces the deterministic multi-line textual form of one
// analysis result. The documentos key is always emitted, inserted as an
// empty object when absent; output depends only on the ordering tables,
// never on the input's insertion order.
func Render(result models.Fields) string {
	fields := make(models.Fields, len(result))
	copy(fields, result)
	if !fields.Has("documentos") {
		fields = append(fields, models.Field{Key: "documentos", Value: models.Fields{}})
	}

	ordered := orderKeys(fields.Keys(), TopLevelOrder)
	idx := indexOf(ordered, "documentos")
	before := ordered[:idx]
	after := ordered[idx+1:]

	lines := []string{"{"}

	for _, key := range before {
		value, _ := fields.Get(key)
		encoded := encodeIndented(value)
		if key == "citacoes" {
			encoded = encodeInline(value)
		}
		lines = append(lines, "  "+encodeString(key)+": "+encoded+",")
	}

	lines = append(lines, `  "documentos": {`)
	docs := docEntries(fields)
	for i, doc := range docs {
		comma := ","
		if i == len(docs)-1 {
			comma = ""
		}
		lines = append(lines, "    "+encodeString(doc.Key)+": "+encodeInline(doc.Value)+comma)
	}
	closing := "  }"
	if len(after) > 0 {
		closing += ","
	}
	lines = append(lines, closing)

	for i, key := range after {
		isLast := i == len(after)-1
		value, _ := fields.Get(key)

		if key == "honorarios" {
			lines = append(lines, `  "honorarios": {`)
			entries := feeEntries(value)
			for j, entry := range entries {
				comma := ","
				if j == len(entries)-1 {
					comma = ""
				}
				lines = append(lines, "    "+encodeString(entry.Name)+": "+encodeInline(entry.Amount)+comma)
			}
			suffix := "  }"
			if !isLast {
				suffix += ","
			}
			lines = append(lines, suffix)
			continue
		}

		encoded := encodeIndented(value)
		if key == "citacoes" {
			encoded = encodeInline(value)
		}
		line := "  " + encodeString(key) + ": " + encoded
		if !isLast {
			line += ","
		}
		lines = append(lines, line)
	}

	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// RenderMany renders each result as its own numbered block, separated by
// one blank line.
func RenderMany(results []models.Fields) string {
	blocks := make([]string, 0, len(results))
	for i, result := range results {
		blocks = append(blocks, fmt.Sprintf("=== Teste %d ===\n%s", i+1, Render(result)))
	}
	return strings.Join(blocks, "\n\n")
}

// orderKeys keeps the keys listed in fixed in that fixed order and appends
// the remaining keys sorted lexicographically.
func orderKeys(keys []string, fixed []string) []string {
	present := make(map[string]bool, len(keys))
	for _, key := range keys {
		present[key] = true
	}
	inFixed := make(map[string]bool, len(fixed))
	for _, key := range fixed {
		inFixed[key] = true
	}

	ordered := make([]string, 0, len(keys))
	for _, key := range fixed {
		if present[key] {
			ordered = append(ordered, key)
		}
	}
	leftovers := make([]string, 0)
	for _, key := range keys {
		if !inFixed[key] {
			leftovers = append(leftovers, key)
		}
	}
	sort.Strings(leftovers)
	return append(ordered, leftovers...)
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

// docEntries returns the indicator slots in their contractual order.
func docEntries(fields models.Fields) []models.Field {
	raw, _ := fields.Get("documentos")

	var entries models.Fields
	switch docs := raw.(type) {
	case models.Fields:
		entries = docs
	case map[string]any:
		keys := make([]string, 0, len(docs))
		for key := range docs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			entries = append(entries, models.Field{Key: key, Value: docs[key]})
		}
	}

	ordered := orderKeys(entries.Keys(), DocsOrder)
	out := make([]models.Field, 0, len(ordered))
	for _, key := range ordered {
		value, _ := entries.Get(key)
		out = append(out, models.Field{Key: key, Value: value})
	}
	return out
}

// feeEntries normalizes the honorarios value into an ordered entry list.
// FeeMap input keeps its insertion order; plain maps fall back to sorted
// keys; anything else renders as an empty object.
func feeEntries(raw any) []models.FeeEntry {
	switch fees := raw.(type) {
	case models.FeeMap:
		return fees
	case map[string]float64:
		keys := make([]string, 0, len(fees))
		for key := range fees {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		entries := make([]models.FeeEntry, 0, len(keys))
		for _, key := range keys {
			entries = append(entries, models.FeeEntry{Name: key, Amount: fees[key]})
		}
		return entries
	default:
		return nil
	}
}

// encodeString JSON-quotes a string without HTML escaping.
func encodeString(s string) string {
	return encodeCompact(s)
}

// encodeInline renders a value on a single line, with ", " between
// elements and ": " after keys, matching the inline style of the display
// contract.
func encodeInline(v any) string {
	switch value := v.(type) {
	case models.Fields:
		parts := make([]string, 0, len(value))
		for _, field := range value {
			parts = append(parts, encodeString(field.Key)+": "+encodeInline(field.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case models.FeeMap:
		parts := make([]string, 0, len(value))
		for _, entry := range value {
			parts = append(parts, encodeString(entry.Name)+": "+encodeInline(entry.Amount))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, encodeString(key)+": "+encodeInline(value[key]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, encodeInline(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []string:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, encodeString(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return encodeCompact(v)
	}
}

// encodeCompact marshals a scalar value without HTML escaping.
func encodeCompact(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return strings.TrimRight(buf.String(), "\n")
}

// encodeIndented marshals a value with two-space indentation and no HTML
// escaping. Scalars come out identical to the compact form.
func encodeIndented(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return strings.TrimRight(buf.String(), "\n")
}
