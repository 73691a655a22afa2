package render

import (
	"strings"
	"testing"

	"processcheck-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("Should insert an empty documentos object when absent", func(t *testing.T) {
		out := Render(models.Fields{
			{Key: "citacoes", Value: []string{"POL-1", "POL-2"}},
			{Key: "resultado", Value: "approved"},
		})

		expected := strings.Join([]string{
			`{`,
			`  "documentos": {`,
			`  },`,
			`  "resultado": "approved",`,
			`  "citacoes": ["POL-1", "POL-2"]`,
			`}`,
		}, "\n")
		assert.Equal(t, expected, out)
	})

	t.Run("Should not depend on the input insertion order", func(t *testing.T) {
		first := models.Fields{
			{Key: "resultado", Value: "rejected"},
			{Key: "numeroProcesso", Value: "0001"},
			{Key: "citacoes", Value: []string{"POL-4"}},
		}
		second := models.Fields{
			{Key: "citacoes", Value: []string{"POL-4"}},
			{Key: "numeroProcesso", Value: "0001"},
			{Key: "resultado", Value: "rejected"},
		}

		assert.Equal(t, Render(first), Render(second))
	})

	t.Run("Should not mutate the input", func(t *testing.T) {
		fields := models.Fields{{Key: "resultado", Value: "approved"}}
		Render(fields)
		assert.Len(t, fields, 1)
	})

	t.Run("Should order slots, fees and verdict fields deterministically", func(t *testing.T) {
		out := Render(models.Fields{
			{Key: "resultado", Value: "approved"},
			{Key: "numeroProcesso", Value: "0001"},
			{Key: "documentos", Value: models.Fields{
				{Key: "obitoAutor", Value: models.Fields{{Key: "status", Value: "Não"}}},
				{Key: "transitoJulgado", Value: models.Fields{
					{Key: "status", Value: "Sim"},
					{Key: "indicacao", Value: "Certidão"},
				}},
				{Key: "aaExtra", Value: models.Fields{{Key: "status", Value: "Sim"}}},
			}},
			{Key: "honorarios", Value: models.FeeMap{
				{Name: "contratuais", Amount: 1500},
				{Name: "periciais", Amount: 200},
			}},
			{Key: "citacoes", Value: []string{"POL-1"}},
			{Key: "justificativa", Value: "ok"},
		})

		expected := strings.Join([]string{
			`{`,
			`  "numeroProcesso": "0001",`,
			`  "documentos": {`,
			`    "transitoJulgado": {"status": "Sim", "indicacao": "Certidão"},`,
			`    "obitoAutor": {"status": "Não"},`,
			`    "aaExtra": {"status": "Sim"}`,
			`  },`,
			`  "honorarios": {`,
			`    "contratuais": 1500,`,
			`    "periciais": 200`,
			`  },`,
			`  "resultado": "approved",`,
			`  "justificativa": "ok",`,
			`  "citacoes": ["POL-1"]`,
			`}`,
		}, "\n")
		assert.Equal(t, expected, out)
	})

	t.Run("Should append unknown top-level keys alphabetically", func(t *testing.T) {
		out := Render(models.Fields{
			{Key: "zebra", Value: 1},
			{Key: "resultado", Value: "approved"},
			{Key: "abacate", Value: 2},
		})

		expected := strings.Join([]string{
			`{`,
			`  "documentos": {`,
			`  },`,
			`  "resultado": "approved",`,
			`  "abacate": 2,`,
			`  "zebra": 1`,
			`}`,
		}, "\n")
		assert.Equal(t, expected, out)
	})

	t.Run("Should render null scalars and keep fee order", func(t *testing.T) {
		out := Render(models.Fields{
			{Key: "numeroProcesso", Value: "0002"},
			{Key: "valorCausa", Value: nil},
			{Key: "honorarios", Value: models.FeeMap{
				{Name: "sucumbenciais", Amount: 300},
				{Name: "contratuais", Amount: 100},
			}},
		})

		expected := strings.Join([]string{
			`{`,
			`  "numeroProcesso": "0002",`,
			`  "valorCausa": null,`,
			`  "documentos": {`,
			`  },`,
			`  "honorarios": {`,
			`    "sucumbenciais": 300,`,
			`    "contratuais": 100`,
			`  }`,
			`}`,
		}, "\n")
		assert.Equal(t, expected, out)
	})

	t.Run("Should not escape free text as HTML", func(t *testing.T) {
		out := Render(models.Fields{
			{Key: "justificativa", Value: "valor < R$ 1.000,00"},
		})
		assert.Contains(t, out, `"justificativa": "valor < R$ 1.000,00"`)
	})
}

func TestRenderMany(t *testing.T) {
	t.Run("Should number blocks and separate them with one blank line", func(t *testing.T) {
		out := RenderMany([]models.Fields{
			{{Key: "resultado", Value: "approved"}},
			{{Key: "resultado", Value: "rejected"}},
		})

		expected := strings.Join([]string{
			`=== Teste 1 ===`,
			`{`,
			`  "documentos": {`,
			`  },`,
			`  "resultado": "approved"`,
			`}`,
			``,
			`=== Teste 2 ===`,
			`{`,
			`  "documentos": {`,
			`  },`,
			`  "resultado": "rejected"`,
			`}`,
		}, "\n")
		assert.Equal(t, expected, out)
	})

	t.Run("Should render an empty list as empty output", func(t *testing.T) {
		require.Equal(t, "", RenderMany(nil))
	})
}
