package decision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"processcheck-backend/models"
	"processcheck-backend/policy"

	"github.com/google/generative-ai-go/genai"
)

var ErrNoCandidates = errors.New("decision model returned no candidates")

// systemInstruction pins the collaborator to strict rule application.
const systemInstruction = `# Sua característica profissional

- Você é um verificador jurídico altamente criterioso e profissional.
- Sua função é aplicar exclusivamente as regras fornecidas da política, sem interpretações
além do que está explicitamente descrito.`

// promptTemplate carries the decision instructions, the policy text and
// the canonical record. The rule-priority wording is part of the versioned
// policy interface.
const promptTemplate = `# Instruções

- Aplique exclusivamente as regras definidas na política.
- Respeite a seguinte ordem de prioridade:

  1. **Regras de rejeição absoluta** (POL-3, POL-4, POL-5, POL-6).
     - Se alguma delas for satisfeita, o resultado deve ser **"rejected"**, mesmo que também faltem documentos.
     - Nesses casos, não use POL-8 na citação.
     - "resultado": "rejected",

  2. **Regras de aprovação mínima** (POL-1 e POL-2).
     - Considere como documentos essenciais: Transito Julgado e Cumprimento Definitivo Iniciado. (POL-1) e valor da condenação (POL-2).
     - Se um deles faltar, o processo deve ser **"incomplete"** com as citações correspondentes acrescida do (POL-8).

  3. **Regras de documento essencial** (POL-8).
     - Só aplique o POL-8 quando faltar documento essencial (Transito Julgado e Cumprimento Definitivo Iniciado. (POL-1) e valor da condenação (POL-2).).
     - "resultado": "incomplete",

  4. **Regras de honorários obrigatórios** (POL-7).
     - Use POL-7 quando existir informações de honorários

# Resposta

- A resposta deve ser em **JSON válido**, contendo:
  - resultado: apenas um dos valores em inglês: "approved", "rejected" ou "incomplete"
  - justificativa: explicação clara e objetiva do motivo da decisão
  - citacoes: lista com todos os IDs aplicados (ex.: ["POL-1", "POL-2"])

# Política
(use sempre os IDs exatamente como definidos)

%s

# Decisão
Analise o processo abaixo e devolva SOMENTE o JSON solicitado. Não inclua nenhum texto fora do JSON.

PROCESSO_MINIMO:
%s
`

// GeminiClient asks a Gemini model to apply the purchasing policy to a
// canonical record.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a decision client backed by the given Gemini
// client and model name.
func NewGeminiClient(client *genai.Client, model string) *GeminiClient {
	return &GeminiClient{client: client, model: model}
}

// Decide sends the canonical record and the policy text to the model and
// parses the strict three-field verdict.
func (g *GeminiClient) Decide(ctx context.Context, proc *models.MinimalProcess) (*models.Decision, error) {
	prompt, err := BuildPrompt(proc)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("decision request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrNoCandidates
	}

	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content.WriteString(string(text))
		}
	}

	return ParseDecision([]byte(content.String()))
}

// BuildPrompt assembles the instruction block, the policy text and the
// canonical record serialized as indented JSON with absent optionals
// omitted.
func BuildPrompt(proc *models.MinimalProcess) (string, error) {
	encoded, err := json.MarshalIndent(proc, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(promptTemplate, policy.Text(), string(encoded)), nil
}

// ParseDecision validates the collaborator's raw response against the
// strict three-field schema. Non-JSON content, unknown fields, unknown
// verdicts and missing citations are all rejected.
func ParseDecision(raw []byte) (*models.Decision, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var verdict models.Decision
	if err := dec.Decode(&verdict); err != nil {
		return nil, &FormatError{Raw: string(raw), Err: err}
	}
	if dec.More() {
		return nil, &FormatError{Raw: string(raw), Err: errors.New("trailing content after decision object")}
	}
	if !verdict.Result.Valid() {
		return nil, &FormatError{Raw: string(raw), Err: fmt.Errorf("unknown resultado %q", verdict.Result)}
	}
	if verdict.Citations == nil {
		return nil, &FormatError{Raw: string(raw), Err: errors.New("missing citacoes")}
	}
	return &verdict, nil
}
