package service

import (
	"context"
	"errors"
	"time"

	"processcheck-backend/decision"
	"processcheck-backend/models"
	"processcheck-backend/normalize"
	"processcheck-backend/notify"
	"processcheck-backend/render"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// AnalysisService runs the full verification flow for raw court records:
// normalize, obtain the verdict, assemble and canonicalize the flat
// result, fire the webhook notification.
type AnalysisService struct {
	normalizer      *normalize.Normalizer
	decider         decision.Client
	notifier        *notify.Notifier
	decisionTimeout time.Duration
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// WithNormalizer sets the normalizer
func WithNormalizer(n *normalize.Normalizer) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.normalizer = n
	}
}

// WithDecisionClient sets the decision client
func WithDecisionClient(client decision.Client) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.decider = client
	}
}

// WithNotifier sets the webhook notifier
func WithNotifier(n *notify.Notifier) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.notifier = n
	}
}

// WithDecisionTimeout bounds each call to the decision collaborator
func WithDecisionTimeout(d time.Duration) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.decisionTimeout = d
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.normalizer == nil {
		s.normalizer = normalize.NewNormalizer(normalize.DefaultKeywords())
	}
	return s
}

// Analyze normalizes a raw process, obtains the verdict and returns the
// flat, timestamp-canonicalized result map.
func (s *AnalysisService) Analyze(ctx context.Context, proc *models.Process) (models.Fields, error) {
	if s.decider == nil {
		return nil, errors.New("decision client not set")
	}

	analysisID := uuid.New()

	minimal, err := s.normalizer.Minimize(proc)
	if err != nil {
		return nil, err
	}

	decideCtx := ctx
	if s.decisionTimeout > 0 {
		var cancel context.CancelFunc
		decideCtx, cancel = context.WithTimeout(ctx, s.decisionTimeout)
		defer cancel()
	}

	verdict, err := s.decider.Decide(decideCtx, minimal)
	if err != nil {
		return nil, err
	}
	log.Infof("analysis %s: process %s decided as %s", analysisID, minimal.Number, verdict.Result)

	result := render.Canonicalize(assembleResult(minimal, verdict)).(models.Fields)

	s.notifier.Send(ctx, analysisID.String(), result)

	return result, nil
}

// AnalyzeMany analyzes records in input order and preserves that order in
// the result list. The first failure aborts the batch.
func (s *AnalysisService) AnalyzeMany(ctx context.Context, procs []models.Process) ([]models.Fields, error) {
	results := make([]models.Fields, 0, len(procs))
	for i := range procs {
		result, err := s.Analyze(ctx, &procs[i])
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// assembleResult flattens the canonical record and the verdict into the
// field map consumed by the renderer. The fee map is always emitted here,
// empty when the record carries none.
func assembleResult(minimal *models.MinimalProcess, verdict *models.Decision) models.Fields {
	fees := minimal.Fees
	if fees == nil {
		fees = models.FeeMap{}
	}

	return models.Fields{
		{Key: "numeroProcesso", Value: minimal.Number},
		{Key: "classe", Value: minimal.Class},
		{Key: "orgaoJulgador", Value: minimal.Court},
		{Key: "ultimaDistribuicao", Value: minimal.LastDistribution},
		{Key: "valorCausa", Value: floatOrNil(minimal.ClaimValue)},
		{Key: "assunto", Value: minimal.Subject},
		{Key: "segredoJustica", Value: minimal.UnderSeal},
		{Key: "justicaGratuita", Value: minimal.LegalAid},
		{Key: "siglaTribunal", Value: minimal.CourtCode},
		{Key: "esfera", Value: minimal.Sphere},
		{Key: "valorCondenacao", Value: floatOrNil(minimal.AwardValue)},
		{Key: "documentos", Value: minimal.Documents},
		{Key: "honorarios", Value: fees},
		{Key: "resultado", Value: verdict.Result},
		{Key: "justificativa", Value: verdict.Justification},
		{Key: "citacoes", Value: verdict.Citations},
	}
}

func floatOrNil(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
