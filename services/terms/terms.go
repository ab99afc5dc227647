// Package terms turns a vague problem description into professional
// contractor-search phrases. The language-model path is preferred; a static
// category table is the terminal safety net and never fails.
package terms

import (
	"context"

	"snapfix/models"

	"go.uber.org/zap"
)

// Terms is one primary search phrase plus alternatives.
type Terms struct {
	PrimaryTerm      string   `json:"primaryTerm"`
	AlternativeTerms []string `json:"alternativeTerms"`
}

// Generator produces search phrases for a problem description and category.
type Generator interface {
	Generate(ctx context.Context, problemDescription string, category models.ServiceCategory) (Terms, error)
}

// Service selects between the language-model generator and the static
// fallback. The LLM call is retried once before falling back; the fallback
// itself cannot fail.
type Service struct {
	LLM    Generator // nil when no credentials are configured
	Static *StaticGenerator
	Logger *zap.Logger
}

// NewService wires the generator chain. llm may be nil.
func NewService(llm Generator, logger *zap.Logger) *Service {
	return &Service{
		LLM:    llm,
		Static: NewStaticGenerator(),
		Logger: logger,
	}
}

// Generate never fails: any LLM error degrades to the static table.
func (s *Service) Generate(ctx context.Context, problemDescription string, category models.ServiceCategory) (Terms, error) {
	if s.LLM != nil {
		for attempt := 0; attempt < 2; attempt++ {
			t, err := s.LLM.Generate(ctx, problemDescription, category)
			if err == nil {
				return t, nil
			}
			s.Logger.Warn("Term generation via language model failed",
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			if ctx.Err() != nil {
				break
			}
		}
	}
	return s.Static.Generate(ctx, problemDescription, category)
}
