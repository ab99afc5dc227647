package terms

import (
	"context"
	"errors"
	"testing"

	"snapfix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingGenerator always errors and counts its invocations.
type failingGenerator struct {
	calls int
}

func (g *failingGenerator) Generate(_ context.Context, _ string, _ models.ServiceCategory) (Terms, error) {
	g.calls++
	return Terms{}, errors.New("model unavailable")
}

func TestStaticGenerator_Deterministic(t *testing.T) {
	gen := NewStaticGenerator()

	first, err := gen.Generate(context.Background(), "leaking pipe", models.CategoryPlumbing)
	require.NoError(t, err)
	assert.Equal(t, "plumbing contractor", first.PrimaryTerm)
	assert.Equal(t, []string{"plumber", "leak repair service"}, first.AlternativeTerms)

	for i := 0; i < 3; i++ {
		again, err := gen.Generate(context.Background(), "different wording each time", models.CategoryPlumbing)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestStaticGenerator_UnknownCategoryFallsBackToOther(t *testing.T) {
	gen := NewStaticGenerator()
	got, err := gen.Generate(context.Background(), "", models.ServiceCategory("underwater basket weaving"))
	require.NoError(t, err)
	assert.Equal(t, "home maintenance contractor", got.PrimaryTerm)
}

func TestStaticGenerator_CoversEveryCategory(t *testing.T) {
	gen := NewStaticGenerator()
	for _, category := range models.ServiceCategories {
		got, err := gen.Generate(context.Background(), "", category)
		require.NoError(t, err)
		assert.NotEmpty(t, got.PrimaryTerm, string(category))
		assert.NotEmpty(t, got.AlternativeTerms, string(category))
	}
}

func TestService_RetriesOnceThenFallsBack(t *testing.T) {
	llm := &failingGenerator{}
	svc := NewService(llm, zap.NewNop())

	got, err := svc.Generate(context.Background(), "leaking pipe", models.CategoryPlumbing)
	require.NoError(t, err, "the term service never fails")
	assert.Equal(t, 2, llm.calls, "one retry before the fallback")
	assert.Equal(t, "plumbing contractor", got.PrimaryTerm)
}

func TestService_NilLLMUsesStaticTable(t *testing.T) {
	svc := NewService(nil, zap.NewNop())
	got, err := svc.Generate(context.Background(), "sparking outlet", models.CategoryElectrical)
	require.NoError(t, err)
	assert.Equal(t, "electrical contractor", got.PrimaryTerm)
}

func TestParseTerms(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Terms
		wantErr bool
	}{
		{
			name: "bare json",
			raw:  `{"primaryTerm": "plumbing contractor", "alternativeTerms": ["plumber"]}`,
			want: Terms{PrimaryTerm: "plumbing contractor", AlternativeTerms: []string{"plumber"}},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"primaryTerm\": \"plumbing contractor\", \"alternativeTerms\": [\"plumber\"]}\n```",
			want: Terms{PrimaryTerm: "plumbing contractor", AlternativeTerms: []string{"plumber"}},
		},
		{
			name: "json buried in prose",
			raw:  `Here you go: {"primaryTerm": "hvac contractor", "alternativeTerms": ["heating service"]} hope that helps`,
			want: Terms{PrimaryTerm: "hvac contractor", AlternativeTerms: []string{"heating service"}},
		},
		{
			name:    "missing primary term",
			raw:     `{"primaryTerm": "", "alternativeTerms": ["plumber"]}`,
			wantErr: true,
		},
		{
			name:    "missing alternatives",
			raw:     `{"primaryTerm": "plumbing contractor", "alternativeTerms": []}`,
			wantErr: true,
		},
		{
			name:    "blank alternative",
			raw:     `{"primaryTerm": "plumbing contractor", "alternativeTerms": ["plumber", "  "]}`,
			wantErr: true,
		},
		{
			name:    "not json at all",
			raw:     "plumbing contractor",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseTerms(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
