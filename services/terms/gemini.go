package terms

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"snapfix/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiInstruction = `You turn consumer problem descriptions into professional contractor-search phrases.
Given a home maintenance problem and its service category, output the search phrases a
business directory would index, not consumer complaint language ("plumbing contractor",
never "my sink is leaking").
Respond with a single JSON object and nothing else, no markdown, no code blocks:
{"primaryTerm": "string", "alternativeTerms": ["string", "string"]}`

var codeBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")

// GeminiGenerator is the language-model path for search phrase generation.
type GeminiGenerator struct {
	model *genai.GenerativeModel
}

// NewGeminiGenerator creates the Gemini-backed generator. An empty API key
// is an error; callers fall back to the static table instead.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(geminiInstruction)},
	}
	return &GeminiGenerator{model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, problemDescription string, category models.ServiceCategory) (Terms, error) {
	prompt := fmt.Sprintf("Problem: %s\nCategory: %s", problemDescription, category)
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Terms{}, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Terms{}, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return parseTerms(sb.String())
}

// parseTerms extracts and validates the strict JSON object from a model
// response. Both fields must be present and non-empty; anything else is a
// failure that triggers the fallback.
func parseTerms(raw string) (Terms, error) {
	payload := extractJSON(raw)

	var t Terms
	if err := json.Unmarshal([]byte(payload), &t); err != nil {
		return Terms{}, fmt.Errorf("failed to parse term response: %w", err)
	}
	if strings.TrimSpace(t.PrimaryTerm) == "" {
		return Terms{}, fmt.Errorf("term response is missing primaryTerm")
	}
	if len(t.AlternativeTerms) == 0 {
		return Terms{}, fmt.Errorf("term response is missing alternativeTerms")
	}
	for _, alt := range t.AlternativeTerms {
		if strings.TrimSpace(alt) == "" {
			return Terms{}, fmt.Errorf("term response contains an empty alternative term")
		}
	}
	return t, nil
}

// extractJSON tolerates models that wrap the object in markdown fences or
// surrounding prose.
func extractJSON(text string) string {
	if m := codeBlockRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return strings.TrimSpace(text)
}
