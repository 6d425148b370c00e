package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
)

// Suggester proposes a category for descriptions the keyword table cannot
// place. Implementations may call external services; callers decide whether
// a suggestion is worth a network round trip. The deterministic Categorize
// path never consults a Suggester.
type Suggester interface {
	Suggest(ctx context.Context, description string, categories []models.CategoryConfig) (string, error)
}

// GeminiSuggester implements Suggester on top of the Google Gemini API.
type GeminiSuggester struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiSuggester creates a Gemini-backed suggester. The API key must be
// non-empty; model falls back to a sensible default when blank.
func NewGeminiSuggester(ctx context.Context, apiKey, model string, logger logging.Logger) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSuggester{
		client: client,
		model:  client.GenerativeModel(model),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (s *GeminiSuggester) Close() error {
	return s.client.Close()
}

// Suggest asks the model to pick one of the given categories for the
// description. An answer outside the candidate list degrades to the
// Uncategorized sentinel rather than polluting reports with novel names.
func (s *GeminiSuggester) Suggest(ctx context.Context, description string, categories []models.CategoryConfig) (string, error) {
	candidates := candidateNames(categories)

	prompt := fmt.Sprintf(`Categorize the following bank transaction description:
%s

Assign it to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		description,
		strings.Join(candidates, ", "))

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	suggestion := extractCategory(responseText, candidates)

	s.logger.Debug("AI category suggestion",
		logging.Field{Key: logging.FieldDescription, Value: description},
		logging.Field{Key: logging.FieldCategory, Value: suggestion})

	return suggestion, nil
}

// extractCategory pulls the "Category:" line out of a model response and
// validates it against the candidate list.
func extractCategory(response string, candidates []string) string {
	var name string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			name = strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
			break
		}
	}

	if name == "" {
		for _, c := range candidates {
			if strings.Contains(response, c) {
				name = c
				break
			}
		}
	}

	for _, c := range candidates {
		if strings.EqualFold(name, c) {
			return c
		}
	}
	return models.CategoryUncategorized
}

func candidateNames(categories []models.CategoryConfig) []string {
	if len(categories) == 0 {
		return []string{
			LabelFood, LabelTransport, LabelShopping, LabelEntertainment,
			LabelBills, LabelRent, LabelHealth, models.CategoryUncategorized,
		}
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}
