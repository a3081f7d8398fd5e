package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"hearth-home-server/models"
	"hearth-home-server/query"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiService turns natural-language search queries into the same
// FilterCriteria shape the form produces, and drafts listing descriptions
// for agents who leave the field empty.
type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiService{client: client, model: model}, nil
}

// extractedFilters mirrors the JSON response schema below. Absent fields
// stay nil/empty and impose no constraint.
type extractedFilters struct {
	City     string   `json:"city"`
	MinPrice *float64 `json:"minPrice"`
	MaxPrice *float64 `json:"maxPrice"`
	MinBeds  *int     `json:"minBeds"`
	Kind     string   `json:"kind"`
}

// ExtractFilters asks the model for structured filters. The output feeds
// the query engine exactly like form input; no extra validation is applied
// beyond what the criteria themselves tolerate.
func (s *GeminiService) ExtractFilters(ctx context.Context, userQuery string) (query.FilterCriteria, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"city":     {Type: genai.TypeString},
				"minPrice": {Type: genai.TypeNumber},
				"maxPrice": {Type: genai.TypeNumber},
				"minBeds":  {Type: genai.TypeInteger},
				"kind":     {Type: genai.TypeString, Enum: []string{string(models.KindSale), string(models.KindRent)}},
			},
		},
	}

	prompt := fmt.Sprintf("Extract housing search filters from this query: %q.", userQuery)
	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		return query.FilterCriteria{}, fmt.Errorf("gemini filter extraction: %w", err)
	}

	text := result.Text()
	if text == "" {
		return query.FilterCriteria{}, nil
	}

	var raw extractedFilters
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return query.FilterCriteria{}, fmt.Errorf("gemini filter extraction: decode response: %w", err)
	}

	return query.FilterCriteria{
		City:     raw.City,
		MinPrice: raw.MinPrice,
		MaxPrice: raw.MaxPrice,
		Bedrooms: query.SelectBedrooms(false, nil, raw.MinBeds),
		Kind:     query.ParseKind(raw.Kind),
	}, nil
}

// GenerateListingDescription drafts a short listing description from the
// key facts of a property.
func (s *GeminiService) GenerateListingDescription(ctx context.Context, features []string, kind models.ListingKind, city string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a compelling, professional real estate listing description (max 100 words) for a %s in %s.\nKey features: %s.",
		kind, city, strings.Join(features, ", "),
	)

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini description: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "Beautiful property waiting for you.", nil
	}
	return text, nil
}
