// Package openai holds the recommendation client for the AI meal-plan
// generator. The external service is a hint generator only: it receives a
// reduced candidate list (id, calories, protein) and must answer with one
// recipe identifier per meal type; everything it returns is re-validated
// against the database by the caller.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is not set")
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// RecipeCandidate is the reduced view of a recipe sent to the service. Full
// recipe content never leaves the backend.
type RecipeCandidate struct {
	ID       uint    `json:"id"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
}

// PlanContext is the user summary sent with every recommendation request.
type PlanContext struct {
	Sex                string
	HeightCm           int
	WeightKg           float64
	ActivityLevel      string
	Goal               string
	TargetMacros       map[string]float64
	DietaryPreferences []string
	Allergies          []string
	MedicalConditions  []string
	Candidates         []RecipeCandidate
}

// PlanSelection carries the recipe id chosen for each meal type. A nil field
// means the service returned nothing usable for that slot.
type PlanSelection struct {
	Breakfast *uint
	Lunch     *uint
	Dinner    *uint
	Snack     *uint
}

// ForMealType returns the selected id for the given meal type.
func (s *PlanSelection) ForMealType(mealType string) *uint {
	switch mealType {
	case "breakfast":
		return s.Breakfast
	case "lunch":
		return s.Lunch
	case "dinner":
		return s.Dinner
	case "snack":
		return s.Snack
	}
	return nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const systemPrompt = `You are a meal-planning assistant.
- You will be given a user profile and health data.
- You will be given a list of recipes.
- You will be asked to generate a one day meal plan.
- Return JSON with exactly one recipe ID per meal type:
breakfast, lunch, dinner, snack.`

func buildUserPrompt(pc PlanContext) (string, error) {
	targetMacros, err := json.Marshal(pc.TargetMacros)
	if err != nil {
		return "", err
	}
	preferences, err := json.Marshal(pc.DietaryPreferences)
	if err != nil {
		return "", err
	}
	allergies, err := json.Marshal(pc.Allergies)
	if err != nil {
		return "", err
	}
	conditions, err := json.Marshal(pc.MedicalConditions)
	if err != nil {
		return "", err
	}
	candidates, err := json.Marshal(pc.Candidates)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`User profile:
- Sex: %s
- Height: %d cm
- Weight: %g kg
- Activity level: %s
- Goal: %s

Target macros:
%s

Dietary preferences:
%s

Allergies:
%s

Medical conditions:
%s

Available recipes (USE ONLY THESE IDS):
%s

Return JSON EXACTLY like:
{
  "breakfast": 1,
  "lunch": 2,
  "dinner": 3,
  "snack": 4
}`,
		pc.Sex, pc.HeightCm, pc.WeightKg, pc.ActivityLevel, pc.Goal,
		targetMacros, preferences, allergies, conditions, candidates), nil
}

// RecommendDailyPlan performs the blocking recommendation round-trip. Any
// transport failure (timeout, non-2xx, unparseable payload) is returned as an
// error; a per-slot value of the wrong shape is treated as absent instead,
// because the database re-validation downstream is authoritative anyway.
func (c *Client) RecommendDailyPlan(ctx context.Context, pc PlanContext) (*PlanSelection, error) {
	userPrompt, err := buildUserPrompt(pc)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	req := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    0.2,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil {
			return nil, fmt.Errorf("recommendation API returned status %d", response.StatusCode)
		}
		return nil, fmt.Errorf("recommendation API error: %s", errorResponse.Error.Message)
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	return parseSelection(result.Choices[0].Message.Content)
}

func parseSelection(content string) (*PlanSelection, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON reply: %w", err)
	}

	selection := &PlanSelection{
		Breakfast: parseSlot(raw, "breakfast"),
		Lunch:     parseSlot(raw, "lunch"),
		Dinner:    parseSlot(raw, "dinner"),
		Snack:     parseSlot(raw, "snack"),
	}
	return selection, nil
}

// parseSlot pulls one integer field out of the reply. Absent, null, zero and
// malformed values all read as "no selection" for that slot.
func parseSlot(raw map[string]json.RawMessage, mealType string) *uint {
	data, ok := raw[mealType]
	if !ok {
		return nil
	}
	var id uint
	if err := json.Unmarshal(data, &id); err != nil || id == 0 {
		return nil
	}
	return &id
}
