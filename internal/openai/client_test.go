package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", "")
	require.NoError(t, err)
	client.baseURL = server.URL
	return client, server
}

func completionReply(content string) string {
	reply := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	data, _ := json.Marshal(reply)
	return string(data)
}

func samplePlanContext() PlanContext {
	return PlanContext{
		Sex:           "male",
		HeightCm:      180,
		WeightKg:      78.5,
		ActivityLevel: "moderate",
		Goal:          "maintain",
		TargetMacros:  map[string]float64{"protein": 140},
		Candidates: []RecipeCandidate{
			{ID: 1, Calories: 450.5, ProteinG: 32},
			{ID: 2, Calories: 520, ProteinG: 41.2},
			{ID: 3, Calories: 380, ProteinG: 25},
			{ID: 4, Calories: 610, ProteinG: 38.9},
		},
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("", "gpt-4o-mini")
	assert.Error(t, err)
}

func TestNewClientDefaultsModel(t *testing.T) {
	client, err := NewClient("test-key", "")
	require.NoError(t, err)
	assert.Equal(t, defaultModel, client.model)
}

func TestRecommendDailyPlanSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, defaultModel, req.Model)
		assert.Equal(t, 0.2, req.Temperature)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "USE ONLY THESE IDS")

		w.Write([]byte(completionReply(`{"breakfast":1,"lunch":2,"dinner":3,"snack":4}`)))
	})

	selection, err := client.RecommendDailyPlan(context.Background(), samplePlanContext())
	require.NoError(t, err)
	require.NotNil(t, selection.Breakfast)
	assert.Equal(t, uint(1), *selection.Breakfast)
	require.NotNil(t, selection.Snack)
	assert.Equal(t, uint(4), *selection.Snack)
}

func TestRecommendDailyPlanAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	_, err := client.RecommendDailyPlan(context.Background(), samplePlanContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestRecommendDailyPlanUnparseableReply(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionReply(`I cannot help with that.`)))
	})

	_, err := client.RecommendDailyPlan(context.Background(), samplePlanContext())
	assert.Error(t, err)
}

func TestRecommendDailyPlanNoChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.RecommendDailyPlan(context.Background(), samplePlanContext())
	assert.Error(t, err)
}

func TestParseSelectionTolerantSlots(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    PlanSelection
	}{
		{
			name:    "missing slot",
			content: `{"breakfast":1,"lunch":2,"dinner":3}`,
			want:    PlanSelection{Breakfast: ptr(1), Lunch: ptr(2), Dinner: ptr(3)},
		},
		{
			name:    "null slot",
			content: `{"breakfast":1,"lunch":null,"dinner":3,"snack":4}`,
			want:    PlanSelection{Breakfast: ptr(1), Dinner: ptr(3), Snack: ptr(4)},
		},
		{
			name:    "zero slot",
			content: `{"breakfast":0,"lunch":2,"dinner":3,"snack":4}`,
			want:    PlanSelection{Lunch: ptr(2), Dinner: ptr(3), Snack: ptr(4)},
		},
		{
			name:    "malformed slot",
			content: `{"breakfast":"pancakes","lunch":2,"dinner":3,"snack":4}`,
			want:    PlanSelection{Lunch: ptr(2), Dinner: ptr(3), Snack: ptr(4)},
		},
		{
			name:    "negative slot",
			content: `{"breakfast":-1,"lunch":2,"dinner":3,"snack":4}`,
			want:    PlanSelection{Lunch: ptr(2), Dinner: ptr(3), Snack: ptr(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection, err := parseSelection(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *selection)
		})
	}
}

func TestForMealType(t *testing.T) {
	selection := PlanSelection{Breakfast: ptr(1), Lunch: ptr(2)}

	assert.Equal(t, uint(1), *selection.ForMealType("breakfast"))
	assert.Equal(t, uint(2), *selection.ForMealType("lunch"))
	assert.Nil(t, selection.ForMealType("dinner"))
	assert.Nil(t, selection.ForMealType("brunch"))
}

func ptr(v uint) *uint { return &v }
