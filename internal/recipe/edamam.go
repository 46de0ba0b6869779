package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"nutriplan/internal/config"

	"github.com/google/uuid"
)

// edamamClient talks to the Edamam recipe search API.
type edamamClient struct {
	baseURL    string
	appID      string
	appKey     string
	httpClient *http.Client
}

// NewEdamamClient creates a recipe source backed by the Edamam search API.
func NewEdamamClient(cfg *config.Config) Source {
	return &edamamClient{
		baseURL: cfg.EdamamBaseURL,
		appID:   cfg.EdamamAppID,
		appKey:  cfg.EdamamAppKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// edamamResponse mirrors the slice of the API payload we consume.
type edamamResponse struct {
	Hits []struct {
		Recipe struct {
			URI             string   `json:"uri"`
			Label           string   `json:"label"`
			Image           string   `json:"image"`
			URL             string   `json:"url"`
			Calories        float64  `json:"calories"`
			Yield           float64  `json:"yield"`
			IngredientLines []string `json:"ingredientLines"`
			TotalTime       float64  `json:"totalTime"`
			DietLabels      []string `json:"dietLabels"`
			HealthLabels    []string `json:"healthLabels"`
			TotalNutrients  map[string]struct {
				Quantity float64 `json:"quantity"`
			} `json:"totalNutrients"`
		} `json:"recipe"`
	} `json:"hits"`
}

// Search queries the API and maps the hits into Recipe records.
func (c *edamamClient) Search(ctx context.Context, sr SearchRequest) ([]Recipe, error) {
	params := url.Values{}
	params.Set("q", sr.Query)
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("from", fmt.Sprintf("%d", sr.From))
	params.Set("to", fmt.Sprintf("%d", sr.To))
	if sr.Diet != "" {
		params.Set("diet", sr.Diet)
	}
	if sr.Health != "" {
		params.Set("health", sr.Health)
	}
	if sr.Calories != "" {
		params.Set("calories", sr.Calories)
	}
	if sr.Cuisine != "" {
		params.Set("cuisineType", sr.Cuisine)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("recipe api error: status=%d body=%s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp edamamResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	recipes := make([]Recipe, 0, len(apiResp.Hits))
	for _, hit := range apiResp.Hits {
		r := hit.Recipe

		servings := r.Yield
		if servings == 0 {
			servings = 1
		}
		cookTime := int(r.TotalTime)
		if cookTime == 0 {
			cookTime = 30
		}

		recipes = append(recipes, Recipe{
			ID:           uuid.NewString(),
			URI:          r.URI,
			Label:        r.Label,
			Image:        r.Image,
			URL:          r.URL,
			Calories:     int(math.Round(r.Calories)),
			Servings:     servings,
			Ingredients:  r.IngredientLines,
			CookTime:     cookTime,
			Nutrients:    mapNutrients(r.TotalNutrients),
			DietLabels:   r.DietLabels,
			HealthLabels: r.HealthLabels,
		})
	}
	return recipes, nil
}

func mapNutrients(totals map[string]struct {
	Quantity float64 `json:"quantity"`
}) Nutrients {
	var n Nutrients
	if v, ok := totals["PROCNT"]; ok {
		n.Protein = roundPtr(v.Quantity)
	}
	if v, ok := totals["CHOCDF"]; ok {
		n.Carbs = roundPtr(v.Quantity)
	}
	if v, ok := totals["FAT"]; ok {
		n.Fat = roundPtr(v.Quantity)
	}
	if v, ok := totals["FIBTG"]; ok {
		n.Fiber = roundPtr(v.Quantity)
	}
	return n
}

func roundPtr(v float64) *int {
	i := int(math.Round(v))
	return &i
}
