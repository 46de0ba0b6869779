package clipper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"nutriplan/internal/llm"
	"nutriplan/internal/recipe"
)

// Clipper fetches recipe pages and extracts structured recipes from them.
type Clipper struct {
	textGen    llm.TextGenerator
	httpClient *http.Client
}

// ExtractedRecipe represents the data structured by the model.
type ExtractedRecipe struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	PrepTime    string   `json:"prep_time"`
	Servings    string   `json:"servings"`
}

// NewClipper creates a new Clipper instance.
func NewClipper(textGen llm.TextGenerator) *Clipper {
	return &Clipper{
		textGen: textGen,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ClipURL fetches the URL, extracts the recipe, and returns it in the form
// used inside meal plans.
func (c *Clipper) ClipURL(ctx context.Context, url string) (*recipe.Recipe, error) {
	if c.textGen == nil {
		return nil, fmt.Errorf("no model client configured for recipe extraction")
	}

	content, err := c.fetchAndCleanHTML(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	prompt := fmt.Sprintf(`
You are a recipe extraction expert. Extract the recipe details from the following HTML content.
Return the result strictly as a JSON object with this structure:
{
  "title": "Recipe Title",
  "ingredients": ["item 1", "item 2", ...],
  "steps": ["Step 1 description", "Step 2 description", ...],
  "prep_time": "e.g. 30 mins",
  "servings": "e.g. 4 people"
}

HTML Content:
%s
`, content)

	llmResponse, err := c.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ai extraction failed: %w", err)
	}

	var extracted ExtractedRecipe
	if err := json.Unmarshal([]byte(llmResponse.Content), &extracted); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w. Response: %s", err, llmResponse.Content)
	}

	return toRecipe(extracted, url), nil
}

func (c *Clipper) fetchAndCleanHTML(url string) (string, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Remove noise to save LLM tokens
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	return doc.Find("body").Text(), nil
}

var leadingIntRe = regexp.MustCompile(`\d+`)

func toRecipe(r ExtractedRecipe, sourceURL string) *recipe.Recipe {
	clipped := &recipe.Recipe{
		ID:          uuid.NewString(),
		Label:       r.Title,
		URL:         sourceURL,
		Ingredients: r.Ingredients,
		Servings:    1,
		CookTime:    30,
	}

	if m := leadingIntRe.FindString(r.Servings); m != "" {
		if servings, err := strconv.Atoi(m); err == nil && servings > 0 {
			clipped.Servings = float64(servings)
		}
	}
	if m := leadingIntRe.FindString(r.PrepTime); m != "" {
		if minutes, err := strconv.Atoi(m); err == nil && minutes > 0 {
			clipped.CookTime = minutes
		}
	}

	return clipped
}
