package clipper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutriplan/internal/llm"
)

// --- Mocks ---

type MockTextGenerator struct {
	Response    string
	ShouldError bool
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	if m.ShouldError {
		return llm.ContentResponse{}, fmt.Errorf("mock ai error")
	}
	return llm.ContentResponse{Content: m.Response}, nil
}

// --- Tests ---

func TestFetchAndCleanHTML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		html := `
		<html>
			<head><script>alert('bad');</script></head>
			<body>
				<h1>Tasty Recipe</h1>
				<div class="ads">Buy stuff!</div>
				<p>Mix flour and water.</p>
				<script>more_bad_stuff()</script>
				<footer>Copyright 2024</footer>
			</body>
		</html>`
		w.Write([]byte(html))
	}))
	defer ts.Close()

	c := NewClipper(&MockTextGenerator{})

	cleanText, err := c.fetchAndCleanHTML(ts.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if strings.Contains(cleanText, "alert('bad')") {
		t.Error("Failed to remove <script> tags")
	}
	if strings.Contains(cleanText, "Buy stuff!") {
		t.Error("Failed to remove .ads class")
	}
	if strings.Contains(cleanText, "Copyright 2024") {
		t.Error("Failed to remove <footer>")
	}
	if !strings.Contains(cleanText, "Tasty Recipe") {
		t.Error("Expected to find 'Tasty Recipe'")
	}
	if !strings.Contains(cleanText, "Mix flour and water.") {
		t.Error("Expected to find body content")
	}
}

func TestClipURL_Success(t *testing.T) {
	aiResponse := `{"title": "Mock Pie", "ingredients": ["2 apples", "1 cup flour"], "steps": ["Bake"], "prep_time": "45 mins", "servings": "8 people"}`

	mockAI := &MockTextGenerator{Response: aiResponse}
	c := NewClipper(mockAI)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Some Content</body></html>"))
	}))
	defer ts.Close()

	clipped, err := c.ClipURL(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("ClipURL failed: %v", err)
	}

	if clipped.Label != "Mock Pie" {
		t.Errorf("Expected label 'Mock Pie', got '%s'", clipped.Label)
	}
	if len(clipped.Ingredients) != 2 {
		t.Errorf("Expected 2 ingredients, got %d", len(clipped.Ingredients))
	}
	if clipped.Servings != 8 {
		t.Errorf("Expected 8 servings, got %v", clipped.Servings)
	}
	if clipped.CookTime != 45 {
		t.Errorf("Expected 45 minute cook time, got %d", clipped.CookTime)
	}
	if clipped.URL != ts.URL {
		t.Errorf("Expected source URL %q, got %q", ts.URL, clipped.URL)
	}
}

func TestClipURL_BadAIResponse(t *testing.T) {
	mockAI := &MockTextGenerator{Response: "not json"}
	c := NewClipper(mockAI)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Some Content</body></html>"))
	}))
	defer ts.Close()

	if _, err := c.ClipURL(context.Background(), ts.URL); err == nil {
		t.Error("Expected an error for a non-JSON AI response")
	}
}

func TestClipURL_FetchFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClipper(&MockTextGenerator{})
	if _, err := c.ClipURL(context.Background(), ts.URL); err == nil {
		t.Error("Expected an error for a 404 page")
	}
}
