package coach

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nutriplan/internal/llm"
	"nutriplan/internal/profile"
	"nutriplan/internal/shared"
)

type fakeGenerator struct {
	response llm.ContentResponse
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return llm.ContentResponse{}, f.err
	}
	return f.response, nil
}

type fakeProfiles struct {
	profile *profile.Profile
}

func (f *fakeProfiles) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	return f.profile, nil
}

type fakeMetrics struct {
	recorded []shared.AgentMeta
}

func (f *fakeMetrics) RecordMeta(meta shared.AgentMeta) error {
	f.recorded = append(f.recorded, meta)
	return nil
}

func TestRespond(t *testing.T) {
	t.Run("UsesModel", func(t *testing.T) {
		gen := &fakeGenerator{response: llm.ContentResponse{
			Content: "Eat more vegetables.",
			Usage:   shared.TokenUsage{PromptTokens: 50, CompletionTokens: 20, Model: "test-model"},
		}}
		recorder := &fakeMetrics{}
		c := NewCoach(gen, &fakeProfiles{}, recorder)

		answer, err := c.Respond(context.Background(), "user-1", "What should I eat?")
		if err != nil {
			t.Fatalf("Respond failed: %v", err)
		}
		if answer != "Eat more vegetables." {
			t.Errorf("Expected the model answer, got %q", answer)
		}
		if len(recorder.recorded) != 1 || recorder.recorded[0].AgentName != "coach" {
			t.Errorf("Expected one recorded coach execution, got %+v", recorder.recorded)
		}
	})

	t.Run("ProfileContextInPrompt", func(t *testing.T) {
		gen := &fakeGenerator{response: llm.ContentResponse{Content: "ok"}}
		profiles := &fakeProfiles{profile: &profile.Profile{
			FullName: "Test User", ActivityLevel: "sedentary",
		}}
		c := NewCoach(gen, profiles, nil)

		if _, err := c.Respond(context.Background(), "user-1", "hi"); err != nil {
			t.Fatalf("Respond failed: %v", err)
		}
		if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "Test User") {
			t.Errorf("Expected the profile in the prompt, got:\n%s", gen.prompts[0])
		}
	})

	t.Run("FallbackOnModelError", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("rate limited")}
		c := NewCoach(gen, &fakeProfiles{}, nil)

		answer, err := c.Respond(context.Background(), "user-1", "help me plan meals")
		if err != nil {
			t.Fatalf("Expected a fallback answer, got error: %v", err)
		}
		if !strings.Contains(answer, "nutrition goals") {
			t.Errorf("Expected the 'help' rule answer, got %q", answer)
		}
	})

	t.Run("NoGenerator", func(t *testing.T) {
		c := NewCoach(nil, &fakeProfiles{}, nil)
		answer, err := c.Respond(context.Background(), "user-1", "any recipe ideas?")
		if err != nil {
			t.Fatalf("Respond failed: %v", err)
		}
		if !strings.Contains(answer, "healthy recipes") {
			t.Errorf("Expected the 'recipe' rule answer, got %q", answer)
		}
	})
}

func TestFallbackResponse(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"Weight", "how do I lose weight fast", "Sustainable weight management"},
		{"Calories", "should I count CALORIES", "Calorie needs vary"},
		{"Default", "tell me about the moon", "nutrition journey"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackResponse(tt.message)
			if !strings.Contains(got, tt.expected) {
				t.Errorf("FallbackResponse(%q) = %q, expected it to contain %q", tt.message, got, tt.expected)
			}
		})
	}
}
