package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"nutriplan/internal/llm"
	"nutriplan/internal/profile"
	"nutriplan/internal/shared"
)

// MetricsRecorder receives execution metadata for each model call.
type MetricsRecorder interface {
	RecordMeta(meta shared.AgentMeta) error
}

// ProfileSource is any provider of a user's saved profile.
type ProfileSource interface {
	GetByUserID(ctx context.Context, userID string) (*profile.Profile, error)
}

// Coach answers free-form nutrition questions. It prefers the configured
// language model and degrades to keyword rules when the model is missing or
// fails, so the chat always answers.
type Coach struct {
	generator llm.TextGenerator
	profiles  ProfileSource
	metrics   MetricsRecorder
	now       func() time.Time
}

// NewCoach creates a Coach. generator and metrics may be nil.
func NewCoach(generator llm.TextGenerator, profiles ProfileSource, metrics MetricsRecorder) *Coach {
	return &Coach{
		generator: generator,
		profiles:  profiles,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Respond answers the user's message, personalized with their profile when
// one is saved.
func (c *Coach) Respond(ctx context.Context, userID, message string) (string, error) {
	if c.generator == nil {
		return FallbackResponse(message), nil
	}

	prompt, err := c.buildPrompt(ctx, userID, message)
	if err != nil {
		return "", err
	}

	start := c.now()
	resp, err := c.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("Coach model call failed, using fallback: %v", err)
		return FallbackResponse(message), nil
	}

	if c.metrics != nil {
		meta := shared.AgentMeta{
			AgentName: "coach",
			Usage:     resp.Usage,
			Latency:   c.now().Sub(start),
		}
		if err := c.metrics.RecordMeta(meta); err != nil {
			log.Printf("Failed to record coach metrics: %v", err)
		}
	}

	return resp.Content, nil
}

func (c *Coach) buildPrompt(ctx context.Context, userID, message string) (string, error) {
	userContext := "{}"
	if c.profiles != nil {
		p, err := c.profiles.GetByUserID(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("failed to load profile for coach context: %w", err)
		}
		if p != nil {
			stats := p.ComputeStats(c.now())
			contextJSON, err := json.Marshal(struct {
				profile.Profile
				Stats profile.Stats `json:"stats"`
			}{*p, stats})
			if err != nil {
				return "", fmt.Errorf("failed to marshal coach context: %w", err)
			}
			userContext = string(contextJSON)
		}
	}

	return fmt.Sprintf(`You are a helpful nutrition coach. The user said: %q

User context: %s

Provide a helpful, encouraging, and practical response. Keep it conversational and under 100 words.`,
		message, userContext), nil
}
