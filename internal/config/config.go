package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultEdamamBaseURL = "https://api.edamam.com/api/recipes/v2"

// Config holds the configuration for the application.
type Config struct {
	EdamamBaseURL string
	EdamamAppID   string
	EdamamAppKey  string

	GroqAPIKey   string
	GeminiAPIKey string

	DatabasePath     string
	VideoTokenSecret string

	// Telegram Config
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
	AdminTelegramID        int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	edamamAppID := os.Getenv("EDAMAM_APP_ID")
	if edamamAppID == "" {
		return nil, fmt.Errorf("EDAMAM_APP_ID environment variable not set")
	}

	edamamAppKey := os.Getenv("EDAMAM_APP_KEY")
	if edamamAppKey == "" {
		return nil, fmt.Errorf("EDAMAM_APP_KEY environment variable not set")
	}

	edamamBaseURL := os.Getenv("EDAMAM_BASE_URL")
	if edamamBaseURL == "" {
		edamamBaseURL = defaultEdamamBaseURL
	}

	dbPath := os.Getenv("NUTRIPLAN_DB_PATH")
	if dbPath == "" {
		dbPath = "data/nutriplan.db"
	}

	videoSecret := os.Getenv("VIDEO_TOKEN_SECRET")
	if videoSecret == "" {
		return nil, fmt.Errorf("VIDEO_TOKEN_SECRET environment variable not set")
	}

	// LLM keys are optional; the coach falls back to rule-based replies
	// when neither is configured.
	groqAPIKey := os.Getenv("GROQ_API_KEY")
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")

	// Telegram config (optional for CLI, required for the bot)
	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramWebhookURL := os.Getenv("TELEGRAM_WEBHOOK_URL")

	var allowedIDs []int64
	if raw := os.Getenv("TELEGRAM_ALLOWED_USER_IDS"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid TELEGRAM_ALLOWED_USER_IDS entry %q: %w", part, err)
			}
			allowedIDs = append(allowedIDs, id)
		}
	}

	var adminID int64
	if raw := os.Getenv("TELEGRAM_ADMIN_ID"); raw != "" {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_ADMIN_ID %q: %w", raw, err)
		}
		adminID = id
	}

	return &Config{
		EdamamBaseURL:          edamamBaseURL,
		EdamamAppID:            edamamAppID,
		EdamamAppKey:           edamamAppKey,
		GroqAPIKey:             groqAPIKey,
		GeminiAPIKey:           geminiAPIKey,
		DatabasePath:           dbPath,
		VideoTokenSecret:       videoSecret,
		TelegramBotToken:       telegramBotToken,
		TelegramWebhookURL:     telegramWebhookURL,
		TelegramAllowedUserIDs: allowedIDs,
		AdminTelegramID:        adminID,
	}, nil
}
