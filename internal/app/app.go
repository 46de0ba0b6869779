package app

import (
	"context"
	"fmt"
	"log"

	"nutriplan/internal/appointment"
	"nutriplan/internal/clipper"
	"nutriplan/internal/coach"
	"nutriplan/internal/config"
	"nutriplan/internal/database"
	"nutriplan/internal/grocery"
	"nutriplan/internal/llm"
	"nutriplan/internal/mealplan"
	"nutriplan/internal/metrics"
	"nutriplan/internal/profile"
	"nutriplan/internal/recipe"
)

// App holds the application's dependencies.
type App struct {
	cfg *config.Config
	db  *database.DB

	textGen llm.TextGenerator

	Generator    *mealplan.Generator
	Plans        *mealplan.Repository
	Groceries    *grocery.Service
	Profiles     *profile.Repository
	Appointments *appointment.Service
	Coach        *coach.Coach
	Clipper      *clipper.Clipper
	Metrics      *metrics.Store
}

// New wires the full dependency graph: database, repositories, recipe source,
// model client, and the services on top of them.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	planRepo := mealplan.NewRepository(db.SQL)
	groceryRepo := grocery.NewRepository(db.SQL)
	profileRepo := profile.NewRepository(db.SQL)
	apptRepo := appointment.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	source := recipe.NewEdamamClient(cfg)
	generator := mealplan.NewGenerator(source)
	groceries := grocery.NewService(grocery.NewEngine(), groceryRepo, planRepo)
	appointments := appointment.NewService(apptRepo, cfg.VideoTokenSecret)

	textGen := newTextGenerator(ctx, cfg)
	nutritionCoach := coach.NewCoach(textGen, profileRepo, metricsStore)
	recipeClipper := clipper.NewClipper(textGen)

	return &App{
		cfg:          cfg,
		db:           db,
		textGen:      textGen,
		Generator:    generator,
		Plans:        planRepo,
		Groceries:    groceries,
		Profiles:     profileRepo,
		Appointments: appointments,
		Coach:        nutritionCoach,
		Clipper:      recipeClipper,
		Metrics:      metricsStore,
	}, nil
}

// newTextGenerator picks the configured model provider. Groq wins when both
// keys are set; with neither the coach runs on its rule-based fallback and
// the clipper is unavailable.
func newTextGenerator(ctx context.Context, cfg *config.Config) llm.TextGenerator {
	if cfg.GroqAPIKey != "" {
		return llm.NewGroqClient(cfg)
	}
	if cfg.GeminiAPIKey != "" {
		gen, err := llm.NewGeminiClient(ctx, cfg)
		if err != nil {
			log.Printf("Warning: failed to create Gemini client: %v", err)
			return nil
		}
		return gen
	}
	return nil
}

// Config returns the loaded configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// TextGenerator returns the active model client, or nil when none is
// configured.
func (a *App) TextGenerator() llm.TextGenerator {
	return a.textGen
}

// DB exposes the raw connection for components wired outside App.
func (a *App) DB() *database.DB {
	return a.db
}

// Close releases the model client and the database connection.
func (a *App) Close() error {
	if closer, ok := a.textGen.(llm.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Printf("Warning: failed to close model client: %v", err)
		}
	}
	return a.db.Close()
}
