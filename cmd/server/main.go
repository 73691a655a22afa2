package main

import (
	"context"

	"processcheck-backend/config"
	"processcheck-backend/decision"
	"processcheck-backend/handlers"
	"processcheck-backend/normalize"
	"processcheck-backend/notify"
	"processcheck-backend/service"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Warn("No .env file found, using environment variables")
		}
	}

	cfg := config.LoadFromEnv()

	// Initialize Gemini client
	geminiClient, err := initGemini(cfg)
	if err != nil {
		log.Fatal("Failed to initialize Gemini", "error", err)
	}
	defer geminiClient.Close()

	// Initialize notifier
	notifier := notify.NewNotifier(cfg.WebhookURL, cfg.WebhookTimeout)
	if cfg.WebhookURL == "" {
		log.Warn("N8N_WEBHOOK_URL not set, webhook delivery disabled")
	}

	// Initialize services
	analysisService := service.NewAnalysisService(
		service.WithNormalizer(normalize.NewNormalizer(normalize.DefaultKeywords())),
		service.WithDecisionClient(decision.NewGeminiClient(geminiClient, cfg.GeminiModel)),
		service.WithNotifier(notifier),
		service.WithDecisionTimeout(cfg.DecisionTimeout),
	)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisService)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		api.POST("/analyze", analysisHandler.AnalyzeText)
		api.POST("/analyze/json", analysisHandler.AnalyzeJSON)
	}

	log.Infof("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", "error", err)
	}
}

func initGemini(cfg config.Config) (*genai.Client, error) {
	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, err
	}

	log.Info("Gemini client initialized")
	return client, nil
}
