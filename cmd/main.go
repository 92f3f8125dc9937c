package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"governance-service/internal/ai/gemini"
	"governance-service/internal/config"
	"governance-service/internal/database/redis"
	"governance-service/internal/handlers"
	"governance-service/internal/repository"
	"governance-service/internal/services"

	"github.com/gofiber/fiber/v3"
)

func setupLogging() (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	logDir := filepath.Join("/governance", "log", "governance_service")
	fmt.Println("Log directory:", logDir)
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func buildGeminiSelector(cfg config.GeminiAPIConfig) *gemini.ClientSelector {
	if cfg.APIKeys == "" {
		log.Println("No Gemini API keys configured; advisory analysis will use the simulated fallback")
		return nil
	}

	var clients []*gemini.Client
	for _, key := range strings.Split(cfg.APIKeys, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		client, err := gemini.NewClient(key, cfg.FlashName, cfg.ProName)
		if err != nil {
			log.Printf("Failed to initialize Gemini client: %v", err)
			continue
		}
		clients = append(clients, client)
	}
	if len(clients) == 0 {
		return nil
	}

	log.Printf("Initialized %d Gemini client(s)", len(clients))
	return gemini.NewClientSelector(clients)
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()

	// Advisory infrastructure is optional: a missing Redis or Gemini key
	// degrades analysis to the local fallback, never the core commands.
	redisClient, err := redis.NewRedisClient(
		cfg.RedisCfg.Host, cfg.RedisCfg.Port, cfg.RedisCfg.Password, cfg.RedisCfg.DB)
	if err != nil {
		log.Printf("Redis unavailable, analysis caching disabled: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	selector := buildGeminiSelector(cfg.GeminiAPICfg)

	store := repository.NewSeededStore()

	projectService := services.NewProjectService(store)
	allocationService := services.NewAllocationService(store)
	policyService := services.NewPolicyService(store)
	paymentService := services.NewPaymentService(store)
	dashboardService := services.NewDashboardService(store)
	analysisService := services.NewAnalysisService(selector, redisClient)

	app := fiber.New()
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Governance service is healthy")
	})

	handlers.NewProjectHandler(projectService).Register(app)
	handlers.NewAllocationHandler(allocationService).Register(app)
	handlers.NewPolicyHandler(policyService).Register(app)
	handlers.NewPaymentHandler(paymentService).Register(app)
	handlers.NewDashboardHandler(dashboardService).Register(app)
	handlers.NewAnalysisHandler(analysisService, dashboardService).Register(app)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", cfg.Port)); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
