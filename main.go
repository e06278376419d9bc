package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flatquiz/config"
	"flatquiz/events"
	"flatquiz/handlers"
	"flatquiz/middleware"
	"flatquiz/routes"
	"flatquiz/services"
	"flatquiz/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize question store
	questionStore := store.NewFileStore(cfg.QuestionsFile)
	if cfg.SeedDefaults {
		if _, err := store.SeedIfMissing(questionStore); err != nil {
			log.Fatal("Failed to seed questions:", err)
		}
	}

	// Optional result history in Redis
	var history services.ResultHistory
	if cfg.HistoryEnabled() {
		redisClient := config.InitRedis(cfg)
		defer redisClient.Close()
		history = services.NewRedisResultHistory(redisClient, cfg.HistorySize, cfg.HistoryTTL)
	} else {
		log.Println("Redis not configured, result history is disabled")
	}

	// Optional RabbitMQ event publisher
	var publisher services.EventPublisher
	if cfg.EventsEnabled() {
		p, err := events.NewPublisher(cfg.RabbitMQURI, cfg.EventExchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ:", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Initialize services
	queryService := services.NewQueryService(questionStore)
	hub := services.NewHub(queryService)
	go hub.Run()
	scoringService := services.NewScoringService(questionStore, history, publisher)
	questionService := services.NewQuestionService(questionStore, hub, publisher)

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(queryService, scoringService)
	questionHandler := handlers.NewQuestionHandler(queryService, questionService)
	healthHandler := handlers.NewHealthHandler(questionStore)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSOrigins))
	routes.SetupRoutes(router, quizHandler, questionHandler, healthHandler, hub)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Printf("Server starting on %s (questions file %s)", server.Addr, cfg.QuestionsFile)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
