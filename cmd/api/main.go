package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	cacheAdapter "github.com/duvarakeshss/mini-chat/internal/infrastructure/cache/adapter"
	cacheport "github.com/duvarakeshss/mini-chat/internal/infrastructure/cache/port"
	"github.com/duvarakeshss/mini-chat/internal/infrastructure/database"
	queueAdapter "github.com/duvarakeshss/mini-chat/internal/infrastructure/queue/adapter"
	queueport "github.com/duvarakeshss/mini-chat/internal/infrastructure/queue/port"
	"github.com/duvarakeshss/mini-chat/internal/infrastructure/realtime"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/task"
	httpHandler "github.com/duvarakeshss/mini-chat/internal/pkg/chat/presentation/http"

	"github.com/duvarakeshss/mini-chat/cmd/api/router"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Connect to the database on startup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	pool, err := database.NewPoolFromEnv(ctx)
	cancel()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis cache and asynq are optional: without REDIS_URL the API still
	// serves everything except recent-chat summaries and profile caching.
	var cache cacheport.Cache
	if c, err := cacheAdapter.NewRedisAdapter(); err != nil {
		log.Printf("Warning: redis cache disabled: %v", err)
	} else {
		cache = c
		defer c.Close()
	}

	var queueClient queueport.Client
	var worker queueport.Server
	if cache != nil {
		qc, err := queueAdapter.NewAsynqClientFromEnv()
		if err != nil {
			log.Printf("Warning: task queue disabled: %v", err)
		} else {
			queueClient = qc
			defer qc.Close()
		}

		srv, err := queueAdapter.NewAsynqServer()
		if err != nil {
			log.Printf("Warning: task worker disabled: %v", err)
		} else {
			worker = srv
			task.RegisterRecentChatTask(srv, cache)
		}
	}

	registry := realtime.NewRegistry()

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	router.RegisterRoutes(r, httpHandler.Deps{
		Pool:     pool,
		Cache:    cache,
		Queue:    queueClient,
		Registry: registry,
	})

	addr := ":8000"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if worker != nil {
		go func() {
			if err := worker.Run(workerCtx); err != nil {
				log.Printf("task worker stopped: %v", err)
			}
		}()
	}

	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	registry.Close()
	stopWorker()
}
