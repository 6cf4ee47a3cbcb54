package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/checkmarkdevtools/system-notes/internal/api"
	"github.com/checkmarkdevtools/system-notes/internal/blog"
	"github.com/checkmarkdevtools/system-notes/internal/config"
	"github.com/checkmarkdevtools/system-notes/internal/llm"
	"github.com/checkmarkdevtools/system-notes/internal/search"
	"github.com/checkmarkdevtools/system-notes/internal/service"
	"go.uber.org/zap"
)

var configPath = flag.String("config", "", "Path to config file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// External capabilities
	completions := llm.NewCompletionService(cfg.LLM)
	searchClient := search.NewAlgoliaClient(cfg.Algolia)
	aggregator := search.NewAggregator(searchClient, logger)

	// Blog catalog pipeline
	sitemap := blog.NewSitemap(cfg.Blog, logger)
	fetcher := blog.NewFetcher(cfg.Blog, logger)
	cache := blog.NewCache(sitemap, fetcher, cfg.Blog.CacheTTL, cfg.Blog.EmptyTTL, logger)

	// Services
	chatService := service.NewChatService(completions, aggregator, cfg.LLM.Model, logger)
	blogService := service.NewBlogService(cache)
	contentService := service.NewContentService(cfg.Content, logger)

	router := api.SetupRouter(chatService, blogService, contentService, logger, api.RouterConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting System Notes server",
			zap.String("address", cfg.Address()),
			zap.String("sitemap", cfg.Blog.SitemapURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
