package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"reelview/api"
	"reelview/config"
	"reelview/handlers"
	"reelview/internal/storage"
	"reelview/services/catalog"
	"reelview/services/discover"
	"reelview/services/progress"
	"reelview/services/search"
	"reelview/services/watchlist"
)

func main() {
	portOverride := flag.Int("port", 0, "override server port from config")
	flag.Parse()

	configPath := os.Getenv("REELVIEW_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("data", "settings.json")
	}

	cfgManager := config.NewManager(configPath)
	settings, err := cfgManager.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	// Set up file logging with rotation
	if settings.Log.File != "" {
		logDir := filepath.Dir(settings.Log.File)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			log.Printf("Warning: could not create log directory %s: %v", logDir, err)
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   settings.Log.File,
				MaxSize:    settings.Log.MaxSize,
				MaxBackups: settings.Log.MaxBackups,
				MaxAge:     settings.Log.MaxAge,
				Compress:   settings.Log.Compress,
			}
			log.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
			log.SetFlags(log.LstdFlags | log.Lshortfile)
			log.Printf("Logging to file: %s", settings.Log.File)
		}
	}

	if *portOverride > 0 {
		settings.Server.Port = *portOverride
	}
	if settings.Catalog.APIKey == "" {
		log.Println("Warning: no catalog API key configured; catalog requests will fail")
	}

	store, err := storage.New(afero.NewOsFs(), settings.Storage.Dir)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	catalogClient := catalog.NewClient(catalog.Config{
		APIKey:      settings.Catalog.APIKey,
		BearerToken: settings.Catalog.BearerToken,
		Language:    settings.Catalog.Language,
		Region:      settings.Catalog.Region,
	})

	discoverService := discover.NewService(catalogClient)
	watchlistService := watchlist.NewService(store)
	searchHistory := search.NewHistory(store)
	searchService := search.NewService(catalogClient, searchHistory)

	debounce := time.Duration(settings.Playback.PersistDebounceMs) * time.Millisecond
	progressStore := progress.NewStore(store, debounce)
	sessionManager := progress.NewManager(progressStore, time.Duration(settings.Playback.TickSeconds)*time.Second)

	router := api.NewRouter(api.Handlers{
		Discover:         handlers.NewDiscoverHandler(discoverService),
		Search:           handlers.NewSearchHandler(searchService),
		Watchlist:        handlers.NewWatchlistHandler(watchlistService),
		Progress:         handlers.NewProgressHandler(progressStore),
		ContinueWatching: handlers.NewContinueWatchingHandler(progressStore, catalogClient),
		Playback: handlers.NewPlaybackHandler(
			sessionManager,
			catalogClient,
			settings.Playback.DefaultMovieRuntimeMin,
			settings.Playback.DefaultEpisodeRuntimeMin,
		),
		Media: handlers.NewMediaHandler(catalogClient),
	})

	addr := fmt.Sprintf("%s:%d", settings.Server.Host, settings.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("reelview listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	<-shutdownChan

	log.Println("Shutdown signal received, cleaning up...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sessionManager.StopAll()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	log.Println("Shutdown complete")
}
