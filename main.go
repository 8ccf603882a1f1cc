package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"fraudapi/db"
	qhttp "fraudapi/http"
	"fraudapi/logging"
	"fraudapi/model"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Model struct {
		Path  string `yaml:"path"`
		Watch bool   `yaml:"watch"`
	} `yaml:"model"`
	Http struct {
		Port int `yaml:"port"`
	} `yaml:"http"`
	Log logging.Config `yaml:"log"`
}

func main() {
	// .env is optional; real env always wins.
	godotenv.Load()

	// 1. Load config
	config, err := loadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Http.Port = p
		}
	}

	logger := logging.New(config.Log)
	defer logger.Sync()

	// 2. Initialize the audit log store
	store, err := db.Open(config.Database.Path)
	if err != nil {
		logger.Fatal("failed to initialize log store",
			zap.String("path", config.Database.Path), zap.Error(err))
	}
	defer store.Close()
	logger.Info("log store initialized", zap.String("path", config.Database.Path))

	// 3. Bootstrap the model; a failed load degrades scoring, not startup
	holder := model.NewHolder(config.Model.Path, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if config.Model.Watch {
		go func() {
			if err := holder.Watch(ctx); err != nil && err != context.Canceled {
				logger.Warn("model watcher stopped", zap.Error(err))
			}
		}()
	}

	// 4. Start HTTP server
	serverConfig := qhttp.DefaultServerConfig()
	serverConfig.Port = config.Http.Port
	api := qhttp.NewAPI(holder, store, logger)
	server := qhttp.NewServer(serverConfig, api, logger)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 5. Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	if err := server.Stop(); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("exiting")
}

// loadConfig reads config.yaml; a missing file falls back to defaults so the
// service runs with nothing but the PORT env set.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, err
	}
	if config.Http.Port == 0 {
		config.Http.Port = 8000
	}
	return config, nil
}

func defaultConfig() *Config {
	config := &Config{}
	config.Database.Path = "logs_v2.db"
	config.Model.Path = "fraud_model.json"
	config.Http.Port = 8000
	config.Log.Level = "info"
	return config
}
