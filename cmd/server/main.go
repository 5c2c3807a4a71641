// Package main provides the miqat API HTTP server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go.miqat.io/miqat-api/internal/adapter/methods"
	"go.miqat.io/miqat-api/internal/config"
	httpHandler "go.miqat.io/miqat-api/internal/http"
	"go.miqat.io/miqat-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}
	if *showVersion {
		fmt.Printf("miqat-api version %s\n", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Server.Mode)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting miqat API server",
		zap.String("version", version),
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
	)

	// Select the method registry source.
	var source methods.Source = methods.Builtin{}
	if cfg.Methods.CSVPath != "" {
		logger.Info("loading method registry from CSV", zap.String("path", cfg.Methods.CSVPath))
		source = methods.NewLoader(cfg.Methods.CSVPath)
	}

	timesUC, err := usecase.NewTimesUseCase(source)
	if err != nil {
		logger.Fatal("failed to initialize use case", zap.Error(err))
	}
	logger.Info("method registry loaded", zap.Int("methods", len(timesUC.Methods())))

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpHandler.SetupRouter(timesUC, cfg.Server.CORSOrigins)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening",
		zap.String("addr", addr),
		zap.Strings("endpoints", []string{
			"GET /health",
			"GET /v1/prayers/times",
			"GET /v1/qiblah",
			"GET /v1/hijri/from-gregorian",
			"GET /v1/hijri/to-gregorian",
			"GET /v1/methods",
		}),
	)

	if err := router.Run(addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(mode string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if mode == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func printUsage() {
	fmt.Printf("Miqat API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  miqat-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -config PATH   Path to YAML config file (optional)")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  MIQAT_SERVER_PORT        Server port (default: 8080)")
	fmt.Println("  MIQAT_SERVER_MODE        Gin mode, release or debug (default: release)")
	fmt.Println("  MIQAT_METHODS_CSV_PATH   Method registry CSV override (default: built-in)")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                    Health check")
	fmt.Println("  GET /v1/prayers/times          Prayer times for a location and date")
	fmt.Println("  GET /v1/qiblah                 Qiblah bearing for a location")
	fmt.Println("  GET /v1/hijri/from-gregorian   Gregorian to Hijri conversion")
	fmt.Println("  GET /v1/hijri/to-gregorian     Hijri to Gregorian conversion")
	fmt.Println("  GET /v1/methods                List calculation methods")
	fmt.Println()
}
