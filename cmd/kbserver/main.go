package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/masoai/kbengine/api"
	"github.com/masoai/kbengine/internal/engine"
)

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.String("port", "8080", "Port to run the server on")
		corpusFile = flag.String("corpus", "", "Path to a corpus JSON file to load at startup")
	)

	flag.Parse()

	if *help {
		fmt.Printf("KB Engine - knowledge-base search, diff, and LLM context service\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                            # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --corpus ./corpus.json     # Load a corpus at startup\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("KB Engine v1.0.0\n")
		return
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	kb, err := engine.New(nil, logger)
	if err != nil {
		logger.Fatal("Failed to create engine", zap.Error(err))
	}

	if *corpusFile != "" {
		if err := kb.LoadCorpusFromFile(*corpusFile); err != nil {
			logger.Fatal("Failed to load corpus", zap.String("path", *corpusFile), zap.Error(err))
		}
		logger.Info("Corpus loaded", zap.String("path", *corpusFile))
	} else {
		logger.Info("No corpus loaded; install one via PUT /corpus")
	}

	router := gin.Default()
	api.SetupRoutes(router, kb)

	logger.Info("Starting server", zap.String("port", *port))
	if err := router.Run(":" + *port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
