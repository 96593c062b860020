package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"github.com/Aditya190803/FastWrite-API/config"
	"github.com/Aditya190803/FastWrite-API/internal/handler"
	"github.com/Aditya190803/FastWrite-API/internal/llm"
	"github.com/Aditya190803/FastWrite-API/internal/pkg/githubzip"
	"github.com/Aditya190803/FastWrite-API/internal/router"
	"github.com/Aditya190803/FastWrite-API/internal/service"
	"github.com/Aditya190803/FastWrite-API/internal/service/flow"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	// Optional .env for local development.
	_ = godotenv.Load()

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Workspace.Dir, 0755); err != nil {
		log.Fatalf("Failed to create workspace directory: %v", err)
	}

	fetcher := githubzip.New(cfg.Fetch.Timeout())
	dispatcher := llm.NewFactory(cfg.LLM)
	summarizer := flow.NewSummarizer()

	generateService := service.NewGenerateService(cfg, fetcher, dispatcher, summarizer)
	generateHandler := handler.NewGenerateHandler(generateService)

	r := router.Setup(cfg, generateHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
