package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/anthropics/akashvani/internal/biz/usecase"
	"github.com/anthropics/akashvani/internal/conf"
	"github.com/anthropics/akashvani/internal/data"
	"github.com/anthropics/akashvani/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := conf.LoadFromEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	llmRepo, err := data.NewLLMRepo(config.LLM)
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}

	pipeline := usecase.NewPipeline(llmRepo, config.ToPipelineConfig())
	hub := server.NewHub()
	srv := server.NewChatServer(hub, pipeline, config.Chat, config.Bot.Username)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		srv.Stop()
	}()

	fmt.Printf("Starting %s chat server (mention with @%s or %s)...\n",
		config.Bot.Username, config.Bot.Username, config.Bot.Shorthand)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
