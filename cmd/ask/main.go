// Command ask runs the mention pipeline once against a live LLM endpoint.
// Useful for smoke-testing configuration without starting the chat server.
//
//	go run ./cmd/ask "what is the capital of France?"
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/anthropics/akashvani/internal/biz/domain"
	"github.com/anthropics/akashvani/internal/biz/usecase"
	"github.com/anthropics/akashvani/internal/conf"
	"github.com/anthropics/akashvani/internal/data"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: ask <question>")
		os.Exit(1)
	}
	question := strings.Join(os.Args[1:], " ")

	config := conf.LoadFromEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	llmRepo, err := data.NewLLMRepo(config.LLM)
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}

	pipeline := usecase.NewPipeline(llmRepo, config.ToPipelineConfig())

	msg := domain.ChatMessage{
		Sender:    "cli",
		Text:      "@" + config.Bot.Username + " " + question,
		Timestamp: time.Now(),
	}

	reply := pipeline.Handle(context.Background(), msg, domain.NewTranscript())
	if reply == nil {
		log.Fatal("No mention detected; check AKASHVANI_USERNAME")
	}
	if reply.Degraded {
		fmt.Printf("(degraded) %s\n", reply.Text)
		os.Exit(1)
	}
	fmt.Println(reply.Text)
}
