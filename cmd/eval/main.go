// Command eval runs scripted chat scenarios through the pipeline against a
// live LLM endpoint and grades the replies with the LLM judge. It is the
// quality harness for non-deterministic behavior that unit tests cannot
// assert on.
//
//	go run ./cmd/eval
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/anthropics/akashvani/internal/biz/domain"
	"github.com/anthropics/akashvani/internal/biz/usecase"
	"github.com/anthropics/akashvani/internal/conf"
	"github.com/anthropics/akashvani/internal/data"
	"github.com/anthropics/akashvani/internal/judge"
)

type scenario struct {
	name     string
	history  []domain.ChatMessage
	question string
	criteria string
}

func scenarios(shorthand string) []scenario {
	return []scenario{
		{
			name:     "explicit question",
			question: shorthand + " what is the capital of France?",
			criteria: "The reply names the correct capital of France, concisely and directly.",
		},
		{
			name: "contextual question",
			history: []domain.ChatMessage{
				{Sender: "Alice", Text: "I heard it's raining in London today."},
				{Sender: "Bob", Text: "Is that true? I thought it was sunny."},
			},
			question: shorthand + " is it raining in London?",
			criteria: "The reply addresses whether it is raining in London with a factual answer, not just repeating the chat.",
		},
		{
			name: "decision recall",
			history: []domain.ChatMessage{
				{Sender: "Alice", Text: "Should we book Venue X or Venue Y?"},
				{Sender: "Bob", Text: "Venue X has better catering."},
				{Sender: "Alice", Text: "Agreed, let's settle on Venue X."},
			},
			question: shorthand + " what did we decide about the venue?",
			criteria: "The reply references Venue X as the decided venue.",
		},
		{
			name: "summarize request",
			history: []domain.ChatMessage{
				{Sender: "Alice", Text: "Agenda today: budget, hires, milestones."},
				{Sender: "Bob", Text: "Budget is approved at 50k."},
				{Sender: "Carol", Text: "Two new hires start next month."},
			},
			question: shorthand + " summarize our chat",
			criteria: "The reply briefly and accurately summarizes the main topics discussed (budget, hires, milestones).",
		},
	}
}

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
	grader := judge.NewLLMJudge(llmRepo, config.ToJudgeParams(), config.JudgePrompt())

	failed := 0
	for _, sc := range scenarios(config.Bot.Shorthand) {
		fmt.Printf("=== %s\n", sc.name)

		transcript := domain.NewTranscript()
		for i, m := range sc.history {
			m.ID = fmt.Sprintf("h-%d", i)
			m.Timestamp = time.Now()
			transcript.Append(m)
			fmt.Printf("  [%s] %s\n", m.Sender, m.Text)
		}

		msg := domain.ChatMessage{ID: "q", Sender: "Tester", Text: sc.question, Timestamp: time.Now()}
		transcript.Append(msg)
		fmt.Printf("  [Tester] %s\n", msg.Text)

		reply := pipeline.Handle(context.Background(), msg, transcript)
		if reply == nil {
			fmt.Println("  FAIL: no reply produced")
			failed++
			continue
		}
		fmt.Printf("  [%s] %s\n", config.Bot.Username, reply.Text)
		if reply.Degraded {
			fmt.Println("  FAIL: degraded reply")
			failed++
			continue
		}

		verdict, err := grader.Evaluate(context.Background(), sc.criteria, reply.Text)
		if err != nil {
			fmt.Printf("  FAIL: judge error: %v\n", err)
			failed++
			continue
		}
		if verdict.Pass {
			fmt.Println("  PASS")
		} else {
			fmt.Printf("  FAIL: %s\n", verdict.Reason)
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d scenario(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("\nAll scenarios passed")
}
