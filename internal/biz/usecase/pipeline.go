package usecase

import (
	"context"
	"fmt"

	"github.com/anthropics/akashvani/internal/biz/domain"
	"github.com/anthropics/akashvani/internal/biz/repo"
)

// State tracks a pipeline invocation through its lifecycle. Each incoming
// message gets a fresh state; nothing is carried across invocations.
type State string

const (
	StateIdle        State = "idle"
	StateDetecting   State = "detecting"
	StateSummarizing State = "summarizing"
	StateAnswering   State = "answering"
	StateDone        State = "done"
)

// PipelineConfig contains everything the pipeline needs, constructed once
// at process start. Stage logic never reads ambient configuration.
type PipelineConfig struct {
	BotName     string
	Shorthand   string
	HistorySize int // Max messages handed to the summarizer
	Summarizer  StageParams
	Answerer    StageParams
	Prompts     PromptConfig
}

// Pipeline sequences Detector -> Selector -> Summarizer -> Answerer. It is
// stateless across invocations; concurrent Handle calls are safe as long as
// the transcript is append-only.
type Pipeline struct {
	detector   *MentionDetector
	summarizer *Summarizer
	answerer   *Answerer
	cfg        PipelineConfig
}

// NewPipeline creates the pipeline orchestrator
func NewPipeline(llm repo.LLMRepo, cfg PipelineConfig) *Pipeline {
	cfg.Prompts.fillDefaults()
	return &Pipeline{
		detector:   NewMentionDetector(cfg.BotName, cfg.Shorthand),
		summarizer: NewSummarizer(llm, cfg.Summarizer, cfg.Prompts, cfg.BotName),
		answerer:   NewAnswerer(llm, cfg.Answerer, cfg.Prompts, cfg.BotName),
		cfg:        cfg,
	}
}

// Handle is the single operation exposed to the host: given an incoming
// message and the current transcript, it returns the bot's reply, or nil
// when the message does not mention the bot. Stage failures degrade to a
// user-visible failure reply; no error ever escapes to the chat surface.
func (p *Pipeline) Handle(ctx context.Context, msg domain.ChatMessage, transcript *domain.Transcript) *domain.Reply {
	state := StateDetecting

	mention, ok := p.detector.Detect(msg.Text)
	if !ok {
		return nil
	}

	// Snapshot once so concurrent appends cannot shear the window. The
	// triggering message is excluded: it reaches the stages as the query,
	// not as history.
	window := Window(ExcludingMessage(transcript.Snapshot(), msg.ID), p.cfg.HistorySize)

	state = StateSummarizing
	summary, err := p.summarizer.Summarize(ctx, window, mention.Query)
	if err != nil {
		return p.degrade(state, err)
	}

	state = StateAnswering
	answer, err := p.answerer.Answer(ctx, mention.Query, summary)
	if err != nil {
		return p.degrade(state, err)
	}

	return &domain.Reply{Text: answer}
}

func (p *Pipeline) degrade(state State, err error) *domain.Reply {
	fmt.Printf("[Pipeline] %s failed: %v\n", state, err)
	return &domain.Reply{Text: p.cfg.Prompts.DegradedReply, Degraded: true}
}
