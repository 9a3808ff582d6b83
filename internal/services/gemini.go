package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"prepmate/interview-coach/internal/config"
)

// ErrNoModelAvailable is a normal, expected branch: callers fall back to
// static question and feedback data when it is returned.
var ErrNoModelAvailable = errors.New("no model available")

type GeminiService interface {
	// ResolveModel probes the candidate models in order and returns the
	// first one that accepts a trivial request. The result is not cached;
	// every invocation re-probes.
	ResolveModel(ctx context.Context) (string, error)
	GenerateText(ctx context.Context, model, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client         *genai.Client
	candidates     []string
	probeTimeout   time.Duration
	requestTimeout time.Duration
	logger         *zap.Logger
}

func NewGeminiService(cfg config.GeminiConfig, logger *zap.Logger) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:         client,
		candidates:     cfg.CandidateModels,
		probeTimeout:   cfg.ProbeTimeout,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}, nil
}

// ResolveModel implements GeminiService. Each probe is bounded so a
// hanging candidate cannot stall the whole search.
func (g *geminiService) ResolveModel(ctx context.Context) (string, error) {
	for _, name := range g.candidates {
		probeCtx, cancel := context.WithTimeout(ctx, g.probeTimeout)
		_, err := g.client.Models.GenerateContent(probeCtx, name, genai.Text("Hello"), nil)
		cancel()

		if err != nil {
			g.logger.Debug("model probe failed",
				zap.String("model", name),
				zap.Error(err))
			continue
		}
		return name, nil
	}
	return "", ErrNoModelAvailable
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, model, prompt string, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	generateConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), generateConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}
