//go:build !test_without_external_deps
// +build !test_without_external_deps

package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/factum-app/factum/internal/catalog"
	"github.com/factum-app/factum/internal/config"
	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/generation"
	"google.golang.org/genai"
)

// Responder implements the generation.Responder interface using Google's
// Gemini API to generate companion replies from chat history.
type Responder struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// clients holds one Gemini client per configured API key,
	// tried in order until one produces a usable reply
	clients []*genai.Client

	// model is the name of the Gemini model to use
	model string
}

// NewResponder creates a new instance of Responder with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - config: LLM configuration containing API keys, model name, and sampling settings
//
// Returns:
//   - A properly initialized Responder or an error if initialization fails
func NewResponder(ctx context.Context, logger *slog.Logger, config config.LLMConfig) (*Responder, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if len(config.GeminiAPIKeys) == 0 {
		return nil, fmt.Errorf("%w: at least one gemini API key is required", generation.ErrInvalidConfig)
	}

	if config.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	clients := make([]*genai.Client, 0, len(config.GeminiAPIKeys))
	for i, key := range config.GeminiAPIKeys {
		if key == "" {
			return nil, fmt.Errorf("%w: gemini API key %d is empty", generation.ErrInvalidConfig, i)
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create Gemini client %d: %v",
				generation.ErrInvalidConfig, i, err)
		}
		clients = append(clients, client)
	}

	return &Responder{
		logger:  logger,
		config:  config,
		clients: clients,
		model:   config.ModelName,
	}, nil
}

// GenerateReply produces a companion reply for the given conversation.
//
// Each configured API key is tried in order; the first non-empty reply
// wins. A reply blocked by safety filters is permanent and returned
// immediately without trying the remaining keys.
func (r *Responder) GenerateReply(ctx context.Context, req generation.ReplyRequest) (string, error) {
	if len(req.History) == 0 {
		return "", fmt.Errorf("%w: history cannot be empty", generation.ErrGenerationFailed)
	}

	contents := buildContents(req.History)
	genConfig := r.buildConfig(req)

	var lastErr error
	for i, client := range r.clients {
		r.logger.DebugContext(ctx, "making Gemini API call",
			"key_index", i,
			"companion", string(req.Companion.Type),
			"history_len", len(req.History))

		resp, err := client.Models.GenerateContent(ctx, r.model, contents, genConfig)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
			r.logger.WarnContext(ctx, "Gemini API call failed, rotating key",
				"key_index", i,
				"error", err)
			continue
		}

		reply, err := extractReply(resp)
		if err != nil {
			if errors.Is(err, generation.ErrContentBlocked) {
				// Safety blocks are about the content, not the key.
				return "", err
			}
			lastErr = err
			r.logger.WarnContext(ctx, "Gemini response unusable, rotating key",
				"key_index", i,
				"error", err)
			continue
		}

		r.logger.InfoContext(ctx, "Gemini API call successful",
			"key_index", i,
			"reply_length", len(reply))
		return reply, nil
	}

	if lastErr == nil {
		lastErr = generation.ErrGenerationFailed
	}
	return "", lastErr
}

// buildConfig assembles the generation parameters and the persona system
// instruction for the request.
func (r *Responder) buildConfig(req generation.ReplyRequest) *genai.GenerateContentConfig {
	temperature := r.config.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	topP := r.config.TopP
	if topP == 0 {
		topP = 0.9
	}
	maxTokens := r.config.MaxOutputTokens
	if maxTokens == 0 {
		maxTokens = 220
	}

	persona := catalog.PersonaPrompt(req.Companion, req.Language)

	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		TopP:            genai.Ptr(topP),
		MaxOutputTokens: maxTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(persona)},
		},
	}
}

// buildContents maps the chat history into the API's role-tagged turns.
// Companion messages become model turns; everything else is a user turn.
func buildContents(history []domain.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := genai.RoleUser
		if msg.Sender == domain.SenderCompanion {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, genai.Role(role)))
	}
	return contents
}

// extractReply pulls the reply text out of an API response, classifying
// empty and blocked responses.
func extractReply(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason safety", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}

	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("%w: empty reply text", generation.ErrInvalidResponse)
	}

	return reply, nil
}
