package service

import (
	"context"
	"encoding/json"

	"github.com/checkmarkdevtools/system-notes/internal/domain"
	"github.com/checkmarkdevtools/system-notes/internal/llm"
	"github.com/checkmarkdevtools/system-notes/internal/search"
	"github.com/openai/openai-go"
	"go.uber.org/zap"
)

const systemPrompt = `You are the System Notes assistant for a developer portfolio site. ` +
	`You answer questions about the site's projects, blog posts and system documentation. ` +
	`When a question needs facts from the portfolio, call the search_indices tool and ground ` +
	`your answer in its results. Greet and make small talk without searching. Keep replies ` +
	`short and concrete, and say so plainly when the results don't cover the question.`

const searchToolName = "search_indices"

// SearchAggregator is the slice of the multi-index aggregator the chat flow
// needs.
type SearchAggregator interface {
	Search(ctx context.Context, query string, indices []string) ([]domain.SearchCandidate, error)
}

// Compile-time interface check
var _ SearchAggregator = (*search.Aggregator)(nil)

// toolArgs are the model-supplied arguments of one search_indices call.
type toolArgs struct {
	Query   string   `json:"query"`
	Indices []string `json:"indices"`
}

// ChatService drives the two-round tool protocol: one completion with the
// search tool offered, conditional multi-index dispatch, one completion over
// the extended conversation for the final reply.
type ChatService struct {
	completions llm.CompletionService
	aggregator  SearchAggregator
	model       string
	logger      *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(completions llm.CompletionService, aggregator SearchAggregator, model string, logger *zap.Logger) *ChatService {
	return &ChatService{
		completions: completions,
		aggregator:  aggregator,
		model:       model,
		logger:      logger,
	}
}

// Chat answers one user message. It never fails the caller: every capability
// error collapses into the fixed fallback reply.
func (s *ChatService) Chat(ctx context.Context, message string) string {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(message),
	}

	first, err := s.completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.F(openai.ChatModel(s.model)),
		Messages: openai.F(messages),
		Tools:    openai.F(searchToolSchema()),
	})
	if err != nil || len(first.Choices) == 0 {
		s.logger.Warn("first completion failed", zap.Error(err))
		return domain.FallbackReply
	}

	reply := first.Choices[0].Message
	if len(reply.ToolCalls) == 0 {
		// Fast path: no retrieval requested, return the text verbatim.
		return reply.Content
	}

	messages = append(messages, reply)
	for _, call := range reply.ToolCalls {
		messages = append(messages, openai.ToolMessage(call.ID, s.runSearchTool(ctx, call)))
	}

	// Round 2 carries the tool results and offers no tool schema.
	second, err := s.completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.F(openai.ChatModel(s.model)),
		Messages: openai.F(messages),
	})
	if err != nil || len(second.Choices) == 0 {
		s.logger.Warn("final completion failed", zap.Error(err))
		return domain.FallbackReply
	}

	return second.Choices[0].Message.Content
}

// runSearchTool executes one tool call and serializes its outcome for the
// model. Malformed arguments and capability failures become an error marker
// in the tool result rather than aborting the round.
func (s *ChatService) runSearchTool(ctx context.Context, call openai.ChatCompletionMessageToolCall) string {
	if call.Function.Name != searchToolName {
		s.logger.Warn("unknown tool requested", zap.String("tool", call.Function.Name))
		return errorMarker("unknown tool")
	}

	var args toolArgs
	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
		s.logger.Warn("malformed tool arguments",
			zap.String("arguments", call.Function.Arguments),
			zap.Error(err),
		)
		return errorMarker("malformed arguments")
	}

	candidates, err := s.aggregator.Search(ctx, args.Query, args.Indices)
	if err != nil {
		return errorMarker("search unavailable")
	}

	payload, err := json.Marshal(candidates)
	if err != nil {
		return errorMarker("search unavailable")
	}
	return string(payload)
}

func errorMarker(reason string) string {
	payload, _ := json.Marshal(map[string]string{"error": reason})
	return string(payload)
}

// searchToolSchema declares the single search tool. The indices argument is
// enum-constrained to the declared index names.
func searchToolSchema() []openai.ChatCompletionToolParam {
	return []openai.ChatCompletionToolParam{{
		Type: openai.F(openai.ChatCompletionToolTypeFunction),
		Function: openai.F(openai.FunctionDefinitionParam{
			Name:        openai.String(searchToolName),
			Description: openai.String("Full-text search across the portfolio's content indices. Returns the most relevant records per index."),
			Parameters: openai.F(openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "The search query.",
					},
					"indices": map[string]any{
						"type":        "array",
						"description": "Indices to search. Defaults to all of them.",
						"items": map[string]any{
							"type": "string",
							"enum": search.Indices(),
						},
					},
				},
				"required": []string{"query"},
			}),
		}),
	}}
}
