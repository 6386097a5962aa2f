package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/papercomputeco/easel/pkg/chart"
	"github.com/papercomputeco/easel/pkg/llm"
)

// handleChatGraph accepts a chat transcript, forwards it to the completion
// API with the generate_graph_data tool, and returns the model's reply and
// the normalized chart data.
//
// Only the explicit request pre-checks and attachment processing produce 400
// responses. Everything after that boundary - the upstream call, tool-call
// parsing, normalization - surfaces as 500 with the error's message.
func (s *Server) handleChatGraph(c *fiber.Ctx) error {
	var req llm.GraphRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		s.logger.Error("failed to parse request body", zap.Error(err))
		return internalError(c, err)
	}

	if !req.HasMessagesArray() {
		return badRequest(c, "Messages array is required")
	}
	if req.Model == "" {
		return badRequest(c, "Model selection is required")
	}

	messages, err := req.ParseMessages()
	if err != nil {
		s.logger.Error("failed to parse messages", zap.Error(err))
		return internalError(c, err)
	}

	s.logger.Debug("received graph request",
		zap.String("model", req.Model),
		zap.Int("message_count", len(messages)),
		zap.Bool("has_file", req.FileData != nil),
	)

	if req.FileData != nil {
		if err := llm.AttachFile(messages, req.FileData); err != nil {
			if errors.Is(err, llm.ErrNoFileData) {
				return badRequest(c, "No file data")
			}
			s.logger.Error("failed to process attachment",
				zap.String("file_name", req.FileData.FileName),
				zap.Error(err),
			)
			return badRequest(c, "Failed to process file content")
		}

		s.logger.Debug("attachment merged into transcript",
			zap.String("file_name", req.FileData.FileName),
			zap.String("media_type", req.FileData.MediaType),
			zap.String("last_message_preview", truncate(messages[len(messages)-1].TextContent(), 100)),
		)
	}

	resp, err := s.complete(c.Context(), req.Model, messages)
	if err != nil {
		s.logger.Error("completion request failed", zap.Error(err))
		return internalError(c, err)
	}

	content, toolArgs := extractCompletion(resp)

	var graph *chart.Chart
	if toolArgs != "" {
		s.logger.Debug("tool call received",
			zap.String("arguments_preview", truncate(toolArgs, 200)),
		)

		graph, err = chart.Parse([]byte(toolArgs))
		if err != nil {
			s.logger.Error("failed to normalize chart data", zap.Error(err))
			return internalError(c, err)
		}

		s.logger.Debug("chart normalized",
			zap.String("chart_type", string(graph.ChartType)),
			zap.Int("record_count", len(graph.Data)),
			zap.Strings("series", graph.Series.Keys()),
		)
	}

	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.JSON(llm.GraphResponse{
		Content:   content,
		ToolUse:   graph,
		ChartData: graph,
	})
}

// complete builds the upstream request and invokes the completion client.
func (s *Server) complete(ctx context.Context, model string, messages []llm.Message) (openai.ChatCompletionResponse, error) {
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	chatMessages = append(chatMessages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})

	for _, m := range messages {
		switch content := m.Content.(type) {
		case llm.Image:
			chatMessages = append(chatMessages, openai.ChatCompletionMessage{
				Role: m.Role,
				MultiContent: []openai.ChatMessagePart{{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL: fmt.Sprintf("data:%s;base64,%s", content.MediaType, content.Data),
					},
				}},
			})
		default:
			chatMessages = append(chatMessages, openai.ChatCompletionMessage{
				Role:    m.Role,
				Content: m.TextContent(),
			})
		}
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    chatMessages,
		Tools:       []openai.Tool{graphTool()},
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	}

	resp, err := s.completer.CreateChatCompletion(ctx, req)
	if err != nil {
		return resp, fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return resp, errors.New("completion returned no choices")
	}

	return resp, nil
}

// extractCompletion pulls the assistant text and the generate_graph_data
// tool-call arguments (empty when the model made no tool call).
func extractCompletion(resp openai.ChatCompletionResponse) (content, toolArgs string) {
	msg := resp.Choices[0].Message
	content = msg.Content

	for _, tc := range msg.ToolCalls {
		if tc.Function.Name == graphToolName {
			return content, tc.Function.Arguments
		}
	}

	return content, ""
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(llm.ErrorResponse{Error: msg})
}

func internalError(c *fiber.Ctx, err error) error {
	msg := "An unknown error occurred"
	if err != nil {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: msg})
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
