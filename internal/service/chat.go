package service

import (
	"context"
	"fmt"
	"strings"
)

const chatPromptPrefix = "You are a helpful assistant for Canya, a community services and resources platform. " +
	"Help users with questions about community services, environmental conservation, social justice, " +
	"and community development. Here's the user's question: "

// Generator produces a reply for a fully assembled prompt. The production
// implementation is the Gemini client in internal/client.
type Generator interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

type ChatService struct {
	gen Generator
}

// NewChatService accepts a nil generator: the server still boots without an
// API key, and chat requests fail with ErrUnavailable instead.
func NewChatService(gen Generator) *ChatService {
	return &ChatService{gen: gen}
}

func (s *ChatService) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if s.gen == nil {
		return "", fmt.Errorf("%w: AI assistant is not configured", ErrUnavailable)
	}

	reply, err := s.gen.GenerateReply(ctx, chatPromptPrefix+message)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("empty reply from model")
	}
	return reply, nil
}
