package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rhenlumbo/portfolio-backend/internal/model/chat"
	"github.com/rhenlumbo/portfolio-backend/internal/model/profile"
)

// FallbackReply is returned when the model produces no usable text. Empty
// output is substituted rather than treated as an error so the caller always
// receives some reply.
const FallbackReply = "Sorry, I couldn't respond."

// Generator produces a reply for an assembled prompt. The Gemini-backed
// implementation satisfies it in production; tests substitute stubs.
type Generator interface {
	GenerateReply(ctx context.Context, instruction string, msgs []Message) (string, error)
}

// Service assembles portfolio prompts and delegates generation to the
// configured Generator.
type Service struct {
	generator Generator
	profiles  profile.Store
	log       *logrus.Logger
}

// NewService creates an AI service backed by the given generator.
func NewService(generator Generator, profiles profile.Store, log *logrus.Logger) *Service {
	return &Service{
		generator: generator,
		profiles:  profiles,
		log:       log,
	}
}

// Answer builds the prompt for the latest user message and invokes the
// generator. History is expected to be sanitized by the caller; the assembler
// still caps it defensively.
func (s *Service) Answer(ctx context.Context, history []chat.Turn, message string) (string, error) {
	instruction := BuildSystemInstruction(s.profiles.Get())
	msgs := BuildContents(history, message)

	reply, err := s.generator.GenerateReply(ctx, instruction, msgs)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	if strings.TrimSpace(reply) == "" {
		s.log.Warn("model returned no usable text, substituting fallback reply")
		return FallbackReply, nil
	}

	return reply, nil
}
