package ai

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhenlumbo/portfolio-backend/internal/model/chat"
	"github.com/rhenlumbo/portfolio-backend/internal/model/profile"
)

type stubGenerator struct {
	calls           int
	lastInstruction string
	lastMsgs        []Message
	reply           string
	err             error
}

func (s *stubGenerator) GenerateReply(_ context.Context, instruction string, msgs []Message) (string, error) {
	s.calls++
	s.lastInstruction = instruction
	s.lastMsgs = msgs
	return s.reply, s.err
}

func newTestService(gen Generator) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(gen, profile.NewMemoryStore(profile.Seed()), log)
}

func TestAnswerPassesAssembledPrompt(t *testing.T) {
	stub := &stubGenerator{reply: "Mostly React and TypeScript."}
	svc := newTestService(stub)

	history := []chat.Turn{{Role: chat.RoleAssistant, Text: "Hello!"}}
	reply, err := svc.Answer(context.Background(), history, "What tech stack do you use?")

	require.NoError(t, err)
	assert.Equal(t, "Mostly React and TypeScript.", reply)
	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, stub.lastInstruction, "Rhen-Rhen Lumbo's portfolio assistant")

	require.Len(t, stub.lastMsgs, 2)
	assert.Equal(t, Message{Role: RoleModel, Text: "Hello!"}, stub.lastMsgs[0])
	assert.Equal(t, Message{Role: RoleUser, Text: "What tech stack do you use?"}, stub.lastMsgs[1])
}

func TestAnswerSubstitutesFallbackForEmptyReply(t *testing.T) {
	for _, reply := range []string{"", "   ", "\n"} {
		stub := &stubGenerator{reply: reply}
		svc := newTestService(stub)

		got, err := svc.Answer(context.Background(), nil, "hi")
		require.NoError(t, err)
		assert.Equal(t, FallbackReply, got)
	}
}

func TestAnswerPropagatesGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	svc := newTestService(stub)

	_, err := svc.Answer(context.Background(), nil, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
