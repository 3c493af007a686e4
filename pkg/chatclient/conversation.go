package chatclient

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rhenlumbo/portfolio-backend/internal/model/chat"
)

// Greeting opens every conversation.
const Greeting = "Hi! I'm Rhen-Rhen's portfolio assistant. Ask me about skills, services, or projects."

// Apology is appended when a send fails, mirroring what the site shows.
const Apology = "Sorry, something went wrong. Please try again."

// ErrBusy is returned when a send is attempted while another is in flight.
var ErrBusy = errors.New("a chat request is already in flight")

// ErrEmptyMessage is returned for whitespace-only input.
var ErrEmptyMessage = errors.New("message is empty")

// Conversation is the client-held window of turns. It appends the user turn
// optimistically, allows one in-flight request at a time, and forwards at
// most the last chat.HistoryLimit turns with each request.
type Conversation struct {
	client *Client

	mu    sync.Mutex
	turns []chat.Turn
	busy  bool
}

// NewConversation starts a conversation containing only the greeting turn.
func NewConversation(client *Client) *Conversation {
	return &Conversation{
		client: client,
		turns:  []chat.Turn{{Role: chat.RoleAssistant, Text: Greeting}},
	}
}

// Send submits one user message and waits for the reply. The user turn is
// recorded before the call resolves; on failure an apology turn is recorded
// instead of the reply and the error is returned for display.
func (c *Conversation) Send(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return "", ErrBusy
	}
	c.busy = true
	history := c.window()
	c.turns = append(c.turns, chat.Turn{Role: chat.RoleUser, Text: text})
	c.mu.Unlock()

	reply, err := c.client.Send(ctx, text, history)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		c.turns = append(c.turns, chat.Turn{Role: chat.RoleAssistant, Text: Apology})
		return "", err
	}

	c.turns = append(c.turns, chat.Turn{Role: chat.RoleAssistant, Text: reply})
	return reply, nil
}

// Reset restores the conversation to just the greeting turn.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = []chat.Turn{{Role: chat.RoleAssistant, Text: Greeting}}
}

// Turns returns a copy of all accumulated turns for rendering.
func (c *Conversation) Turns() []chat.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]chat.Turn(nil), c.turns...)
}

// Busy reports whether a request is currently in flight.
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// window returns the most recent turns to forward, capped at the history
// limit. Callers must hold the mutex.
func (c *Conversation) window() []chat.Turn {
	turns := c.turns
	if len(turns) > chat.HistoryLimit {
		turns = turns[len(turns)-chat.HistoryLimit:]
	}
	return append([]chat.Turn(nil), turns...)
}
