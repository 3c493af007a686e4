package chat

import "encoding/json"

// Roles accepted in client-supplied history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// HistoryLimit caps how many prior turns are forwarded to the model.
const HistoryLimit = 10

// Turn is a single conversation entry supplied by the client.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// UnmarshalJSON tolerates malformed history entries: an item whose role or
// text is not a string decodes to the zero Turn instead of failing the whole
// request body. SanitizeHistory drops zero turns afterwards.
func (t *Turn) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role json.RawMessage `json:"role"`
		Text json.RawMessage `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*t = Turn{}
		return nil
	}

	var role, text string
	if raw.Role == nil || json.Unmarshal(raw.Role, &role) != nil {
		*t = Turn{}
		return nil
	}
	if raw.Text == nil || json.Unmarshal(raw.Text, &text) != nil {
		*t = Turn{}
		return nil
	}

	*t = Turn{Role: role, Text: text}
	return nil
}

// Valid reports whether the turn carries a recognized role.
func (t Turn) Valid() bool {
	return t.Role == RoleUser || t.Role == RoleAssistant
}

// SanitizeHistory keeps the most recent HistoryLimit entries, then drops
// turns with an unrecognized role. Truncation happens first so a burst of
// malformed entries cannot push valid older turns back into the window.
func SanitizeHistory(turns []Turn) []Turn {
	if len(turns) > HistoryLimit {
		turns = turns[len(turns)-HistoryLimit:]
	}

	out := make([]Turn, 0, len(turns))
	for _, t := range turns {
		if t.Valid() {
			out = append(out, t)
		}
	}
	return out
}
