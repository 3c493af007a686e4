package ai

import (
	"fmt"
	"strings"

	"github.com/rhenlumbo/portfolio-backend/internal/model/chat"
	"github.com/rhenlumbo/portfolio-backend/internal/model/profile"
)

// Provider role tags expected by the Gemini API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is a provider-ready conversation entry.
type Message struct {
	Role string
	Text string
}

// BuildSystemInstruction renders the steering instruction from the owner
// profile. It is a pure function of its input: identical profiles produce
// byte-identical output, which golden tests rely on.
func BuildSystemInstruction(p profile.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s's portfolio assistant.\n", p.Owner)
	b.WriteString("Be concise, friendly, and professional.\n")

	b.WriteString("\n================ AVAILABILITY =================\n")
	fmt.Fprintf(&b, "Status: %s\n", p.Availability.Status)
	fmt.Fprintf(&b, "Focus: %s\n", strings.Join(p.Availability.Focus, ", "))
	fmt.Fprintf(&b, "Location/Time zone: %s\n", p.Availability.Location)
	b.WriteString("\nWhen asked about availability:\n")
	b.WriteString("- Confirm availability using the Status line\n")
	b.WriteString("- Mention focus areas (what work is a fit)\n")
	fmt.Fprintf(&b, "- Invite them to contact using: %s\n", p.Availability.ContactHint)
	b.WriteString("- Do not promise timelines or immediate start unless explicitly provided\n")
	b.WriteString("- If asked about rates/timelines, respond briefly and direct them to Contact.\n")

	b.WriteString("\n================ CONTACT & PERSONAL =================\n")
	fmt.Fprintf(&b, "Email: %s\n", p.Contact.Email)
	if p.Contact.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", p.Contact.Phone)
	}
	fmt.Fprintf(&b, "Contact page: %s\n", p.Contact.ContactPage)
	if p.Personal.LifeVerse != "" {
		fmt.Fprintf(&b, "Life verse: %s\n", p.Personal.LifeVerse)
	}
	b.WriteString("\nOnly share the contact and personal details listed above; never guess others.\n")

	b.WriteString("\n================ TECH STACK (SOURCE OF TRUTH) ================\n")
	for _, category := range p.TechStack {
		fmt.Fprintf(&b, "%s:\n%s\n\n", category.Name, strings.Join(category.Items, ", "))
	}

	b.WriteString("================ PROJECTS =================\n")
	for _, project := range p.Projects {
		fmt.Fprintf(&b, "%s\n", project.Name)
		fmt.Fprintf(&b, "%s\n", project.Description)
		fmt.Fprintf(&b, "Tech used: %s\n", strings.Join(project.Tech, ", "))
		fmt.Fprintf(&b, "Live site: %s\n\n", project.Live)
	}

	b.WriteString("================ RULES =================\n")
	fmt.Fprintf(&b, "- Use %s pronouns for %s\n", p.Pronouns, p.Owner)
	b.WriteString("- Only mention technologies listed above\n")
	b.WriteString("- Be honest about experience level\n")
	b.WriteString("- Emphasize front-end strengths\n")
	b.WriteString("- Clearly state backend is currently being learned\n")
	b.WriteString("- Do NOT invent employers, credentials, or projects\n")
	b.WriteString("- If unsure, guide users to the Contact page\n")

	return strings.TrimSpace(b.String())
}

// BuildContents maps prior turns to provider role tags and appends the new
// user message as the final entry. At most chat.HistoryLimit prior turns are
// forwarded even if a longer slice is passed.
func BuildContents(history []chat.Turn, message string) []Message {
	if len(history) > chat.HistoryLimit {
		history = history[len(history)-chat.HistoryLimit:]
	}

	msgs := make([]Message, 0, len(history)+1)
	for _, turn := range history {
		switch turn.Role {
		case chat.RoleUser:
			msgs = append(msgs, Message{Role: RoleUser, Text: turn.Text})
		case chat.RoleAssistant:
			msgs = append(msgs, Message{Role: RoleModel, Text: turn.Text})
		}
	}

	return append(msgs, Message{Role: RoleUser, Text: message})
}
