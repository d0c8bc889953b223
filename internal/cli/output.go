package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case AuthResult:
		o.printAuthResult(v)
	case Announcement:
		o.printAnnouncement(v)
	case []Announcement:
		o.printAnnouncements(v)
	case ChatMessage:
		o.printChatMessage(v)
	case []ChatMessage:
		o.printChatMessages(v)
	case Overview:
		o.printOverview(v)
	case []Member:
		o.printMembers(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	StartedAt   time.Time `json:"started_at"`
}

// AuthResult combines session and token
type AuthResult struct {
	Session      Session `json:"session"`
	SessionToken string  `json:"session_token"`
}

// Announcement response type
type Announcement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	MyVote     string    `json:"my_vote,omitempty"`
}

// ChatMessage response type
type ChatMessage struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// Overview response type
type Overview struct {
	TotalMembers        int `json:"total_members"`
	OnlineMembers       int `json:"online_members"`
	ActiveAnnouncements int `json:"active_announcements"`
	ChatMessages        int `json:"chat_messages"`
}

// Member response type
type Member struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsOnline    bool   `json:"is_online"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Signed in as: %s (%s)\n", s.DisplayName, s.Username)
	fmt.Printf("Role: %s\n", s.Role)
	fmt.Printf("Since: %s\n", s.StartedAt.Format(time.RFC3339))
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printSession(a.Session)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printAnnouncement(a Announcement) {
	fmt.Printf("[%s] %s\n", a.ID, a.Title)
	fmt.Printf("  by %s at %s\n", a.AuthorName, a.CreatedAt.Format("2006-01-02 15:04"))
	voteStr := ""
	if a.MyVote != "" {
		voteStr = fmt.Sprintf(" (your vote: %s)", a.MyVote)
	}
	fmt.Printf("  +%d / -%d%s\n", a.Upvotes, a.Downvotes, voteStr)
	for _, line := range strings.Split(a.Body, "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (o *Output) printAnnouncements(anns []Announcement) {
	if len(anns) == 0 {
		fmt.Println("No announcements")
		return
	}
	for i, a := range anns {
		if i > 0 {
			fmt.Println()
		}
		o.printAnnouncement(a)
	}
}

func (o *Output) printChatMessage(m ChatMessage) {
	fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Format("15:04:05"), m.AuthorName, m.Text)
}

func (o *Output) printChatMessages(msgs []ChatMessage) {
	if len(msgs) == 0 {
		fmt.Println("No messages")
		return
	}
	for _, m := range msgs {
		o.printChatMessage(m)
	}
}

func (o *Output) printOverview(v Overview) {
	fmt.Printf("Members: %d (%d online)\n", v.TotalMembers, v.OnlineMembers)
	fmt.Printf("Announcements: %d\n", v.ActiveAnnouncements)
	fmt.Printf("Chat Messages: %d\n", v.ChatMessages)
}

func (o *Output) printMembers(members []Member) {
	fmt.Printf("Members (%d):\n", len(members))
	for _, m := range members {
		onlineStr := ""
		if m.IsOnline {
			onlineStr = " [online]"
		}
		fmt.Printf("  - %s (%s) - %s%s\n", m.DisplayName, m.Username, m.Role, onlineStr)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
