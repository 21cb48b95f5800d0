package cli

import (
	"encoding/json"
	"fmt"
	"os"
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

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case MessageResult:
		fmt.Println(v.Message)
	case Leaderboard:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MessageResult is a plain success message (matches API)
type MessageResult struct {
	Message string `json:"message"`
}

// AuthResult is the outcome of register/login plus the captured token
type AuthResult struct {
	Message      string `json:"message"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	SessionToken string `json:"session_token,omitempty"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

// Leaderboard is the ranked top-N view
type Leaderboard []LeaderboardEntry

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Println(a.Message)
	if a.SessionToken != "" {
		fmt.Printf("Token: %s\n", a.SessionToken)
	}
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l) == 0 {
		fmt.Println("No scores yet")
		return
	}
	for i, entry := range l {
		fmt.Printf("%2d. %-20s %g\n", i+1, entry.Username, entry.Score)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	if h.Error != "" {
		fmt.Printf("Error: %s\n", h.Error)
	}
}
