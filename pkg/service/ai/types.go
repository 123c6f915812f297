package ai

import "context"

// ContextMessage is one entry of the chat context for reply suggestion
type ContextMessage struct {
	IsOwn bool   `json:"is_own"`
	Text  string `json:"text"`
}

// TranscriptMessage is one entry of a conversation transcript for
// summarization
type TranscriptMessage struct {
	SenderID string `json:"sender_id"`
	Text     string `json:"text"`
}

// Task is an actionable item extracted from free text. Date is empty
// when the model found no deadline; Repeat is one of
// none/daily/weekly/yearly.
type Task struct {
	Task   string `json:"task"`
	Date   string `json:"date,omitempty"`
	Repeat string `json:"repeat"`
}

// Service is the completion-backed text feature service. All operations
// are stateless single round trips to the LLM.
type Service interface {
	// SuggestReply proposes a short reply based on the last few context
	// messages
	SuggestReply(ctx context.Context, messages []ContextMessage) (string, error)

	// Summarize condenses a conversation transcript into bullet points
	Summarize(ctx context.Context, messages []TranscriptMessage) (string, error)

	// ExtractTasks pulls actionable tasks out of free text. A model
	// response that does not parse as the expected structure degrades to
	// an empty list, never an error.
	ExtractTasks(ctx context.Context, text string) ([]Task, error)
}
