package models

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

type ChatMode string

const (
	ChatModeAction      ChatMode = "action"
	ChatModeWalkthrough ChatMode = "walkthrough"
)

type ChatMessage struct {
	Sender  Sender `json:"sender"`
	Content string `json:"content"`
}

// SavedChat is a conversation transcript stored in chats.json.
// Timestamp is epoch milliseconds and only drives display order.
type SavedChat struct {
	ID        string        `json:"id"`
	Timestamp int64         `json:"timestamp"`
	Mode      ChatMode      `json:"mode"`
	Messages  []ChatMessage `json:"messages"`
	Title     *string       `json:"title,omitempty"`
}

func (c SavedChat) RecordID() string       { return c.ID }
func (c SavedChat) RecordTimestamp() int64 { return c.Timestamp }

func (c SavedChat) Normalize() SavedChat {
	if c.Mode == "" {
		c.Mode = ChatModeAction
	}
	if c.Messages == nil {
		c.Messages = []ChatMessage{}
	}
	return c
}

func (c SavedChat) Clone() SavedChat {
	if c.Messages != nil {
		c.Messages = append([]ChatMessage{}, c.Messages...)
	}
	if c.Title != nil {
		title := *c.Title
		c.Title = &title
	}
	return c
}

// TitleOrPreview returns the chat title, falling back to the first user message.
func (c SavedChat) TitleOrPreview() string {
	if c.Title != nil && *c.Title != "" {
		return *c.Title
	}
	for _, m := range c.Messages {
		if m.Sender == SenderUser && m.Content != "" {
			return m.Content
		}
	}
	return ""
}

func (m ChatMode) Valid() bool {
	return m == ChatModeAction || m == ChatModeWalkthrough
}

func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderAssistant
}
