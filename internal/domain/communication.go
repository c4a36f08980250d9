package domain

// Conversation 会话领域模型（对应 conversations 表）
// LastMessageAt 为最新消息时间水位，随消息写入推进
type Conversation struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"` // admin-technician/admin-client/group
	Participants  []string `json:"participants"`
	LastMessageAt string   `json:"lastMessageAt"`
	CreatedAt     string   `json:"createdAt"`
}

func (c Conversation) RecordID() string { return c.ID }

// Message 消息领域模型（对应 messages 表）
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	SenderType     string `json:"senderType"` // admin/technician/client
	Content        string `json:"content"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"createdAt"`
}

func (m Message) RecordID() string { return m.ID }
