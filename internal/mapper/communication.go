package mapper

import "fieldops-sync/internal/domain"

// ConversationMapper conversations 表字段映射
type ConversationMapper struct{}

var conversationRename = map[string]string{
	"lastMessageAt": "last_message_at",
}

func (ConversationMapper) ToDomain(row map[string]any) domain.Conversation {
	return domain.Conversation{
		ID:            getString(row, "id"),
		Type:          getString(row, "type"),
		Participants:  getStringSlice(row, "participants"),
		LastMessageAt: getString(row, "last_message_at"),
		CreatedAt:     getString(row, "created_at"),
	}
}

func (ConversationMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, conversationRename, withDBManaged(nil))
}

// MessageMapper messages 表字段映射
type MessageMapper struct{}

var messageRename = map[string]string{
	"conversationId": "conversation_id",
	"senderId":       "sender_id",
	"senderType":     "sender_type",
}

func (MessageMapper) ToDomain(row map[string]any) domain.Message {
	return domain.Message{
		ID:             getString(row, "id"),
		ConversationID: getString(row, "conversation_id"),
		SenderID:       getString(row, "sender_id"),
		SenderType:     getString(row, "sender_type"),
		Content:        getString(row, "content"),
		Read:           getBool(row, "read"),
		CreatedAt:      getString(row, "created_at"),
	}
}

func (MessageMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, messageRename, withDBManaged(nil))
}
