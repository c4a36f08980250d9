package service

import (
	"context"
	"time"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// AddConversation 创建会话
func (s *SyncService) AddConversation(ctx context.Context, conversation domain.Patch) (domain.Conversation, error) {
	rec := clonePatch(conversation)
	setDefault(rec, "participants", []string{})

	return createRecord(ctx, s, repository.TableConversations, mapper.ConversationMapper{}, s.store.Conversations, rec)
}

// DeleteConversation 删除会话
func (s *SyncService) DeleteConversation(ctx context.Context, id string) error {
	return deleteRecord(ctx, s, repository.TableConversations, id)
}

// AddMessage 发送消息并推进会话的lastMessageAt水位
// 水位更新走远端，本地会话集合等待变更回传
func (s *SyncService) AddMessage(ctx context.Context, message domain.Patch) (domain.Message, error) {
	rec := clonePatch(message)
	setDefault(rec, "read", false)

	created, err := createRecord(ctx, s, repository.TableMessages, mapper.MessageMapper{}, s.store.Messages, rec)
	if err != nil {
		return domain.Message{}, err
	}

	watermark := created.CreatedAt
	if watermark == "" {
		watermark = time.Now().UTC().Format(time.RFC3339)
	}
	if err := updateRecord(ctx, s, repository.TableConversations, mapper.ConversationMapper{}, created.ConversationID, domain.Patch{
		"lastMessageAt": watermark,
	}); err != nil {
		s.logger.Warn("Failed to advance conversation watermark")
	}

	return created, nil
}

// MarkMessageRead 标记消息已读
func (s *SyncService) MarkMessageRead(ctx context.Context, id string) error {
	return updateRecord(ctx, s, repository.TableMessages, mapper.MessageMapper{}, id, domain.Patch{"read": true})
}
