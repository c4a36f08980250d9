package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops-sync/internal/domain"
)

func TestAddMessage_AdvancesConversationWatermark(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)
	s.store.Conversations.Insert(domain.Conversation{ID: "conv1"})

	created, err := s.AddMessage(context.Background(), domain.Patch{
		"conversationId": "conv1",
		"senderId":       "t1",
		"senderType":     "technician",
		"content":        "On my way",
	})
	require.NoError(t, err)
	assert.False(t, created.Read)
	assert.Equal(t, "conv1", created.ConversationID)

	require.Len(t, s.Messages(), 1)

	// 水位推进走远端写
	updates := fake.updatesFor("conversations")
	require.Len(t, updates, 1)
	assert.Equal(t, "conv1", updates[0].id)
	assert.NotEmpty(t, updates[0].values["last_message_at"])
}

func TestAddMessage_WatermarkFailureNotFatal(t *testing.T) {
	fake := newFakeTableRepository()
	fake.failUpdate["conversations"] = true
	s := newTestService(fake)

	_, err := s.AddMessage(context.Background(), domain.Patch{
		"conversationId": "conv1",
		"content":        "hello",
	})
	require.NoError(t, err)
	assert.Len(t, s.Messages(), 1)
}

func TestAddConversation_Defaults(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)

	created, err := s.AddConversation(context.Background(), domain.Patch{
		"type": "admin-technician",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Participants)
	assert.Empty(t, created.Participants)
}

func TestMarkMessageRead(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)

	require.NoError(t, s.MarkMessageRead(context.Background(), "m1"))

	updates := fake.updatesFor("messages")
	require.Len(t, updates, 1)
	assert.Equal(t, map[string]any{"read": true}, updates[0].values)
}

func TestMarkInvoicePaid(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)

	require.NoError(t, s.MarkInvoicePaid(context.Background(), "inv-1", "pix"))

	updates := fake.updatesFor("invoices")
	require.Len(t, updates, 1)
	assert.Equal(t, domain.InvoiceStatusPaid, updates[0].values["status"])
	assert.Equal(t, "pix", updates[0].values["payment_method"])
	assert.NotEmpty(t, updates[0].values["payment_date"])
}
