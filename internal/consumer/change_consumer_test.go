package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/store"
)

func setupConsumer(t *testing.T) (*redis.Client, *store.Collection[domain.Order], *ChangeConsumer) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	col := store.NewCollection[domain.Order]()
	c := NewChangeConsumer(client, "dbchange", "public", []Binding{
		Bind("orders", mapper.OrderMapper{}, col, nil),
	}, zap.NewNop())

	return client, col, c
}

// publishUntil 反复发布事件直到条件满足（订阅建立前的消息会丢失，
// 事件本身按ID幂等，重复投递无副作用）
func publishUntil(t *testing.T, client *redis.Client, ev ChangeEvent, cond func() bool) {
	t.Helper()

	payload, err := json.Marshal(ev)
	require.NoError(t, err)

	channel := "dbchange:public:" + ev.Table
	require.Eventually(t, func() bool {
		client.Publish(context.Background(), channel, string(payload))
		return cond()
	}, 5*time.Second, 20*time.Millisecond)
}

func TestChangeConsumer_AppliesEvents(t *testing.T) {
	client, col, c := setupConsumer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Start(ctx))
	defer c.Stop()

	// insert
	publishUntil(t, client, ChangeEvent{
		Event: EventInsert,
		Table: "orders",
		New:   map[string]any{"id": "o1", "status": "new", "client_id": "c1"},
	}, func() bool { return col.Len() == 1 })

	got, ok := col.Get("o1")
	require.True(t, ok)
	assert.Equal(t, "new", got.Status)

	// update 原位替换
	publishUntil(t, client, ChangeEvent{
		Event: EventUpdate,
		Table: "orders",
		New:   map[string]any{"id": "o1", "status": "completed", "client_id": "c1"},
	}, func() bool {
		o, _ := col.Get("o1")
		return o.Status == "completed"
	})
	assert.Equal(t, 1, col.Len())

	// delete
	publishUntil(t, client, ChangeEvent{
		Event: EventDelete,
		Table: "orders",
		Old:   map[string]any{"id": "o1"},
	}, func() bool { return col.Len() == 0 })
}

func TestChangeConsumer_MalformedPayloadSkipped(t *testing.T) {
	client, col, c := setupConsumer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Start(ctx))
	defer c.Stop()

	// 先用有效事件确认订阅在工作
	publishUntil(t, client, ChangeEvent{
		Event: EventInsert,
		Table: "orders",
		New:   map[string]any{"id": "o1", "status": "new"},
	}, func() bool { return col.Len() == 1 })

	// 畸形载荷跳过，后续事件继续应用
	client.Publish(context.Background(), "dbchange:public:orders", "{not json")

	publishUntil(t, client, ChangeEvent{
		Event: EventInsert,
		Table: "orders",
		New:   map[string]any{"id": "o2", "status": "new"},
	}, func() bool { return col.Len() == 2 })
}

func TestChangeConsumer_StopWaitsForExit(t *testing.T) {
	_, _, c := setupConsumer(t)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.Start(ctx))

	cancel()

	done := make(chan struct{})
	go func() {
		c.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}
