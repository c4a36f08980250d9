package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops-sync/internal/consumer"
	"fieldops-sync/internal/domain"
)

// bindingFor 按表名取绑定（回传事件注入用）
func bindingFor(t *testing.T, s *SyncService, table string) consumer.Binding {
	t.Helper()
	for _, b := range s.bindings() {
		if b.Table() == table {
			return b
		}
	}
	t.Fatalf("no binding for table %s", table)
	return nil
}

func TestAddClient_AppendsLocally(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)

	created, err := s.AddClient(context.Background(), domain.Patch{"name": "Acme"})
	require.NoError(t, err)

	assert.Equal(t, "gen-1", created.ID)
	assert.Equal(t, "active", created.Status)

	clients := s.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme", clients[0].Name)
}

func TestAddClient_InsertFailureLeavesCollection(t *testing.T) {
	fake := newFakeTableRepository()
	fake.failInsert["clients"] = 1
	s := newTestService(fake)

	_, err := s.AddClient(context.Background(), domain.Patch{"name": "Acme"})
	require.Error(t, err)
	assert.Empty(t, s.Clients())
}

func TestAddClient_DoesNotMutateCallerPatch(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)

	patch := domain.Patch{"name": "Acme"}
	_, err := s.AddClient(context.Background(), patch)
	require.NoError(t, err)

	// 默认值写入副本，调用方的map不变
	assert.Equal(t, domain.Patch{"name": "Acme"}, patch)
}

func TestUpdateClient_RemoteOnly(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)
	s.store.Clients.Insert(domain.Client{ID: "c1", Name: "Acme"})

	err := s.UpdateClient(context.Background(), "c1", domain.Patch{"name": "Acme renamed"})
	require.NoError(t, err)

	// 本地集合等待变更回传，暂时保持陈旧
	got, _ := s.store.Clients.Get("c1")
	assert.Equal(t, "Acme", got.Name)

	updates := fake.updatesFor("clients")
	require.Len(t, updates, 1)
	assert.Equal(t, "c1", updates[0].id)
	assert.Equal(t, "Acme renamed", updates[0].values["name"])
}

func TestUpdateOrder_OptimisticSurvivesRemoteFailure(t *testing.T) {
	fake := newFakeTableRepository()
	fake.failUpdate["orders"] = true
	s := newTestService(fake)
	s.store.Orders.Insert(domain.Order{ID: "o1", Status: domain.OrderStatusNew})

	err := s.UpdateOrder(context.Background(), "o1", domain.Patch{"status": domain.OrderStatusCompleted})
	require.NoError(t, err)

	// 远端失败不回滚乐观补丁
	got, _ := s.store.Orders.Get("o1")
	assert.Equal(t, domain.OrderStatusCompleted, got.Status)
}

func TestUpdateOrder_PatchTranslatedForRemote(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)
	s.store.Orders.Insert(domain.Order{ID: "o1"})

	err := s.UpdateOrder(context.Background(), "o1", domain.Patch{
		"invoiced":  true,
		"invoiceId": "inv-1",
	})
	require.NoError(t, err)

	updates := fake.updatesFor("orders")
	require.Len(t, updates, 1)
	assert.Equal(t, map[string]any{
		"invoiced":   true,
		"invoice_id": "inv-1",
	}, updates[0].values)
}

func TestUpdateOrder_FeedEchoKeepsState(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)
	s.store.Orders.Insert(domain.Order{ID: "o1", ClientID: "c1", Status: domain.OrderStatusNew})

	require.NoError(t, s.UpdateOrder(context.Background(), "o1", domain.Patch{"status": domain.OrderStatusCompleted}))

	// 远端确认后回传的update事件覆盖为相同状态
	bindingFor(t, s, "orders").Apply(consumer.ChangeEvent{
		Event: consumer.EventUpdate,
		Table: "orders",
		New:   map[string]any{"id": "o1", "client_id": "c1", "status": "completed"},
	})

	orders := s.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, domain.OrderStatusCompleted, orders[0].Status)
}

func TestDeleteOrder_OptimisticRemoval(t *testing.T) {
	fake := newFakeTableRepository()
	fake.failDelete["orders"] = true
	s := newTestService(fake)
	s.store.Orders.Insert(domain.Order{ID: "o1"})

	err := s.DeleteOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Empty(t, s.Orders())
}

func TestDeleteClient_RemoteFailureReturned(t *testing.T) {
	fake := newFakeTableRepository()
	fake.failDelete["clients"] = true
	s := newTestService(fake)
	s.store.Clients.Insert(domain.Client{ID: "c1"})

	err := s.DeleteClient(context.Background(), "c1")
	require.Error(t, err)

	// 非乐观路径：本地条目保留
	assert.Len(t, s.Clients(), 1)
}

func TestRegisterOnNewOrder_ExactlyOncePerID(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)

	seen := []string{}
	s.RegisterOnNewOrder(func(o domain.Order) { seen = append(seen, o.ID) })

	b := bindingFor(t, s, "orders")
	ev := consumer.ChangeEvent{
		Event: consumer.EventInsert,
		Table: "orders",
		New:   map[string]any{"id": "o1", "status": "new"},
	}
	b.Apply(ev)
	b.Apply(ev) // 重复投递

	assert.Equal(t, []string{"o1"}, seen)
}

func TestAuthenticateTechnician(t *testing.T) {
	fake := newFakeTableRepository()
	s := newTestService(fake)
	s.store.Technicians.Insert(domain.Technician{ID: "t1", Username: "ana", Password: "secret"})

	tech := s.AuthenticateTechnician("ana", "secret")
	require.NotNil(t, tech)
	assert.Equal(t, "t1", tech.ID)

	assert.Nil(t, s.AuthenticateTechnician("ana", "wrong"))
	assert.Nil(t, s.AuthenticateTechnician("ghost", "secret"))
}
