package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"fieldops-sync/internal/repository"
	"fieldops-sync/internal/store"
)

// fakeTableRepository 内存版TableRepository测试替身
type fakeTableRepository struct {
	mu  sync.Mutex
	seq int

	snapshots map[string][]map[string]any
	inserted  map[string][]map[string]any
	updates   map[string][]fakeUpdate
	deletes   map[string][]string

	failSelect map[string]bool
	failInsert map[string]int // 表 -> 剩余失败次数
	failUpdate map[string]bool
	failDelete map[string]bool
}

type fakeUpdate struct {
	id     string
	values map[string]any
}

func newFakeTableRepository() *fakeTableRepository {
	return &fakeTableRepository{
		snapshots:  map[string][]map[string]any{},
		inserted:   map[string][]map[string]any{},
		updates:    map[string][]fakeUpdate{},
		deletes:    map[string][]string{},
		failSelect: map[string]bool{},
		failInsert: map[string]int{},
		failUpdate: map[string]bool{},
		failDelete: map[string]bool{},
	}
}

var _ repository.TableRepository = (*fakeTableRepository)(nil)

func (f *fakeTableRepository) SelectAll(_ context.Context, table string) ([]map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failSelect[table] {
		return nil, errors.New("select rejected")
	}
	return f.snapshots[table], nil
}

func (f *fakeTableRepository) Insert(_ context.Context, table string, values map[string]any) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failInsert[table] > 0 {
		f.failInsert[table]--
		return nil, errors.New("insert rejected")
	}

	row := make(map[string]any, len(values)+1)
	for k, v := range values {
		row[k] = v
	}
	if _, ok := row["id"]; !ok {
		f.seq++
		row["id"] = fmt.Sprintf("gen-%d", f.seq)
	}

	f.inserted[table] = append(f.inserted[table], row)
	return row, nil
}

func (f *fakeTableRepository) Update(_ context.Context, table string, id string, values map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failUpdate[table] {
		return errors.New("update rejected")
	}
	f.updates[table] = append(f.updates[table], fakeUpdate{id: id, values: values})
	return nil
}

func (f *fakeTableRepository) Delete(_ context.Context, table string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failDelete[table] {
		return errors.New("delete rejected")
	}
	f.deletes[table] = append(f.deletes[table], id)
	return nil
}

func (f *fakeTableRepository) updatesFor(table string) []fakeUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]fakeUpdate, len(f.updates[table]))
	copy(out, f.updates[table])
	return out
}

// newTestService 不带变更订阅的服务实例（网关/聚合测试用）
func newTestService(repo repository.TableRepository) *SyncService {
	return &SyncService{
		repo:    repo,
		store:   store.NewStore(),
		logger:  zap.NewNop(),
		taxRate: 0.05,
	}
}
