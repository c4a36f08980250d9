package store

import (
	"sync"

	"fieldops-sync/internal/domain"
)

// Collection 按ID去重的内存集合（单实体类型）
// 集合只由批量加载、变更消费者和网关的乐观路径写入；
// 集合内顺序不作为任何消费方的排序保证
type Collection[T domain.Record] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection 创建空集合
func NewCollection[T domain.Record]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ReplaceAll 用快照整体替换集合内容（批量加载）
// 快照内重复ID只保留首个
func (c *Collection[T]) ReplaceAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		id := item.RecordID()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, item)
	}
	c.items = out
}

// Insert 追加记录；同ID已存在时忽略（幂等插入）
// 返回是否实际追加
func (c *Collection[T]) Insert(item T) bool {
	id := item.RecordID()
	if id == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.items {
		if existing.RecordID() == id {
			return false
		}
	}
	c.items = append(c.items, item)
	return true
}

// Replace 按ID原位替换；不存在时为no-op
// 返回是否找到并替换
func (c *Collection[T]) Replace(id string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.RecordID() == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Update 按ID原子读改写；不存在时为no-op
func (c *Collection[T]) Update(id string, fn func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.RecordID() == id {
			c.items[i] = fn(existing)
			return true
		}
	}
	return false
}

// Remove 按ID删除；不存在时为no-op
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.RecordID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get 按ID查找
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// List 返回集合内容的副本
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len 集合大小
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
