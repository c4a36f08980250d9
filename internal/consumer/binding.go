package consumer

import (
	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/store"
)

// Binding 实体类型与其映射器/集合的绑定（按表名注册到消费者和批量加载器）
type Binding interface {
	Table() string

	// InstallSnapshot 用整表快照替换集合（批量加载路径）
	InstallSnapshot(rows []map[string]any)

	// Apply 按到达顺序应用单个变更事件
	// insert 按ID幂等（批量加载或乐观追加已捕获的行被忽略）
	// update 原位替换，不存在时为no-op
	// delete 按ID删除，不存在时为no-op
	Apply(ev ChangeEvent)
}

type kindBinding[T domain.Record] struct {
	table    string
	mapper   mapper.Mapper[T]
	col      *store.Collection[T]
	onInsert func(T)
}

// Bind 创建单个实体类型的绑定
// onInsert 仅在insert事件实际追加了新行时调用（按ID恰好一次），可为nil
func Bind[T domain.Record](table string, m mapper.Mapper[T], col *store.Collection[T], onInsert func(T)) Binding {
	return &kindBinding[T]{
		table:    table,
		mapper:   m,
		col:      col,
		onInsert: onInsert,
	}
}

func (b *kindBinding[T]) Table() string { return b.table }

func (b *kindBinding[T]) InstallSnapshot(rows []map[string]any) {
	items := make([]T, 0, len(rows))
	for _, row := range rows {
		items = append(items, b.mapper.ToDomain(row))
	}
	b.col.ReplaceAll(items)
}

func (b *kindBinding[T]) Apply(ev ChangeEvent) {
	switch ev.Event {
	case EventInsert:
		rec := b.mapper.ToDomain(ev.New)
		if b.col.Insert(rec) && b.onInsert != nil {
			b.onInsert(rec)
		}
	case EventUpdate:
		rec := b.mapper.ToDomain(ev.New)
		b.col.Replace(rec.RecordID(), rec)
	case EventDelete:
		if id := ev.RowID(); id != "" {
			b.col.Remove(id)
		}
	}
}
