package consumer

// 变更事件类型
const (
	EventInsert = "insert"
	EventUpdate = "update"
	EventDelete = "delete"
)

// ChangeEvent 变更订阅投递的单行事件
// insert/update 携带新行，delete 携带旧行
type ChangeEvent struct {
	Event  string         `json:"event"`
	Schema string         `json:"schema"`
	Table  string         `json:"table"`
	New    map[string]any `json:"new,omitempty"`
	Old    map[string]any `json:"old,omitempty"`
}

// RowID 事件涉及行的ID（delete取旧行，其余取新行）
func (ev ChangeEvent) RowID() string {
	row := ev.New
	if ev.Event == EventDelete {
		row = ev.Old
	}
	if row == nil {
		return ""
	}
	if id, ok := row["id"].(string); ok {
		return id
	}
	return ""
}
