package domain

import "encoding/json"

// Record 领域记录通用接口（所有实体类型实现）
type Record interface {
	RecordID() string
}

// Patch 部分更新（按领域字段名的键值对，如 "clientId", "scheduledDate"）
// 只包含调用方希望修改的字段，未包含的字段不会被覆盖
type Patch = map[string]any

// MergePatch 将Patch合并到已有记录上（JSON语义合并）
// 键为领域JSON字段名；未知键被忽略，原记录不受影响
func MergePatch[T any](rec T, patch Patch) T {
	raw, err := json.Marshal(rec)
	if err != nil {
		return rec
	}

	var base map[string]any
	if err := json.Unmarshal(raw, &base); err != nil {
		return rec
	}

	for k, v := range patch {
		base[k] = v
	}

	merged, err := json.Marshal(base)
	if err != nil {
		return rec
	}

	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return rec
	}
	return out
}
