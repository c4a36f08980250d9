// Package mapper 远端行（扁平snake_case列）与领域记录（camelCase）之间的字段映射层
//
// ToDomain 是全函数：缺失或畸形的远端字段退化为零值/空切片，从不报错
// ToRemote 是部分函数：只翻译patch中出现的键，未指定字段不会被覆盖（PATCH语义），
// 并剥离仅存在于领域侧的派生字段（如连接得到的展示名称）
package mapper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"

	"fieldops-sync/internal/domain"
)

// Mapper 单个实体类型的双向字段映射
type Mapper[T domain.Record] interface {
	ToDomain(row map[string]any) T
	ToRemote(patch domain.Patch) map[string]any
}

// translate 翻译patch：rename表中的键改名，derived集合中的键剥离，其余原样保留
func translate(patch domain.Patch, rename map[string]string, derived map[string]bool) map[string]any {
	out := make(map[string]any, len(patch))
	for k, v := range patch {
		if derived[k] {
			continue
		}
		if rk, ok := rename[k]; ok {
			out[rk] = v
		} else {
			out[k] = v
		}
	}
	return out
}

// dbManaged 所有实体共有的远端托管字段（由数据库默认值/触发器维护，不写回）
var dbManaged = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
}

func withDBManaged(derived map[string]bool) map[string]bool {
	out := map[string]bool{}
	for k := range dbManaged {
		out[k] = true
	}
	for k, v := range derived {
		out[k] = v
	}
	return out
}

func getString(row map[string]any, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func getFloat(row map[string]any, key string) float64 {
	v, ok := row[key]
	if !ok || v == nil {
		return 0
	}
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		f, _ := strconv.ParseFloat(val, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(val), 64)
		return f
	default:
		return 0
	}
}

func getInt(row map[string]any, key string) int {
	return int(getFloat(row, key))
}

func getBool(row map[string]any, key string) bool {
	v, ok := row[key]
	if !ok || v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "t"
	case float64:
		return val != 0
	default:
		return false
	}
}

// getStringSlice 读取字符串数组列（text[]或JSON数组）
// 缺失时返回空切片而不是nil（防御性默认值）
func getStringSlice(row map[string]any, key string) []string {
	out := []string{}
	v, ok := row[key]
	if !ok || v == nil {
		return out
	}
	switch val := v.(type) {
	case []string:
		return append(out, val...)
	case pq.StringArray:
		return append(out, val...)
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case string:
		_ = json.Unmarshal([]byte(val), &out)
	case []byte:
		_ = json.Unmarshal(val, &out)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// getItems 解码JSONB列中的内嵌行项列表（报价/发票行项）
func getItems[T any](row map[string]any, key string) []T {
	out := []T{}
	v, ok := row[key]
	if !ok || v == nil {
		return out
	}
	var raw []byte
	switch val := v.(type) {
	case string:
		raw = []byte(val)
	case []byte:
		raw = val
	case json.RawMessage:
		raw = val
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return out
		}
		raw = encoded
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

// getRaw 读取不透明JSON列（如工单签到/签退）
func getRaw(row map[string]any, key string) json.RawMessage {
	v, ok := row[key]
	if !ok || v == nil {
		return nil
	}
	switch val := v.(type) {
	case json.RawMessage:
		return val
	case []byte:
		return json.RawMessage(val)
	case string:
		return json.RawMessage(val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return nil
		}
		return raw
	}
}
