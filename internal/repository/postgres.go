package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

// PostgresTableRepository TableRepository 的 PostgreSQL 实现
type PostgresTableRepository struct {
	db *sql.DB
}

// NewPostgresTableRepository 创建表Repository
func NewPostgresTableRepository(db *sql.DB) *PostgresTableRepository {
	return &PostgresTableRepository{db: db}
}

var _ TableRepository = (*PostgresTableRepository)(nil)

// selectQueries 带连接的快照查询（读取时预反规范化展示名称）
// 连接得到的列放在末尾，同名时覆盖本表的反规范化列
var selectQueries = map[string]string{
	TableQuotes: `SELECT q.*, COALESCE(c.name, q.client_name) AS client_name
		FROM quotes q LEFT JOIN clients c ON c.id = q.client_id`,
	TableContracts: `SELECT t.*, c.name AS client_name
		FROM contracts t LEFT JOIN clients c ON c.id = t.client_id`,
	TableProjects: `SELECT p.*, c.name AS client_name, r.name AS responsible_name
		FROM projects p
		LEFT JOIN clients c ON c.id = p.client_id
		LEFT JOIN technicians r ON r.id = p.responsible_id`,
	TableInvoices: `SELECT i.*, c.name AS client_name
		FROM invoices i LEFT JOIN clients c ON c.id = i.client_id`,
}

var validTables = func() map[string]bool {
	out := make(map[string]bool, len(AllTables))
	for _, t := range AllTables {
		out[t] = true
	}
	return out
}()

// SelectAll 读取整表快照
func (r *PostgresTableRepository) SelectAll(ctx context.Context, table string) ([]map[string]any, error) {
	if !validTables[table] {
		return nil, fmt.Errorf("unknown table: %s", table)
	}

	query, ok := selectQueries[table]
	if !ok {
		query = "SELECT * FROM " + table
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", table, err)
	}
	defer rows.Close()

	return rowsToMaps(rows)
}

// Insert 插入一行并返回插入后的完整行
func (r *PostgresTableRepository) Insert(ctx context.Context, table string, values map[string]any) (map[string]any, error) {
	if !validTables[table] {
		return nil, fmt.Errorf("unknown table: %s", table)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to insert into %s", table)
	}

	// 列按名称排序，保证SQL确定性
	cols := sortedKeys(values)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = toSQLValue(values[col])
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	defer rows.Close()

	inserted, err := rowsToMaps(rows)
	if err != nil {
		return nil, err
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("insert into %s returned no row", table)
	}
	return inserted[0], nil
}

// Update 按id更新指定列
func (r *PostgresTableRepository) Update(ctx context.Context, table string, id string, values map[string]any) error {
	if !validTables[table] {
		return fmt.Errorf("unknown table: %s", table)
	}
	if len(values) == 0 {
		return nil
	}

	// 构建UPDATE语句
	updates := []string{}
	args := []any{id}
	argIdx := 2

	for _, col := range sortedKeys(values) {
		updates = append(updates, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, toSQLValue(values[col]))
		argIdx++
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(updates, ", "))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	return nil
}

// Delete 按id删除
func (r *PostgresTableRepository) Delete(ctx context.Context, table string, id string) error {
	if !validTables[table] {
		return fmt.Errorf("unknown table: %s", table)
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toSQLValue 领域侧值到driver参数的转换
// 字符串切片走text[]，其余复合值序列化为JSONB
func toSQLValue(v any) any {
	switch val := v.(type) {
	case nil, string, bool, int, int64, float64, []byte, time.Time:
		return val
	case []string:
		return pq.Array(val)
	case json.RawMessage:
		return []byte(val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return nil
		}
		return raw
	}
}

// rowsToMaps 结果集转换为 列名 -> 规范化值 的行映射
// 同名列按出现顺序覆盖（连接别名在末尾，优先生效）
func rowsToMaps(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read column types: %w", err)
	}

	out := []map[string]any{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = normalizeValue(vals[i], types[i].DatabaseTypeName())
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return out, nil
}

// normalizeValue driver返回值到行映射值的规范化
// 时间格式化为RFC3339，JSONB解码，text[]解析为[]string，NUMERIC转float64
func normalizeValue(v any, dbType string) any {
	if v == nil {
		return nil
	}

	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339)
	case []byte:
		switch {
		case dbType == "JSON" || dbType == "JSONB":
			var decoded any
			if err := json.Unmarshal(val, &decoded); err != nil {
				return string(val)
			}
			return decoded
		case strings.HasPrefix(dbType, "_"): // 数组类型（_TEXT, _VARCHAR...）
			var arr pq.StringArray
			if err := arr.Scan([]byte(val)); err != nil {
				return string(val)
			}
			return []string(arr)
		case dbType == "NUMERIC" || dbType == "DECIMAL":
			f, err := strconv.ParseFloat(string(val), 64)
			if err != nil {
				return string(val)
			}
			return f
		default:
			return string(val)
		}
	default:
		return val
	}
}
