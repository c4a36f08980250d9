package repository

import "context"

// 远端表名
const (
	TableClients           = "clients"
	TableOrders            = "orders"
	TableTechnicians       = "technicians"
	TableInventory         = "inventory"
	TableQuotes            = "quotes"
	TableContracts         = "contracts"
	TableProjects          = "projects"
	TableProjectActivities = "project_activities"
	TableProductsServices  = "products_services"
	TableInvoices          = "invoices"
	TableAppointments      = "appointments"
	TableConversations     = "conversations"
	TableMessages          = "messages"
)

// AllTables 全部实体表（批量加载和订阅遍历用）
var AllTables = []string{
	TableClients,
	TableOrders,
	TableTechnicians,
	TableInventory,
	TableQuotes,
	TableContracts,
	TableProjects,
	TableProjectActivities,
	TableProductsServices,
	TableInvoices,
	TableAppointments,
	TableConversations,
	TableMessages,
}

// TableRepository 远端行式存储访问接口
// 行以 map[string]any 形式进出（列名 -> 规范化值），字段翻译由mapper层负责
type TableRepository interface {
	// SelectAll 读取整表快照（部分表带连接以预反规范化展示名称）
	SelectAll(ctx context.Context, table string) ([]map[string]any, error)

	// Insert 插入一行并返回插入后的完整行（含数据库生成的id/时间戳）
	Insert(ctx context.Context, table string, values map[string]any) (map[string]any, error)

	// Update 按id更新指定列；values为空时为no-op
	Update(ctx context.Context, table string, id string, values map[string]any) error

	// Delete 按id删除
	Delete(ctx context.Context, table string, id string) error
}
