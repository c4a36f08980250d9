// Package store 进程级同步数据缓存：每个实体类型一个按ID去重的集合
//
// 集合是本层唯一的共享可变状态，外部调用方只能通过服务层暴露的操作访问
package store

import "fieldops-sync/internal/domain"

// Store 全部实体集合的聚合
type Store struct {
	Clients           *Collection[domain.Client]
	Orders            *Collection[domain.Order]
	Technicians       *Collection[domain.Technician]
	Inventory         *Collection[domain.InventoryItem]
	Quotes            *Collection[domain.Quote]
	Contracts         *Collection[domain.Contract]
	Projects          *Collection[domain.Project]
	ProjectActivities *Collection[domain.ProjectActivity]
	ProductsServices  *Collection[domain.ProductService]
	Invoices          *Collection[domain.Invoice]
	Appointments      *Collection[domain.Appointment]
	Conversations     *Collection[domain.Conversation]
	Messages          *Collection[domain.Message]
}

// NewStore 创建空Store
func NewStore() *Store {
	return &Store{
		Clients:           NewCollection[domain.Client](),
		Orders:            NewCollection[domain.Order](),
		Technicians:       NewCollection[domain.Technician](),
		Inventory:         NewCollection[domain.InventoryItem](),
		Quotes:            NewCollection[domain.Quote](),
		Contracts:         NewCollection[domain.Contract](),
		Projects:          NewCollection[domain.Project](),
		ProjectActivities: NewCollection[domain.ProjectActivity](),
		ProductsServices:  NewCollection[domain.ProductService](),
		Invoices:          NewCollection[domain.Invoice](),
		Appointments:      NewCollection[domain.Appointment](),
		Conversations:     NewCollection[domain.Conversation](),
		Messages:          NewCollection[domain.Message](),
	}
}
