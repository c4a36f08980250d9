package service

import "fieldops-sync/internal/domain"

// 集合读取访问器：返回副本，外部调用方不允许直接修改集合

func (s *SyncService) Clients() []domain.Client                   { return s.store.Clients.List() }
func (s *SyncService) Orders() []domain.Order                     { return s.store.Orders.List() }
func (s *SyncService) Technicians() []domain.Technician           { return s.store.Technicians.List() }
func (s *SyncService) Inventory() []domain.InventoryItem          { return s.store.Inventory.List() }
func (s *SyncService) Quotes() []domain.Quote                     { return s.store.Quotes.List() }
func (s *SyncService) Contracts() []domain.Contract               { return s.store.Contracts.List() }
func (s *SyncService) Projects() []domain.Project                 { return s.store.Projects.List() }
func (s *SyncService) ProjectActivities() []domain.ProjectActivity {
	return s.store.ProjectActivities.List()
}
func (s *SyncService) ProductsServices() []domain.ProductService { return s.store.ProductsServices.List() }
func (s *SyncService) Invoices() []domain.Invoice                { return s.store.Invoices.List() }
func (s *SyncService) Appointments() []domain.Appointment        { return s.store.Appointments.List() }
func (s *SyncService) Conversations() []domain.Conversation      { return s.store.Conversations.List() }
func (s *SyncService) Messages() []domain.Message                { return s.store.Messages.List() }
