package service

import (
	"context"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// 工单是最高频、对延迟最敏感的实体（派单/看板视图），
// 唯一走乐观变更路径的实体类型

// AddOrder 创建工单（默认状态new，未开票）
func (s *SyncService) AddOrder(ctx context.Context, order domain.Patch) (domain.Order, error) {
	rec := clonePatch(order)
	setDefault(rec, "status", domain.OrderStatusNew)
	setDefault(rec, "invoiced", false)

	return createRecord(ctx, s, repository.TableOrders, mapper.OrderMapper{}, s.store.Orders, rec)
}

// UpdateOrder 乐观更新工单：先打本地补丁（UI即时反馈），再发远端写
// 远端失败不回滚本地补丁
func (s *SyncService) UpdateOrder(ctx context.Context, id string, patch domain.Patch) error {
	return updateRecordOptimistic(ctx, s, repository.TableOrders, mapper.OrderMapper{}, s.store.Orders, id, patch)
}

// DeleteOrder 乐观删除工单：先移除本地条目，再发远端删除
func (s *SyncService) DeleteOrder(ctx context.Context, id string) error {
	return deleteRecordOptimistic(ctx, s, repository.TableOrders, s.store.Orders, id)
}
