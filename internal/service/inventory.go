package service

import (
	"context"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// AddInventoryItem 创建库存条目
func (s *SyncService) AddInventoryItem(ctx context.Context, item domain.Patch) (domain.InventoryItem, error) {
	return createRecord(ctx, s, repository.TableInventory, mapper.InventoryMapper{}, s.store.Inventory, clonePatch(item))
}

// UpdateInventoryItem 更新库存条目
func (s *SyncService) UpdateInventoryItem(ctx context.Context, id string, patch domain.Patch) error {
	return updateRecord(ctx, s, repository.TableInventory, mapper.InventoryMapper{}, id, patch)
}

// DeleteInventoryItem 删除库存条目
func (s *SyncService) DeleteInventoryItem(ctx context.Context, id string) error {
	return deleteRecord(ctx, s, repository.TableInventory, id)
}
