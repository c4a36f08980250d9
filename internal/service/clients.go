package service

import (
	"context"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// AddClient 创建客户（默认active，空历史/合同列表）
func (s *SyncService) AddClient(ctx context.Context, client domain.Patch) (domain.Client, error) {
	rec := clonePatch(client)
	setDefault(rec, "status", "active")
	setDefault(rec, "serviceHistory", []string{})
	setDefault(rec, "contracts", []string{})

	return createRecord(ctx, s, repository.TableClients, mapper.ClientMapper{}, s.store.Clients, rec)
}

// UpdateClient 更新客户（本地集合等待变更回传）
func (s *SyncService) UpdateClient(ctx context.Context, id string, patch domain.Patch) error {
	return updateRecord(ctx, s, repository.TableClients, mapper.ClientMapper{}, id, patch)
}

// DeleteClient 删除客户
func (s *SyncService) DeleteClient(ctx context.Context, id string) error {
	return deleteRecord(ctx, s, repository.TableClients, id)
}
