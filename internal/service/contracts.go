package service

import (
	"context"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// AddContract 创建合同（默认active）
func (s *SyncService) AddContract(ctx context.Context, contract domain.Patch) (domain.Contract, error) {
	rec := clonePatch(contract)
	setDefault(rec, "status", domain.ContractStatusActive)

	return createRecord(ctx, s, repository.TableContracts, mapper.ContractMapper{}, s.store.Contracts, rec)
}

// UpdateContract 更新合同
func (s *SyncService) UpdateContract(ctx context.Context, id string, patch domain.Patch) error {
	return updateRecord(ctx, s, repository.TableContracts, mapper.ContractMapper{}, id, patch)
}

// DeleteContract 删除合同
func (s *SyncService) DeleteContract(ctx context.Context, id string) error {
	return deleteRecord(ctx, s, repository.TableContracts, id)
}
