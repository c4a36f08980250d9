package service

import (
	"context"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// AddTechnician 创建技师（默认active）
func (s *SyncService) AddTechnician(ctx context.Context, technician domain.Patch) (domain.Technician, error) {
	rec := clonePatch(technician)
	setDefault(rec, "status", "active")

	return createRecord(ctx, s, repository.TableTechnicians, mapper.TechnicianMapper{}, s.store.Technicians, rec)
}

// UpdateTechnician 更新技师
func (s *SyncService) UpdateTechnician(ctx context.Context, id string, patch domain.Patch) error {
	return updateRecord(ctx, s, repository.TableTechnicians, mapper.TechnicianMapper{}, id, patch)
}

// DeleteTechnician 删除技师
func (s *SyncService) DeleteTechnician(ctx context.Context, id string) error {
	return deleteRecord(ctx, s, repository.TableTechnicians, id)
}

// AuthenticateTechnician 按用户名密码在缓存集合中查找技师
// 未命中返回nil
func (s *SyncService) AuthenticateTechnician(username, password string) *domain.Technician {
	for _, tech := range s.store.Technicians.List() {
		if tech.Username == username && tech.Password == password {
			return &tech
		}
	}
	return nil
}
