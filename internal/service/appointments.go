package service

import (
	"context"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// AddAppointment 创建预约（默认scheduled）
func (s *SyncService) AddAppointment(ctx context.Context, appointment domain.Patch) (domain.Appointment, error) {
	rec := clonePatch(appointment)
	setDefault(rec, "status", "scheduled")

	return createRecord(ctx, s, repository.TableAppointments, mapper.AppointmentMapper{}, s.store.Appointments, rec)
}

// UpdateAppointment 更新预约
func (s *SyncService) UpdateAppointment(ctx context.Context, id string, patch domain.Patch) error {
	return updateRecord(ctx, s, repository.TableAppointments, mapper.AppointmentMapper{}, id, patch)
}

// DeleteAppointment 删除预约
func (s *SyncService) DeleteAppointment(ctx context.Context, id string) error {
	return deleteRecord(ctx, s, repository.TableAppointments, id)
}
