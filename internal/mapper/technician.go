package mapper

import "fieldops-sync/internal/domain"

// TechnicianMapper technicians 表字段映射
type TechnicianMapper struct{}

func (TechnicianMapper) ToDomain(row map[string]any) domain.Technician {
	return domain.Technician{
		ID:             getString(row, "id"),
		Name:           getString(row, "name"),
		Email:          getString(row, "email"),
		Phone:          getString(row, "phone"),
		Username:       getString(row, "username"),
		Password:       getString(row, "password"),
		Specialization: getStringSlice(row, "specialization"),
		Status:         getString(row, "status"),
		CreatedAt:      getString(row, "created_at"),
	}
}

func (TechnicianMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, nil, withDBManaged(nil))
}
