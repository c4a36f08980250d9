package mapper

import "fieldops-sync/internal/domain"

// AppointmentMapper appointments 表字段映射
type AppointmentMapper struct{}

var appointmentRename = map[string]string{
	"startTime":    "start_time",
	"endTime":      "end_time",
	"orderId":      "order_id",
	"clientId":     "client_id",
	"technicianId": "technician_id",
}

func (AppointmentMapper) ToDomain(row map[string]any) domain.Appointment {
	return domain.Appointment{
		ID:           getString(row, "id"),
		Title:        getString(row, "title"),
		Description:  getString(row, "description"),
		StartTime:    getString(row, "start_time"),
		EndTime:      getString(row, "end_time"),
		Type:         getString(row, "type"),
		OrderID:      getString(row, "order_id"),
		ClientID:     getString(row, "client_id"),
		TechnicianID: getString(row, "technician_id"),
		Status:       getString(row, "status"),
		Location:     getString(row, "location"),
		Notes:        getString(row, "notes"),
		CreatedAt:    getString(row, "created_at"),
		UpdatedAt:    getString(row, "updated_at"),
	}
}

func (AppointmentMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, appointmentRename, withDBManaged(nil))
}
