package mapper

import "fieldops-sync/internal/domain"

// OrderMapper orders 表字段映射
// client_name/technician_name/project_name 在orders表中为反规范化真实列，照常写回
type OrderMapper struct{}

var orderRename = map[string]string{
	"clientId":       "client_id",
	"clientName":     "client_name",
	"serviceType":    "service_type",
	"scheduledDate":  "scheduled_date",
	"completedDate":  "completed_date",
	"technicianId":   "technician_id",
	"technicianName": "technician_name",
	"projectId":      "project_id",
	"projectName":    "project_name",
	"quoteId":        "quote_id",
	"checkIn":        "check_in",
	"checkOut":       "check_out",
	"invoiceId":      "invoice_id",
}

func (OrderMapper) ToDomain(row map[string]any) domain.Order {
	return domain.Order{
		ID:             getString(row, "id"),
		ClientID:       getString(row, "client_id"),
		ClientName:     getString(row, "client_name"),
		ServiceType:    getString(row, "service_type"),
		Description:    getString(row, "description"),
		Status:         getString(row, "status"),
		Priority:       getString(row, "priority"),
		ScheduledDate:  getString(row, "scheduled_date"),
		CompletedDate:  getString(row, "completed_date"),
		TechnicianID:   getString(row, "technician_id"),
		TechnicianName: getString(row, "technician_name"),
		ProjectID:      getString(row, "project_id"),
		ProjectName:    getString(row, "project_name"),
		QuoteID:        getString(row, "quote_id"),
		Value:          getFloat(row, "value"),
		Observations:   getString(row, "observations"),
		CheckIn:        getRaw(row, "check_in"),
		CheckOut:       getRaw(row, "check_out"),
		Invoiced:       getBool(row, "invoiced"),
		InvoiceID:      getString(row, "invoice_id"),
		Origin:         getString(row, "origin"),
		CreatedAt:      getString(row, "created_at"),
		UpdatedAt:      getString(row, "updated_at"),
	}
}

func (OrderMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, orderRename, withDBManaged(nil))
}
