package mapper

import "fieldops-sync/internal/domain"

// QuoteMapper quotes 表字段映射
// client_name 在quotes表中为真实列（连接结果优先，列值兜底）
type QuoteMapper struct{}

var quoteRename = map[string]string{
	"clientId":     "client_id",
	"clientName":   "client_name",
	"validityDate": "validity_date",
}

func (QuoteMapper) ToDomain(row map[string]any) domain.Quote {
	return domain.Quote{
		ID:           getString(row, "id"),
		ClientID:     getString(row, "client_id"),
		ClientName:   getString(row, "client_name"),
		Items:        getItems[domain.QuoteItem](row, "items"),
		Subtotal:     getFloat(row, "subtotal"),
		Tax:          getFloat(row, "tax"),
		Total:        getFloat(row, "total"),
		Status:       getString(row, "status"),
		ValidityDate: getString(row, "validity_date"),
		Notes:        getString(row, "notes"),
		CreatedAt:    getString(row, "created_at"),
		UpdatedAt:    getString(row, "updated_at"),
	}
}

func (QuoteMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, quoteRename, withDBManaged(nil))
}
