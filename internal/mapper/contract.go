package mapper

import "fieldops-sync/internal/domain"

// ContractMapper contracts 表字段映射
// clientName 仅来自读取时连接，写回时剥离
type ContractMapper struct{}

var contractRename = map[string]string{
	"clientId":         "client_id",
	"billingFrequency": "billing_frequency",
	"startDate":        "start_date",
	"endDate":          "end_date",
	"contractType":     "contract_type",
}

var contractDerived = map[string]bool{
	"clientName": true,
}

func (ContractMapper) ToDomain(row map[string]any) domain.Contract {
	return domain.Contract{
		ID:               getString(row, "id"),
		ClientID:         getString(row, "client_id"),
		ClientName:       getString(row, "client_name"),
		Title:            getString(row, "title"),
		Description:      getString(row, "description"),
		Value:            getFloat(row, "value"),
		BillingFrequency: getString(row, "billing_frequency"),
		StartDate:        getString(row, "start_date"),
		EndDate:          getString(row, "end_date"),
		Status:           getString(row, "status"),
		Services:         getStringSlice(row, "services"),
		ContractType:     getString(row, "contract_type"),
		CreatedAt:        getString(row, "created_at"),
		UpdatedAt:        getString(row, "updated_at"),
	}
}

func (ContractMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, contractRename, withDBManaged(contractDerived))
}
