package mapper

import "fieldops-sync/internal/domain"

// ClientMapper clients 表字段映射
type ClientMapper struct{}

var clientRename = map[string]string{
	"cpfCnpj":        "cpf_cnpj",
	"serviceHistory": "service_history",
}

func (ClientMapper) ToDomain(row map[string]any) domain.Client {
	return domain.Client{
		ID:             getString(row, "id"),
		Name:           getString(row, "name"),
		Email:          getString(row, "email"),
		Phone:          getString(row, "phone"),
		Address:        getString(row, "address"),
		CpfCnpj:        getString(row, "cpf_cnpj"),
		Status:         getString(row, "status"),
		Type:           getString(row, "type"),
		Notes:          getString(row, "notes"),
		ServiceHistory: getStringSlice(row, "service_history"),
		Contracts:      getStringSlice(row, "contracts"),
		CreatedAt:      getString(row, "created_at"),
	}
}

func (ClientMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, clientRename, withDBManaged(nil))
}
