package mapper

import "fieldops-sync/internal/domain"

// ProductServiceMapper products_services 表字段映射
type ProductServiceMapper struct{}

func (ProductServiceMapper) ToDomain(row map[string]any) domain.ProductService {
	return domain.ProductService{
		ID:          getString(row, "id"),
		Name:        getString(row, "name"),
		Description: getString(row, "description"),
		Category:    getString(row, "category"),
		Price:       getFloat(row, "price"),
		Unit:        getString(row, "unit"),
		Active:      getBool(row, "active"),
		CreatedAt:   getString(row, "created_at"),
		UpdatedAt:   getString(row, "updated_at"),
	}
}

func (ProductServiceMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, nil, withDBManaged(nil))
}
