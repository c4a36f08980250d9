package mapper

import "fieldops-sync/internal/domain"

// InventoryMapper inventory 表字段映射
type InventoryMapper struct{}

var inventoryRename = map[string]string{
	"minQuantity":     "min_quantity",
	"lastRestockDate": "last_restock_date",
}

func (InventoryMapper) ToDomain(row map[string]any) domain.InventoryItem {
	return domain.InventoryItem{
		ID:              getString(row, "id"),
		Name:            getString(row, "name"),
		SKU:             getString(row, "sku"),
		Quantity:        getInt(row, "quantity"),
		MinQuantity:     getInt(row, "min_quantity"),
		Unit:            getString(row, "unit"),
		Category:        getString(row, "category"),
		Location:        getString(row, "location"),
		Price:           getFloat(row, "price"),
		Supplier:        getString(row, "supplier"),
		LastRestockDate: getString(row, "last_restock_date"),
	}
}

func (InventoryMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, inventoryRename, withDBManaged(nil))
}
