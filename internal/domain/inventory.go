package domain

// InventoryItem 库存条目领域模型（对应 inventory 表）
type InventoryItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	SKU             string  `json:"sku"`
	Quantity        int     `json:"quantity"`
	MinQuantity     int     `json:"minQuantity"`
	Unit            string  `json:"unit"`
	Category        string  `json:"category"`
	Location        string  `json:"location"`
	Price           float64 `json:"price"`
	Supplier        string  `json:"supplier"`
	LastRestockDate string  `json:"lastRestockDate"`
}

func (i InventoryItem) RecordID() string { return i.ID }
