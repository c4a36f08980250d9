package domain

// ProductService 产品/服务条目领域模型（对应 products_services 表）
type ProductService struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"` // service/product/bundle
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func (p ProductService) RecordID() string { return p.ID }
