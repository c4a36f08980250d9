package domain

// QuoteItem 报价单行项
type QuoteItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Quote 报价单领域模型（对应 quotes 表）
// ClientName 为读取时连接 clients 表得到的展示字段，不写回远端
type Quote struct {
	ID           string      `json:"id"`
	ClientID     string      `json:"clientId"`
	ClientName   string      `json:"clientName"`
	Items        []QuoteItem `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	Tax          float64     `json:"tax"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"` // draft/sent/approved/rejected/expired
	ValidityDate string      `json:"validityDate"`
	Notes        string      `json:"notes"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
}

func (q Quote) RecordID() string { return q.ID }
