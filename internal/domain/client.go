package domain

// Client 客户领域模型（对应 clients 表）
type Client struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	CpfCnpj        string   `json:"cpfCnpj"` // 税号（CPF/CNPJ）
	Status         string   `json:"status"`  // active/inactive
	Type           string   `json:"type"`    // pf/pj
	Notes          string   `json:"notes"`
	ServiceHistory []string `json:"serviceHistory"` // 历史工单ID
	Contracts      []string `json:"contracts"`      // 关联合同ID
	CreatedAt      string   `json:"createdAt"`
}

func (c Client) RecordID() string { return c.ID }
