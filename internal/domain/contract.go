package domain

// 合同状态
const (
	ContractStatusActive    = "active"
	ContractStatusSuspended = "suspended"
	ContractStatusCancelled = "cancelled"
	ContractStatusExpired   = "expired"
)

// Contract 合同领域模型（对应 contracts 表）
type Contract struct {
	ID               string   `json:"id"`
	ClientID         string   `json:"clientId"`
	ClientName       string   `json:"clientName"` // 读取时连接得到，不写回远端
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Value            float64  `json:"value"`
	BillingFrequency string   `json:"billingFrequency"` // monthly/quarterly/semiannual/annual
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Status           string   `json:"status"`
	Services         []string `json:"services"`
	ContractType     string   `json:"contractType"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

func (c Contract) RecordID() string { return c.ID }
