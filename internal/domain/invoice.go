package domain

// 发票状态与类型
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"

	InvoiceTypeService   = "service"
	InvoiceTypeRecurring = "recurring"

	// 行项来源类型（sourceType）
	InvoiceSourceOrder    = "order"
	InvoiceSourceContract = "contract"
)

// InvoiceItem 发票行项（内嵌于发票，带来源回溯指针）
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
	SourceID    string  `json:"sourceId,omitempty"`
	SourceType  string  `json:"sourceType,omitempty"` // order/contract/quote
}

// Invoice 发票领域模型（对应 invoices 表）
type Invoice struct {
	ID            string        `json:"id"`
	Number        string        `json:"number"`
	ClientID      string        `json:"clientId"`
	ClientName    string        `json:"clientName"` // 读取时连接得到，不写回远端
	IssueDate     string        `json:"issueDate"`
	DueDate       string        `json:"dueDate"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	Status        string        `json:"status"`
	Type          string        `json:"type"`
	PaymentDate   string        `json:"paymentDate"`
	PaymentMethod string        `json:"paymentMethod"`
	Observations  string        `json:"observations"`
	ContractID    string        `json:"contractId"`
	QuoteID       string        `json:"quoteId"`
	OrderID       string        `json:"orderId"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
}

func (i Invoice) RecordID() string { return i.ID }
