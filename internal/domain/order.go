package domain

import "encoding/json"

// 工单状态
const (
	OrderStatusNew        = "new"
	OrderStatusInProgress = "in_progress"
	OrderStatusPending    = "pending"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order 工单领域模型（对应 orders 表）
// 最高频实体：变更走乐观更新路径
type Order struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"clientId"`
	ClientName     string          `json:"clientName"`
	ServiceType    string          `json:"serviceType"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority"` // low/medium/high/urgent
	ScheduledDate  string          `json:"scheduledDate"`
	CompletedDate  string          `json:"completedDate"` // 完成时间，未完成为空
	TechnicianID   string          `json:"technicianId"`
	TechnicianName string          `json:"technicianName"`
	ProjectID      string          `json:"projectId"`
	ProjectName    string          `json:"projectName"`
	QuoteID        string          `json:"quoteId"`
	Value          float64         `json:"value"`
	Observations   string          `json:"observations"`
	CheckIn        json.RawMessage `json:"checkIn,omitempty"`  // 签到信息（位置/时间）
	CheckOut       json.RawMessage `json:"checkOut,omitempty"` // 签退信息
	Invoiced       bool            `json:"invoiced"`           // 仅由账单聚合置为true，且只发生一次
	InvoiceID      string          `json:"invoiceId"`
	Origin         string          `json:"origin"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

func (o Order) RecordID() string { return o.ID }
