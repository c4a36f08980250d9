package domain

// 项目活动类型
const (
	ActivityTypeCreated      = "created"
	ActivityTypeStatusChange = "status_change"
	ActivityTypeOrderLinked  = "order_linked"
)

// Project 项目领域模型（对应 projects 表）
// ClientName/ResponsibleName 为读取时连接得到的展示字段
type Project struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	Status          string   `json:"status"` // planning/in_progress/paused/pending/completed/cancelled/archived
	ClientID        string   `json:"clientId"`
	ClientName      string   `json:"clientName"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Budget          float64  `json:"budget"`
	Progress        int      `json:"progress"`
	ResponsibleID   string   `json:"responsibleId"`
	ResponsibleName string   `json:"responsibleName"`
	RelatedOrders   []string `json:"relatedOrders"`
	QuoteID         string   `json:"quoteId"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
	ArchivedAt      string   `json:"archivedAt"`
}

func (p Project) RecordID() string { return p.ID }

// ProjectActivity 项目活动日志（对应 project_activities 表）
// 仅追加：项目创建和状态变化时写入，从不更新或删除
type ProjectActivity struct {
	ID            string `json:"id"`
	ProjectID     string `json:"projectId"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	PerformedBy   string `json:"performedBy"`
	PerformedByID string `json:"performedById"`
	Timestamp     string `json:"timestamp"`
}

func (a ProjectActivity) RecordID() string { return a.ID }
