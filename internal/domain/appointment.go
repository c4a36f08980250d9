package domain

// Appointment 预约领域模型（对应 appointments 表）
type Appointment struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Type         string `json:"type"` // order/meeting/visit/other
	OrderID      string `json:"orderId"`
	ClientID     string `json:"clientId"`
	TechnicianID string `json:"technicianId"`
	Status       string `json:"status"` // scheduled/confirmed/completed/cancelled
	Location     string `json:"location"`
	Notes        string `json:"notes"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func (a Appointment) RecordID() string { return a.ID }
