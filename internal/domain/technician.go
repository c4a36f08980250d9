package domain

// Technician 技师领域模型（对应 technicians 表）
type Technician struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Username       string   `json:"username"`
	Password       string   `json:"password"`
	Specialization []string `json:"specialization"`
	Status         string   `json:"status"` // active/inactive
	CreatedAt      string   `json:"createdAt"`
}

func (t Technician) RecordID() string { return t.ID }
