package mapper

import "fieldops-sync/internal/domain"

// ProjectMapper projects 表字段映射
// clientName/responsibleName 仅来自读取时连接，写回时剥离
type ProjectMapper struct{}

var projectRename = map[string]string{
	"clientId":      "client_id",
	"startDate":     "start_date",
	"endDate":       "end_date",
	"responsibleId": "responsible_id",
	"relatedOrders": "related_orders",
	"quoteId":       "quote_id",
	"archivedAt":    "archived_at",
}

var projectDerived = map[string]bool{
	"clientName":      true,
	"responsibleName": true,
}

func (ProjectMapper) ToDomain(row map[string]any) domain.Project {
	return domain.Project{
		ID:              getString(row, "id"),
		Name:            getString(row, "name"),
		Description:     getString(row, "description"),
		Type:            getString(row, "type"),
		Status:          getString(row, "status"),
		ClientID:        getString(row, "client_id"),
		ClientName:      getString(row, "client_name"),
		StartDate:       getString(row, "start_date"),
		EndDate:         getString(row, "end_date"),
		Budget:          getFloat(row, "budget"),
		Progress:        getInt(row, "progress"),
		ResponsibleID:   getString(row, "responsible_id"),
		ResponsibleName: getString(row, "responsible_name"),
		RelatedOrders:   getStringSlice(row, "related_orders"),
		QuoteID:         getString(row, "quote_id"),
		CreatedAt:       getString(row, "created_at"),
		UpdatedAt:       getString(row, "updated_at"),
		ArchivedAt:      getString(row, "archived_at"),
	}
}

func (ProjectMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, projectRename, withDBManaged(projectDerived))
}

// ProjectActivityMapper project_activities 表字段映射
type ProjectActivityMapper struct{}

var activityRename = map[string]string{
	"projectId":     "project_id",
	"performedBy":   "performed_by",
	"performedById": "performed_by_id",
}

func (ProjectActivityMapper) ToDomain(row map[string]any) domain.ProjectActivity {
	return domain.ProjectActivity{
		ID:            getString(row, "id"),
		ProjectID:     getString(row, "project_id"),
		Type:          getString(row, "type"),
		Description:   getString(row, "description"),
		PerformedBy:   getString(row, "performed_by"),
		PerformedByID: getString(row, "performed_by_id"),
		Timestamp:     getString(row, "timestamp"),
	}
}

func (ProjectActivityMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, activityRename, withDBManaged(nil))
}
