package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// AddProject 创建项目并记录"created"活动
func (s *SyncService) AddProject(ctx context.Context, project domain.Patch) (domain.Project, error) {
	rec := clonePatch(project)
	setDefault(rec, "status", "planning")
	setDefault(rec, "relatedOrders", []string{})

	created, err := createRecord(ctx, s, repository.TableProjects, mapper.ProjectMapper{}, s.store.Projects, rec)
	if err != nil {
		return domain.Project{}, err
	}

	// 创建活动失败仅记录，不影响已创建的项目
	if _, err := s.AddProjectActivity(ctx, domain.Patch{
		"projectId":     created.ID,
		"type":          domain.ActivityTypeCreated,
		"description":   "Project created",
		"performedBy":   "System",
		"performedById": "system",
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		s.logger.Warn("Failed to record project creation activity")
	}

	return created, nil
}

// UpdateProject 更新项目；状态变化时追加"status_change"活动
func (s *SyncService) UpdateProject(ctx context.Context, id string, patch domain.Patch) error {
	if err := updateRecord(ctx, s, repository.TableProjects, mapper.ProjectMapper{}, id, patch); err != nil {
		return err
	}

	if status, ok := patch["status"].(string); ok && status != "" {
		if _, err := s.AddProjectActivity(ctx, domain.Patch{
			"projectId":     id,
			"type":          domain.ActivityTypeStatusChange,
			"description":   fmt.Sprintf("Status changed to %q", status),
			"performedBy":   "System",
			"performedById": "system",
			"timestamp":     time.Now().UTC().Format(time.RFC3339),
		}); err != nil {
			s.logger.Warn("Failed to record project status activity")
		}
	}
	return nil
}

// ArchiveProject 归档项目（设置archivedAt）
func (s *SyncService) ArchiveProject(ctx context.Context, id string) error {
	return s.UpdateProject(ctx, id, domain.Patch{
		"status":     "archived",
		"archivedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// UnarchiveProject 取消归档（回到planning，清除archivedAt）
func (s *SyncService) UnarchiveProject(ctx context.Context, id string) error {
	return s.UpdateProject(ctx, id, domain.Patch{
		"status":     "planning",
		"archivedAt": nil,
	})
}

// DeleteProject 删除项目
func (s *SyncService) DeleteProject(ctx context.Context, id string) error {
	return deleteRecord(ctx, s, repository.TableProjects, id)
}

// AddProjectActivity 追加项目活动（仅追加：从不更新或删除）
func (s *SyncService) AddProjectActivity(ctx context.Context, activity domain.Patch) (domain.ProjectActivity, error) {
	return createRecord(ctx, s, repository.TableProjectActivities, mapper.ProjectActivityMapper{}, s.store.ProjectActivities, clonePatch(activity))
}

// GetProjectActivities 返回指定项目的活动，按时间倒序
func (s *SyncService) GetProjectActivities(projectID string) []domain.ProjectActivity {
	out := []domain.ProjectActivity{}
	for _, activity := range s.store.ProjectActivities.List() {
		if activity.ProjectID == projectID {
			out = append(out, activity)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// LinkOrderToProject 关联工单与项目（双向：工单写项目引用，项目追加relatedOrders）
func (s *SyncService) LinkOrderToProject(ctx context.Context, orderID, projectID string) error {
	project, ok := s.store.Projects.Get(projectID)
	if !ok {
		return fmt.Errorf("project not found: %s", projectID)
	}

	if err := s.UpdateOrder(ctx, orderID, domain.Patch{
		"projectId":   projectID,
		"projectName": project.Name,
	}); err != nil {
		return err
	}

	related := append([]string{}, project.RelatedOrders...)
	for _, existing := range related {
		if existing == orderID {
			return nil
		}
	}
	related = append(related, orderID)

	return s.UpdateProject(ctx, projectID, domain.Patch{"relatedOrders": related})
}

// UnlinkOrderFromProject 解除工单与项目的关联
func (s *SyncService) UnlinkOrderFromProject(ctx context.Context, orderID, projectID string) error {
	project, ok := s.store.Projects.Get(projectID)
	if !ok {
		return fmt.Errorf("project not found: %s", projectID)
	}

	if err := s.UpdateOrder(ctx, orderID, domain.Patch{
		"projectId":   nil,
		"projectName": nil,
	}); err != nil {
		return err
	}

	related := []string{}
	for _, existing := range project.RelatedOrders {
		if existing != orderID {
			related = append(related, existing)
		}
	}

	return s.UpdateProject(ctx, projectID, domain.Patch{"relatedOrders": related})
}
