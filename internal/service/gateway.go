package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/store"
)

// remoteTranslator 网关需要的映射器写方向
type remoteTranslator interface {
	ToRemote(patch domain.Patch) map[string]any
}

// createRecord 远端插入并将返回行直接追加到本地集合
// 调用方无需等待变更回传即可看到新实体；失败时集合不变，错误返回给调用方
func createRecord[T domain.Record](
	ctx context.Context,
	s *SyncService,
	table string,
	m mapper.Mapper[T],
	col *store.Collection[T],
	rec domain.Patch,
) (T, error) {
	var zero T

	row, err := s.repo.Insert(ctx, table, m.ToRemote(rec))
	if err != nil {
		s.logger.Error("Failed to insert record",
			zap.String("table", table),
			zap.Error(err),
		)
		return zero, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	mapped := m.ToDomain(row)
	col.Insert(mapped)
	return mapped, nil
}

// updateRecord 远端更新；本地集合等待变更回传刷新（一致但可能短暂陈旧）
func updateRecord(
	ctx context.Context,
	s *SyncService,
	table string,
	m remoteTranslator,
	id string,
	patch domain.Patch,
) error {
	if err := s.repo.Update(ctx, table, id, m.ToRemote(patch)); err != nil {
		s.logger.Error("Failed to update record",
			zap.String("table", table),
			zap.String("id", id),
			zap.Error(err),
		)
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	return nil
}

// updateRecordOptimistic 先对本地集合打补丁，再发远端写（工单专用）
// 远端失败仅记录，不回滚乐观补丁：缓存先于远端，直到下次整体加载对齐
func updateRecordOptimistic[T domain.Record](
	ctx context.Context,
	s *SyncService,
	table string,
	m mapper.Mapper[T],
	col *store.Collection[T],
	id string,
	patch domain.Patch,
) error {
	col.Update(id, func(rec T) T {
		return domain.MergePatch(rec, patch)
	})

	if err := s.repo.Update(ctx, table, id, m.ToRemote(patch)); err != nil {
		s.logger.Error("Failed to update record after optimistic patch",
			zap.String("table", table),
			zap.String("id", id),
			zap.Error(err),
		)
	}
	return nil
}

// deleteRecord 远端删除；本地集合等待变更回传
func deleteRecord(ctx context.Context, s *SyncService, table string, id string) error {
	if err := s.repo.Delete(ctx, table, id); err != nil {
		s.logger.Error("Failed to delete record",
			zap.String("table", table),
			zap.String("id", id),
			zap.Error(err),
		)
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}

// deleteRecordOptimistic 先移除本地条目再发远端删除（工单专用）
// 远端失败仅记录，不恢复本地条目
func deleteRecordOptimistic[T domain.Record](
	ctx context.Context,
	s *SyncService,
	table string,
	col *store.Collection[T],
	id string,
) error {
	col.Remove(id)

	if err := s.repo.Delete(ctx, table, id); err != nil {
		s.logger.Error("Failed to delete record after optimistic removal",
			zap.String("table", table),
			zap.String("id", id),
			zap.Error(err),
		)
	}
	return nil
}

// clonePatch 复制patch，避免修改调用方的map
func clonePatch(patch domain.Patch) domain.Patch {
	out := make(domain.Patch, len(patch))
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// setDefault 仅在键缺失时设置默认值
func setDefault(patch domain.Patch, key string, value any) {
	if _, ok := patch[key]; !ok {
		patch[key] = value
	}
}
