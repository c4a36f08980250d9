package service

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// LoadAll 批量加载：每个实体表一个并发读取，全部同时发起
// 每个表的快照在各自读取完成时独立安装；单表失败仅记录，
// 该集合保持为空直到下次进程启动（无重试，整体重载是恢复路径）
func (s *SyncService) LoadAll(ctx context.Context) {
	bindings := s.bindings()

	var wg sync.WaitGroup
	for _, b := range bindings {
		b := b
		wg.Add(1)
		go func() {
			defer wg.Done()

			rows, err := s.repo.SelectAll(ctx, b.Table())
			if err != nil {
				s.logger.Error("Failed to load table snapshot",
					zap.String("table", b.Table()),
					zap.Error(err),
				)
				return
			}

			b.InstallSnapshot(rows)
			s.logger.Info("Loaded table snapshot",
				zap.String("table", b.Table()),
				zap.Int("row_count", len(rows)),
			)
		}()
	}
	wg.Wait()
}
