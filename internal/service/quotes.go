package service

import (
	"context"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// AddQuote 创建报价单（默认draft）
func (s *SyncService) AddQuote(ctx context.Context, quote domain.Patch) (domain.Quote, error) {
	rec := clonePatch(quote)
	setDefault(rec, "status", "draft")

	return createRecord(ctx, s, repository.TableQuotes, mapper.QuoteMapper{}, s.store.Quotes, rec)
}

// UpdateQuote 更新报价单
func (s *SyncService) UpdateQuote(ctx context.Context, id string, patch domain.Patch) error {
	return updateRecord(ctx, s, repository.TableQuotes, mapper.QuoteMapper{}, id, patch)
}

// DeleteQuote 删除报价单
func (s *SyncService) DeleteQuote(ctx context.Context, id string) error {
	return deleteRecord(ctx, s, repository.TableQuotes, id)
}
