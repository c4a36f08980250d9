package service

import (
	"context"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// AddProductService 创建产品/服务条目（默认启用）
func (s *SyncService) AddProductService(ctx context.Context, item domain.Patch) (domain.ProductService, error) {
	rec := clonePatch(item)
	setDefault(rec, "active", true)

	return createRecord(ctx, s, repository.TableProductsServices, mapper.ProductServiceMapper{}, s.store.ProductsServices, rec)
}

// UpdateProductService 更新产品/服务条目
func (s *SyncService) UpdateProductService(ctx context.Context, id string, patch domain.Patch) error {
	return updateRecord(ctx, s, repository.TableProductsServices, mapper.ProductServiceMapper{}, id, patch)
}

// DeleteProductService 删除产品/服务条目
func (s *SyncService) DeleteProductService(ctx context.Context, id string) error {
	return deleteRecord(ctx, s, repository.TableProductsServices, id)
}
