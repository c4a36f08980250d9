package service

import (
	"context"
	"time"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// AddInvoice 创建发票（默认pending）
func (s *SyncService) AddInvoice(ctx context.Context, invoice domain.Patch) (domain.Invoice, error) {
	rec := clonePatch(invoice)
	setDefault(rec, "status", domain.InvoiceStatusPending)

	return createRecord(ctx, s, repository.TableInvoices, mapper.InvoiceMapper{}, s.store.Invoices, rec)
}

// UpdateInvoice 更新发票
func (s *SyncService) UpdateInvoice(ctx context.Context, id string, patch domain.Patch) error {
	return updateRecord(ctx, s, repository.TableInvoices, mapper.InvoiceMapper{}, id, patch)
}

// DeleteInvoice 删除发票
func (s *SyncService) DeleteInvoice(ctx context.Context, id string) error {
	return deleteRecord(ctx, s, repository.TableInvoices, id)
}

// MarkInvoicePaid 标记发票已支付
func (s *SyncService) MarkInvoicePaid(ctx context.Context, id string, paymentMethod string) error {
	return s.UpdateInvoice(ctx, id, domain.Patch{
		"status":        domain.InvoiceStatusPaid,
		"paymentDate":   time.Now().UTC().Format(time.RFC3339),
		"paymentMethod": paymentMethod,
	})
}
