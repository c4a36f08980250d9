package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
)

// 发票付款期（签发后天数）
const invoiceDueDays = 10

// GenerateMonthlyInvoices 月度账单聚合
//
// 对每个active合同：收集该客户在目标月内完成且未开票的工单，
// 生成一条合同固定行加每工单一行的recurring发票，
// 成功后将消耗的工单批量标记为已开票并回写发票ID（工单走乐观路径）
//
// 单个合同的失败仅记录并跳过，循环继续（无全局回滚）；
// 标记工单失败不撤销已创建的发票，留待对账处理
func (s *SyncService) GenerateMonthlyInvoices(ctx context.Context, month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month: %d", month)
	}

	startOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Second)

	contracts := s.store.Contracts.List()

	generated := 0
	for _, contract := range contracts {
		if contract.Status != domain.ContractStatusActive {
			continue
		}

		// 每个合同重新读取工单快照：前一合同消耗的工单已被乐观标记，
		// 同一客户的后续合同不会重复计费
		consumed := collectBillableOrders(s.store.Orders.List(), contract.ClientID, startOfMonth, endOfMonth)

		// 合同固定行 + 每个消耗工单一行，均带来源回溯指针
		items := []domain.InvoiceItem{{
			ID:          uuid.NewString(),
			Description: fmt.Sprintf("%s (recurring %02d/%d)", contract.Title, month, year),
			Quantity:    1,
			UnitPrice:   contract.Value,
			TotalPrice:  contract.Value,
			SourceID:    contract.ID,
			SourceType:  domain.InvoiceSourceContract,
		}}
		subtotal := contract.Value

		for _, order := range consumed {
			description := order.ServiceType
			if description == "" {
				description = "Service order"
			}
			items = append(items, domain.InvoiceItem{
				ID:          uuid.NewString(),
				Description: description,
				Quantity:    1,
				UnitPrice:   order.Value,
				TotalPrice:  order.Value,
				SourceID:    order.ID,
				SourceType:  domain.InvoiceSourceOrder,
			})
			subtotal += order.Value
		}

		tax := subtotal * s.taxRate
		total := subtotal + tax

		issueDate := time.Now().UTC()
		invoice, err := createRecord(ctx, s, repository.TableInvoices, mapper.InvoiceMapper{}, s.store.Invoices, domain.Patch{
			"number":     invoiceNumber(year, month, contract.ClientID),
			"clientId":   contract.ClientID,
			"contractId": contract.ID,
			"issueDate":  issueDate.Format(time.RFC3339),
			"dueDate":    issueDate.AddDate(0, 0, invoiceDueDays).Format(time.RFC3339),
			"items":      items,
			"subtotal":   subtotal,
			"tax":        tax,
			"discount":   0.0,
			"total":      total,
			"status":     domain.InvoiceStatusPending,
			"type":       domain.InvoiceTypeRecurring,
		})
		if err != nil {
			s.logger.Error("Failed to create recurring invoice, skipping contract",
				zap.String("contract_id", contract.ID),
				zap.String("client_id", contract.ClientID),
				zap.Error(err),
			)
			continue
		}

		// invoiced=false -> true 只在这里发生，且每工单仅一次
		for _, order := range consumed {
			if err := s.UpdateOrder(ctx, order.ID, domain.Patch{
				"invoiced":  true,
				"invoiceId": invoice.ID,
			}); err != nil {
				s.logger.Error("Failed to mark order invoiced",
					zap.String("order_id", order.ID),
					zap.String("invoice_id", invoice.ID),
					zap.Error(err),
				)
			}
		}
		generated++
	}

	s.logger.Info("Monthly invoice generation finished",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("invoice_count", generated),
	)
	return nil
}

// collectBillableOrders 目标月内该客户完成且未开票的工单
func collectBillableOrders(orders []domain.Order, clientID string, start, end time.Time) []domain.Order {
	out := []domain.Order{}
	for _, order := range orders {
		if order.ClientID != clientID || order.Status != domain.OrderStatusCompleted || order.Invoiced {
			continue
		}
		completed, ok := parseDate(order.CompletedDate)
		if !ok || completed.Before(start) || completed.After(end) {
			continue
		}
		out = append(out, order)
	}
	return out
}

// invoiceNumber 年 + 补零月份 + 客户ID前缀
func invoiceNumber(year, month int, clientID string) string {
	prefix := clientID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("REC-%d%02d-%s", year, month, prefix)
}

// parseDate 宽容解析日期字段（RFC3339或纯日期）
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
