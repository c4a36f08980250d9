package mapper

import "fieldops-sync/internal/domain"

// InvoiceMapper invoices 表字段映射
// clientName 仅来自读取时连接，写回时剥离
type InvoiceMapper struct{}

var invoiceRename = map[string]string{
	"clientId":      "client_id",
	"issueDate":     "issue_date",
	"dueDate":       "due_date",
	"paymentDate":   "payment_date",
	"paymentMethod": "payment_method",
	"contractId":    "contract_id",
	"quoteId":       "quote_id",
	"orderId":       "order_id",
}

var invoiceDerived = map[string]bool{
	"clientName": true,
}

func (InvoiceMapper) ToDomain(row map[string]any) domain.Invoice {
	return domain.Invoice{
		ID:            getString(row, "id"),
		Number:        getString(row, "number"),
		ClientID:      getString(row, "client_id"),
		ClientName:    getString(row, "client_name"),
		IssueDate:     getString(row, "issue_date"),
		DueDate:       getString(row, "due_date"),
		Items:         getItems[domain.InvoiceItem](row, "items"),
		Subtotal:      getFloat(row, "subtotal"),
		Tax:           getFloat(row, "tax"),
		Discount:      getFloat(row, "discount"),
		Total:         getFloat(row, "total"),
		Status:        getString(row, "status"),
		Type:          getString(row, "type"),
		PaymentDate:   getString(row, "payment_date"),
		PaymentMethod: getString(row, "payment_method"),
		Observations:  getString(row, "observations"),
		ContractID:    getString(row, "contract_id"),
		QuoteID:       getString(row, "quote_id"),
		OrderID:       getString(row, "order_id"),
		CreatedAt:     getString(row, "created_at"),
		UpdatedAt:     getString(row, "updated_at"),
	}
}

func (InvoiceMapper) ToRemote(patch domain.Patch) map[string]any {
	return translate(patch, invoiceRename, withDBManaged(invoiceDerived))
}
