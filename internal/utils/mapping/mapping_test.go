package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/models"
	"github.com/SscSPs/erp_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountMapping_PreservesBalanceAndAudit(t *testing.T) {
	now := time.Now().UTC()
	acc := domain.Account{
		AccountID:   "acc-1",
		Code:        "1001",
		Name:        "Cash",
		AccountType: domain.Asset,
		Balance:     decimal.RequireFromString("12.34"),
		AuditFields: domain.NewAuditFields(now, "user-1"),
	}

	m := mapping.ToModelAccount(acc)
	assert.Equal(t, "ASSET", m.AccountType)
	assert.Equal(t, "user-1", m.CreatedBy)
	assert.Equal(t, acc, mapping.ToDomainAccount(m))
}

func TestJournalEntryLineSlice(t *testing.T) {
	lines := mapping.ToDomainJournalEntryLineSlice([]models.JournalEntryLine{
		{LineID: "l1", LineNumber: 1, AccountID: "a", Debit: decimal.NewFromInt(5), Credit: decimal.Zero},
		{LineID: "l2", LineNumber: 2, AccountID: "b", Debit: decimal.Zero, Credit: decimal.NewFromInt(5)},
	})

	assert.Len(t, lines, 2)
	assert.Equal(t, "5", lines[0].Delta().String())
	assert.Equal(t, "-5", lines[1].Delta().String())
}

func TestAuditFieldsNormaliseToUTC(t *testing.T) {
	local := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	d := mapping.ToDomainAuditFields(models.AuditFields{CreatedAt: local, LastUpdatedAt: local, CreatedBy: "u"})

	assert.Equal(t, time.UTC, d.CreatedAt.Location())
	assert.True(t, d.CreatedAt.Equal(local))
}

func TestPurchaseOrderRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	order := domain.PurchaseOrder{
		PurchaseOrderID: "po-1",
		SupplierID:      "sup-1",
		OrderDate:       now,
		Status:          domain.POReceived,
		TotalAmount:     decimal.RequireFromString("25.50"),
		ReceivedAt:      &now,
		AuditFields:     domain.NewAuditFields(now, "user-1"),
	}
	item := domain.PurchaseOrderItem{
		ItemID: "item-1", PurchaseOrderID: "po-1", LineNumber: 1, ProductID: "p-1",
		Quantity: 3, UnitPrice: decimal.RequireFromString("8.50"),
	}

	m := mapping.ToModelPurchaseOrder(order)
	assert.Equal(t, "RECEIVED", m.Status)
	assert.Equal(t, "user-1", m.LastUpdatedBy)
	assert.Equal(t, order, mapping.ToDomainPurchaseOrder(m))
	assert.Equal(t, item, mapping.ToDomainPurchaseOrderItem(mapping.ToModelPurchaseOrderItem(item)))
}
