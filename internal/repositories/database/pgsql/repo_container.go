package pgsql

import (
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	inventoryRepo := newPgxInventoryRepository(dbPool)
	purchaseOrderRepo := newPgxPurchaseOrderRepository(dbPool, inventoryRepo)
	customerRepo := newPgxCustomerRepository(dbPool)
	posRepo := newPgxPOSRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	bankStatementRepo := newPgxBankStatementRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:       accountRepo,
		JournalRepo:       journalRepo,
		InventoryRepo:     inventoryRepo,
		PurchaseOrderRepo: purchaseOrderRepo,
		CustomerRepo:      customerRepo,
		POSRepo:           posRepo,
		InvoiceRepo:       invoiceRepo,
		BankStatementRepo: bankStatementRepo,
	}
}
