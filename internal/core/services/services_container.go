package services

import (
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo),
		Journal: NewJournalService(
			repos.JournalRepo,
			repos.AccountRepo,
			WithBalancedEntries(cfg.RequireBalancedEntries),
		),
		Inventory:     NewInventoryService(repos.InventoryRepo),
		PurchaseOrder: NewPurchaseOrderService(repos.PurchaseOrderRepo, repos.InventoryRepo),
		Customer:      NewCustomerService(repos.CustomerRepo),
		POS:           NewPOSService(repos.POSRepo, repos.CustomerRepo, repos.InventoryRepo),
		Invoice:       NewInvoiceService(repos.InvoiceRepo, repos.InventoryRepo, repos.CustomerRepo),
		BankStatement: NewBankStatementService(repos.BankStatementRepo, repos.AccountRepo),
	}
}
