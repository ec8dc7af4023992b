package handlers

import (
	"github.com/jmoiron/sqlx"

	"chatorder/internal/repos"
	"chatorder/internal/services"
)

type Deps struct {
	WebhookHandler *WebhookHandler
	ProductHandler *ProductHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	ledgerSvc := services.NewLedgerService(orderRepo)
	stockSvc := services.NewStockService(prodRepo)
	chatSvc := services.NewChatService(catalogSvc, ledgerSvc)

	return &Deps{
		WebhookHandler: &WebhookHandler{Chat: chatSvc},
		ProductHandler: &ProductHandler{Stock: stockSvc},
		AdminHandler:   &AdminHandler{Catalog: catalogSvc, Ledger: ledgerSvc, Stock: stockSvc},
	}
}
