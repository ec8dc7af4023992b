package services

import (
	"errors"

	"chatorder/internal/chat"
	"chatorder/internal/domain"
)

// ChatService runs the full message flow: interpret the utterance,
// resolve the product, touch the ledger, render the reply text.
type ChatService struct {
	Catalog *CatalogService
	Ledger  *LedgerService
}

func NewChatService(catalog *CatalogService, ledger *LedgerService) *ChatService {
	return &ChatService{Catalog: catalog, Ledger: ledger}
}

// Handle maps one utterance to one reply. Unparseable or unmatched
// input becomes guidance text with no state change; only storage
// failures surface as errors.
func (s *ChatService) Handle(text string) (string, error) {
	switch cmd := chat.Interpret(text).(type) {
	case chat.Lookup:
		lines, err := s.Ledger.ListRecent(cmd.Phone4)
		if err != nil {
			return "", err
		}
		return chat.ReplySummary(cmd.Phone4, lines), nil

	case chat.Order:
		p, err := s.Catalog.Match(cmd.Product)
		if errors.Is(err, domain.ErrProductNotFound) {
			return chat.ReplyProductNotFound(), nil
		}
		if err != nil {
			return "", err
		}
		if _, err := s.Ledger.Record(cmd.Phone4, p, cmd.Quantity); err != nil {
			return "", err
		}
		return chat.ReplyConfirmation(cmd.Phone4, p.Name, cmd.Quantity, p.Price), nil

	default:
		return chat.ReplyHelp(), nil
	}
}
