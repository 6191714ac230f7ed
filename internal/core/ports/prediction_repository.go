package ports

import (
	"context"

	"github.com/proproperty/valuation-api/internal/core/domain"
)

// PredictionRepository persists the append-only valuation ledger.
// There are deliberately no update or delete operations.
type PredictionRepository interface {
	Record(ctx context.Context, p *domain.Prediction) error
	// List returns all ledger rows, most recent first. When username is
	// non-empty the result is scoped to that user's rows.
	List(ctx context.Context, username string) ([]domain.Prediction, error)
}
