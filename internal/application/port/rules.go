package port

import (
	"context"

	"github.com/bnema/chatdeck/internal/domain/entity"
)

// RuleSource supplies the unification rule table.
// Implementations return the table current at call time so that runtime
// overrides are seen by the next injection pass.
type RuleSource interface {
	Table(ctx context.Context) (entity.RuleTable, error)
}
