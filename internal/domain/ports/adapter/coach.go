package adapter

import (
	"context"

	"coachpro-coaching/internal/domain/model"
)

// CoachMetaProvider resolves coach persona metadata. Implementations
// must return ErrNotFound for unknown coach IDs; absent specialty or
// personality fields are filled with model defaults by the caller.
type CoachMetaProvider interface {
	CoachMeta(ctx context.Context, coachID int64) (model.CoachMeta, error)
}
