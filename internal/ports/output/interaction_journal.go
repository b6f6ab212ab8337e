package output

import (
	"context"

	"voiceskill/internal/domain/entities"
)

type InteractionJournal interface {
	Record(ctx context.Context, interaction *entities.Interaction) error
	ListRecent(ctx context.Context, limit int) ([]entities.Interaction, error)
}
