package input

import (
	"context"

	"voiceskill/internal/domain"
)

type SkillUseCase interface {
	Handle(ctx context.Context, req domain.Request) (*domain.Response, error)
}
