package input

import (
	"context"

	"catalogrenamer/internal/domain/entities"
)

type RenameUseCase interface {
	Run(ctx context.Context) (*entities.Report, error)
}
