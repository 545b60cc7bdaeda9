package application

import (
	"context"
	"fmt"

	"catalogrenamer/internal/domain"
	"catalogrenamer/internal/domain/entities"
	"catalogrenamer/internal/ports/input"
	"catalogrenamer/internal/ports/output"
)

var _ input.RenameUseCase = (*RenameService)(nil)

// RenameService moves script translation catalogs to the filenames WordPress
// expects for their block editor script.
type RenameService struct {
	store  output.CatalogStore
	naming domain.Naming
}

func NewRenameService(store output.CatalogStore, naming domain.Naming) *RenameService {
	return &RenameService{
		store:  store,
		naming: naming,
	}
}

// Run processes every catalog once. Files whose source cannot be mapped are
// skipped. The first I/O failure stops the run; the report then covers the
// files handled so far. Two catalogs mapping to the same target overwrite
// each other, the last one processed wins.
func (s *RenameService) Run(ctx context.Context) (*entities.Report, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}

	report := &entities.Report{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		outcome, err := s.process(ctx, name)
		if err != nil {
			return report, err
		}
		report.Add(outcome)
	}
	return report, nil
}

func (s *RenameService) process(ctx context.Context, name string) (entities.Outcome, error) {
	outcome := entities.Outcome{File: name}

	source, err := s.store.ReadSource(ctx, name)
	if err == nil {
		outcome.Target, err = s.naming.Target(source)
	}
	if err != nil {
		code := domain.Code(err)
		if code == "" {
			return outcome, fmt.Errorf("read catalog %s: %w", name, err)
		}
		outcome.Status = entities.Status(code)
		return outcome, nil
	}

	if outcome.Target == name {
		outcome.Status = entities.StatusAlreadyNamed
		return outcome, nil
	}
	if err := s.store.Rename(ctx, name, outcome.Target); err != nil {
		return outcome, fmt.Errorf("rename catalog %s: %w", name, err)
	}
	outcome.Status = entities.StatusRenamed
	return outcome, nil
}
