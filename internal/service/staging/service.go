// Package staging promotes rows of the containers_stage import table into
// the catalog. Every row goes through the regular create path, so it is
// normalized, validated and audited like an interactive create.
package staging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

type stageReader interface {
	List(ctx context.Context) ([]domain.StagedContainer, error)
}

type containerCreator interface {
	CreateContainer(ctx context.Context, input domain.ContainerInput) (*domain.Container, error)
}

// Failure describes a staged row that could not be promoted.
type Failure struct {
	Row      int
	ItemCode string
	Err      error
}

// Report summarizes a promotion run.
type Report struct {
	Created  int
	Skipped  int
	Failures []Failure
}

// Failed returns the number of rows that could not be promoted.
func (r Report) Failed() int { return len(r.Failures) }

// Service promotes staged rows.
type Service struct {
	log     *slog.Logger
	stage   stageReader
	catalog containerCreator
}

// NewService creates a new staging promotion service.
func NewService(logger *slog.Logger, stage stageReader, catalog containerCreator) *Service {
	return &Service{
		log:     logger.With("service", "staging"),
		stage:   stage,
		catalog: catalog,
	}
}

// Promote creates a container for every staged row. Rows whose item code
// already exists are skipped. Invalid rows are collected as failures and
// do not stop the run. The caller's identity in ctx is the audited actor;
// a missing or insufficient role aborts the run on the first row, as does
// a store failure.
func (s *Service) Promote(ctx context.Context) (Report, error) {
	rows, err := s.stage.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list staged rows: %w", err)
	}

	var report Report
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		rowNum := i + 1
		code := ""
		if row.ItemCode != nil {
			code = *row.ItemCode
		}

		in, err := row.ToInput()
		if err == nil {
			_, err = s.catalog.CreateContainer(ctx, in)
		}

		switch {
		case err == nil:
			report.Created++
		case errors.Is(err, domain.ErrAlreadyExists):
			report.Skipped++
			s.log.DebugContext(ctx, "staged row already in catalog", slog.Int("row", rowNum), slog.String("item_code", code))
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden),
			errors.Is(err, domain.ErrPersistence),
			errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return report, err
		default:
			report.Failures = append(report.Failures, Failure{Row: rowNum, ItemCode: code, Err: err})
			s.log.WarnContext(ctx, "staged row not promoted",
				slog.Int("row", rowNum),
				slog.String("item_code", code),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "staging promotion finished",
		slog.Int("rows", len(rows)),
		slog.Int("created", report.Created),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed()),
	)
	return report, nil
}
