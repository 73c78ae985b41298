package service

import (
	"context"
	"time"

	"github.com/alexanderramin/fieldmarks/internal/dataset"
	"github.com/alexanderramin/fieldmarks/internal/diagnostic"
)

type diagnosticService struct {
	observer UseCaseObserver
}

func NewDiagnosticService(observers ...UseCaseObserver) DiagnosticService {
	return &diagnosticService{observer: useCaseObserverOrNoop(observers)}
}

func (s *diagnosticService) Overlaps(ctx context.Context, datasetPath, areaA, areaB string) (report *diagnostic.OverlapReport, err error) {
	startedAt := time.Now().UTC()
	if areaA == "" {
		areaA = diagnostic.DefaultAreaA
	}
	if areaB == "" {
		areaB = diagnostic.DefaultAreaB
	}
	fields := map[string]any{"area_a": areaA, "area_b": areaB}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "overlaps",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	ds, err := dataset.Load(datasetPath)
	if err != nil {
		return nil, err
	}
	r := diagnostic.FindOverlaps(dataset.BuildReferenceIndex(ds), ds.Birds, areaA, areaB)
	fields["subjects"] = len(r.Subjects)
	return &r, nil
}
