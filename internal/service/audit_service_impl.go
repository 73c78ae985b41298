package service

import (
	"context"
	"time"

	"github.com/alexanderramin/fieldmarks/internal/audit"
	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/alexanderramin/fieldmarks/internal/manifest"
)

type auditService struct {
	observer UseCaseObserver
}

func NewAuditService(observers ...UseCaseObserver) AuditService {
	return &auditService{observer: useCaseObserverOrNoop(observers)}
}

func (s *auditService) Audit(ctx context.Context, manifestPath, assetsDir string) (result *AuditResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"manifest": manifestPath, "assets_dir": assetsDir}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "audit",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	doc, err := manifest.Read(manifestPath)
	if err != nil {
		return nil, err
	}
	report, err := audit.Run(assetsDir, doc.Descriptors())
	if err != nil {
		return nil, err
	}
	fields["present"] = report.Counts[domain.StatusPresent]
	fields["missing"] = report.Counts[domain.StatusMissing]
	fields["invalid"] = report.Counts[domain.StatusInvalid]

	return &AuditResult{Summary: doc.Summary, Report: report}, nil
}
