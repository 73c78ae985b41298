package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fieldmarks/internal/dataset"
	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/alexanderramin/fieldmarks/internal/manifest"
	"github.com/alexanderramin/fieldmarks/internal/planner"
	"github.com/alexanderramin/fieldmarks/internal/prompt"
	"go.uber.org/zap"
)

type generateService struct {
	logger   *zap.Logger
	observer UseCaseObserver
}

func NewGenerateService(logger *zap.Logger, observers ...UseCaseObserver) GenerateService {
	return &generateService{
		logger:   loggerOrNop(logger),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *generateService) Plan(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	return s.plan(req)
}

func (s *generateService) Generate(ctx context.Context, req GenerateRequest) (result *GenerateResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"shape": req.Shape,
		"birds": len(req.Birds),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	result, err = s.plan(req)
	if err != nil {
		return nil, err
	}
	fields["manifest_id"] = result.Summary.ManifestID
	fields["assets"] = result.Summary.Counts.Total

	result.Paths, err = manifest.NewEmitter(req.OutDir).Emit(result.Summary, result.Assets)
	if err != nil {
		return nil, fmt.Errorf("emitting manifest: %w", err)
	}
	return result, nil
}

// plan runs every step up to, but not including, writing files.
func (s *generateService) plan(req GenerateRequest) (*GenerateResult, error) {
	shape := strings.TrimSpace(req.Shape)
	if shape == "" {
		return nil, fmt.Errorf("shape id is required")
	}
	queries := nonBlank(req.Birds)
	if len(queries) == 0 {
		return nil, ErrNoSubjects
	}

	ds, err := dataset.Load(req.DatasetPath)
	if err != nil {
		return nil, err
	}
	idx := dataset.BuildReferenceIndex(ds)

	subjects, err := dataset.ResolveSubjects(ds.Birds, queries)
	if err != nil {
		return nil, err
	}

	sel := planner.SelectAreas(idx, subjects, nonBlank(req.Areas))
	style := req.Style
	if style.ChromaKey() == "" {
		style = prompt.DefaultStyle()
	}
	assets := planner.PlanAssets(shape, sel.Known, idx, prompt.NewCompositer(style))

	birds := make([]string, len(subjects))
	for i, subj := range subjects {
		birds[i] = subj.CommonName
	}

	summary := domain.Summary{
		ManifestID:              manifest.ManifestID(shape, birds, assets),
		Shape:                   shape,
		ShapeClean:              domain.CleanForFilename(shape),
		Birds:                   birds,
		Areas:                   sel.Known,
		MissingAreas:            sel.Missing,
		DuplicateReferenceAreas: distinct(idx.Duplicates()),
		Counts:                  domain.CountAssets(assets),
	}

	result := &GenerateResult{
		Summary:    summary,
		Assets:     assets,
		Collisions: planner.DuplicateNames(assets),
	}
	s.warn(result)
	return result, nil
}

func (s *generateService) warn(r *GenerateResult) {
	for _, area := range r.Summary.MissingAreas {
		s.logger.Warn("area missing from reference data", zap.String("area", area))
	}
	for _, area := range r.Summary.DuplicateReferenceAreas {
		s.logger.Warn("reference area defined more than once; last definition used", zap.String("area", area))
	}
	if len(r.Collisions) > 0 {
		s.logger.Warn("asset names collide after normalization", zap.Strings("names", r.Collisions))
	}
}

func (s *generateService) ListBirds(ctx context.Context, datasetPath string) ([]string, error) {
	ds, err := dataset.Load(datasetPath)
	if err != nil {
		return nil, err
	}
	return dataset.CommonNames(ds.Birds), nil
}

// distinct drops repeats, keeping first-seen order. Empty input gives nil.
func distinct(values []string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
