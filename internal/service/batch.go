package service

import (
	"github.com/rs/zerolog"

	"github.com/Brainhub24/netcider/internal/domain"
)

// BatchService parses and renders a sequence of CIDR inputs. A failure on
// one input is reported per item; the rest of the batch still runs.
type BatchService struct {
	logger    zerolog.Logger
	renderer  *RenderService
	showRange bool
}

// NewBatchService creates a new batch service
func NewBatchService(logger zerolog.Logger, renderer *RenderService, showRange bool) *BatchService {
	return &BatchService{
		logger:    logger,
		renderer:  renderer,
		showRange: showRange,
	}
}

// Run processes inputs in order and returns a report with one result per
// input.
func (s *BatchService) Run(inputs []string) *domain.Report {
	report := domain.NewReport()

	for _, input := range inputs {
		sub, err := domain.ParseSubnet(input)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("input", input).
				Msg("Skipping unparseable subnet")
			report.Add(domain.Result{Input: input, Err: err})
			continue
		}

		s.renderer.Table(sub)

		if s.showRange {
			if err := s.renderer.Range(sub); err != nil {
				s.logger.Error().
					Err(err).
					Str("input", input).
					Msg("Failed to write address range")
				report.Add(domain.Result{Input: input, Subnet: sub, Err: err})
				continue
			}
		}

		report.Add(domain.Result{Input: input, Subnet: sub})
	}

	s.logger.Debug().
		Int("ok", report.OKCount()).
		Int("failed", report.FailCount()).
		Int("total", report.TotalCount()).
		Msg("Batch finished")

	return report
}
