package usecase

import (
	"context"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

// RecommendSize matches partial user measurements against the chart for
// (category, style). Sizes are scanned in authored order and the first
// full match wins. A dimension the chart defines but the user did not
// supply aborts the whole recommendation immediately; candidate sizes are
// never skipped on missing input.
func RecommendSize(measurements map[domain.Dimension]float64, category domain.Category, style string, charts []domain.SizeChart) (string, error) {
	var chart *domain.SizeChart
	for i := range charts {
		if charts[i].Category == category && charts[i].Style == style {
			chart = &charts[i]
			break
		}
	}
	if chart == nil {
		return "", domain.ErrChartNotFound
	}
	for _, detail := range chart.Details {
		matched := true
		checked := 0
		for _, dr := range detail.Ranges {
			v, ok := measurements[dr.Dimension]
			if !ok {
				return "", &domain.MissingMeasurementError{Dimension: dr.Dimension}
			}
			checked++
			if !dr.Range.Contains(v) {
				matched = false
			}
		}
		if matched && checked > 0 {
			return detail.Size, nil
		}
	}
	return "", domain.ErrNoSizeMatch
}

type SizingUC struct {
	Charts domain.SizeChartRepo
}

func (uc *SizingUC) Recommend(ctx context.Context, measurements map[domain.Dimension]float64, category domain.Category, style string) (string, error) {
	charts, err := uc.Charts.List(ctx)
	if err != nil {
		return "", err
	}
	return RecommendSize(measurements, category, style, charts)
}
