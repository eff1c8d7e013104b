package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

var tshirtChart = []domain.SizeChart{
	{
		ID: "sc001", Name: "T-Shirt Regular Fit", Category: domain.CategoryKaos, Style: "Regular Fit",
		Details: []domain.SizeDetail{
			{Size: "S", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimChestWidth, Range: domain.MeasurementRange{Min: 44, Max: 48}},
				{Dimension: domain.DimLength, Range: domain.MeasurementRange{Min: 64, Max: 68}},
				{Dimension: domain.DimSleeveLength, Range: domain.MeasurementRange{Min: 18, Max: 20}},
			}},
			{Size: "M", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimChestWidth, Range: domain.MeasurementRange{Min: 49, Max: 53}},
				{Dimension: domain.DimLength, Range: domain.MeasurementRange{Min: 69, Max: 73}},
				{Dimension: domain.DimSleeveLength, Range: domain.MeasurementRange{Min: 21, Max: 23}},
			}},
			{Size: "L", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimChestWidth, Range: domain.MeasurementRange{Min: 54, Max: 58}},
				{Dimension: domain.DimLength, Range: domain.MeasurementRange{Min: 74, Max: 77}},
				{Dimension: domain.DimSleeveLength, Range: domain.MeasurementRange{Min: 23.5, Max: 25}},
			}},
		},
	},
}

func TestRecommendSizeMatch(t *testing.T) {
	size, err := RecommendSize(map[domain.Dimension]float64{
		domain.DimChestWidth:   52,
		domain.DimLength:       72,
		domain.DimSleeveLength: 22,
	}, domain.CategoryKaos, "Regular Fit", tshirtChart)
	require.NoError(t, err)
	assert.Equal(t, "M", size)
}

func TestRecommendSizeBoundariesInclusive(t *testing.T) {
	size, err := RecommendSize(map[domain.Dimension]float64{
		domain.DimChestWidth:   49,
		domain.DimLength:       69,
		domain.DimSleeveLength: 21,
	}, domain.CategoryKaos, "Regular Fit", tshirtChart)
	require.NoError(t, err)
	assert.Equal(t, "M", size)

	size, err = RecommendSize(map[domain.Dimension]float64{
		domain.DimChestWidth:   53,
		domain.DimLength:       73,
		domain.DimSleeveLength: 23,
	}, domain.CategoryKaos, "Regular Fit", tshirtChart)
	require.NoError(t, err)
	assert.Equal(t, "M", size)
}

func TestRecommendSizeMissingDimensionAborts(t *testing.T) {
	// length is defined by the chart but absent from input; the scan must
	// stop at that dimension instead of skipping the size.
	_, err := RecommendSize(map[domain.Dimension]float64{
		domain.DimChestWidth:   52,
		domain.DimSleeveLength: 22,
	}, domain.CategoryKaos, "Regular Fit", tshirtChart)
	var missing *domain.MissingMeasurementError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.DimLength, missing.Dimension)
}

func TestRecommendSizeNoChart(t *testing.T) {
	_, err := RecommendSize(map[domain.Dimension]float64{
		domain.DimChestWidth: 52,
	}, domain.CategoryJas, "Modern Fit", tshirtChart)
	assert.ErrorIs(t, err, domain.ErrChartNotFound)
}

func TestRecommendSizeStyleMismatch(t *testing.T) {
	_, err := RecommendSize(map[domain.Dimension]float64{
		domain.DimChestWidth: 52,
	}, domain.CategoryKaos, "Oversized", tshirtChart)
	assert.ErrorIs(t, err, domain.ErrChartNotFound)
}

func TestRecommendSizeNoMatch(t *testing.T) {
	_, err := RecommendSize(map[domain.Dimension]float64{
		domain.DimChestWidth:   70,
		domain.DimLength:       90,
		domain.DimSleeveLength: 30,
	}, domain.CategoryKaos, "Regular Fit", tshirtChart)
	assert.ErrorIs(t, err, domain.ErrNoSizeMatch)
}

func TestRecommendSizeStraddlingSizes(t *testing.T) {
	// Chest fits M but length fits S: no size fully contains the input.
	_, err := RecommendSize(map[domain.Dimension]float64{
		domain.DimChestWidth:   52,
		domain.DimLength:       65,
		domain.DimSleeveLength: 22,
	}, domain.CategoryKaos, "Regular Fit", tshirtChart)
	assert.ErrorIs(t, err, domain.ErrNoSizeMatch)
}

func TestRecommendSizeFirstMatchWins(t *testing.T) {
	// Overlapping authored ranges: the earlier size takes it.
	charts := []domain.SizeChart{{
		ID: "x", Category: domain.CategoryKaos, Style: "Regular Fit",
		Details: []domain.SizeDetail{
			{Size: "S", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimChestWidth, Range: domain.MeasurementRange{Min: 44, Max: 50}},
			}},
			{Size: "M", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimChestWidth, Range: domain.MeasurementRange{Min: 49, Max: 53}},
			}},
		},
	}}
	size, err := RecommendSize(map[domain.Dimension]float64{domain.DimChestWidth: 49.5}, domain.CategoryKaos, "Regular Fit", charts)
	require.NoError(t, err)
	assert.Equal(t, "S", size)
}
