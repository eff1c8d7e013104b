package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

var (
	kemejaBespoke = domain.TailoringProduct{
		Name: "Kemeja", BasePrice: 1105000,
		Axes: []domain.StyleAxis{
			{Name: "Kerah", Options: []string{"Klasik", "Button Down"}},
			{Name: "Manset", Options: []string{"Satu Kancing", "Prancis"}},
		},
	}
	wolFabric   = domain.Fabric{Name: "Wol", Modifier: 800000, Colors: []string{"Abu", "Navy"}}
	katunFabric = domain.Fabric{Name: "Katun", Modifier: 0, Colors: []string{"Putih"}}
	presetM     = domain.StandardSizePreset{Size: "M", Values: map[domain.Dimension]float64{
		domain.DimChestWidth:   51,
		domain.DimLength:       71,
		domain.DimSleeveLength: 62,
	}}
)

func completedSession(t *testing.T) *TailoringSession {
	t.Helper()
	s := NewTailoringSession()
	s.SelectProduct(kemejaBespoke)
	require.NoError(t, s.SelectFabric(wolFabric, "Navy"))
	require.NoError(t, s.SelectStyle("Kerah", "Klasik"))
	require.NoError(t, s.SelectStyle("Manset", "Prancis"))
	require.NoError(t, s.SetMeasurement(domain.DimChestWidth, 52))
	s.SetContact("Budi", "budi@example.com", "081234567890")
	return s
}

func TestWizardStepGating(t *testing.T) {
	s := NewTailoringSession()
	assert.ErrorIs(t, s.SelectFabric(wolFabric, "Navy"), domain.ErrStepLocked)
	assert.ErrorIs(t, s.SelectStyle("Kerah", "Klasik"), domain.ErrStepLocked)
	assert.ErrorIs(t, s.SetMeasurement(domain.DimChestWidth, 52), domain.ErrStepLocked)

	s.SelectProduct(kemejaBespoke)
	assert.NoError(t, s.SelectFabric(wolFabric, "Navy"))
	// Style is incomplete until every axis has a choice, so the
	// measurement step stays locked.
	require.NoError(t, s.SelectStyle("Kerah", "Klasik"))
	assert.ErrorIs(t, s.SetMeasurement(domain.DimChestWidth, 52), domain.ErrStepLocked)
	require.NoError(t, s.SelectStyle("Manset", "Prancis"))
	assert.NoError(t, s.SetMeasurement(domain.DimChestWidth, 52))
}

func TestWizardEstimateBasePlusFabricOnly(t *testing.T) {
	s := completedSession(t)
	assert.Equal(t, int64(1905000), s.Estimate())

	// Style and measurement changes never move the price.
	require.NoError(t, s.SelectStyle("Kerah", "Button Down"))
	require.NoError(t, s.SetMeasurement(domain.DimLength, 75))
	assert.Equal(t, int64(1905000), s.Estimate())
}

func TestWizardEstimateFollowsFabricSwap(t *testing.T) {
	s := completedSession(t)
	require.NoError(t, s.SelectFabric(katunFabric, "Putih"))
	assert.Equal(t, int64(1105000), s.Estimate())
}

func TestWizardProductSwapResetsStyles(t *testing.T) {
	s := completedSession(t)
	s.SelectProduct(kemejaBespoke)
	assert.Empty(t, s.Styles)
}

func TestWizardPresetOverwritesAtomically(t *testing.T) {
	s := completedSession(t)
	require.NoError(t, s.SetMeasurement(domain.DimLength, 99))
	require.NoError(t, s.ApplyPreset("m", []domain.StandardSizePreset{presetM}))
	assert.Equal(t, MeasurementStandard, s.Mode)
	assert.Equal(t, "M", s.StandardSize)
	assert.Equal(t, presetM.Values, s.Measurements)
	// No leftover from the manual entries.
	assert.Len(t, s.Measurements, len(presetM.Values))
}

func TestWizardPresetLocksFields(t *testing.T) {
	s := completedSession(t)
	require.NoError(t, s.ApplyPreset("M", []domain.StandardSizePreset{presetM}))
	assert.ErrorIs(t, s.SetMeasurement(domain.DimChestWidth, 60), domain.ErrPresetReadOnly)

	s.SelectCustomMode()
	assert.NoError(t, s.SetMeasurement(domain.DimChestWidth, 60))
	assert.Empty(t, s.StandardSize)
}

func TestWizardUnknownPreset(t *testing.T) {
	s := completedSession(t)
	assert.ErrorIs(t, s.ApplyPreset("XXL", []domain.StandardSizePreset{presetM}), domain.ErrUnknownPreset)
}

func TestWizardSubmit(t *testing.T) {
	s := completedSession(t)
	req, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, domain.CustomStatusBaru, req.Status)
	assert.Equal(t, "Kemeja", req.Product)
	assert.Equal(t, "Wol", req.Material)
	assert.Equal(t, int64(1905000), req.EstimatePrice)
	assert.Equal(t, "budi@example.com", req.ContactEmail)
	assert.Equal(t, 1, req.TotalQuantity())
}

func TestWizardSubmitRequiresContact(t *testing.T) {
	s := completedSession(t)
	s.SetContact("", "", "")
	_, err := s.Submit()
	assert.ErrorIs(t, err, domain.ErrStepLocked)
}
