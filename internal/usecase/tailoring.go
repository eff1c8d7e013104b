package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

type WizardStep string

const (
	StepProduct      WizardStep = "product"
	StepFabric       WizardStep = "fabric"
	StepStyle        WizardStep = "style"
	StepMeasurements WizardStep = "measurements"
	StepReview       WizardStep = "review"
)

// wizardOrder is the fixed step sequence; a step is enterable only when
// every predecessor is complete.
var wizardOrder = []WizardStep{StepProduct, StepFabric, StepStyle, StepMeasurements, StepReview}

type MeasurementMode string

const (
	MeasurementCustom   MeasurementMode = "custom"
	MeasurementStandard MeasurementMode = "standard"
)

// TailoringSession holds the bespoke wizard's accumulated selections.
// The estimate is base price plus fabric modifier only; style and
// measurement choices never move the price.
type TailoringSession struct {
	Product      *domain.TailoringProduct
	Fabric       *domain.Fabric
	FabricColor  string
	Styles       map[string]string
	Mode         MeasurementMode
	StandardSize string
	Measurements map[domain.Dimension]float64
	ContactName  string
	ContactEmail string
	ContactPhone string
	DesignNotes  string
	Submitted    bool
}

func NewTailoringSession() *TailoringSession {
	return &TailoringSession{
		Styles:       map[string]string{},
		Mode:         MeasurementCustom,
		Measurements: map[domain.Dimension]float64{},
	}
}

func (s *TailoringSession) stepComplete(step WizardStep) bool {
	switch step {
	case StepProduct:
		return s.Product != nil
	case StepFabric:
		return s.Fabric != nil && s.FabricColor != ""
	case StepStyle:
		if s.Product == nil {
			return false
		}
		for _, axis := range s.Product.Axes {
			if s.Styles[axis.Name] == "" {
				return false
			}
		}
		return true
	case StepMeasurements:
		if s.Mode == MeasurementStandard {
			return s.StandardSize != ""
		}
		return len(s.Measurements) > 0
	case StepReview:
		return s.ContactName != "" && s.ContactEmail != "" && s.ContactPhone != ""
	}
	return false
}

// CanEnter reports whether navigation into step is permitted: all
// predecessor steps must be complete.
func (s *TailoringSession) CanEnter(step WizardStep) bool {
	for _, st := range wizardOrder {
		if st == step {
			return true
		}
		if !s.stepComplete(st) {
			return false
		}
	}
	return false
}

// SelectProduct resets style choices, which are product-scoped.
func (s *TailoringSession) SelectProduct(p domain.TailoringProduct) {
	s.Product = &p
	s.Styles = map[string]string{}
}

func (s *TailoringSession) SelectFabric(f domain.Fabric, color string) error {
	if !s.CanEnter(StepFabric) {
		return domain.ErrStepLocked
	}
	s.Fabric = &f
	s.FabricColor = color
	return nil
}

func (s *TailoringSession) SelectStyle(axis, option string) error {
	if !s.CanEnter(StepStyle) {
		return domain.ErrStepLocked
	}
	s.Styles[axis] = option
	return nil
}

// SetMeasurement records one custom field. Rejected while a standard
// preset holds the fields read-only.
func (s *TailoringSession) SetMeasurement(dim domain.Dimension, cm float64) error {
	if !s.CanEnter(StepMeasurements) {
		return domain.ErrStepLocked
	}
	if s.Mode == MeasurementStandard {
		return domain.ErrPresetReadOnly
	}
	s.Measurements[dim] = cm
	return nil
}

// ApplyPreset overwrites every measurement field atomically from the
// named standard size and locks them until custom is reselected.
func (s *TailoringSession) ApplyPreset(size string, presets []domain.StandardSizePreset) error {
	if !s.CanEnter(StepMeasurements) {
		return domain.ErrStepLocked
	}
	for _, p := range presets {
		if strings.EqualFold(p.Size, size) {
			vals := make(map[domain.Dimension]float64, len(p.Values))
			for dim, v := range p.Values {
				vals[dim] = v
			}
			s.Measurements = vals
			s.Mode = MeasurementStandard
			s.StandardSize = p.Size
			return nil
		}
	}
	return domain.ErrUnknownPreset
}

// SelectCustomMode unlocks the measurement fields for manual entry.
func (s *TailoringSession) SelectCustomMode() {
	s.Mode = MeasurementCustom
	s.StandardSize = ""
}

func (s *TailoringSession) SetContact(name, email, phone string) {
	s.ContactName = strings.TrimSpace(name)
	s.ContactEmail = strings.ToLower(strings.TrimSpace(email))
	s.ContactPhone = strings.TrimSpace(phone)
}

// Estimate folds the selections into the indicative price: product base
// plus fabric modifier. The final price is set later by staff.
func (s *TailoringSession) Estimate() int64 {
	var total int64
	if s.Product != nil {
		total += s.Product.BasePrice
	}
	if s.Fabric != nil {
		total += s.Fabric.Modifier
	}
	return total
}

// Submit hands the accumulated selection off as a new bespoke request.
// No payment happens here; staff finalize the price on their side.
func (s *TailoringSession) Submit() (*domain.CustomOrderRequest, error) {
	if !s.CanEnter(StepReview) || !s.stepComplete(StepReview) {
		return nil, domain.ErrStepLocked
	}
	sizeLabel := s.StandardSize
	if s.Mode == MeasurementCustom {
		sizeLabel = "custom"
	}
	req := &domain.CustomOrderRequest{
		ID:            uuid.New(),
		ContactName:   s.ContactName,
		ContactEmail:  s.ContactEmail,
		ContactPhone:  s.ContactPhone,
		Product:       s.Product.Name,
		Material:      s.Fabric.Name,
		Color:         s.FabricColor,
		Sizes:         []domain.SizeQuantity{{Size: sizeLabel, Qty: 1}},
		DesignNotes:   s.DesignNotes,
		Status:        domain.CustomStatusBaru,
		EstimatePrice: s.Estimate(),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	s.Submitted = true
	return req, nil
}

// TailoringUC serves wizard reference data and stores submitted requests.
type TailoringUC struct {
	Catalog  domain.TailoringCatalog
	Requests domain.CustomOrderRepo
	Notify   domain.Notifier
}

func (uc *TailoringUC) SubmitSession(ctx context.Context, s *TailoringSession) (*domain.CustomOrderRequest, error) {
	req, err := s.Submit()
	if err != nil {
		return nil, err
	}
	if err := uc.Requests.Save(ctx, req); err != nil {
		return nil, err
	}
	_ = uc.Notify.Notify(ctx, req.ContactEmail,
		"Permintaan custom tailoring kamu sudah kami terima. Estimasi harga: "+domain.FormatIDR(req.EstimatePrice))
	return req, nil
}
