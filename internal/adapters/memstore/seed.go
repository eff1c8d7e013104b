package memstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

// Seed fills the stores with the KZumi launch catalog. State is
// session-lifetime only, so seeding runs on every start.
func Seed(ctx context.Context, products *ProductRepo, discounts *DiscountRepo, promos *PromoRepo, charts *SizeChartRepo, users *UserRepo) error {
	now := time.Now()

	seedProducts := []domain.Product{
		{ID: 1, Name: "Kemeja Oxford Slim", Category: domain.CategoryKemeja, Style: "Slim Fit", BasePrice: 385000, Stock: 40, WeightGr: 300,
			Sizes:  []string{"S", "M", "L", "XL"},
			Colors: []domain.ColorOption{{Name: "Putih", Hex: "#ffffff"}, {Name: "Biru Muda", Hex: "#93c5fd"}},
			ShortDesc: "Kemeja oxford potongan slim untuk kerja dan acara semi formal", Material: "Katun Oxford", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Kaos Basic Heavyweight", Category: domain.CategoryKaos, Style: "Regular Fit", BasePrice: 145000, Stock: 120, WeightGr: 220,
			Sizes:  []string{"S", "M", "L", "XL"},
			Colors: []domain.ColorOption{{Name: "Hitam", Hex: "#111827"}, {Name: "Putih", Hex: "#ffffff"}, {Name: "Abu", Hex: "#64748b"}},
			ShortDesc: "Kaos katun 240gsm jahitan rantai", Material: "Katun Combed 24s", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: 3, Name: "Celana Chino Tapered", Category: domain.CategoryCelana, Style: "Tapered", BasePrice: 295000, Stock: 60, WeightGr: 450,
			Sizes:  []string{"28", "30", "32", "34", "36"},
			Colors: []domain.ColorOption{{Name: "Khaki", Hex: "#b8a47e"}, {Name: "Navy", Hex: "#1e3a5f"}},
			ShortDesc: "Chino stretch potongan tapered", Material: "Katun Twill", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: 4, Name: "Jaket Harrington", Category: domain.CategoryJaket, Style: "Classic", BasePrice: 525000, Stock: 25, WeightGr: 600,
			Sizes:  []string{"M", "L", "XL"},
			Colors: []domain.ColorOption{{Name: "Olive", Hex: "#556b2f"}, {Name: "Hitam", Hex: "#111827"}},
			ShortDesc: "Jaket harrington lining tartan", Material: "Polycotton", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: 5, Name: "Jas Single Breasted", Category: domain.CategoryJas, Style: "Modern Fit", BasePrice: 1450000, Stock: 12, WeightGr: 1100,
			Sizes:  []string{"M", "L", "XL"},
			Colors: []domain.ColorOption{{Name: "Charcoal", Hex: "#36454f"}},
			ShortDesc: "Jas formal konstruksi half canvas", Material: "Wol Blend", Collection: "Signature", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: 6, Name: "Paket Kerja Rapi", Category: domain.CategoryKemeja, Style: "Bundle", BasePrice: 650000, Stock: 15, WeightGr: 750,
			Bundle:    &domain.Bundle{ItemIDs: []int{1, 3}, Price: 650000},
			ShortDesc: "Kemeja Oxford Slim + Celana Chino Tapered", Active: true, CreatedAt: now, UpdatedAt: now},
	}
	for i := range seedProducts {
		if err := products.Save(ctx, &seedProducts[i]); err != nil {
			return err
		}
	}

	today := now.Format("2006-01-02")
	horizon := now.AddDate(0, 3, 0).Format("2006-01-02")
	seedDiscounts := []domain.DiscountRule{
		{ID: 1, Scope: domain.ScopeCategory, Target: string(domain.CategoryKaos), Kind: domain.DiscountPercentage, Value: 10, StartDate: today, EndDate: horizon, Active: true},
		{ID: 2, Scope: domain.ScopeProduct, Target: "5", Kind: domain.DiscountFixed, Value: 150000, StartDate: today, EndDate: horizon, Active: true},
	}
	for i := range seedDiscounts {
		if err := discounts.Save(ctx, &seedDiscounts[i]); err != nil {
			return err
		}
	}

	seedPromos := []domain.PromoCode{
		{ID: 1, Code: "KZUMI10", Scope: domain.ScopeAll, Kind: domain.DiscountPercentage, Value: 10, ExpiryDate: horizon, Active: true, Note: "promo peluncuran"},
		{ID: 2, Code: "HEMATKAOS", Scope: domain.ScopeCategory, Target: string(domain.CategoryKaos), Kind: domain.DiscountFixed, Value: 20000, ExpiryDate: horizon, Active: true},
	}
	for i := range seedPromos {
		if err := promos.Save(ctx, &seedPromos[i]); err != nil {
			return err
		}
	}

	for i := range seedCharts {
		if err := charts.Save(ctx, &seedCharts[i]); err != nil {
			return err
		}
	}

	admin := &domain.User{
		ID:        uuid.New(),
		Email:     "admin@kzumi.id",
		Name:      "KZumi Admin",
		Role:      domain.RoleSuperadmin,
		CreatedAt: now,
	}
	return users.Save(ctx, admin)
}

// seedCharts is authored smallest to largest; detail order is the match
// order.
var seedCharts = []domain.SizeChart{
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
			{Size: "XL", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimChestWidth, Range: domain.MeasurementRange{Min: 59, Max: 63}},
				{Dimension: domain.DimLength, Range: domain.MeasurementRange{Min: 78, Max: 81}},
				{Dimension: domain.DimSleeveLength, Range: domain.MeasurementRange{Min: 25.5, Max: 27}},
			}},
		},
	},
	{
		ID: "sc002", Name: "Kemeja Slim Fit", Category: domain.CategoryKemeja, Style: "Slim Fit",
		Details: []domain.SizeDetail{
			{Size: "S", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimChestWidth, Range: domain.MeasurementRange{Min: 46, Max: 49}},
				{Dimension: domain.DimShoulderWidth, Range: domain.MeasurementRange{Min: 41, Max: 43}},
				{Dimension: domain.DimLength, Range: domain.MeasurementRange{Min: 68, Max: 71}},
			}},
			{Size: "M", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimChestWidth, Range: domain.MeasurementRange{Min: 50, Max: 53}},
				{Dimension: domain.DimShoulderWidth, Range: domain.MeasurementRange{Min: 43.5, Max: 45.5}},
				{Dimension: domain.DimLength, Range: domain.MeasurementRange{Min: 72, Max: 75}},
			}},
			{Size: "L", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimChestWidth, Range: domain.MeasurementRange{Min: 54, Max: 57}},
				{Dimension: domain.DimShoulderWidth, Range: domain.MeasurementRange{Min: 46, Max: 48}},
				{Dimension: domain.DimLength, Range: domain.MeasurementRange{Min: 76, Max: 79}},
			}},
		},
	},
	{
		ID: "sc003", Name: "Celana Tapered", Category: domain.CategoryCelana, Style: "Tapered",
		Details: []domain.SizeDetail{
			{Size: "30", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimWaist, Range: domain.MeasurementRange{Min: 74, Max: 78}},
				{Dimension: domain.DimHip, Range: domain.MeasurementRange{Min: 92, Max: 96}},
				{Dimension: domain.DimThigh, Range: domain.MeasurementRange{Min: 56, Max: 59}},
				{Dimension: domain.DimInseam, Range: domain.MeasurementRange{Min: 74, Max: 78}},
			}},
			{Size: "32", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimWaist, Range: domain.MeasurementRange{Min: 79, Max: 83}},
				{Dimension: domain.DimHip, Range: domain.MeasurementRange{Min: 97, Max: 101}},
				{Dimension: domain.DimThigh, Range: domain.MeasurementRange{Min: 59.5, Max: 62.5}},
				{Dimension: domain.DimInseam, Range: domain.MeasurementRange{Min: 74, Max: 79}},
			}},
			{Size: "34", Ranges: []domain.DimensionRange{
				{Dimension: domain.DimWaist, Range: domain.MeasurementRange{Min: 84, Max: 88}},
				{Dimension: domain.DimHip, Range: domain.MeasurementRange{Min: 102, Max: 106}},
				{Dimension: domain.DimThigh, Range: domain.MeasurementRange{Min: 63, Max: 66}},
				{Dimension: domain.DimInseam, Range: domain.MeasurementRange{Min: 75, Max: 80}},
			}},
		},
	},
}

// TailoringSeed is the bespoke workshop's fixed offering.
func TailoringSeed() ([]domain.TailoringProduct, []domain.Fabric, []domain.StandardSizePreset) {
	products := []domain.TailoringProduct{
		{Name: "Kemeja", BasePrice: 1105000, Axes: []domain.StyleAxis{
			{Name: "Kerah", Options: []string{"Klasik", "Cutaway", "Band"}},
			{Name: "Manset", Options: []string{"Kancing Tunggal", "Kancing Ganda", "French"}},
		}},
		{Name: "Celana", BasePrice: 985000, Axes: []domain.StyleAxis{
			{Name: "Pinggang", Options: []string{"Flat Front", "Single Pleat", "Double Pleat"}},
			{Name: "Ujung", Options: []string{"Polos", "Cuff"}},
		}},
		{Name: "Jas", BasePrice: 3250000, Axes: []domain.StyleAxis{
			{Name: "Lapel", Options: []string{"Notch", "Peak", "Shawl"}},
			{Name: "Kancing", Options: []string{"Single Breasted", "Double Breasted"}},
			{Name: "Belahan", Options: []string{"Tunggal", "Ganda", "Tanpa"}},
		}},
	}
	fabrics := []domain.Fabric{
		{Name: "Katun", Modifier: 0, Colors: []string{"Putih", "Biru Muda", "Hitam"}},
		{Name: "Linen", Modifier: 350000, Colors: []string{"Natural", "Putih", "Sage"}},
		{Name: "Wol", Modifier: 800000, Colors: []string{"Charcoal", "Navy", "Abu"}},
		{Name: "Sutra", Modifier: 1250000, Colors: []string{"Ivory", "Champagne"}},
	}
	presets := []domain.StandardSizePreset{
		{Size: "S", Values: map[domain.Dimension]float64{
			domain.DimChestWidth: 46, domain.DimWaist: 76, domain.DimHip: 92, domain.DimShoulderWidth: 42,
			domain.DimSleeveLength: 58, domain.DimLength: 68, domain.DimThigh: 56, domain.DimInseam: 75,
		}},
		{Size: "M", Values: map[domain.Dimension]float64{
			domain.DimChestWidth: 50, domain.DimWaist: 81, domain.DimHip: 97, domain.DimShoulderWidth: 44,
			domain.DimSleeveLength: 60, domain.DimLength: 71, domain.DimThigh: 60, domain.DimInseam: 77,
		}},
		{Size: "L", Values: map[domain.Dimension]float64{
			domain.DimChestWidth: 54, domain.DimWaist: 86, domain.DimHip: 102, domain.DimShoulderWidth: 46,
			domain.DimSleeveLength: 62, domain.DimLength: 74, domain.DimThigh: 64, domain.DimInseam: 79,
		}},
		{Size: "XL", Values: map[domain.Dimension]float64{
			domain.DimChestWidth: 58, domain.DimWaist: 91, domain.DimHip: 107, domain.DimShoulderWidth: 48,
			domain.DimSleeveLength: 64, domain.DimLength: 77, domain.DimThigh: 68, domain.DimInseam: 81,
		}},
	}
	return products, fabrics, presets
}
