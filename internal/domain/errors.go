package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// Promo validation failures, surfaced verbatim to the customer.
var (
	ErrPromoNotFound      = errors.New("kode promo tidak ditemukan")
	ErrPromoInactive      = errors.New("kode promo sudah tidak aktif")
	ErrPromoExpired       = errors.New("kode promo sudah kedaluwarsa")
	ErrPromoNotApplicable = errors.New("kode promo tidak berlaku untuk produk di keranjang")
)

// Size recommendation failures.
var (
	ErrChartNotFound = errors.New("size chart tidak tersedia untuk kategori ini")
	ErrNoSizeMatch   = errors.New("tidak ada ukuran yang cocok, coba cek satu ukuran di atas atau di bawah")
)

// MissingMeasurementError aborts a size recommendation as soon as a chart
// dimension is absent from the user's input.
type MissingMeasurementError struct {
	Dimension Dimension
}

func (e *MissingMeasurementError) Error() string {
	return fmt.Sprintf("ukuran %s wajib diisi", e.Dimension)
}

// Order / custom-order state machine failures.
var (
	ErrInvalidTransition = errors.New("perubahan status tidak diizinkan")
	ErrOrderTerminal     = errors.New("pesanan sudah berada di status akhir")
	ErrTrackingRequired  = errors.New("nomor resi wajib diisi sebelum status Shipped")
	ErrInvalidFinalPrice = errors.New("harga final harus lebih besar dari nol")
	ErrInsufficientStock = errors.New("stok tidak mencukupi")
)

// Tailoring wizard failures.
var (
	ErrStepLocked     = errors.New("lengkapi langkah sebelumnya terlebih dahulu")
	ErrPresetReadOnly = errors.New("ukuran standar terkunci, pilih custom untuk mengubah")
	ErrUnknownPreset  = errors.New("ukuran standar tidak dikenal")
)
