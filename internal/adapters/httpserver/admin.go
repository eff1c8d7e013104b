package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
	"github.com/rizqydermawanai-png/kzumi-store/internal/usecase"
)

func (s *Server) adminProducts(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	switch r.Method {
	case http.MethodGet:
		list, total, err := s.catalog.List(r.Context(), domain.ProductFilter{Page: 1, PageSize: 500})
		if err != nil {
			writeErr(w, 500, err)
			return
		}
		writeJSON(w, 200, map[string]any{"products": list, "total": total})
	case http.MethodPost:
		var p domain.Product
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&p); err != nil {
			writeErr(w, 400, err)
			return
		}
		if err := s.catalog.Save(r.Context(), &p); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 201, map[string]any{"product": p})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) adminProductByID(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/admin/products/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, err := s.catalog.Get(r.Context(), id)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"product": p})
	case http.MethodPut:
		var p domain.Product
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&p); err != nil {
			writeErr(w, 400, err)
			return
		}
		p.ID = id
		if err := s.catalog.Save(r.Context(), &p); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"product": p})
	case http.MethodDelete:
		if err := s.catalog.Delete(r.Context(), id); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]string{"status": "deleted"})
	default:
		http.Error(w, "method", 405)
	}
}

type discountRequest struct {
	Scope     string  `json:"scope" validate:"required,oneof=all category product"`
	Target    string  `json:"target"`
	Kind      string  `json:"kind" validate:"required,oneof=percentage fixed"`
	Value     float64 `json:"value" validate:"gt=0"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Active    bool    `json:"active"`
}

func (s *Server) adminDiscounts(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	switch r.Method {
	case http.MethodGet:
		list, err := s.discounts.List(r.Context())
		if err != nil {
			writeErr(w, 500, err)
			return
		}
		writeJSON(w, 200, map[string]any{"discounts": list})
	case http.MethodPost:
		var req discountRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeErr(w, 400, err)
			return
		}
		if req.EndDate < req.StartDate {
			writeErr(w, 400, errors.New("tanggal berakhir sebelum tanggal mulai"))
			return
		}
		d := domain.DiscountRule{
			Scope:     domain.DiscountScope(req.Scope),
			Target:    req.Target,
			Kind:      domain.DiscountKind(req.Kind),
			Value:     req.Value,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Active:    req.Active,
		}
		if err := s.discounts.Save(r.Context(), &d); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 201, map[string]any{"discount": d})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) adminDiscountByID(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/admin/discounts/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var d domain.DiscountRule
		if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&d); err != nil {
			writeErr(w, 400, err)
			return
		}
		d.ID = id
		if err := s.discounts.Save(r.Context(), &d); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"discount": d})
	case http.MethodDelete:
		if err := s.discounts.Delete(r.Context(), id); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]string{"status": "deleted"})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) adminPromos(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	switch r.Method {
	case http.MethodGet:
		list, err := s.promoRepo.List(r.Context())
		if err != nil {
			writeErr(w, 500, err)
			return
		}
		writeJSON(w, 200, map[string]any{"promos": list})
	case http.MethodPost:
		var p domain.PromoCode
		if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&p); err != nil {
			writeErr(w, 400, err)
			return
		}
		if strings.TrimSpace(p.Code) == "" {
			writeErr(w, 400, errors.New("kode wajib diisi"))
			return
		}
		p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
		if err := s.promoRepo.Save(r.Context(), &p); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 201, map[string]any{"promo": p})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) adminPromoByID(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/admin/promos/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var p domain.PromoCode
		if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&p); err != nil {
			writeErr(w, 400, err)
			return
		}
		p.ID = id
		p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
		if err := s.promoRepo.Save(r.Context(), &p); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"promo": p})
	case http.MethodDelete:
		if err := s.promoRepo.Delete(r.Context(), id); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]string{"status": "deleted"})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) adminSizeCharts(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	switch r.Method {
	case http.MethodGet:
		list, err := s.charts.List(r.Context())
		if err != nil {
			writeErr(w, 500, err)
			return
		}
		writeJSON(w, 200, map[string]any{"charts": list})
	case http.MethodPost:
		var c domain.SizeChart
		if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&c); err != nil {
			writeErr(w, 400, err)
			return
		}
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		if err := s.charts.Save(r.Context(), &c); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 201, map[string]any{"chart": c})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) adminSizeChartByID(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/admin/size-charts/")
	switch r.Method {
	case http.MethodPut:
		var c domain.SizeChart
		if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&c); err != nil {
			writeErr(w, 400, err)
			return
		}
		c.ID = id
		if err := s.charts.Save(r.Context(), &c); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"chart": c})
	case http.MethodDelete:
		if err := s.charts.Delete(r.Context(), id); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]string{"status": "deleted"})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) adminOrders(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	list, err := s.orderRepo.List(r.Context())
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	if st := r.URL.Query().Get("status"); st != "" {
		filtered := list[:0]
		for _, o := range list {
			if string(o.Status) == st {
				filtered = append(filtered, o)
			}
		}
		list = filtered
	}
	if ty := r.URL.Query().Get("type"); ty != "" {
		filtered := list[:0]
		for _, o := range list {
			if string(o.Type) == ty {
				filtered = append(filtered, o)
			}
		}
		list = filtered
	}
	writeJSON(w, 200, map[string]any{"orders": list})
}

// adminOrderAction routes /admin/orders/{id} and its transition
// sub-resource. A transition body names the target status; tracking number
// travels with it for the shipping step.
func (s *Server) adminOrderAction(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/admin/orders/")
	parts := strings.SplitN(rest, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if len(parts) == 2 && parts[1] == "transition" && r.Method == http.MethodPost {
		var req struct {
			Status         string `json:"status"`
			TrackingNumber string `json:"tracking_number"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		o, err := s.orders.Transition(r.Context(), id, domain.OrderStatus(req.Status), usecase.TransitionInput{TrackingNumber: req.TrackingNumber})
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"order": o})
		return
	}
	if r.Method == http.MethodGet {
		o, err := s.orderRepo.FindByID(r.Context(), id)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"order": o})
		return
	}
	http.Error(w, "method", 405)
}

func (s *Server) adminCustomOrders(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	list, err := s.customRepo.List(r.Context())
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	writeJSON(w, 200, map[string]any{"requests": list})
}

// adminCustomOrderAction serves the bespoke request sub-resources:
// advance (status), finalize (price quote) and payment (stage recording).
func (s *Server) adminCustomOrderAction(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/admin/custom-orders/")
	parts := strings.SplitN(rest, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if len(parts) != 2 || r.Method != http.MethodPost {
		if r.Method == http.MethodGet {
			req, err := s.customRepo.FindByID(r.Context(), id)
			if err != nil {
				writeErr(w, userErrCode(err), err)
				return
			}
			writeJSON(w, 200, map[string]any{"request": req})
			return
		}
		http.Error(w, "method", 405)
		return
	}
	switch parts[1] {
	case "advance":
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 1024)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		out, err := s.customs.Advance(r.Context(), id, domain.CustomOrderStatus(req.Status))
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"request": out})
	case "finalize":
		var req struct {
			FinalPrice int64 `json:"final_price"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 1024)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		out, err := s.customs.Finalize(r.Context(), id, req.FinalPrice)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"request": out})
	case "payment":
		var req struct {
			Stage string `json:"stage"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 1024)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		out, err := s.customs.RecordPayment(r.Context(), id, domain.PaymentStage(req.Stage))
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"request": out})
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) adminWarranty(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	list, err := s.claimRepo.List(r.Context())
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	writeJSON(w, 200, map[string]any{"claims": list})
}

func (s *Server) adminWarrantyAction(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/admin/warranty/")
	parts := strings.SplitN(rest, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if len(parts) == 2 && parts[1] == "review" && r.Method == http.MethodPost {
		var req struct {
			Status string `json:"status"`
			Notes  string `json:"notes"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 8192)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		claim, err := s.warranty.Review(r.Context(), id, domain.WarrantyStatus(req.Status), req.Notes)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"claim": claim})
		return
	}
	if r.Method == http.MethodGet {
		claim, err := s.claimRepo.FindByID(r.Context(), id)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"claim": claim})
		return
	}
	http.Error(w, "method", 405)
}

// adminExportOrders streams the order book as an XLSX workbook.
func (s *Server) adminExportOrders(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	list, err := s.orderRepo.List(r.Context())
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Pesanan"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"ID", "Tipe", "Status", "Nama", "Email", "Subtotal", "Ongkir", "Total", "Kurir", "Resi", "Dibuat"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, o := range list {
		values := []any{
			o.ID.String(), string(o.Type), string(o.Status), o.CustomerName, o.CustomerEmail,
			o.Subtotal, o.ShippingCost, o.Total, o.Courier, o.TrackingNumber,
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="pesanan-%s.xlsx"`, time.Now().Format("20060102")))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("tulis xlsx")
	}
}

func (s *Server) adminAIProductCopy(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if s.writer == nil {
		writeErr(w, 503, errors.New("AI tidak dikonfigurasi"))
		return
	}
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Material string `json:"material"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&req); err != nil {
		writeErr(w, 400, err)
		return
	}
	copyOut, err := s.writer.ProductCopy(r.Context(), req.Name, req.Category, req.Material)
	if err != nil {
		writeErr(w, 502, err)
		return
	}
	writeJSON(w, 200, map[string]any{"copy": copyOut})
}

func (s *Server) adminAIBundle(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if s.writer == nil {
		writeErr(w, 503, errors.New("AI tidak dikonfigurasi"))
		return
	}
	var req struct {
		ProductIDs []int `json:"product_ids"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&req); err != nil {
		writeErr(w, 400, err)
		return
	}
	var names []string
	var total int64
	for _, id := range req.ProductIDs {
		p, err := s.catalog.Get(r.Context(), id)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		names = append(names, p.Name)
		total += p.BasePrice
	}
	sug, err := s.writer.SuggestBundle(r.Context(), names, total)
	if err != nil {
		writeErr(w, 502, err)
		return
	}
	writeJSON(w, 200, map[string]any{"suggestion": sug})
}

func (s *Server) adminAIRejection(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if s.writer == nil {
		writeErr(w, 503, errors.New("AI tidak dikonfigurasi"))
		return
	}
	var req struct {
		ProductName string `json:"product_name"`
		Reason      string `json:"reason"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&req); err != nil {
		writeErr(w, 400, err)
		return
	}
	draft, err := s.writer.DraftRejection(r.Context(), req.ProductName, req.Reason)
	if err != nil {
		writeErr(w, 502, err)
		return
	}
	writeJSON(w, 200, map[string]string{"draft": draft})
}
