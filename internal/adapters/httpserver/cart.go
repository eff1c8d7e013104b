package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
	"github.com/rizqydermawanai-png/kzumi-store/internal/usecase"
)

// cartPayload is the HMAC-signed cookie body. Promo holds the applied
// promo code; an empty string means no promo is applied.
type cartPayload struct {
	Lines []usecase.CartLine `json:"lines"`
	Promo string             `json:"promo,omitempty"`
}

func readCart(r *http.Request) cartPayload {
	c, err := r.Cookie("cart")
	if err != nil {
		return cartPayload{}
	}
	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return cartPayload{}
	}
	sig, _ := base64.RawURLEncoding.DecodeString(parts[0])
	payload, _ := base64.RawURLEncoding.DecodeString(parts[1])
	h := hmac.New(sha256.New, secretKey())
	h.Write(payload)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return cartPayload{}
	}
	var cp cartPayload
	_ = json.Unmarshal(payload, &cp)
	return cp
}

func writeCart(w http.ResponseWriter, cp cartPayload) {
	b, _ := json.Marshal(cp)
	h := hmac.New(sha256.New, secretKey())
	h.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	val := sig + "." + base64.RawURLEncoding.EncodeToString(b)
	http.SetCookie(w, &http.Cookie{Name: "cart", Value: val, Path: "/", MaxAge: 60 * 60 * 24 * 7, HttpOnly: true})
}

type cartView struct {
	Lines     []usecase.CartLine `json:"lines"`
	Subtotal  int64              `json:"subtotal"`
	Promo     string             `json:"promo,omitempty"`
	PromoOff  int64              `json:"promo_off"`
	Total     int64              `json:"total"`
	Formatted string             `json:"formatted_total"`
}

// cartView recomputes every line price against the discounts active right
// now, so a window that opened or closed since the cookie was written is
// reflected immediately.
func (s *Server) cartViewOf(r *http.Request, cp *cartPayload) (cartView, error) {
	today := usecase.ISODate(time.Now())
	var subtotal int64
	for i := range cp.Lines {
		line := &cp.Lines[i]
		if line.IsBundle() {
			subtotal += line.UnitPrice * int64(line.Qty)
			continue
		}
		p, quote, err := s.pricing.QuoteFor(r.Context(), line.ProductID, today)
		if err != nil {
			return cartView{}, err
		}
		line.Name = p.Name
		line.UnitPrice = quote.FinalPrice
		subtotal += quote.FinalPrice * int64(line.Qty)
	}
	view := cartView{Lines: cp.Lines, Subtotal: subtotal, Promo: cp.Promo, Total: subtotal}
	if cp.Promo != "" {
		promo, _, err := s.promos.Apply(r.Context(), cp.Promo, cp.Lines, today)
		if err != nil {
			// The stored code went stale (expired, deactivated); drop it.
			cp.Promo = ""
			view.Promo = ""
		} else {
			view.PromoOff = usecase.PromoAdjustment(promo, subtotal)
			view.Total = subtotal - view.PromoOff
		}
	}
	view.Formatted = domain.FormatIDR(view.Total)
	return view, nil
}

func sameLine(a usecase.CartLine, productID int, size, color string) bool {
	return a.ProductID == productID && a.Size == size && a.Color == color
}

func (s *Server) apiCart(w http.ResponseWriter, r *http.Request) {
	cp := readCart(r)
	switch r.Method {
	case http.MethodGet:
		view, err := s.cartViewOf(r, &cp)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeCart(w, cp)
		writeJSON(w, 200, view)
	case http.MethodPost:
		var req struct {
			ProductID int    `json:"product_id"`
			Size      string `json:"size"`
			Color     string `json:"color"`
			Qty       int    `json:"qty"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 2048)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		if req.Qty < 1 {
			req.Qty = 1
		}
		p, err := s.catalog.Get(r.Context(), req.ProductID)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		line := usecase.CartLine{ProductID: p.ID, Name: p.Name, Size: req.Size, Color: req.Color, Qty: req.Qty}
		if p.IsBundle() {
			line.ProductID = -p.ID
			line.UnitPrice = p.Bundle.Price
		} else {
			if len(p.Sizes) > 0 && !contains(p.Sizes, req.Size) {
				writeErr(w, 400, errors.New("ukuran tidak tersedia"))
				return
			}
			if p.Stock < req.Qty {
				writeErr(w, userErrCode(domain.ErrInsufficientStock), domain.ErrInsufficientStock)
				return
			}
		}
		merged := false
		for i := range cp.Lines {
			if sameLine(cp.Lines[i], line.ProductID, line.Size, line.Color) {
				cp.Lines[i].Qty += line.Qty
				merged = true
				break
			}
		}
		if !merged {
			cp.Lines = append(cp.Lines, line)
		}
		view, err := s.cartViewOf(r, &cp)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeCart(w, cp)
		writeJSON(w, 200, view)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiCartUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		ProductID int    `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Qty       int    `json:"qty"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 2048)).Decode(&req); err != nil {
		writeErr(w, 400, err)
		return
	}
	cp := readCart(r)
	out := cp.Lines[:0]
	for _, line := range cp.Lines {
		if sameLine(line, req.ProductID, req.Size, req.Color) {
			if req.Qty < 1 {
				continue
			}
			line.Qty = req.Qty
		}
		out = append(out, line)
	}
	cp.Lines = out
	view, err := s.cartViewOf(r, &cp)
	if err != nil {
		writeErr(w, userErrCode(err), err)
		return
	}
	writeCart(w, cp)
	writeJSON(w, 200, view)
}

func (s *Server) apiCartRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		ProductID int    `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 2048)).Decode(&req); err != nil {
		writeErr(w, 400, err)
		return
	}
	cp := readCart(r)
	out := cp.Lines[:0]
	for _, line := range cp.Lines {
		if !sameLine(line, req.ProductID, req.Size, req.Color) {
			out = append(out, line)
		}
	}
	cp.Lines = out
	view, err := s.cartViewOf(r, &cp)
	if err != nil {
		writeErr(w, userErrCode(err), err)
		return
	}
	writeCart(w, cp)
	writeJSON(w, 200, view)
}

// apiCartPromo applies (POST) or removes (DELETE) the cart's promo code.
// Removal never fails, even when no promo is applied.
func (s *Server) apiCartPromo(w http.ResponseWriter, r *http.Request) {
	cp := readCart(r)
	switch r.Method {
	case http.MethodPost:
		var req struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 1024)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		promo, msg, err := s.promos.Apply(r.Context(), req.Code, cp.Lines, usecase.ISODate(time.Now()))
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		cp.Promo = promo.Code
		view, err := s.cartViewOf(r, &cp)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeCart(w, cp)
		writeJSON(w, 200, map[string]any{"message": msg, "cart": view})
	case http.MethodDelete:
		cp.Promo = ""
		view, err := s.cartViewOf(r, &cp)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeCart(w, cp)
		writeJSON(w, 200, map[string]any{"cart": view})
	default:
		http.Error(w, "method", 405)
	}
}

type checkoutRequest struct {
	Type    string `json:"type" validate:"omitempty,oneof=regular preorder bulk_custom"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Courier string `json:"courier" validate:"required"`
	Address struct {
		Street     string `json:"street" validate:"required"`
		Village    string `json:"village"`
		District   string `json:"district"`
		Regency    string `json:"regency" validate:"required"`
		Province   string `json:"province" validate:"required"`
		PostalCode string `json:"postal_code"`
	} `json:"address"`
}

func (s *Server) apiCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req checkoutRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 16384)).Decode(&req); err != nil {
		writeErr(w, 400, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeErr(w, 400, err)
		return
	}
	cp := readCart(r)
	if len(cp.Lines) == 0 {
		writeErr(w, 400, errors.New("keranjang kosong"))
		return
	}
	today := usecase.ISODate(time.Now())
	if _, err := s.cartViewOf(r, &cp); err != nil {
		writeErr(w, userErrCode(err), err)
		return
	}

	orderType := domain.OrderTypeRegular
	if req.Type != "" {
		orderType = domain.OrderType(req.Type)
	}
	var promo *domain.PromoCode
	if cp.Promo != "" {
		promo, _, _ = s.promos.Apply(r.Context(), cp.Promo, cp.Lines, today)
	}
	discounts, err := s.discounts.List(r.Context())
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	in := usecase.CheckoutInput{
		Type:      orderType,
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Lines:     cp.Lines,
		PromoCode: cp.Promo,
		Courier:   req.Courier,
		Address: domain.ShippingAddress{
			Street:     req.Address.Street,
			Village:    req.Address.Village,
			District:   req.Address.District,
			Regency:    req.Address.Regency,
			Province:   req.Address.Province,
			PostalCode: req.Address.PostalCode,
		},
		Today: today,
	}
	o, err := s.orders.Checkout(r.Context(), in, discounts, promo)
	if err != nil {
		writeErr(w, userErrCode(err), err)
		return
	}
	if _, err := s.users.EnsureUser(r.Context(), in.Email, in.Name); err != nil {
		log.Warn().Err(err).Msg("ensure user")
	}
	if s.staff != nil {
		go s.staff.OrderPlaced(o)
	}
	writeCart(w, cartPayload{})
	writeJSON(w, 201, map[string]any{"order": o})
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
