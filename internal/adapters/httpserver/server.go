package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/ai"
	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/notify"
	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/regions"
	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
	"github.com/rizqydermawanai-png/kzumi-store/internal/usecase"
)

type Server struct {
	mux *http.ServeMux

	catalog   *usecase.CatalogUC
	pricing   *usecase.PricingUC
	promos    *usecase.PromoUC
	sizing    *usecase.SizingUC
	orders    *usecase.OrderUC
	customs   *usecase.CustomOrderUC
	warranty  *usecase.WarrantyUC
	tailoring *usecase.TailoringUC
	users     *usecase.UserUC

	discounts  domain.DiscountRepo
	promoRepo  domain.PromoRepo
	charts     domain.SizeChartRepo
	orderRepo  domain.OrderRepo
	customRepo domain.CustomOrderRepo
	claimRepo  domain.WarrantyRepo
	userRepo   domain.UserRepo

	writer   *ai.Copywriter
	regions  *regions.Client
	staff    *notify.StaffAlerter
	oauthCfg *oauth2.Config

	validate *validator.Validate

	adminAllowed map[string]struct{}
	adminSecret  []byte

	sessMu   sync.Mutex
	sessions map[string]*usecase.TailoringSession
}

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

type Deps struct {
	Catalog   *usecase.CatalogUC
	Pricing   *usecase.PricingUC
	Promos    *usecase.PromoUC
	Sizing    *usecase.SizingUC
	Orders    *usecase.OrderUC
	Customs   *usecase.CustomOrderUC
	Warranty  *usecase.WarrantyUC
	Tailoring *usecase.TailoringUC
	Users     *usecase.UserUC

	DiscountRepo domain.DiscountRepo
	PromoRepo    domain.PromoRepo
	ChartRepo    domain.SizeChartRepo
	OrderRepo    domain.OrderRepo
	CustomRepo   domain.CustomOrderRepo
	ClaimRepo    domain.WarrantyRepo
	UserRepo     domain.UserRepo

	Writer  *ai.Copywriter
	Regions *regions.Client
	Staff   *notify.StaffAlerter
	OAuth   *oauth2.Config
}

func New(d Deps) http.Handler {
	s := &Server{
		mux:        http.NewServeMux(),
		catalog:    d.Catalog,
		pricing:    d.Pricing,
		promos:     d.Promos,
		sizing:     d.Sizing,
		orders:     d.Orders,
		customs:    d.Customs,
		warranty:   d.Warranty,
		tailoring:  d.Tailoring,
		users:      d.Users,
		discounts:  d.DiscountRepo,
		promoRepo:  d.PromoRepo,
		charts:     d.ChartRepo,
		orderRepo:  d.OrderRepo,
		customRepo: d.CustomRepo,
		claimRepo:  d.ClaimRepo,
		userRepo:   d.UserRepo,
		writer:     d.Writer,
		regions:    d.Regions,
		staff:      d.Staff,
		oauthCfg:   d.OAuth,
		validate:   validator.New(),
		sessions:   map[string]*usecase.TailoringSession{},
	}

	allowed := map[string]struct{}{}
	if raw := os.Getenv("ADMIN_ALLOWED_EMAILS"); raw != "" {
		for _, e := range strings.Split(raw, ",") {
			e = strings.ToLower(strings.TrimSpace(e))
			if e != "" {
				allowed[e] = struct{}{}
			}
		}
	}
	if len(allowed) == 0 {
		allowed["admin@kzumi.id"] = struct{}{}
	}
	s.adminAllowed = allowed
	sec := os.Getenv("JWT_ADMIN_SECRET")
	if sec == "" {
		sec = os.Getenv("SECRET_KEY")
	}
	if sec == "" {
		sec = "dev-admin-secret"
	}
	s.adminSecret = []byte(sec)

	s.routes()
	return Chain(s.mux,
		RateLimit(120),
		Gzip,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/products/", s.apiProductByID)
	s.mux.HandleFunc("/api/size-recommendation", s.apiSizeRecommendation)

	s.mux.HandleFunc("/api/cart", s.apiCart)
	s.mux.HandleFunc("/api/cart/update", s.apiCartUpdate)
	s.mux.HandleFunc("/api/cart/remove", s.apiCartRemove)
	s.mux.HandleFunc("/api/cart/promo", s.apiCartPromo)
	s.mux.HandleFunc("/api/checkout", s.apiCheckout)

	s.mux.HandleFunc("/api/orders", s.apiMyOrders)
	s.mux.HandleFunc("/api/orders/", s.apiOrderByID)

	s.mux.HandleFunc("/api/tailoring/session", s.apiTailoringSession)
	s.mux.HandleFunc("/api/tailoring/catalog", s.apiTailoringCatalog)

	s.mux.HandleFunc("/api/warranty", s.apiWarranty)
	s.mux.HandleFunc("/api/notifications", s.apiNotifications)
	s.mux.HandleFunc("/api/regions/", s.apiRegions)
	s.mux.HandleFunc("/api/shipping/estimate", s.apiShippingEstimate)

	s.mux.HandleFunc("/auth/google/login", s.handleGoogleLogin)
	s.mux.HandleFunc("/auth/google/callback", s.handleGoogleCallback)
	s.mux.HandleFunc("/logout", s.handleLogout)

	s.mux.HandleFunc("/admin/login", s.handleAdminLogin)
	s.mux.HandleFunc("/admin/products", s.adminProducts)
	s.mux.HandleFunc("/admin/products/", s.adminProductByID)
	s.mux.HandleFunc("/admin/discounts", s.adminDiscounts)
	s.mux.HandleFunc("/admin/discounts/", s.adminDiscountByID)
	s.mux.HandleFunc("/admin/promos", s.adminPromos)
	s.mux.HandleFunc("/admin/promos/", s.adminPromoByID)
	s.mux.HandleFunc("/admin/size-charts", s.adminSizeCharts)
	s.mux.HandleFunc("/admin/size-charts/", s.adminSizeChartByID)
	s.mux.HandleFunc("/admin/orders", s.adminOrders)
	s.mux.HandleFunc("/admin/orders/", s.adminOrderAction)
	s.mux.HandleFunc("/admin/custom-orders", s.adminCustomOrders)
	s.mux.HandleFunc("/admin/custom-orders/", s.adminCustomOrderAction)
	s.mux.HandleFunc("/admin/warranty", s.adminWarranty)
	s.mux.HandleFunc("/admin/warranty/", s.adminWarrantyAction)
	s.mux.HandleFunc("/admin/export/orders", s.adminExportOrders)
	s.mux.HandleFunc("/admin/ai/product-copy", s.adminAIProductCopy)
	s.mux.HandleFunc("/admin/ai/bundle", s.adminAIBundle)
	s.mux.HandleFunc("/admin/ai/rejection", s.adminAIRejection)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// userErrCode maps domain failures to HTTP codes: validation failures are
// 4xx and recoverable, everything else is a 500.
func userErrCode(err error) int {
	var missing *domain.MissingMeasurementError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPromoNotFound),
		errors.Is(err, domain.ErrPromoInactive),
		errors.Is(err, domain.ErrPromoExpired),
		errors.Is(err, domain.ErrPromoNotApplicable),
		errors.Is(err, domain.ErrChartNotFound),
		errors.Is(err, domain.ErrNoSizeMatch),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrOrderTerminal),
		errors.Is(err, domain.ErrTrackingRequired),
		errors.Is(err, domain.ErrInvalidFinalPrice),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrStepLocked),
		errors.Is(err, domain.ErrPresetReadOnly),
		errors.Is(err, domain.ErrUnknownPreset),
		errors.As(err, &missing):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	page, _ := strconv.Atoi(qv.Get("page"))
	if page < 1 {
		page = 1
	}
	f := domain.ProductFilter{
		Page:     page,
		PageSize: 24,
		Sort:     qv.Get("sort"),
		Query:    qv.Get("q"),
		Category: domain.Category(qv.Get("category")),
	}
	list, total, err := s.catalog.List(r.Context(), f)
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	quotes, err := s.pricing.QuoteAll(r.Context(), list, usecase.ISODate(time.Now()))
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	type productView struct {
		domain.Product
		Price domain.PriceQuote `json:"price"`
	}
	views := make([]productView, len(list))
	for i := range list {
		views[i] = productView{Product: list[i], Price: quotes[i]}
	}
	writeJSON(w, 200, map[string]any{"products": views, "total": total, "page": page})
}

func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/products/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p, quote, err := s.pricing.QuoteFor(r.Context(), id, usecase.ISODate(time.Now()))
	if err != nil {
		writeErr(w, userErrCode(err), err)
		return
	}
	writeJSON(w, 200, map[string]any{"product": p, "price": quote})
}

type sizeRecRequest struct {
	Category     string             `json:"category" validate:"required"`
	Style        string             `json:"style"`
	Measurements map[string]float64 `json:"measurements" validate:"required,min=1"`
}

func (s *Server) apiSizeRecommendation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req sizeRecRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&req); err != nil {
		writeErr(w, 400, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeErr(w, 400, err)
		return
	}
	measurements := make(map[domain.Dimension]float64, len(req.Measurements))
	for k, v := range req.Measurements {
		measurements[domain.Dimension(k)] = v
	}
	size, err := s.sizing.Recommend(r.Context(), measurements, domain.Category(req.Category), req.Style)
	if err != nil {
		writeErr(w, userErrCode(err), err)
		return
	}
	writeJSON(w, 200, map[string]string{"size": size})
}

func (s *Server) apiMyOrders(w http.ResponseWriter, r *http.Request) {
	u := readUserSession(r)
	if u == nil {
		writeErr(w, 401, errors.New("belum login"))
		return
	}
	list, err := s.orderRepo.ListByEmail(r.Context(), u.Email)
	if err != nil {
		writeErr(w, 500, err)
		return
	}
	writeJSON(w, 200, map[string]any{"orders": list})
}

// apiOrderByID serves GET detail plus the payment-proof and tracking
// sub-resources for the order's owner.
func (s *Server) apiOrderByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	parts := strings.SplitN(rest, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	u := readUserSession(r)
	if u == nil {
		writeErr(w, 401, errors.New("belum login"))
		return
	}
	o, err := s.orderRepo.FindByID(r.Context(), id)
	if err != nil {
		writeErr(w, userErrCode(err), err)
		return
	}
	if !strings.EqualFold(o.CustomerEmail, u.Email) {
		writeErr(w, 403, errors.New("bukan pesanan kamu"))
		return
	}

	if len(parts) == 2 && parts[1] == "payment-proof" && r.Method == http.MethodPost {
		var req struct {
			ProofRef string `json:"proof_ref"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		updated, err := s.orders.SubmitPaymentProof(r.Context(), id, req.ProofRef)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"order": updated})
		return
	}

	if len(parts) == 2 && parts[1] == "tracking" && r.Method == http.MethodGet {
		if s.writer == nil || o.TrackingNumber == "" {
			writeJSON(w, 200, map[string]any{"events": []ai.TrackingEvent{}})
			return
		}
		events, err := s.writer.TrackingHistory(r.Context(), o.Courier, o.TrackingNumber, o.Address.Regency)
		if err != nil {
			log.Warn().Err(err).Msg("tracking history")
			writeJSON(w, 200, map[string]any{"events": []ai.TrackingEvent{}})
			return
		}
		writeJSON(w, 200, map[string]any{"events": events})
		return
	}

	writeJSON(w, 200, map[string]any{"order": o})
}

type warrantyRequest struct {
	OrderID      string   `json:"order_id" validate:"required,uuid"`
	ProductName  string   `json:"product_name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	EvidenceRefs []string `json:"evidence_refs"`
}

func (s *Server) apiWarranty(w http.ResponseWriter, r *http.Request) {
	u := readUserSession(r)
	if u == nil {
		writeErr(w, 401, errors.New("belum login"))
		return
	}
	switch r.Method {
	case http.MethodPost:
		var req warrantyRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 16384)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeErr(w, 400, err)
			return
		}
		orderID, _ := uuid.Parse(req.OrderID)
		claim, err := s.warranty.Submit(r.Context(), usecase.WarrantyInput{
			OrderID:      orderID,
			ProductName:  req.ProductName,
			Name:         u.Name,
			Email:        u.Email,
			Description:  req.Description,
			EvidenceRefs: req.EvidenceRefs,
		})
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		if s.staff != nil {
			go s.staff.WarrantyClaim(claim)
		}
		writeJSON(w, 201, map[string]any{"claim": claim})
	case http.MethodGet:
		list, err := s.claimRepo.List(r.Context())
		if err != nil {
			writeErr(w, 500, err)
			return
		}
		mine := []domain.WarrantyClaim{}
		for _, c := range list {
			if strings.EqualFold(c.CustomerEmail, u.Email) {
				mine = append(mine, c)
			}
		}
		writeJSON(w, 200, map[string]any{"claims": mine})
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiNotifications(w http.ResponseWriter, r *http.Request) {
	u := readUserSession(r)
	if u == nil {
		writeErr(w, 401, errors.New("belum login"))
		return
	}
	switch r.Method {
	case http.MethodGet:
		user, err := s.userRepo.FindByEmail(r.Context(), u.Email)
		if err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]any{"notifications": user.Notifications})
	case http.MethodPost:
		var req struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, 1024)).Decode(&req); err != nil {
			writeErr(w, 400, err)
			return
		}
		id, err := uuid.Parse(req.ID)
		if err != nil {
			writeErr(w, 400, err)
			return
		}
		if err := s.users.MarkNotificationRead(r.Context(), u.Email, id); err != nil {
			writeErr(w, userErrCode(err), err)
			return
		}
		writeJSON(w, 200, map[string]string{"status": "ok"})
	default:
		http.Error(w, "method", 405)
	}
}

// apiRegions proxies the cascading address dropdown lookups. A failed
// upstream call is a 502 the UI treats as "enter address manually".
func (s *Server) apiRegions(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/regions/")
	parts := strings.Split(rest, "/")
	var (
		list []regions.Region
		err  error
	)
	switch {
	case parts[0] == "provinces":
		list, err = s.regions.Provinces(r.Context())
	case parts[0] == "regencies" && len(parts) == 2:
		list, err = s.regions.Regencies(r.Context(), parts[1])
	case parts[0] == "districts" && len(parts) == 2:
		list, err = s.regions.Districts(r.Context(), parts[1])
	case parts[0] == "villages" && len(parts) == 2:
		list, err = s.regions.Villages(r.Context(), parts[1])
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("region lookup")
		writeErr(w, http.StatusBadGateway, errors.New("layanan wilayah tidak tersedia"))
		return
	}
	writeJSON(w, 200, map[string]any{"regions": list})
}

func (s *Server) apiShippingEstimate(w http.ResponseWriter, r *http.Request) {
	if s.writer == nil {
		writeJSON(w, 200, map[string]any{"quotes": []ai.ShippingQuote{}})
		return
	}
	dest := r.URL.Query().Get("destination")
	weight, _ := strconv.Atoi(r.URL.Query().Get("weight_gr"))
	if weight <= 0 {
		weight = 500
	}
	quotes, err := s.writer.ShippingQuotes(r.Context(), dest, weight)
	if err != nil {
		log.Warn().Err(err).Msg("shipping estimate")
		writeJSON(w, 200, map[string]any{"quotes": []ai.ShippingQuote{}})
		return
	}
	writeJSON(w, 200, map[string]any{"quotes": quotes})
}
