package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/memstore"
	"github.com/rizqydermawanai-png/kzumi-store/internal/usecase"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()
	products := memstore.NewProductRepo()
	discounts := memstore.NewDiscountRepo()
	promos := memstore.NewPromoRepo()
	charts := memstore.NewSizeChartRepo()
	users := memstore.NewUserRepo()
	require.NoError(t, memstore.Seed(ctx, products, discounts, promos, charts, users))
	orders := memstore.NewOrderRepo()
	customs := memstore.NewCustomOrderRepo()
	claims := memstore.NewWarrantyRepo()
	catalog := memstore.NewTailoringCatalog(memstore.TailoringSeed())

	notifier := &usecase.InboxNotifier{Users: users}
	return New(Deps{
		Catalog:      &usecase.CatalogUC{Products: products},
		Pricing:      &usecase.PricingUC{Products: products, Discounts: discounts},
		Promos:       &usecase.PromoUC{Promos: promos, Products: products},
		Sizing:       &usecase.SizingUC{Charts: charts},
		Orders:       &usecase.OrderUC{Orders: orders, Products: products, Users: users, Notify: notifier},
		Customs:      &usecase.CustomOrderUC{Requests: customs, Notify: notifier},
		Warranty:     &usecase.WarrantyUC{Claims: claims, Orders: orders, Notify: notifier},
		Tailoring:    &usecase.TailoringUC{Catalog: catalog, Requests: customs, Notify: notifier},
		Users:        &usecase.UserUC{Users: users},
		DiscountRepo: discounts,
		PromoRepo:    promos,
		ChartRepo:    charts,
		OrderRepo:    orders,
		CustomRepo:   customs,
		ClaimRepo:    claims,
		UserRepo:     users,
	})
}

func TestCartCookieRoundTrip(t *testing.T) {
	cp := cartPayload{
		Lines: []usecase.CartLine{{ProductID: 1, Name: "Kemeja", Qty: 2, UnitPrice: 385000}},
		Promo: "KZUMI10",
	}
	rec := httptest.NewRecorder()
	writeCart(rec, cp)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	got := readCart(req)
	assert.Equal(t, cp.Lines, got.Lines)
	assert.Equal(t, "KZUMI10", got.Promo)
}

func TestCartCookieRejectsTampering(t *testing.T) {
	rec := httptest.NewRecorder()
	writeCart(rec, cartPayload{Lines: []usecase.CartLine{{ProductID: 1, Qty: 1}}})
	cookie := rec.Result().Cookies()[0]

	parts := strings.SplitN(cookie.Value, ".", 2)
	require.Len(t, parts, 2)
	tampered := parts[0] + "." + parts[1][:len(parts[1])-2] + "xx"

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "cart", Value: tampered})
	assert.Empty(t, readCart(req).Lines)
}

func TestProductsEndpointResolvesPrices(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products?category=kaos", nil))
	require.Equal(t, 200, rec.Code)

	var body struct {
		Products []struct {
			ID    int `json:"id"`
			Price struct {
				FinalPrice      int64 `json:"final_price"`
				OriginalPrice   int64 `json:"original_price"`
				DiscountApplied bool  `json:"discount_applied"`
			} `json:"price"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Products)
	// The seeded kaos discount is live, so the quote must beat base price.
	p := body.Products[0]
	assert.True(t, p.Price.DiscountApplied)
	assert.Less(t, p.Price.FinalPrice, p.Price.OriginalPrice)
}

func TestSizeRecommendationEndpoint(t *testing.T) {
	h := newTestHandler(t)
	payload := `{"category":"kaos","style":"Regular Fit","measurements":{"chestWidth":52,"length":72,"sleeveLength":22}}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/size-recommendation", strings.NewReader(payload)))
	require.Equal(t, 200, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "M", body["size"])
}

func TestSizeRecommendationMissingDimension(t *testing.T) {
	h := newTestHandler(t)
	payload := `{"category":"kaos","style":"Regular Fit","measurements":{"chestWidth":52,"sleeveLength":22}}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/size-recommendation", strings.NewReader(payload)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "length")
}

func TestCartPromoApplyAndRemove(t *testing.T) {
	h := newTestHandler(t)

	addRec := httptest.NewRecorder()
	h.ServeHTTP(addRec, httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"product_id":2,"size":"M","qty":1}`)))
	require.Equal(t, 200, addRec.Code)

	applyReq := httptest.NewRequest(http.MethodPost, "/api/cart/promo", strings.NewReader(`{"code":"kzumi10"}`))
	for _, c := range addRec.Result().Cookies() {
		applyReq.AddCookie(c)
	}
	applyRec := httptest.NewRecorder()
	h.ServeHTTP(applyRec, applyReq)
	require.Equal(t, 200, applyRec.Code)
	assert.Contains(t, applyRec.Body.String(), "KZUMI10")

	removeReq := httptest.NewRequest(http.MethodDelete, "/api/cart/promo", nil)
	for _, c := range applyRec.Result().Cookies() {
		removeReq.AddCookie(c)
	}
	removeRec := httptest.NewRecorder()
	h.ServeHTTP(removeRec, removeReq)
	require.Equal(t, 200, removeRec.Code)
	assert.NotContains(t, removeRec.Body.String(), `"promo":"KZUMI10"`)
}

func TestCartPromoUnknownCode(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cart/promo", strings.NewReader(`{"code":"TIDAKADA"}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "tidak ditemukan")
}

func TestAdminEndpointsRequireAuth(t *testing.T) {
	h := newTestHandler(t)
	for _, path := range []string{"/admin/products", "/admin/orders", "/admin/discounts", "/admin/export/orders"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestNotificationsRequireSession(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTailoringWizardOverHTTP(t *testing.T) {
	h := newTestHandler(t)
	var cookies []*http.Cookie

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/tailoring/session", strings.NewReader(body))
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		for _, c := range rec.Result().Cookies() {
			if c.Name == "tailor_sess" && c.MaxAge >= 0 {
				cookies = []*http.Cookie{c}
			}
		}
		return rec
	}

	rec := do(`{"action":"select_product","product":"Kemeja"}`)
	require.Equal(t, 200, rec.Code)

	// Fabric before the wizard reaches that step later is fine; style
	// before fabric is not.
	rec = do(`{"action":"select_style","axis":"Kerah","option":"Klasik"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(`{"action":"select_fabric","fabric":"Wol","color":"Navy"}`)
	require.Equal(t, 200, rec.Code)

	var view wizardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, int64(1905000), view.Estimate)
	assert.Equal(t, "Rp 1.905.000", view.Formatted)
}
