package app

import (
	"context"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/ai"
	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/httpserver"
	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/memstore"
	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/notify"
	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/regions"
	"github.com/rizqydermawanai-png/kzumi-store/internal/usecase"
)

// App wires the memory-resident stores into the use cases and hands the
// HTTP layer a ready dependency set.
type App struct {
	Products  *memstore.ProductRepo
	Discounts *memstore.DiscountRepo
	Promos    *memstore.PromoRepo
	Charts    *memstore.SizeChartRepo
	Orders    *memstore.OrderRepo
	Customs   *memstore.CustomOrderRepo
	Users     *memstore.UserRepo
	Claims    *memstore.WarrantyRepo
	Tailoring *memstore.TailoringCatalog

	CatalogUC   *usecase.CatalogUC
	PricingUC   *usecase.PricingUC
	PromoUC     *usecase.PromoUC
	SizingUC    *usecase.SizingUC
	OrderUC     *usecase.OrderUC
	CustomUC    *usecase.CustomOrderUC
	WarrantyUC  *usecase.WarrantyUC
	TailoringUC *usecase.TailoringUC
	UserUC      *usecase.UserUC

	Writer      *ai.Copywriter
	Regions     *regions.Client
	Staff       *notify.StaffAlerter
	OAuthConfig *oauth2.Config
}

func NewApp() (*App, error) {
	a := &App{
		Products:  memstore.NewProductRepo(),
		Discounts: memstore.NewDiscountRepo(),
		Promos:    memstore.NewPromoRepo(),
		Charts:    memstore.NewSizeChartRepo(),
		Orders:    memstore.NewOrderRepo(),
		Customs:   memstore.NewCustomOrderRepo(),
		Users:     memstore.NewUserRepo(),
		Claims:    memstore.NewWarrantyRepo(),
	}
	a.Tailoring = memstore.NewTailoringCatalog(memstore.TailoringSeed())

	notifier := &usecase.InboxNotifier{Users: a.Users}
	a.CatalogUC = &usecase.CatalogUC{Products: a.Products}
	a.PricingUC = &usecase.PricingUC{Products: a.Products, Discounts: a.Discounts}
	a.PromoUC = &usecase.PromoUC{Promos: a.Promos, Products: a.Products}
	a.SizingUC = &usecase.SizingUC{Charts: a.Charts}
	a.OrderUC = &usecase.OrderUC{Orders: a.Orders, Products: a.Products, Users: a.Users, Notify: notifier}
	a.CustomUC = &usecase.CustomOrderUC{Requests: a.Customs, Notify: notifier}
	a.WarrantyUC = &usecase.WarrantyUC{Claims: a.Claims, Orders: a.Orders, Notify: notifier}
	a.TailoringUC = &usecase.TailoringUC{Catalog: a.Tailoring, Requests: a.Customs, Notify: notifier}
	a.UserUC = &usecase.UserUC{Users: a.Users}

	a.Writer = ai.New(os.Getenv("OPENAI_API_KEY"))
	a.Regions = regions.NewClient(os.Getenv("WILAYAH_BASE_URL"))
	a.Staff = notify.New()

	googleID := os.Getenv("GOOGLE_CLIENT_ID")
	googleSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if googleID != "" && googleSecret != "" {
		a.OAuthConfig = &oauth2.Config{
			ClientID:     googleID,
			ClientSecret: googleSecret,
			RedirectURL:  baseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return a, nil
}

// Seed loads the demo catalog, charts and accounts into the stores.
func (a *App) Seed(ctx context.Context) error {
	return memstore.Seed(ctx, a.Products, a.Discounts, a.Promos, a.Charts, a.Users)
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(httpserver.Deps{
		Catalog:      a.CatalogUC,
		Pricing:      a.PricingUC,
		Promos:       a.PromoUC,
		Sizing:       a.SizingUC,
		Orders:       a.OrderUC,
		Customs:      a.CustomUC,
		Warranty:     a.WarrantyUC,
		Tailoring:    a.TailoringUC,
		Users:        a.UserUC,
		DiscountRepo: a.Discounts,
		PromoRepo:    a.Promos,
		ChartRepo:    a.Charts,
		OrderRepo:    a.Orders,
		CustomRepo:   a.Customs,
		ClaimRepo:    a.Claims,
		UserRepo:     a.Users,
		Writer:       a.Writer,
		Regions:      a.Regions,
		Staff:        a.Staff,
		OAuth:        a.OAuthConfig,
	})
}
