package http

import (
	"net/http"
	"time"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/auth"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Users    *UserHandler
	Catalog  *CatalogHandler
	Carts    *CartHandler
	Ads      *AdHandler
	Checkout *CheckoutHandler
	Orders   *OrderHandler
}

func NewRouter(h Handlers, tokens *auth.TokenService, gate *auth.Gate, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello Medi mart"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public routes
	r.Post("/jwt", h.Users.IssueToken)
	r.Post("/users/{email}", h.Users.UpsertUser)
	r.Get("/users-role/{email}", h.Users.GetRole)
	r.Get("/shop-medicine", h.Catalog.ListMedicines)
	r.Get("/medicine/{category}", h.Catalog.ListMedicinesByCategory)
	r.Get("/categorys", h.Catalog.ListCategories)
	r.Get("/active-banner", h.Ads.ListActive)

	// Bearer-gated routes
	r.Group(func(r chi.Router) {
		r.Use(Authenticate(tokens))

		r.Post("/cart", h.Carts.AddLine)
		r.Get("/carts/{email}", h.Carts.ListLines)
		r.Patch("/update-count/{id}", h.Carts.AdjustLine)
		r.Delete("/cart/{id}", h.Carts.RemoveLine)
		r.Delete("/carts/{email}", h.Carts.ClearLines)

		r.Post("/create-payment-intent", h.Checkout.CreatePaymentIntent)
		r.Post("/order", h.Orders.CreateOrder)
		r.Get("/orders-history/{email}", h.Orders.History)
		r.Patch("/order/status/{id}", h.Orders.UpdateStatus)

		// Seller-only
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(gate, domain.RoleSeller))

			r.Post("/medicine", h.Catalog.AddMedicine)
			r.Get("/medicines/{email}", h.Catalog.ListMedicinesBySeller)
			r.Delete("/medicine/{id}", h.Catalog.DeleteMedicine)
			r.Post("/ads-medicine", h.Ads.RequestAd)
			r.Get("/ads-request/{email}", h.Ads.ListBySeller)
			r.Delete("/ads/{id}", h.Ads.Delete)
			r.Get("/seller/revenue/{email}", h.Orders.SellerRevenue)
		})

		// Admin-only
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(gate, domain.RoleAdmin))

			r.Get("/all-users", h.Users.ListUsers)
			r.Patch("/user/role/{email}", h.Users.UpdateRole)
			r.Get("/all-banner", h.Ads.ListAll)
			r.Patch("/banner/status/{id}", h.Ads.UpdateStatus)
			r.Post("/category", h.Catalog.AddCategory)
			r.Get("/categorys/{email}", h.Catalog.ListCategoriesByAdmin)
			r.Delete("/category/{id}", h.Catalog.DeleteCategory)
			r.Get("/admin/revenue", h.Orders.AdminRevenue)
			r.Get("/admin-orders", h.Orders.ListAll)
		})
	})

	return r
}
