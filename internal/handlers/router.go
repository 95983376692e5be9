package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/wastebank/ledger/internal/middleware"
	"golang.org/x/time/rate"
)

func NewRouter(handler *Handler, secretKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	limiter := middleware.NewCallerRateLimiter(rate.Limit(20), 40)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		r.Use(middleware.RateLimitMiddleware(limiter))

		r.Route("/deposits", func(r chi.Router) {
			r.Post("/", handler.RecordDeposit)
			r.Get("/", handler.GetDeposits)
		})

		r.Route("/withdrawals", func(r chi.Router) {
			r.Post("/", handler.CreateWithdrawal)
			r.Get("/", handler.GetWithdrawals)
			r.Post("/{id}/approve", handler.ApproveWithdrawal)
			r.Post("/{id}/reject", handler.RejectWithdrawal)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Post("/", handler.RecordSale)
			r.Get("/", handler.GetSales)
		})

		r.Get("/dashboard", handler.Dashboard)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/transactions", handler.TransactionReport)
			r.Get("/customers", handler.AllCustomerSummaries)
			r.Get("/customers/{id}", handler.CustomerSummary)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", handler.ListCustomers)
			r.Get("/{id}", handler.GetCustomer)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole("admin"))
				r.Post("/", handler.CreateCustomer)
				r.Patch("/{id}", handler.UpdateCustomer)
				r.Delete("/{id}", handler.DeleteCustomer)
			})
		})

		r.Route("/officers", func(r chi.Router) {
			r.Get("/", handler.ListOfficers)
			r.Get("/{id}", handler.GetOfficer)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole("admin"))
				r.Post("/", handler.CreateOfficer)
				r.Patch("/{id}", handler.UpdateOfficer)
				r.Delete("/{id}", handler.DeleteOfficer)
			})
		})

		r.Route("/waste-types", func(r chi.Router) {
			r.Get("/", handler.ListWasteTypes)
			r.Get("/{id}", handler.GetWasteType)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole("admin"))
				r.Post("/", handler.CreateWasteType)
				r.Patch("/{id}", handler.UpdateWasteType)
				r.Delete("/{id}", handler.DeleteWasteType)
			})
		})

		r.Route("/collectors", func(r chi.Router) {
			r.Get("/", handler.ListCollectors)
			r.Get("/{id}", handler.GetCollector)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole("admin"))
				r.Post("/", handler.CreateCollector)
				r.Patch("/{id}", handler.UpdateCollector)
				r.Delete("/{id}", handler.DeleteCollector)
			})
		})
	})

	return r
}
