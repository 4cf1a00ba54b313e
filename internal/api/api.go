// Package api exposes the services over JSON HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/splitledger/splitledger/internal/auth"
	"github.com/splitledger/splitledger/internal/middleware"
	"github.com/splitledger/splitledger/internal/service"
)

// API wires the services into an HTTP router.
type API struct {
	auth        *service.AuthService
	contacts    *service.ContactService
	groups      *service.GroupService
	expenses    *service.ExpenseService
	settlements *service.SettlementService

	jwtManager *auth.JWTManager
	validate   *validator.Validate
}

// New creates the API over the given services.
func New(
	authSvc *service.AuthService,
	contactSvc *service.ContactService,
	groupSvc *service.GroupService,
	expenseSvc *service.ExpenseService,
	settlementSvc *service.SettlementService,
	jwtManager *auth.JWTManager,
) *API {
	return &API{
		auth:        authSvc,
		contacts:    contactSvc,
		groups:      groupSvc,
		expenses:    expenseSvc,
		settlements: settlementSvc,
		jwtManager:  jwtManager,
		validate:    validator.New(),
	}
}

// Router builds the full route tree, middleware included.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Metrics)
	r.Use(middleware.Logging)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", a.handleRegister)
		r.Post("/auth/login", a.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(a.jwtManager))

			r.Post("/contacts", a.handleCreateContact)
			r.Get("/contacts", a.handleListContacts)
			r.Get("/contacts/{contactID}", a.handleGetContact)

			r.Post("/groups", a.handleCreateGroup)
			r.Get("/groups", a.handleListGroups)
			r.Get("/groups/{groupID}", a.handleGetGroup)
			r.Delete("/groups/{groupID}", a.handleDeleteGroup)

			r.Post("/groups/{groupID}/members", a.handleAddMember)
			r.Delete("/groups/{groupID}/members/{contactID}", a.handleRemoveMember)

			r.Post("/groups/{groupID}/expenses", a.handleCreateExpense)
			r.Get("/groups/{groupID}/expenses", a.handleListExpenses)
			r.Get("/groups/{groupID}/categories", a.handleCategoryTotals)

			r.Get("/groups/{groupID}/balances", a.handleBalances)
			r.Get("/groups/{groupID}/settlements", a.handleSuggestSettlements)
			r.Post("/groups/{groupID}/settlements", a.handleRecordSettlement)
		})
	})

	return r
}
