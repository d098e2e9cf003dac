package handler

import (
	"github.com/gorilla/mux"

	"github.com/segyhp/affordability-engine/pkg/response"
)

// NewRouter wires every route. limiter may be nil to disable rate limiting.
func NewRouter(affordabilityHandler *AffordabilityHandler, healthHandler *HealthHandler, limiter *RateLimiter) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware, response.CORSMiddleware)

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()
	if limiter != nil {
		api.Use(RateLimitMiddleware(limiter))
	}

	api.HandleFunc("/affordability", affordabilityHandler.Calculate).Methods("POST", "OPTIONS")
	api.HandleFunc("/affordability", affordabilityHandler.ListCalculations).Methods("GET")
	api.HandleFunc("/affordability/{calculationId}", affordabilityHandler.GetCalculation).Methods("GET")
	api.HandleFunc("/duty", affordabilityHandler.QuoteDuty).Methods("GET")

	return router
}
