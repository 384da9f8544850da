package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventmanager/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, healthController *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("POST /api/events", eventController.CreateEvent)
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/events/search", eventController.SearchEvents)
	mux.HandleFunc("GET /api/events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("PUT /api/events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{eventID}", eventController.DeleteEvent)

	// Health
	mux.HandleFunc("GET /api/health", healthController.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
