package controllers

import (
	"net/http"
	"time"

	"eventmanager/internal/delivery/http/helpers"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health godoc
// @Summary Health probe
// @Description Reports backend reachability with the current timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.HealthResponse
// @Router /api/health [get]
func (c *HealthController) Health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, helpers.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
