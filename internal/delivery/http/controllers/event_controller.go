package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// CreateEventRequest is the request body for POST /api/events. Organizer and
// capacity are optional and default to "" and 0.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Organizer   string `json:"organizer"`
	Capacity    int    `json:"capacity"`
}

// UpdateEventRequest is the request body for PUT /api/events/{eventID}. All
// fields are optional; omitted fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Organizer   *string `json:"organizer"`
	Capacity    *int    `json:"capacity"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// writeServiceError maps a service failure to its transport status. This is
// the single translation point from error kind to status code.
func (c *EventController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		helpers.WriteJSON(w, http.StatusBadRequest, helpers.ErrorResponse{
			Error:  vErr.Error(),
			Fields: vErr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidEventID):
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid event ID")
	case errors.Is(err, domain.ErrNoFieldsToUpdate):
		helpers.WriteJSONError(w, http.StatusBadRequest, "No valid fields to update")
	case errors.Is(err, domain.ErrEventNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create an event. Title, description, date, and location are required; organizer and capacity are optional. ID and timestamps are server-assigned.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.EventResponse "message and the created event"
// @Failure 400 {object} helpers.ErrorResponse "validation failure with per-field detail"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	event := domain.NewEvent(req.Title, req.Description, req.Date, req.Location, req.Organizer, req.Capacity)
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, helpers.EventResponse{
		Message: "Event created successfully",
		Event:   event,
	})
}

// ListEvents godoc
// @Summary List all events
// @Description Returns every event, most recently created first.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.EventsResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.EventsResponse{Events: events})
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (hex)"
// @Success 200 {object} helpers.EventResponse
// @Failure 400 {object} helpers.ErrorResponse "malformed id"
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.EventResponse{Event: event})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Sparse update: only fields present in the body are changed. updated_at is refreshed.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (hex)"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.EventResponse "message and the updated event"
// @Failure 400 {object} helpers.ErrorResponse "malformed id or no valid fields"
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	upd := domain.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Organizer:   req.Organizer,
		Capacity:    req.Capacity,
	}
	event, err := c.Service.UpdateEvent(r.Context(), r.PathValue("eventID"), upd)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.EventResponse{
		Message: "Event updated successfully",
		Event:   event,
	})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (hex)"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "malformed id"
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("eventID")); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Message: "Event deleted successfully"})
}

// SearchEvents godoc
// @Summary Search events
// @Description Case-insensitive substring match of q against title, description, or location. An empty q yields an empty list.
// @Tags events
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} helpers.EventsResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/search [get]
func (c *EventController) SearchEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.SearchEvents(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.EventsResponse{Events: events})
}
