package domain

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrEventNotFound indicates no document exists for a well-formed id.
	ErrEventNotFound = errors.New("event not found")
	// ErrInvalidEventID indicates a malformed external event id.
	ErrInvalidEventID = errors.New("invalid event ID")
	// ErrNoFieldsToUpdate indicates an update payload with no recognized fields.
	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxLocationLen    = 200
)

// Event represents a scheduled happening stored as a single document.
// ID is assigned by the store on insert and marshals to JSON as its hex form.
// swagger:model Event
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date" json:"date"`
	Location    string             `bson:"location" json:"location"`
	Organizer   string             `bson:"organizer" json:"organizer"`
	Capacity    int                `bson:"capacity" json:"capacity"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID and timestamps are set
// on create.
func NewEvent(title, description, date, location, organizer string, capacity int) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		Location:    location,
		Organizer:   organizer,
		Capacity:    capacity,
	}
}

// Validate checks the event against the persistence contract and returns a map
// of field name to error message. All violations are reported together; an
// empty map means the event is acceptable.
func (e *Event) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(e.Title) == "" {
		errs["title"] = "Title is required"
	} else if len(e.Title) > maxTitleLen {
		errs["title"] = "Title must be less than 200 characters"
	}

	if strings.TrimSpace(e.Description) == "" {
		errs["description"] = "Description is required"
	} else if len(e.Description) > maxDescriptionLen {
		errs["description"] = "Description must be less than 1000 characters"
	}

	if e.Date == "" {
		errs["date"] = "Date is required"
	}

	if strings.TrimSpace(e.Location) == "" {
		errs["location"] = "Location is required"
	} else if len(e.Location) > maxLocationLen {
		errs["location"] = "Location must be less than 200 characters"
	}

	if e.Capacity < 0 {
		errs["capacity"] = "Capacity cannot be negative"
	}

	return errs
}

// EventUpdate is a sparse update: only non-nil fields are applied, the rest of
// the document is left untouched.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *string
	Location    *string
	Organizer   *string
	Capacity    *int
}

// IsEmpty reports whether the update carries no recognized field.
func (u EventUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Date == nil &&
		u.Location == nil && u.Organizer == nil && u.Capacity == nil
}

// ValidationError carries per-field validation messages for a rejected event.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]*Event, error)
}

// EventService defines event operations exposed to the delivery layer.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	SearchEvents(ctx context.Context, query string) ([]*Event, error)
}
