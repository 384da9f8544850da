package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *Event {
	return NewEvent("Launch", "Product launch", "2025-06-01", "HQ", "", 0)
}

func TestEvent_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(e *Event)
		wantErrs map[string]string
	}{
		{
			name:     "valid event",
			mutate:   func(e *Event) {},
			wantErrs: map[string]string{},
		},
		{
			name:     "valid with organizer and capacity",
			mutate:   func(e *Event) { e.Organizer = "Alex"; e.Capacity = 100 },
			wantErrs: map[string]string{},
		},
		{
			name:     "empty title",
			mutate:   func(e *Event) { e.Title = "" },
			wantErrs: map[string]string{"title": "Title is required"},
		},
		{
			name:     "whitespace title",
			mutate:   func(e *Event) { e.Title = "   " },
			wantErrs: map[string]string{"title": "Title is required"},
		},
		{
			name:     "title too long",
			mutate:   func(e *Event) { e.Title = strings.Repeat("a", 201) },
			wantErrs: map[string]string{"title": "Title must be less than 200 characters"},
		},
		{
			name:     "title at limit",
			mutate:   func(e *Event) { e.Title = strings.Repeat("a", 200) },
			wantErrs: map[string]string{},
		},
		{
			name:     "empty description",
			mutate:   func(e *Event) { e.Description = "" },
			wantErrs: map[string]string{"description": "Description is required"},
		},
		{
			name:     "description too long",
			mutate:   func(e *Event) { e.Description = strings.Repeat("b", 1001) },
			wantErrs: map[string]string{"description": "Description must be less than 1000 characters"},
		},
		{
			name:     "description at limit",
			mutate:   func(e *Event) { e.Description = strings.Repeat("b", 1000) },
			wantErrs: map[string]string{},
		},
		{
			name:     "empty date",
			mutate:   func(e *Event) { e.Date = "" },
			wantErrs: map[string]string{"date": "Date is required"},
		},
		{
			// Date has no format validation.
			name:     "arbitrary date string accepted",
			mutate:   func(e *Event) { e.Date = "not-a-date" },
			wantErrs: map[string]string{},
		},
		{
			name:     "empty location",
			mutate:   func(e *Event) { e.Location = "" },
			wantErrs: map[string]string{"location": "Location is required"},
		},
		{
			name:     "location too long",
			mutate:   func(e *Event) { e.Location = strings.Repeat("c", 201) },
			wantErrs: map[string]string{"location": "Location must be less than 200 characters"},
		},
		{
			name:     "negative capacity",
			mutate:   func(e *Event) { e.Capacity = -1 },
			wantErrs: map[string]string{"capacity": "Capacity cannot be negative"},
		},
		{
			name: "all violations reported together",
			mutate: func(e *Event) {
				e.Title = ""
				e.Description = ""
				e.Date = ""
				e.Location = ""
				e.Capacity = -5
			},
			wantErrs: map[string]string{
				"title":       "Title is required",
				"description": "Description is required",
				"date":        "Date is required",
				"location":    "Location is required",
				"capacity":    "Capacity cannot be negative",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(e)
			require.Equal(t, tt.wantErrs, e.Validate())
		})
	}
}

func TestEventUpdate_IsEmpty(t *testing.T) {
	assert.True(t, EventUpdate{}.IsEmpty())

	capacity := 50
	assert.False(t, EventUpdate{Capacity: &capacity}.IsEmpty())

	title := ""
	assert.False(t, EventUpdate{Title: &title}.IsEmpty(), "present-but-empty field still counts")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"title": "Title is required",
		"date":  "Date is required",
	}}
	require.Equal(t, "Date is required; Title is required", err.Error())
}
