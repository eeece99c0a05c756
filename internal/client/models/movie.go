// Package models defines the catalog entities exchanged with the Mobie Hub
// backend.
package models

import (
	"strings"
	"time"
)

// Status is the publication state of a movie.
type Status string

const (
	// StatusPublished makes a movie visible in the public catalog.
	StatusPublished Status = "publicada"
	// StatusDraft marks a movie that is still being edited.
	StatusDraft Status = "edicion"
	// StatusAll is a filter value only; no movie carries it.
	StatusAll Status = "ALL"
)

// IsPublished reports whether s is exactly the published value.
func (s Status) IsPublished() bool {
	return s == StatusPublished
}

// Toggle returns the status an admin toggle switches to.
func (s Status) Toggle() Status {
	if s == StatusPublished {
		return StatusDraft
	}
	return StatusPublished
}

// Badge returns the CSS-style badge class used when listing movies.
func (s Status) Badge() string {
	if s.IsPublished() {
		return "badge-success"
	}
	return "badge-warning"
}

// Movie is a catalog record as returned by the backend.
type Movie struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PosterPath  string    `json:"posterPath"`
	Rating      float64   `json:"rating"`
	Status      Status    `json:"status"`
	CreateAt    time.Time `json:"createAt"`
	UpdateAt    time.Time `json:"updateAt"`
}

// MovieRequest is the write payload for create and update calls.
// Server-assigned fields (id, createAt, updateAt) are never sent.
type MovieRequest struct {
	Name        string  `json:"name"`
	PosterPath  string  `json:"posterPath"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Status      Status  `json:"status"`
}

// Request copies the writable fields of m.
func (m Movie) Request() MovieRequest {
	return MovieRequest{
		Name:        m.Name,
		PosterPath:  m.PosterPath,
		Description: m.Description,
		Rating:      m.Rating,
		Status:      m.Status,
	}
}

// Stars renders one star per two rating points, rounded down.
func (m Movie) Stars() string {
	n := int(m.Rating / 2)
	if n < 0 {
		n = 0
	}
	return strings.Repeat("⭐", n)
}
