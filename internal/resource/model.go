package resource

import (
	"net/http"
	"time"

	"github.com/silverpine/fleet-booking/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "resource not found")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "name cannot be empty")
)

// Resource represents a bookable unit (e.g., Van 03, Meeting Room B).
type Resource struct {
	ID        string
	Name      string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing resources.
type Filter struct {
	Category string
	Page     int
	PageSize int
}
