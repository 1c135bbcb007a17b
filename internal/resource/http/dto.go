package http

import (
	"time"

	"github.com/silverpine/fleet-booking/internal/pkg/request"
	"github.com/silverpine/fleet-booking/internal/resource"
)

// ResourceTag is the minimal resource reference embedded in other responses.
type ResourceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ResourceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewResourceResponse(r *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:        r.ID,
		Name:      r.Name,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type ListResourcesRequest struct {
	request.ListParams
	Category string `form:"category"`
}

type CreateResourceRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

type UpdateResourceRequest struct {
	Name     *string `json:"name" binding:"omitempty"`
	Category *string `json:"category" binding:"omitempty"`
}
