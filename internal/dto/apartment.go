package dto

import (
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
)

// CreateApartmentRequest defines data for creating a new apartment.
type CreateApartmentRequest struct {
	Name          string `json:"name" binding:"required,max=60"`
	Description   string `json:"description"`
	OwnerID       string `json:"ownerID"`
	Floor         string `json:"floor"`
	Size          string `json:"size"`
	Rooms         int    `json:"rooms" binding:"omitempty,min=0"`
	Bathrooms     int    `json:"bathrooms" binding:"omitempty,min=0"`
	ParkingSpaces int    `json:"parkingSpaces" binding:"omitempty,min=0"`
}

// UpdateApartmentRequest defines the data allowed for updating an apartment.
type UpdateApartmentRequest struct {
	Name          *string `json:"name" binding:"omitempty,max=60"`
	Description   *string `json:"description"`
	OwnerID       *string `json:"ownerID"`
	Floor         *string `json:"floor"`
	Size          *string `json:"size"`
	Rooms         *int    `json:"rooms" binding:"omitempty,min=0"`
	Bathrooms     *int    `json:"bathrooms" binding:"omitempty,min=0"`
	ParkingSpaces *int    `json:"parkingSpaces" binding:"omitempty,min=0"`
}

// ApartmentResponse defines data returned for an apartment.
type ApartmentResponse struct {
	ApartmentID   string              `json:"apartmentID"`
	CondominiumID string              `json:"condominiumID"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	OwnerID       string              `json:"ownerID,omitempty"`
	Floor         string              `json:"floor"`
	Size          string              `json:"size"`
	Rooms         int                 `json:"rooms"`
	Bathrooms     int                 `json:"bathrooms"`
	ParkingSpaces int                 `json:"parkingSpaces"`
	Status        domain.EntityStatus `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToApartmentResponse converts domain.Apartment to DTO.
func ToApartmentResponse(a *domain.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ApartmentID:   a.ApartmentID,
		CondominiumID: a.CondominiumID,
		Name:          a.Name,
		Description:   a.Description,
		OwnerID:       a.OwnerID,
		Floor:         a.Floor,
		Size:          a.Size,
		Rooms:         a.Rooms,
		Bathrooms:     a.Bathrooms,
		ParkingSpaces: a.ParkingSpaces,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ListApartmentsResponse wraps a list of apartments.
type ListApartmentsResponse struct {
	Apartments []ApartmentResponse `json:"apartments"`
}

// ToListApartmentsResponse converts a slice of domain.Apartment to DTO.
func ToListApartmentsResponse(as []domain.Apartment) ListApartmentsResponse {
	list := make([]ApartmentResponse, len(as))
	for i, a := range as {
		list[i] = ToApartmentResponse(&a)
	}
	return ListApartmentsResponse{Apartments: list}
}
