package dto

import (
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
)

// --- Condominium DTOs ---

// CreateCondominiumRequest defines data for creating a new condominium.
type CreateCondominiumRequest struct {
	Name         string   `json:"name" binding:"required,max=120"`
	Description  string   `json:"description"`
	Street       string   `json:"street" binding:"required"`
	StreetNumber string   `json:"streetNumber"`
	Neighborhood string   `json:"neighborhood"`
	City         string   `json:"city" binding:"required"`
	State        string   `json:"state"`
	Country      string   `json:"country" binding:"required"`
	ZipCode      string   `json:"zipCode"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email" binding:"omitempty,email"`
	Amenities    []string `json:"amenities"`
	TotalFloors  int      `json:"totalFloors" binding:"omitempty,min=1"`
	TotalUnits   int      `json:"totalUnits" binding:"omitempty,min=1"`
	TotalParking int      `json:"totalParking" binding:"omitempty,min=0"`
}

// UpdateCondominiumRequest defines the data allowed for updating a condominium.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateCondominiumRequest struct {
	Name         *string   `json:"name" binding:"omitempty,max=120"`
	Description  *string   `json:"description"`
	Street       *string   `json:"street"`
	StreetNumber *string   `json:"streetNumber"`
	Neighborhood *string   `json:"neighborhood"`
	City         *string   `json:"city"`
	State        *string   `json:"state"`
	Country      *string   `json:"country"`
	ZipCode      *string   `json:"zipCode"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email" binding:"omitempty,email"`
	Amenities    *[]string `json:"amenities"`
	TotalFloors  *int      `json:"totalFloors" binding:"omitempty,min=1"`
	TotalUnits   *int      `json:"totalUnits" binding:"omitempty,min=1"`
	TotalParking *int      `json:"totalParking" binding:"omitempty,min=0"`
}

// CondominiumResponse defines data returned for a condominium.
type CondominiumResponse struct {
	CondominiumID string              `json:"condominiumID"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Street        string              `json:"street"`
	StreetNumber  string              `json:"streetNumber"`
	Neighborhood  string              `json:"neighborhood"`
	City          string              `json:"city"`
	State         string              `json:"state"`
	Country       string              `json:"country"`
	ZipCode       string              `json:"zipCode"`
	Phone         string              `json:"phone"`
	Email         string              `json:"email"`
	Amenities     []string            `json:"amenities"`
	TotalFloors   int                 `json:"totalFloors"`
	TotalUnits    int                 `json:"totalUnits"`
	TotalParking  int                 `json:"totalParking"`
	AdminID       string              `json:"adminID"`
	Status        domain.EntityStatus `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"` // UserID
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"` // UserID
}

// ToCondominiumResponse converts domain.Condominium to DTO.
func ToCondominiumResponse(c *domain.Condominium) CondominiumResponse {
	return CondominiumResponse{
		CondominiumID: c.CondominiumID,
		Name:          c.Name,
		Description:   c.Description,
		Street:        c.Street,
		StreetNumber:  c.StreetNumber,
		Neighborhood:  c.Neighborhood,
		City:          c.City,
		State:         c.State,
		Country:       c.Country,
		ZipCode:       c.ZipCode,
		Phone:         c.Phone,
		Email:         c.Email,
		Amenities:     c.Amenities,
		TotalFloors:   c.TotalFloors,
		TotalUnits:    c.TotalUnits,
		TotalParking:  c.TotalParking,
		AdminID:       c.AdminID,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ListCondominiumsResponse wraps a list of condominiums.
type ListCondominiumsResponse struct {
	Condominiums []CondominiumResponse `json:"condominiums"`
}

// ToListCondominiumsResponse converts a slice of domain.Condominium to DTO.
func ToListCondominiumsResponse(cs []domain.Condominium) ListCondominiumsResponse {
	list := make([]CondominiumResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCondominiumResponse(&c)
	}
	return ListCondominiumsResponse{Condominiums: list}
}

// --- Condominium Membership DTOs ---

// AddUserToCondominiumRequest defines data for adding a user to a condominium.
type AddUserToCondominiumRequest struct {
	UserID string                 `json:"userID" binding:"required"`
	Role   domain.CondominiumRole `json:"role" binding:"required,oneof=ADMIN RESIDENT READONLY"`
}

// UpdateMemberRoleRequest defines data for changing a member's role.
type UpdateMemberRoleRequest struct {
	Role domain.CondominiumRole `json:"role" binding:"required,oneof=ADMIN RESIDENT READONLY"`
}

// CondominiumMemberResponse defines data returned about a condominium membership.
type CondominiumMemberResponse struct {
	UserID        string                 `json:"userID"`
	UserName      string                 `json:"userName,omitempty"`
	CondominiumID string                 `json:"condominiumID"`
	Role          domain.CondominiumRole `json:"role"`
	JoinedAt      time.Time              `json:"joinedAt"`
}

// ToCondominiumMemberResponse converts domain.CondominiumMember to DTO.
func ToCondominiumMemberResponse(m *domain.CondominiumMember) CondominiumMemberResponse {
	return CondominiumMemberResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		CondominiumID: m.CondominiumID,
		Role:          m.Role,
		JoinedAt:      m.JoinedAt,
	}
}

// ListCondominiumMembersResponse wraps a list of memberships.
type ListCondominiumMembersResponse struct {
	Members []CondominiumMemberResponse `json:"members"`
}

// ToListCondominiumMembersResponse converts a slice of memberships to DTO.
func ToListCondominiumMembersResponse(ms []domain.CondominiumMember) ListCondominiumMembersResponse {
	list := make([]CondominiumMemberResponse, len(ms))
	for i, m := range ms {
		list[i] = ToCondominiumMemberResponse(&m)
	}
	return ListCondominiumMembersResponse{Members: list}
}
