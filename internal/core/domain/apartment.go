package domain

// Apartment belongs to exactly one Condominium. Its name is unique among the
// ACTIVE apartments of that condominium.
type Apartment struct {
	ApartmentID   string       `json:"apartmentID" db:"apartment_id"` // Primary key (UUID)
	CondominiumID string       `json:"condominiumID" db:"condominium_id"`
	Name          string       `json:"name" db:"name"`
	Description   string       `json:"description" db:"description"`
	OwnerID       string       `json:"ownerID" db:"owner_id"` // Optional UserID of the owner
	Floor         string       `json:"floor" db:"floor"`
	Size          string       `json:"size" db:"size"`
	Rooms         int          `json:"rooms" db:"rooms"`
	Bathrooms     int          `json:"bathrooms" db:"bathrooms"`
	ParkingSpaces int          `json:"parkingSpaces" db:"parking_spaces"`
	Status        EntityStatus `json:"status" db:"status"`
	AuditFields
}
