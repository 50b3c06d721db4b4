package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Listing categories. Wire values match the persisted enum.
const (
	CategoryRealEstate  = "Emlak"
	CategoryVehicle     = "Vasıta"
	CategoryElectronics = "Elektronik"
	CategoryHousehold   = "Ev Eşyası"
	CategoryMachinery   = "İş Makineleri"
	CategoryOther       = "Diğer"
)

// Listing statuses.
const (
	StatusActive   = "Aktif"
	StatusSold     = "Satıldı"
	StatusInactive = "Pasif"
)

// Categories is the fixed set of valid listing categories.
var Categories = []string{
	CategoryRealEstate,
	CategoryVehicle,
	CategoryElectronics,
	CategoryHousehold,
	CategoryMachinery,
	CategoryOther,
}

// Statuses is the fixed set of valid listing statuses.
var Statuses = []string{StatusActive, StatusSold, StatusInactive}

// IsValidCategory reports whether c belongs to the category enum.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s belongs to the status enum.
func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// StringSlice is a []string stored as a JSONB column.
type StringSlice []string

// Value implements driver.Valuer.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(s))
}

// Scan implements sql.Scanner.
func (s *StringSlice) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// ListingDB represents a listing record in the database
type ListingDB struct {
	ListingID   uuid.UUID   `json:"id" db:"listing_id"`         // Primary key
	OwnerID     uuid.UUID   `json:"owner_id" db:"owner_id"`     // Owning user, immutable
	Title       string      `json:"title" db:"title"`           // Listing title
	Description string      `json:"description" db:"description"`
	Price       float64     `json:"price" db:"price"`           // Non-negative
	Category    string      `json:"category" db:"category"`     // One of Categories
	Images      StringSlice `json:"images" db:"images"`         // At least one image reference
	Location    string      `json:"location" db:"location"`
	Status      string      `json:"status" db:"status"`         // One of Statuses
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"` // Refreshed on every mutation
}

// ListingCreate carries the caller-supplied fields for a new listing.
type ListingCreate struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Images      []string
	Location    string
	Status      string // optional, defaults to StatusActive
}

// ListingPatch carries a partial update; nil fields are left untouched.
type ListingPatch struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *string
	Images      []string
	Location    *string
	Status      *string
}

// ListingFilter holds search filters for the public listings query.
type ListingFilter struct {
	Search   string // case-insensitive substring over title/description/location
	Category string // exact match when non-empty
	ShowSold bool   // when false, excludes StatusSold
}
