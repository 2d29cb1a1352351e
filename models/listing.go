// models/listing.go
package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing is a bookable property record owned by a host profile.
// Amenities and Images are stored as JSON arrays of strings so they
// round-trip to the frontend without a join table.
type Listing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	HostID       uint   `gorm:"index;column:host_id" json:"host_id"`
	Title        string `gorm:"size:255" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	PropertyType string `gorm:"column:property_type;size:64" json:"property_type"`
	City         string `gorm:"size:128" json:"city"`
	State        string `gorm:"size:128" json:"state"`
	Address      string `gorm:"size:255" json:"address"`

	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	MaxGuests     int     `gorm:"column:max_guests;default:1" json:"max_guests"`
	Bedrooms      int     `gorm:"default:1" json:"bedrooms"`
	Bathrooms     int     `gorm:"default:1" json:"bathrooms"`

	Amenities datatypes.JSON `json:"amenities"`
	Images    datatypes.JSON `json:"images"`

	IsActive bool `gorm:"column:is_active;default:true;index" json:"is_active"`

	Host Profile `gorm:"foreignKey:HostID;references:ID" json:"-"`
}

// AmenityList decodes the Amenities column. Malformed or empty JSON
// yields an empty slice, never an error.
func (l *Listing) AmenityList() []string {
	return decodeStringArray(l.Amenities)
}

// ImageList decodes the Images column the same way.
func (l *Listing) ImageList() []string {
	return decodeStringArray(l.Images)
}

func decodeStringArray(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

// StringArray encodes a string slice for the Amenities/Images columns.
func StringArray(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}
