package model

import (
	"time"

	"gorm.io/datatypes"
)

// PropertyModel is the GORM-specific struct for the 'properties' table.
// Set-valued attributes are jsonb arrays so the amenity filter can use the
// @> containment operator.
type PropertyModel struct {
	ID                int64          `gorm:"primaryKey;autoIncrement"`
	Name              string         `gorm:"type:varchar(255);not null"`
	Description       string         `gorm:"type:text"`
	PricePerMonth     float64        `gorm:"not null;index"`
	SecurityDeposit   float64        `gorm:"not null"`
	ApplicationFee    float64        `gorm:"not null"`
	Beds              int            `gorm:"not null"`
	Baths             float64        `gorm:"not null"`
	SquareFeet        int            `gorm:"not null"`
	PropertyType      string         `gorm:"type:varchar(32);not null;index"`
	IsPetsAllowed     bool           `gorm:"not null;default:false"`
	IsParkingIncluded bool           `gorm:"not null;default:false"`
	Amenities         datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Highlights        datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	PhotoUrls         datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	ManagerID         string         `gorm:"type:varchar(255);not null;index"`
	PostedDate        time.Time      `gorm:"not null"`
	LocationID        int64          `gorm:"not null;uniqueIndex"` // 1:1 ownership
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
