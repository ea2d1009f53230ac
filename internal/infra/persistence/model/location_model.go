package model

// LocationModel is the GORM-specific struct for the 'locations' table.
// Rows are only ever created inside the ingestion transaction, so a
// location never outlives or precedes its owning property.
type LocationModel struct {
	ID          int64    `gorm:"primaryKey;autoIncrement"`
	Address     string   `gorm:"type:text;not null"`
	City        string   `gorm:"type:varchar(100);not null"`
	State       string   `gorm:"type:varchar(100);not null"`
	Country     string   `gorm:"type:varchar(100);not null"`
	PostalCode  string   `gorm:"type:varchar(20);not null"`
	Coordinates GeoPoint `gorm:"type:geography(POINT,4326);not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
