package model

import "time"

// TenantModel is the GORM-specific struct for the 'tenants' table.
type TenantModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	ExternalID  string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(255);not null"`
	Email       string `gorm:"type:varchar(255);not null"`
	PhoneNumber string `gorm:"type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}

// LeaseModel is the GORM-specific struct for the 'leases' table.
type LeaseModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	StartDate  time.Time `gorm:"not null;index"`
	EndDate    time.Time `gorm:"not null"`
	Rent       float64   `gorm:"not null"`
	Deposit    float64   `gorm:"not null"`
	PropertyID int64     `gorm:"not null;index"`
	TenantID   string    `gorm:"type:varchar(255);not null"`

	Tenant *TenantModel `gorm:"foreignKey:TenantID;references:ExternalID"`
}

// TableName explicitly sets the table name for GORM.
func (LeaseModel) TableName() string {
	return "leases"
}
