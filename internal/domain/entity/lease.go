package entity

import "time"

// Lease links a tenant to a property for a date range.
type Lease struct {
	ID         int64
	StartDate  time.Time
	EndDate    time.Time
	Rent       float64
	Deposit    float64
	PropertyID int64
	TenantID   string

	Tenant *Tenant
}

// Tenant is the renter identity embedded in lease listings. The identity
// itself lives in the external auth service; ExternalID is its reference.
type Tenant struct {
	ID          int64
	ExternalID  string
	Name        string
	Email       string
	PhoneNumber string
}
