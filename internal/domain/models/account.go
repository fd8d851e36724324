package models

import "time"

// Account roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Account represents an admin or staff login
type Account struct {
	Email     string    `gorm:"primaryKey;type:varchar(100)" json:"email" bson:"email"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-" bson:"password"` // Password not exposed in JSON
	FirstName string    `gorm:"type:varchar(100);default:''" json:"firstName" bson:"firstName"`
	LastName  string    `gorm:"type:varchar(100);default:''" json:"lastName" bson:"lastName"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role" bson:"role"` // Role: admin, staff
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// TableName pins the table name for gorm.
func (Account) TableName() string {
	return "users"
}

// NormalizeRole maps anything other than "admin" to staff.
func NormalizeRole(role string) string {
	if role == RoleAdmin {
		return RoleAdmin
	}
	return RoleStaff
}
