package models

import "time"

// QRToken binds an opaque, short lived token to a resident
type QRToken struct {
	Token      string    `gorm:"primaryKey;type:varchar(64)" json:"token" bson:"token"`
	ResidentID string    `gorm:"type:varchar(64);not null;index" json:"residentId" bson:"residentId"`
	Expiration time.Time `gorm:"not null;index" json:"expiration" bson:"expiration"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// TableName pins the table name for gorm.
func (QRToken) TableName() string {
	return "qr_tokens"
}

// ExpiredAt reports whether the token is past its expiration at now.
func (t *QRToken) ExpiredAt(now time.Time) bool {
	return now.After(t.Expiration)
}
