package models

import (
	"time"
)

// ScanLog is an append-only audit record of a QR scan
type ScanLog struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id" bson:"_id"`
	ResidentID string    `gorm:"type:varchar(64);index" json:"residentId" bson:"residentId"`
	Purpose    string    `gorm:"type:varchar(255)" json:"purpose" bson:"purpose"`
	Location   string    `gorm:"type:varchar(255)" json:"location" bson:"location"`
	Timestamp  time.Time `gorm:"index" json:"timestamp" bson:"timestamp"`
}

// TableName pins the table name for gorm.
func (ScanLog) TableName() string {
	return "scan_logs"
}
