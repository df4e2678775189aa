// Package model holds the GORM models backing the fuel ledger store. Column
// names match the historical schema so databases written by earlier
// deployments keep working unchanged.
package model

import "time"

// Friend represents a friend record in the database.
type Friend struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null"`
	TotalLiters float64   `gorm:"column:total_liters;not null;default:0"`
	PaidSEK     float64   `gorm:"column:paid_sek;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for the Friend model.
func (Friend) TableName() string {
	return "friends"
}

// Transaction represents a persisted history entry. The kind lives in the
// legacy "type" column.
type Transaction struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	FriendID    uint      `gorm:"column:friend_id;not null;index"`
	Friend      *Friend   `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE"`
	Kind        string    `gorm:"column:type;not null"`
	Amount      float64   `gorm:"column:amount;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
