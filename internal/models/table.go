package models

import (
	"time"

	"restaurant_platform/internal/schema"
)

type Table struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BranchID    uint      `json:"branch_id" gorm:"not null;index;index:idx_tables_branch_status,priority:1;uniqueIndex:idx_tables_branch_table,priority:1"`
	TableNumber int       `json:"table_number" gorm:"not null;uniqueIndex:idx_tables_branch_table,priority:2"`
	Capacity    int       `json:"capacity" gorm:"not null"`
	Status      string    `json:"status" gorm:"not null;default:'available';index:idx_tables_branch_status,priority:2"` // available, occupied, reserved
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

func (s TableStatus) IsValid() bool {
	return enumMember(schema.TableStatuses, string(s))
}

func (t *Table) Validate() error {
	return validateEnumField("tables", "status", t.Status)
}
