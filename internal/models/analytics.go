package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Analytics struct {
	ID                uint         `json:"id" gorm:"primaryKey"`
	BranchID          *uint        `json:"branch_id,omitempty" gorm:"index;index:idx_analytics_branch_period,priority:1"`
	PeriodStart       time.Time    `json:"period_start" gorm:"not null;index:idx_analytics_branch_period,priority:2;index:idx_analytics_period,priority:1"`
	PeriodEnd         time.Time    `json:"period_end" gorm:"not null;index:idx_analytics_period,priority:2"`
	TotalRevenue      float64      `json:"total_revenue"`
	OrderCount        int          `json:"order_count"`
	CustomerCount     int          `json:"customer_count"`
	AverageOrderValue float64      `json:"average_order_value"`
	TopMenuItems      TopMenuItems `json:"top_menu_items,omitempty" gorm:"type:json"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// TopMenuItem is one row of the ranked best-sellers summary embedded in an
// analytics record.
type TopMenuItem struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	OrderCount int     `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// TopMenuItems is stored as a JSON column. A nil slice round-trips as SQL
// NULL so an omitted summary stays absent rather than becoming [].
type TopMenuItems []TopMenuItem

func (t TopMenuItems) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

func (t *TopMenuItems) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("cannot scan %T into TopMenuItems", value)
	}
}
