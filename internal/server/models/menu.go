package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Menu is a single menu record. UserID is the owning identity: it is set once
// at creation from the authenticated caller and never changed afterwards.
type Menu struct {
	ID          int64
	UserID      string
	Title       string
	TimeMinutes int
	Price       decimal.Decimal
	Description string
	// ImageKey is the object-storage key of the attached image, empty when
	// no image has been attached.
	ImageKey  string
	CreatedAt time.Time
}
