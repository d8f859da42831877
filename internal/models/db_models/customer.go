package db_models

import (
	"github.com/lib/pq"
)

type Customer struct {
	BaseModel
	Name    string `gorm:"not null"`
	Address string
	Phones  pq.StringArray `gorm:"type:text[]"`

	// Customers that supply their own dispensers/containers never get
	// equipment issued on the first billing cycle.
	OwnsReturnableContainers bool `gorm:"default:false"`
}
