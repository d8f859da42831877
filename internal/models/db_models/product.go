package db_models

type Product struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description *string
	Brand       string
	Model       string

	// Returnable products (dispensers, demijohns) are issued on loan and
	// must eventually come back; consumables are not.
	IsReturnable bool `gorm:"default:false;index"`
}
