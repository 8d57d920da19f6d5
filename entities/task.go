package entities

// Task loosely links to at most one row of each purchase table. The three
// references are independent and nullable.
type Task struct {
	ID                 int  `gorm:"column:Id;primaryKey;autoIncrement" json:"id"`
	FoodPurchaseID     *int `gorm:"column:IDCompraComida" json:"food_purchase_id"`
	CleaningPurchaseID *int `gorm:"column:IDCompraLimpieza" json:"cleaning_purchase_id"`
	MiscPurchaseID     *int `gorm:"column:IDCompraVarios" json:"misc_purchase_id"`

	FoodPurchase     *FoodPurchase     `gorm:"foreignKey:FoodPurchaseID;references:ID;constraint:OnDelete:SET NULL" json:"food_purchase,omitempty"`
	CleaningPurchase *CleaningPurchase `gorm:"foreignKey:CleaningPurchaseID;references:ID;constraint:OnDelete:SET NULL" json:"cleaning_purchase,omitempty"`
	MiscPurchase     *MiscPurchase     `gorm:"foreignKey:MiscPurchaseID;references:ID;constraint:OnDelete:SET NULL" json:"misc_purchase,omitempty"`
}

func (Task) TableName() string {
	return TableTask
}
