package category

type Category struct {
	ID          string `gorm:"type:varchar(64);primaryKey" json:"category_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}
