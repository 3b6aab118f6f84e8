package models

import (
	"errors"
	"time"
)

type CategoryName string

const (
	CategoryChocolateCake    CategoryName = "Chocolate Cake"
	CategoryButterscotchCake CategoryName = "Butterscotch Cake"
	CategoryRedVelvetCake    CategoryName = "Red Velvet Cake"
	CategoryCupcake          CategoryName = "Cupcake"
	CategoryPastry           CategoryName = "Pastry"
	CategoryCookies          CategoryName = "Cookies"
	CategoryBread            CategoryName = "Bread"
	CategoryDonut            CategoryName = "Donut"
)

// ParseCategoryName validates a category name against the bakery catalog.
func ParseCategoryName(s string) (CategoryName, error) {
	switch CategoryName(s) {
	case CategoryChocolateCake, CategoryButterscotchCake, CategoryRedVelvetCake,
		CategoryCupcake, CategoryPastry, CategoryCookies, CategoryBread, CategoryDonut:
		return CategoryName(s), nil
	default:
		return "", errors.New("invalid category name")
	}
}

type Category struct {
	ID           uint      `gorm:"column:category_id;primaryKey;autoIncrement" json:"id"`
	CategoryName string    `gorm:"column:category_name;type:varchar(200)" json:"category_name"`
	UserID       uint      `gorm:"column:user_id" json:"user_id"`
	User         *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Category) TableName() string { return "category" }
