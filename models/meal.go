package models

// Meal is one logged meal. Calories is the measure aggregated by the
// weekly summary; the macro fields are optional and default to zero.
type Meal struct {
	Record
	MealName string  `gorm:"not null" json:"meal_name" binding:"required"`
	Calories float64 `gorm:"not null" json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fats     float64 `json:"fats" binding:"gte=0"`
}
