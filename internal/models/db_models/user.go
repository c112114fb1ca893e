package db_models

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `gorm:"not null" json:"full_name"`
	Hostel       string `gorm:"not null" json:"hostel"`
	IsVerified   bool   `gorm:"not null;default:false" json:"is_verified"`
	IsAdmin      bool   `gorm:"not null;default:false" json:"is_admin"`

	// Trust score, recomputed from ratings targeting this user.
	// AvgRating is stored scaled by 100 (0-500) so two decimal places
	// survive the integer column.
	AvgRating   int `gorm:"not null;default:0" json:"avg_rating"`
	RatingCount int `gorm:"not null;default:0" json:"rating_count"`
}
