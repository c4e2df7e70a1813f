package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account that can sign in. SUPERADMIN accounts carry no
// company, every other role belongs to exactly one.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex:uq_user_email;not null"`
	FullName  string     `gorm:"column:full_name;type:varchar(150);not null"`
	Password  string     `gorm:"type:varchar(255);not null"`
	Role      string     `gorm:"type:varchar(20);not null"`
	IsActive  bool       `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
