package model

import "gorm.io/datatypes"

// Grades are admin-curated 0-20 scores keyed by slot names such as "test1".
// They are not derived from submissions.
type Grades map[string]float64

type User struct {
	ID        string                     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FirstName string                     `gorm:"not null" json:"firstName"`
	LastName  string                     `gorm:"not null" json:"lastName"`
	Email     string                     `gorm:"not null;uniqueIndex" json:"email"`
	Role      Role                       `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
	Grades    datatypes.JSONType[Grades] `gorm:"type:jsonb;not null;default:'{}'" json:"grades"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
