package domain

import "time"

type User struct {
	ID        int       `json:"id" db:"id"`
	BirthDate time.Time `json:"birth_date" db:"birth_date"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Age returns the user's age in full years.
func (u *User) Age() int {
	now := time.Now()
	age := now.Year() - u.BirthDate.Year()
	if now.YearDay() < u.BirthDate.YearDay() {
		age--
	}
	return age
}
