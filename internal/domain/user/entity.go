package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   *string   `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the one-per-user career profile; it does not exist until the
// user writes it the first time.
type Profile struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Experience        *string   `json:"experience"`
	Skills            []string  `json:"skills"`
	Education         *string   `json:"education"`
	PreferredSalary   *string   `json:"preferred_salary"`
	PreferredLocation *string   `json:"preferred_location"`
	WorkMode          *string   `json:"work_mode"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProfilePatch carries only the fields the caller supplied; nil means
// "leave as is".
type ProfilePatch struct {
	Experience        *string  `json:"experience"`
	Skills            []string `json:"skills"`
	Education         *string  `json:"education"`
	PreferredSalary   *string  `json:"preferred_salary"`
	PreferredLocation *string  `json:"preferred_location"`
	WorkMode          *string  `json:"work_mode"`
}
