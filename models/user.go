package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

// User is the read-side view the booking engine needs: identity, role
// and push targets. Account management lives with the identity service.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"`
	FCMTokens []string  `bson:"fcm_tokens,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
