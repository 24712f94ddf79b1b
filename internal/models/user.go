package models

import "time"

const (
	RoleUser         = "User"
	RoleAdmin        = "Admin"
	RolePendingAdmin = "pending_admin"
	RoleSuperAdmin   = "super_admin"
)

const (
	StatusApproved = "approved"
	StatusPending  = "pending"
	StatusDeclined = "declined"
)

type User struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Username     string     `bson:"username" json:"username"`
	Email        string     `bson:"email" json:"email"`
	Gender       string     `bson:"gender" json:"gender"`
	Role         string     `bson:"role" json:"role"`
	Password     string     `bson:"password" json:"-"`
	ProfilePhoto []byte     `bson:"profile_photo" json:"-"`
	Status       string     `bson:"status" json:"status"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	ApprovedAt   *time.Time `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	DeclinedAt   *time.Time `bson:"declined_at,omitempty" json:"declined_at,omitempty"`
}

// IsAdmin reports whether the user may access admin pages. Super admins
// keep admin access on top of their own panel.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
