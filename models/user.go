package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Database Models
// ════════════════════════════════════════════════════════════

const (
	RoleAdmin            = "admin"
	RoleInventoryManager = "inventoryManager"
	RoleDeliveryStaff    = "deliveryStaff"
	RoleUser             = "user"

	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
	UserStatusBlocked  = "Blocked"
)

// ActiveWindow is how recently a user must have made a request to count as Active.
const ActiveWindow = 5 * time.Minute

var Roles = []string{RoleAdmin, RoleInventoryManager, RoleDeliveryStaff, RoleUser}

func ValidRole(r string) bool { return contains(Roles, r) }

// IsStaffRole is true for every role that may sign in to the admin.
func IsStaffRole(r string) bool {
	return r == RoleAdmin || r == RoleInventoryManager || r == RoleDeliveryStaff
}

// User is any account: staff that signs in to the admin, or a storefront customer.
type User struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName        string     `json:"first_name" gorm:"not null"`
	LastName         string     `json:"last_name" gorm:"not null"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string     `json:"-" gorm:"not null"`
	Role             string     `json:"role" gorm:"not null;index"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address" gorm:"type:text"`
	ProfileImage     string     `json:"profile_image" gorm:"type:text"`
	TwoFactorEnabled bool       `json:"two_factor_enabled" gorm:"not null;default:false"`
	IsBlocked        bool       `json:"is_blocked" gorm:"not null;default:false;index"`
	BlockReason      string     `json:"block_reason"`
	LastLoginAt      *time.Time `json:"last_login_at"`
	LastActiveAt     *time.Time `json:"last_active_at"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Status is Blocked, Active (seen within ActiveWindow of now) or Inactive.
func (u *User) Status(now time.Time) string {
	if u.IsBlocked {
		return UserStatusBlocked
	}
	if u.LastActiveAt != nil && now.Sub(*u.LastActiveAt) <= ActiveWindow {
		return UserStatusActive
	}
	return UserStatusInactive
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@bestwishes.lk"`
	Password string `json:"password" binding:"required" example:"Secret#2026"`
}

type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,strongpassword"`
	Role      string `json:"role" binding:"required,oneof=admin inventoryManager deliveryStaff user"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type UpdateUserRequest struct {
	FirstName        *string `json:"first_name" binding:"omitempty,min=1"`
	LastName         *string `json:"last_name" binding:"omitempty,min=1"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Role             *string `json:"role" binding:"omitempty,oneof=admin inventoryManager deliveryStaff user"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	ProfileImage     *string `json:"profile_image"`
	TwoFactorEnabled *bool   `json:"two_factor_enabled"`
}

// UpdateProfileRequest is what staff may change about themselves.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name" binding:"omitempty,min=1"`
	LastName     *string `json:"last_name" binding:"omitempty,min=1"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	ProfileImage *string `json:"profile_image"`
}

type UserIDsRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" binding:"required,min=1"`
	Reason  string      `json:"reason"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,strongpassword"`
}

// ════════════════════════════════════════════════════════════
// Response Models
// ════════════════════════════════════════════════════════════

type UserResponse struct {
	ID               uuid.UUID  `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	ProfileImage     string     `json:"profile_image"`
	TwoFactorEnabled bool       `json:"two_factor_enabled"`
	IsBlocked        bool       `json:"is_blocked"`
	BlockReason      string     `json:"block_reason,omitempty"`
	Status           string     `json:"status"`
	LastLoginAt      *time.Time `json:"last_login_at"`
	LastActiveAt     *time.Time `json:"last_active_at"`
	CreatedAt        time.Time  `json:"created_at"`
	OrderCount       int64      `json:"order_count"`
	OrderTotal       float64    `json:"order_total"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Name:             u.FullName(),
		Email:            u.Email,
		Role:             u.Role,
		Phone:            u.Phone,
		Address:          u.Address,
		ProfileImage:     u.ProfileImage,
		TwoFactorEnabled: u.TwoFactorEnabled,
		IsBlocked:        u.IsBlocked,
		BlockReason:      u.BlockReason,
		Status:           u.Status(time.Now()),
		LastLoginAt:      u.LastLoginAt,
		LastActiveAt:     u.LastActiveAt,
		CreatedAt:        u.CreatedAt,
	}
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
