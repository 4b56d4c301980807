package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoreSetting is a singleton document holding the bank-transfer display
// fields shown at checkout plus the public contact fields.
type StoreSetting struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BankName       string             `bson:"bank_name" json:"bank_name"`
	AccountName    string             `bson:"account_name" json:"account_name"`
	AccountNumber  string             `bson:"account_number" json:"account_number"`
	HeaderImageURL string             `bson:"header_image_url" json:"header_image_url"`
	ContactPhone   string             `bson:"contact_phone" json:"contact_phone"`
	ContactEmail   string             `bson:"contact_email" json:"contact_email"`
	InstagramURL   string             `bson:"instagram_url" json:"instagram_url"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleUser  UserRole = "User"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Role         UserRole           `bson:"role" json:"role"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
