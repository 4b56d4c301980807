package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventOrderCreated = "order.created"

type OrderCreatedEvent struct {
	OrderID   string    `json:"order_id"`
	Number    string    `json:"number"`
	Timestamp time.Time `json:"timestamp"`
}

type OrderStatusAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID   string             `bson:"order_id" json:"order_id"`
	OldStatus OrderStatus        `bson:"old_status" json:"old_status"`
	NewStatus OrderStatus        `bson:"new_status" json:"new_status"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

type ChannelOutcome struct {
	Attempted bool   `bson:"attempted" json:"attempted"`
	Success   bool   `bson:"success" json:"success"`
	Error     string `bson:"error,omitempty" json:"error,omitempty"`
}

type NotificationAudit struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID          string             `bson:"order_id" json:"order_id"`
	AdminEmail       ChannelOutcome     `bson:"admin_email" json:"admin_email"`
	AdminWhatsApp    ChannelOutcome     `bson:"admin_whatsapp" json:"admin_whatsapp"`
	CustomerEmail    ChannelOutcome     `bson:"customer_email" json:"customer_email"`
	CustomerWhatsApp ChannelOutcome     `bson:"customer_whatsapp" json:"customer_whatsapp"`
	Timestamp        time.Time          `bson:"timestamp" json:"timestamp"`
}
