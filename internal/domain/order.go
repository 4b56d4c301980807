package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

type Customer struct {
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

type OrderLine struct {
	ItemID   string  `bson:"item_id" json:"item_id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number      string             `bson:"number" json:"number"`
	Customer    Customer           `bson:"customer" json:"customer"`
	Items       []OrderLine        `bson:"items" json:"items"`
	Subtotal    float64            `bson:"subtotal" json:"subtotal"`
	DeliveryFee float64            `bson:"delivery_fee" json:"delivery_fee"`
	Total       float64            `bson:"total" json:"total"`
	Status      OrderStatus        `bson:"status" json:"status"`
	OrderType   OrderType          `bson:"order_type" json:"order_type"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	// PaymentAcknowledgedAt is set once the customer confirms the bank
	// transfer; acknowledging again is a no-op.
	PaymentAcknowledgedAt *time.Time `bson:"payment_acknowledged_at,omitempty" json:"payment_acknowledged_at,omitempty"`
	CreatedAt             time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `bson:"updated_at" json:"updated_at"`
}
