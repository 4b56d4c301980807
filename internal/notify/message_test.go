package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yuhyam95/meenos-menu/internal/domain"
)

func TestFormatNaira(t *testing.T) {
	assert.Equal(t, "₦0", formatNaira(0))
	assert.Equal(t, "₦950", formatNaira(950))
	assert.Equal(t, "₦1,500", formatNaira(1500))
	assert.Equal(t, "₦1,234,567", formatNaira(1234567))
	assert.Equal(t, "₦2,500.50", formatNaira(2500.50))
}

func TestAdminOrderEmailContents(t *testing.T) {
	order := &domain.Order{
		Number: "ORD-ABC12345",
		Customer: domain.Customer{
			Name:    "Ada",
			Phone:   "+2348000000001",
			Address: "5 Allen Avenue, Ikeja",
		},
		Items:     []domain.OrderLine{{Name: "Jollof Rice", Price: 2500, Quantity: 2}},
		Total:     6000,
		Status:    domain.OrderStatusPending,
		OrderType: domain.OrderTypeDelivery,
		Notes:     "no onions",
		CreatedAt: time.Now(),
	}

	subject, html, text := adminOrderEmail(order)

	assert.Equal(t, "New Order Received - ORD-ABC12345", subject)
	assert.Contains(t, html, "Jollof Rice x2")
	assert.Contains(t, html, "₦6,000")
	assert.Contains(t, html, "5 Allen Avenue, Ikeja")
	assert.Contains(t, text, "ORD-ABC12345")
	assert.Contains(t, text, "Notes: no onions")
}

func TestCustomerOrderMessageOmitsEmptySections(t *testing.T) {
	order := &domain.Order{
		Number:    "ORD-ABC12345",
		Customer:  domain.Customer{Name: "Ada", Phone: "+2348000000001"},
		Items:     []domain.OrderLine{{Name: "Jollof Rice", Price: 2500, Quantity: 1}},
		Total:     2500,
		Status:    domain.OrderStatusPending,
		OrderType: domain.OrderTypePickup,
		CreatedAt: time.Now(),
	}

	msg := customerOrderMessage(order)

	assert.Contains(t, msg, "Dear Ada")
	assert.NotContains(t, msg, "Delivery Address")
	assert.NotContains(t, msg, "Notes")
}
