package notify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yuhyam95/meenos-menu/internal/domain"
)

// formatNaira renders an amount the way the storefront does: naira sign,
// comma-grouped integer part, kobo only when present.
func formatNaira(amount float64) string {
	d := decimal.NewFromFloat(amount)
	whole := d.IntPart()
	frac := d.Sub(decimal.NewFromInt(whole))

	sign := ""
	if whole < 0 {
		sign = "-"
		whole = -whole
	}

	digits := fmt.Sprintf("%d", whole)
	var grouped []string
	for len(digits) > 3 {
		grouped = append([]string{digits[len(digits)-3:]}, grouped...)
		digits = digits[:len(digits)-3]
	}
	grouped = append([]string{digits}, grouped...)

	out := "₦" + sign + strings.Join(grouped, ",")
	if !frac.IsZero() {
		out += strings.TrimPrefix(frac.Abs().StringFixed(2), "0")
	}
	return out
}

func itemLines(order *domain.Order) string {
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		sub := item.Price * float64(item.Quantity)
		lines = append(lines, fmt.Sprintf("• %s x%d - %s", item.Name, item.Quantity, formatNaira(sub)))
	}
	return strings.Join(lines, "\n")
}

func adminOrderEmail(order *domain.Order) (subject, html, text string) {
	subject = fmt.Sprintf("New Order Received - %s", order.Number)

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2>New Order Received!</h2>`)
	b.WriteString(`<h3>Order Details</h3>`)
	fmt.Fprintf(&b, `<p><strong>Order ID:</strong> %s</p>`, order.Number)
	fmt.Fprintf(&b, `<p><strong>Customer:</strong> %s</p>`, order.Customer.Name)
	fmt.Fprintf(&b, `<p><strong>Phone:</strong> %s</p>`, order.Customer.Phone)
	fmt.Fprintf(&b, `<p><strong>Order Type:</strong> %s</p>`, order.OrderType)
	fmt.Fprintf(&b, `<p><strong>Status:</strong> %s</p>`, order.Status)
	fmt.Fprintf(&b, `<p><strong>Total:</strong> %s</p>`, formatNaira(order.Total))
	if order.Customer.Address != "" {
		fmt.Fprintf(&b, `<p><strong>Delivery Address:</strong> %s</p>`, order.Customer.Address)
	}
	if order.Notes != "" {
		fmt.Fprintf(&b, `<p><strong>Notes:</strong> %s</p>`, order.Notes)
	}
	b.WriteString(`<h3>Items Ordered</h3><ul>`)
	for _, item := range order.Items {
		sub := item.Price * float64(item.Quantity)
		fmt.Fprintf(&b, `<li>%s x%d - %s</li>`, item.Name, item.Quantity, formatNaira(sub))
	}
	b.WriteString(`</ul>`)
	b.WriteString(`<p><strong>Action Required:</strong> Please check your admin panel to process this order.</p>`)
	b.WriteString(`</div>`)
	html = b.String()

	text = fmt.Sprintf(`Order Details:
- Order ID: %s
- Customer: %s
- Phone: %s
- Order Type: %s
- Status: %s
- Total: %s

Items:
%s`,
		order.Number, order.Customer.Name, order.Customer.Phone,
		order.OrderType, order.Status, formatNaira(order.Total), itemLines(order))
	if order.Customer.Address != "" {
		text += "\n\nDelivery Address: " + order.Customer.Address
	}
	if order.Notes != "" {
		text += "\nNotes: " + order.Notes
	}

	return subject, html, text
}

func customerOrderEmail(order *domain.Order) (subject, html, text string) {
	subject = fmt.Sprintf("Order Confirmation - %s", order.Number)

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2>Thank you for your order!</h2>`)
	fmt.Fprintf(&b, `<p>Dear %s,</p>`, order.Customer.Name)
	b.WriteString(`<p>We've received your order and will process it shortly. Here are the details:</p>`)
	b.WriteString(`<h3>Order Details</h3>`)
	fmt.Fprintf(&b, `<p><strong>Order ID:</strong> %s</p>`, order.Number)
	fmt.Fprintf(&b, `<p><strong>Order Type:</strong> %s</p>`, order.OrderType)
	fmt.Fprintf(&b, `<p><strong>Total:</strong> %s</p>`, formatNaira(order.Total))
	fmt.Fprintf(&b, `<p><strong>Status:</strong> %s</p>`, order.Status)
	if order.Customer.Address != "" {
		fmt.Fprintf(&b, `<p><strong>Delivery Address:</strong> %s</p>`, order.Customer.Address)
	}
	b.WriteString(`<h3>Items Ordered</h3><ul>`)
	for _, item := range order.Items {
		sub := item.Price * float64(item.Quantity)
		fmt.Fprintf(&b, `<li>%s x%d - %s</li>`, item.Name, item.Quantity, formatNaira(sub))
	}
	b.WriteString(`</ul>`)
	b.WriteString(`<p>We'll contact you soon to confirm your order. Thank you for choosing Meenos!</p>`)
	b.WriteString(`</div>`)
	html = b.String()

	text = fmt.Sprintf(`Dear %s,

We've received your order and will process it shortly.

Order ID: %s
Order Type: %s
Total: %s
Status: %s

Items:
%s`,
		order.Customer.Name, order.Number, order.OrderType,
		formatNaira(order.Total), order.Status, itemLines(order))

	return subject, html, text
}

func adminOrderMessage(order *domain.Order) string {
	msg := fmt.Sprintf(`*NEW ORDER RECEIVED!*

*Order ID:* %s
*Customer:* %s
*Phone:* %s
*Order Type:* %s
*Status:* %s
*Total:* %s
*Time:* %s

*Items:*
%s`,
		order.Number, order.Customer.Name, order.Customer.Phone,
		order.OrderType, order.Status, formatNaira(order.Total),
		order.CreatedAt.Format("02 Jan 2006 15:04"), itemLines(order))

	if order.Customer.Address != "" {
		msg += "\n\n*Delivery Address:* " + order.Customer.Address
	}
	if order.Notes != "" {
		msg += "\n*Notes:* " + order.Notes
	}

	msg += "\n\nPlease check your admin panel to process this order."
	return msg
}

func customerOrderMessage(order *domain.Order) string {
	msg := fmt.Sprintf(`*Thank you for your order!*

Dear %s,

We've received your order and will process it shortly.

*Order ID:* %s
*Order Type:* %s
*Total:* %s
*Status:* %s`,
		order.Customer.Name, order.Number, order.OrderType,
		formatNaira(order.Total), order.Status)

	if order.Customer.Address != "" {
		msg += "\n\n*Delivery Address:* " + order.Customer.Address
	}
	if order.Notes != "" {
		msg += "\n*Notes:* " + order.Notes
	}

	msg += "\n\nWe'll contact you soon to confirm your order. Thank you for choosing Meenos!"
	return msg
}
