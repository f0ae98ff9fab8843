// Package notify builds the pre-filled WhatsApp hand-off links used for
// checkout and appointment confirmation. It only formats text and URLs;
// nothing is sent, the caller opens the link.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
)

// StoreInfo carries the public store details included in every message
type StoreInfo struct {
	Name           string
	Email          string
	Website        string
	WhatsAppNumber string
	TaxRate        float64
}

// OrderMessage formats the cart contents as an order summary with an
// itemized list, tax line and store details.
func OrderMessage(info StoreInfo, items []model.CartItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *New Order from %s*\n\n", info.Website)
	b.WriteString("📋 *Order Details:*\n")

	var subtotal float64
	for i, item := range items {
		lineTotal := item.Price * float64(item.Quantity)
		subtotal += lineTotal
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Price: %s\n", formatCurrency(item.Price))
		fmt.Fprintf(&b, "   Quantity: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Subtotal: %s\n\n", formatCurrency(lineTotal))
	}

	tax := subtotal * info.TaxRate
	b.WriteString("💰 *Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", formatCurrency(subtotal))
	fmt.Fprintf(&b, "Tax (%.0f%%): %s\n", info.TaxRate*100, formatCurrency(tax))
	fmt.Fprintf(&b, "*Total: %s*\n\n", formatCurrency(subtotal+tax))

	b.WriteString("🏪 *Store Details:*\n")
	fmt.Fprintf(&b, "%s\n", info.Name)
	fmt.Fprintf(&b, "📧 %s\n", info.Email)
	fmt.Fprintf(&b, "🌐 %s\n\n", info.Website)

	b.WriteString("Please confirm this order and provide payment instructions.")
	return b.String()
}

// AppointmentMessage formats a booking as an appointment request
func AppointmentMessage(appointment model.Appointment) string {
	message := appointment.Message
	if message == "" {
		message = "No additional message provided"
	}

	return fmt.Sprintf(`🗓️ *NEW APPOINTMENT REQUEST*

👤 *Customer Details:*
Name: %s
Email: %s
Phone: %s

📅 *Appointment Details:*
Date: %s
Time: %s
Purpose: %s

💬 *Additional Message:*
%s

---
Please confirm this appointment request.`,
		appointment.Name,
		appointment.Email,
		appointment.Phone,
		appointment.Date.Format("Monday, January 2, 2006"),
		appointment.Time,
		formatPurpose(appointment.Purpose),
		message,
	)
}

// Link returns the wa.me URL that opens a chat with the store number and
// the given message pre-filled.
func Link(number, message string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, escaped)
}

func formatPurpose(p model.AppointmentPurpose) string {
	return strings.ToUpper(strings.ReplaceAll(string(p), "-", " "))
}

func formatCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
