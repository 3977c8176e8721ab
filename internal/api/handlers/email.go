package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/swamyslabs/storefront/internal/models"
)

// User-submitted text ends up interpolated into an HTML email body, so every
// field is stripped of markup first.
var sanitizer = bluemonday.StrictPolicy()

const emailFooter = `<br/><p style="font-size: 12px; color: #888;">This email was sent from the Swamy Slabs website.</p>`

func callbackSubject(req *models.CallbackRequest, isLead bool) string {

	if isLead {

		contact := req.Email
		if contact == "" {
			contact = req.PhoneNumber
		}

		return "New Lead Captured: " + contact
	}

	return fmt.Sprintf("New Callback Request: %s - %s", req.ProductName, req.CustomerName)
}

func buildCallbackEmail(req *models.CallbackRequest, isLead bool) (plain, html string) {

	heading := "New Callback Request"
	if isLead {
		heading = "New Lead Captured"
	}

	var b strings.Builder

	fmt.Fprintf(&b, `<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">`)
	fmt.Fprintf(&b, `<h2 style="color: #000; border-bottom: 2px solid #f0f0f0; padding-bottom: 10px;">%s</h2>`, heading)

	if req.ProductName != "" {
		fmt.Fprintf(&b, `<p><strong>Product:</strong> %s</p>`, sanitizer.Sanitize(req.ProductName))
	}

	if req.CustomerName != "" {
		fmt.Fprintf(&b, `<p><strong>Customer Name:</strong> %s</p>`, sanitizer.Sanitize(req.CustomerName))
	}

	phone := sanitizer.Sanitize(req.PhoneNumber)
	fmt.Fprintf(&b, `<p><strong>Phone Number:</strong> <a href="tel:%s">%s</a></p>`, phone, phone)

	if req.Email != "" {
		email := sanitizer.Sanitize(req.Email)
		fmt.Fprintf(&b, `<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>`, email, email)
	}

	if req.PreferredTime != "" {
		fmt.Fprintf(&b, `<p><strong>Preferred Time:</strong> %s</p>`, formatPreferredTime(req.PreferredTime))
	}

	if req.SourcePage != "" {
		page := sanitizer.Sanitize(req.SourcePage)
		fmt.Fprintf(&b, `<p><strong>Source Page:</strong> <a href="%s">%s</a></p>`, page, page)
	}

	b.WriteString(emailFooter)
	b.WriteString(`</div>`)

	plainLines := []string{heading}

	if req.ProductName != "" {
		plainLines = append(plainLines, "Product: "+req.ProductName)
	}

	if req.CustomerName != "" {
		plainLines = append(plainLines, "Customer Name: "+req.CustomerName)
	}

	plainLines = append(plainLines, "Phone Number: "+req.PhoneNumber)

	if req.Email != "" {
		plainLines = append(plainLines, "Email: "+req.Email)
	}

	if req.PreferredTime != "" {
		plainLines = append(plainLines, "Preferred Time: "+req.PreferredTime)
	}

	if req.SourcePage != "" {
		plainLines = append(plainLines, "Source Page: "+req.SourcePage)
	}

	return strings.Join(plainLines, "\n"), b.String()
}

func buildEnquiryEmail(req *models.EnquiryRequest, hasAttachment bool) (plain, html string) {

	message := req.Message
	if message == "" {
		message = "None"
	}

	var b strings.Builder

	fmt.Fprintf(&b, `<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">`)
	b.WriteString(`<h2 style="color: #000; border-bottom: 2px solid #f0f0f0; padding-bottom: 10px;">New Detailed Enquiry</h2>`)
	fmt.Fprintf(&b, `<p><strong>Product:</strong> %s</p>`, sanitizer.Sanitize(req.ProductName))
	fmt.Fprintf(&b, `<p><strong>Material:</strong> %s</p>`, sanitizer.Sanitize(req.MaterialType))
	fmt.Fprintf(&b, `<p><strong>Thickness:</strong> %s</p>`, sanitizer.Sanitize(req.Thickness))
	fmt.Fprintf(&b, `<p><strong>Quantity:</strong> %s</p>`, sanitizer.Sanitize(req.Quantity))
	b.WriteString(`<p><strong>Additional Notes:</strong></p>`)
	fmt.Fprintf(&b, `<p style="background: #f9f9f9; padding: 10px; border-radius: 5px;">%s</p>`, sanitizer.Sanitize(message))

	if hasAttachment {
		b.WriteString(`<p><strong>Attachment included.</strong></p>`)
	}

	b.WriteString(emailFooter)
	b.WriteString(`</div>`)

	plainLines := []string{
		"New Detailed Enquiry",
		"Product: " + req.ProductName,
		"Material: " + req.MaterialType,
		"Thickness: " + req.Thickness,
		"Quantity: " + req.Quantity,
		"Additional Notes: " + message,
	}

	if hasAttachment {
		plainLines = append(plainLines, "Attachment included.")
	}

	return strings.Join(plainLines, "\n"), b.String()
}

// formatPreferredTime renders an RFC 3339 timestamp the way the form sends
// it; anything else passes through sanitized.
func formatPreferredTime(value string) string {

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format("2 Jan 2006, 3:04 PM")
	}

	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t.Format("2 Jan 2006, 3:04 PM")
	}

	return sanitizer.Sanitize(value)
}
