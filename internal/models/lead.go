package models

import (
	"regexp"
	"strings"
)

// LeadCaptureSentinel is the product name the lead-capture popup submits.
// The shared callback endpoint uses it (or the absence of both productName
// and preferredTime) to pick the phone-only validation branch. A product
// genuinely named like this would misclassify; the heuristic is kept as the
// live site behaves.
const LeadCaptureSentinel = "Lead Capture Popup"

type CallbackRequest struct {
	ProductName   string `json:"productName,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
	PhoneNumber   string `json:"phoneNumber" validate:"required"`
	PreferredTime string `json:"preferredTime,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	SourcePage    string `json:"sourcePage,omitempty"`
}

// IsLeadCapture reports whether the request should be validated as a
// phone-only lead rather than a full callback booking.
func (r *CallbackRequest) IsLeadCapture() bool {
	return (r.ProductName == "" && r.PreferredTime == "") || r.ProductName == LeadCaptureSentinel
}

type EnquiryRequest struct {
	ProductName  string `json:"productName" validate:"required"`
	MaterialType string `json:"materialType" validate:"required"`
	Thickness    string `json:"thickness" validate:"required"`
	Quantity     string `json:"quantity" validate:"required"`
	Message      string `json:"message,omitempty"`
}

// Attachment is a single file forwarded with an enquiry email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// RelayAck is the success body returned by the relay endpoints.
type RelayAck struct {
	Message string `json:"message"`
}

// Optional country prefix (1-4 digits, optionally with +), then exactly
// 10 digits.
var phonePattern = regexp.MustCompile(`^(\+?\d{1,4}[- ]?)?\d{10}$`)

// ValidPhone strips spaces and hyphens and checks the relay's expected
// phone shape.
func ValidPhone(phone string) bool {
	stripped := strings.ReplaceAll(phone, " ", "")
	stripped = strings.ReplaceAll(stripped, "-", "")

	return phonePattern.MatchString(stripped)
}
