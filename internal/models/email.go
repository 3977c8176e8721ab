package models

// EmailRequest is what the mailer sends: plain + HTML body with an optional
// single attachment.
type EmailRequest struct {
	To          string
	Subject     string
	Content     string
	HTMLContent string
	Attachment  *Attachment
}
