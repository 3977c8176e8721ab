package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/swamyslabs/storefront/internal/api/middleware"
	"github.com/swamyslabs/storefront/internal/metrics"
	"github.com/swamyslabs/storefront/internal/models"
	"github.com/swamyslabs/storefront/internal/utils"
	"github.com/swamyslabs/storefront/internal/utils/response"
	"github.com/swamyslabs/storefront/pkg/mailer"
)

// Attachments are held in memory before forwarding.
const maxEnquiryBytes = 10 << 20

// EnquiryHandler relays a detailed product enquiry, optionally with one
// uploaded file forwarded as an email attachment.
type EnquiryHandler struct {
	emailService mailer.EmailService
	inbox        string
	validator    *validator.Validate
}

func NewEnquiryHandler(emailService mailer.EmailService, inbox string) *EnquiryHandler {
	return &EnquiryHandler{
		emailService: emailService,
		inbox:        inbox,
		validator:    validator.New(),
	}
}

func (h *EnquiryHandler) SendEnquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := r.ParseMultipartForm(maxEnquiryBytes); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid form data")
			return
		}

		req := models.EnquiryRequest{
			ProductName:  r.FormValue("productName"),
			MaterialType: r.FormValue("materialType"),
			Thickness:    r.FormValue("thickness"),
			Quantity:     r.FormValue("quantity"),
			Message:      r.FormValue("message"),
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			response.Error(w, http.StatusBadRequest, "All fields are required")
			return
		}

		attachment, err := readAttachment(r)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Could not read the uploaded file")
			return
		}

		plain, html := buildEnquiryEmail(&req, attachment != nil)

		email := &models.EmailRequest{
			To:          h.inbox,
			Subject:     "New Enquiry: " + req.ProductName + " - " + req.MaterialType,
			Content:     plain,
			HTMLContent: html,
			Attachment:  attachment,
		}

		if err := h.emailService.Send(r.Context(), email); err != nil {
			logger.Error("Failed to relay enquiry", "error", err.Error())
			metrics.RecordRelayEmail("enquiry", false)
			response.Error(w, http.StatusInternalServerError, "Failed to process enquiry")
			return
		}

		metrics.RecordRelayEmail("enquiry", true)
		logger.Info("Enquiry relayed", "product", req.ProductName, "attachment", attachment != nil)
		response.Success(w, "Enquiry sent successfully")

	}
}

// readAttachment pulls the optional single "file" part out of the form.
func readAttachment(r *http.Request) (*models.Attachment, error) {

	file, header, err := r.FormFile("file")
	if err != nil {

		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, err
	}

	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &models.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
