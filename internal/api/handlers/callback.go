package handlers

import (
	"net/http"

	"github.com/swamyslabs/storefront/internal/api/middleware"
	"github.com/swamyslabs/storefront/internal/metrics"
	"github.com/swamyslabs/storefront/internal/models"
	"github.com/swamyslabs/storefront/internal/utils"
	"github.com/swamyslabs/storefront/internal/utils/response"
	"github.com/swamyslabs/storefront/pkg/mailer"
)

// CallbackHandler turns callback and lead-capture submissions into an email
// to the sales inbox. Both flows share one endpoint; the request itself
// decides which validation branch applies.
type CallbackHandler struct {
	emailService mailer.EmailService
	inbox        string
}

func NewCallbackHandler(emailService mailer.EmailService, inbox string) *CallbackHandler {
	return &CallbackHandler{
		emailService: emailService,
		inbox:        inbox,
	}
}

func (h *CallbackHandler) RequestCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CallbackRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		isLead := req.IsLeadCapture()

		// Case 1: lead capture needs only a phone number.
		// Case 2: standard callback needs product, name, phone and time.
		if isLead {
			if req.PhoneNumber == "" {
				response.Error(w, http.StatusBadRequest, "Phone number is required")
				return
			}
		} else {
			if req.ProductName == "" || req.CustomerName == "" || req.PhoneNumber == "" || req.PreferredTime == "" {
				response.Error(w, http.StatusBadRequest, "All fields are required")
				return
			}
		}

		if req.PhoneNumber != "" && !models.ValidPhone(req.PhoneNumber) {
			response.Error(w, http.StatusBadRequest, "Invalid phone number format")
			return
		}

		plain, html := buildCallbackEmail(&req, isLead)

		email := &models.EmailRequest{
			To:          h.inbox,
			Subject:     callbackSubject(&req, isLead),
			Content:     plain,
			HTMLContent: html,
		}

		kind := "callback"
		if isLead {
			kind = "lead"
		}

		if err := h.emailService.Send(r.Context(), email); err != nil {
			logger.Error("Failed to relay callback request", "error", err.Error())
			metrics.RecordRelayEmail(kind, false)
			response.ErrorWithDetails(w, http.StatusInternalServerError, "Failed to process request", err.Error())
			return
		}

		metrics.RecordRelayEmail(kind, true)
		logger.Info("Callback request relayed", "leadCapture", isLead)
		response.Success(w, "Request received successfully")

	}
}
