package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	appErrors "github.com/swamyslabs/storefront/internal/errors"
	"github.com/swamyslabs/storefront/internal/models"
)

// Client is what form submissions go through: it packages a callback or
// enquiry into a request against the mail-relay service and interprets the
// outcome. Calls are not retried and no client timeout is imposed; pass an
// http.Client with a timeout to change that.
type Client interface {
	SubmitCallback(ctx context.Context, req *models.CallbackRequest) (*models.RelayAck, error)
	SubmitEnquiry(ctx context.Context, req *models.EnquiryRequest, file *models.Attachment) (*models.RelayAck, error)
}

type relayClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) Client {

	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &relayClient{baseURL: baseURL, httpClient: httpClient}
}

// SubmitCallback posts a callback or lead-capture request. The same checks
// the service runs are applied first, so an obviously invalid form never
// leaves the client.
func (c *relayClient) SubmitCallback(ctx context.Context, req *models.CallbackRequest) (*models.RelayAck, error) {

	if req.IsLeadCapture() {
		if req.PhoneNumber == "" {
			return nil, appErrors.ValidationError("Phone number is required")
		}
	} else {
		if req.ProductName == "" || req.CustomerName == "" || req.PhoneNumber == "" || req.PreferredTime == "" {
			return nil, appErrors.ValidationError("All fields are required")
		}
	}

	if req.PhoneNumber != "" && !models.ValidPhone(req.PhoneNumber) {
		return nil, appErrors.ValidationError("Invalid phone number format")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, appErrors.InternalError("Failed to encode callback request").WithError(err)
	}

	return c.post(ctx, "/api/request-callback", "application/json", bytes.NewReader(body))
}

// SubmitEnquiry posts a detailed enquiry as multipart form data with an
// optional single file attachment.
func (c *relayClient) SubmitEnquiry(ctx context.Context, req *models.EnquiryRequest, file *models.Attachment) (*models.RelayAck, error) {

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"productName":  req.ProductName,
		"materialType": req.MaterialType,
		"thickness":    req.Thickness,
		"quantity":     req.Quantity,
		"message":      req.Message,
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, appErrors.InternalError("Failed to encode enquiry form").WithError(err)
		}
	}

	if file != nil {

		part, err := writer.CreateFormFile("file", file.Filename)
		if err != nil {
			return nil, appErrors.InternalError("Failed to attach file").WithError(err)
		}

		if _, err := part.Write(file.Content); err != nil {
			return nil, appErrors.InternalError("Failed to attach file").WithError(err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, appErrors.InternalError("Failed to encode enquiry form").WithError(err)
	}

	return c.post(ctx, "/api/send-enquiry", writer.FormDataContentType(), &buf)
}

func (c *relayClient) post(ctx context.Context, path, contentType string, body io.Reader) (*models.RelayAck, error) {

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, appErrors.InternalError("Failed to build relay request").WithError(err)
	}

	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, appErrors.UnavailableError("Could not reach the relay service. Please try again.").WithError(err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.UnavailableError("Could not read the relay response. Please try again.").WithError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, c.serviceError(resp.StatusCode, respBody)
	}

	var ack models.RelayAck

	if err := json.Unmarshal(respBody, &ack); err != nil {
		return nil, appErrors.ThirdPartyError("Relay service returned an unreadable response").WithError(err)
	}

	return &ack, nil
}

// serviceError surfaces the service-provided message verbatim.
func (c *relayClient) serviceError(statusCode int, body []byte) *appErrors.AppError {

	var payload struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}

	message := fmt.Sprintf("Relay service returned status %d", statusCode)

	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		message = payload.Error
	}

	var appErr *appErrors.AppError

	if statusCode < 500 {
		appErr = appErrors.BadRequestError(message)
	} else {
		appErr = appErrors.ThirdPartyError(message)
	}

	if payload.Details != "" {
		appErr = appErr.WithDetail(payload.Details)
	}

	return appErr
}
