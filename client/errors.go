package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/archie46/OpenShop/pkg/errors"
)

// apiErrorBody mirrors the error payload the OpenShop backend returns for
// non-2xx responses.
type apiErrorBody struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}

// parseResponseError reads the body of a non-2xx HTTP response and translates
// it into an AppError. If the body matches the backend's error format, the
// server-provided message is preserved verbatim; otherwise a generic message
// for the status class is used.
//
// The caller should only invoke this when resp.StatusCode indicates an error.
// The response body is fully consumed and closed.
func parseResponseError(resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return fmt.Errorf("backend returned status %d (failed to read body: %w)", resp.StatusCode, err)
	}

	var body apiErrorBody
	if json.Unmarshal(bodyBytes, &body) == nil && body.Message != "" {
		return mapStatusError(resp.StatusCode, body.Message)
	}

	return mapStatusError(resp.StatusCode, "")
}

// mapStatusError translates a backend HTTP status code and optional message
// into an AppError preserving the error semantics.
func mapStatusError(status int, message string) error {
	switch {
	case status == http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return &apperrors.AppError{
			Code:    "NOT_FOUND",
			Message: message,
			Status:  status,
			Err:     apperrors.ErrNotFound,
		}
	case status == http.StatusBadRequest:
		if message == "" {
			message = "invalid request"
		}
		return apperrors.InvalidInput(message)
	case status == http.StatusUnauthorized:
		if message == "" {
			message = "authentication required"
		}
		return apperrors.Unauthorized(message)
	case status == http.StatusForbidden:
		if message == "" {
			message = "access denied"
		}
		return apperrors.Forbidden(message)
	case status == http.StatusConflict:
		if message == "" {
			message = "request conflicts with current state"
		}
		return apperrors.Conflict(message)
	case status == http.StatusUnprocessableEntity:
		if message == "" {
			message = "request could not be processed"
		}
		return apperrors.PaymentFailed(message)
	case status >= 400 && status < 500 && message != "":
		return &apperrors.AppError{
			Code:    "REQUEST_REJECTED",
			Message: message,
			Status:  status,
			Err:     apperrors.ErrInvalidInput,
		}
	default:
		// 5xx or a malformed response: generic failure, never the raw body.
		return &apperrors.AppError{
			Code:    "BACKEND_ERROR",
			Message: "the server could not complete the request",
			Status:  status,
			Err:     apperrors.ErrInternal,
		}
	}
}
