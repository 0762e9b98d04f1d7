package kratos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	apperrors "admin-service/app/utils/errors"
)

var errSessionWithoutIdentity = errors.New("session has no identity attached")

// transformKratosError maps Kratos API failures onto the application's
// error vocabulary. Conflicting accounts (duplicate email) surface as
// AlreadyExists with the underlying message preserved; missing identities
// as NotFound; session failures as Unauthenticated; anything else as
// Internal.
func transformKratosError(err error, httpResp *http.Response, operation string) error {
	message := extractKratosMessage(err)

	switch getHTTPStatus(httpResp) {
	case http.StatusConflict:
		return apperrors.NewAlreadyExists(message, err).
			WithContext("operation", operation)
	case http.StatusNotFound:
		return apperrors.Wrap(apperrors.ErrCodeNotFound, message, err).
			WithContext("operation", operation)
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.Wrap(apperrors.ErrCodeUnauthenticated, message, err).
			WithContext("operation", operation)
	case http.StatusBadRequest:
		// Kratos reports duplicate credentials on identity creation as a
		// 400 with a conflict message rather than a 409.
		if isConflictMessage(message) {
			return apperrors.NewAlreadyExists(message, err).
				WithContext("operation", operation)
		}
	}

	return apperrors.Wrapf(apperrors.ErrCodeInternal, err, "identity service %s failed", operation).
		WithContext("operation", operation)
}

// extractKratosMessage pulls the most specific human-readable message out
// of a Kratos error response body.
func extractKratosMessage(err error) string {
	var kratosErr *kratosclient.GenericOpenAPIError
	if !errors.As(err, &kratosErr) {
		return err.Error()
	}

	var errorResp map[string]interface{}
	if jsonErr := json.Unmarshal(kratosErr.Body(), &errorResp); jsonErr != nil {
		return err.Error()
	}

	if errorObj, ok := errorResp["error"].(map[string]interface{}); ok {
		if reason, ok := errorObj["reason"].(string); ok && reason != "" {
			return reason
		}
		if message, ok := errorObj["message"].(string); ok && message != "" {
			return message
		}
	}
	if message, ok := errorResp["message"].(string); ok && message != "" {
		return message
	}

	return err.Error()
}

func isConflictMessage(message string) bool {
	lowered := strings.ToLower(message)
	return strings.Contains(lowered, "already exists") ||
		strings.Contains(lowered, "conflict") ||
		strings.Contains(lowered, "duplicate")
}
