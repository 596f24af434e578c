package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jander15/BathroomPass-sub000/models"
)

func mapResponse(resp *resty.Response) (models.Response, error) {
	return classifyResponse(resp.StatusCode(), resp.Body())
}

// classifyResponse turns a raw status and body into an envelope or an error:
//   - non-2xx with an expiry marker in the body: ErrSessionExpired;
//   - other non-2xx: *HTTPError;
//   - 2xx envelope with result "error" and an expiry marker: ErrSessionExpired;
//   - any other 2xx JSON object: returned as is, domain errors included.
func classifyResponse(status int, body []byte) (models.Response, error) {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		text := strings.TrimSpace(string(body))
		if models.IsExpiryMessage(text) {
			return nil, fmt.Errorf("%w: http %d: %s", ErrSessionExpired, status, text)
		}
		return nil, &HTTPError{Status: status, Body: text}
	}

	var envelope models.Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope == nil {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	if envelope.IsError() && models.IsExpiryMessage(envelope.ErrorMessage()) {
		return nil, fmt.Errorf("%w: %s", ErrSessionExpired, envelope.ErrorMessage())
	}

	return envelope, nil
}
