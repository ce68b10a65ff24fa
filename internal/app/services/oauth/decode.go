package oauth

import (
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

func decodeOAuthResponse(body []byte) (*models.OAuthResponse, error) {
	token := new(models.OAuthResponse)
	if err := json.Unmarshal(body, token); err != nil {
		return nil, exceptions.ErrDecodeOAuthResponse(err)
	}
	return token, nil
}
