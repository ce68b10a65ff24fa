package oauth

import (
	"context"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/drivers/transport"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/app/services/shared/rest"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/dto/requests"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/utils"
	"net/url"
	"strings"
)

type consumerOAuthClient struct {
	Model      models.ConsumerOAuthModel
	RestClient contracts.RestClient
	Log        contracts.Logger
}

// NewConsumerOAuthClient validates model before anything else; an invalid
// model never reaches the network.
func NewConsumerOAuthClient(model *models.ConsumerOAuthModel, transportConfig transport.Config, logger contracts.Logger) (contracts.ConsumerOAuthClient, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return &consumerOAuthClient{
		Model:      *model,
		RestClient: rest.NewRestClient(transport.NewHTTPClient(transportConfig), logger),
		Log:        logger,
	}, nil
}

func (c *consumerOAuthClient) GetLoginURI() string {
	request := requests.NewRestRequest(constvars.MethodGet, c.Model.LoginURL)
	request.AddQueryParameter(constvars.OAuthParamClientID, c.Model.ClientID).
		AddQueryParameter(constvars.OAuthParamResponseType, constvars.OAuthResponseTypeCode).
		AddQueryParameter(constvars.OAuthParamRedirectURI, c.Model.RedirectURL).
		AddQueryParameter(constvars.OAuthParamScope, c.Model.ScopeURL)
	return request.FullURL()
}

func (c *consumerOAuthClient) GetToken(ctx context.Context, authorisationCode string) (*models.OAuthResponse, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("consumerOAuthClient.GetToken called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingGrantTypeKey, constvars.OAuthGrantTypeAuthorizationCode,
	)

	if strings.TrimSpace(authorisationCode) == "" {
		return nil, exceptions.ErrEmptyOrNull("authorisationCode")
	}

	form := c.baseForm(constvars.OAuthGrantTypeAuthorizationCode)
	form.Set(constvars.OAuthParamRedirectURI, c.Model.RedirectURL)
	form.Set(constvars.OAuthParamFormat, constvars.OAuthConsumerFormat)
	form.Set(constvars.OAuthParamCode, authorisationCode)

	return c.requestToken(ctx, "consumerOAuthClient.GetToken", form)
}

func (c *consumerOAuthClient) GetRefreshToken(ctx context.Context, refreshToken string) (*models.OAuthResponse, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("consumerOAuthClient.GetRefreshToken called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingGrantTypeKey, constvars.OAuthGrantTypeRefreshToken,
	)

	if strings.TrimSpace(refreshToken) == "" {
		return nil, exceptions.ErrEmptyOrNull("refreshToken")
	}

	form := c.baseForm(constvars.OAuthGrantTypeRefreshToken)
	form.Set(constvars.OAuthParamFormat, constvars.OAuthConsumerFormat)
	form.Set(constvars.OAuthParamRefreshToken, refreshToken)

	return c.requestToken(ctx, "consumerOAuthClient.GetRefreshToken", form)
}

func (c *consumerOAuthClient) baseForm(grantType string) url.Values {
	form := url.Values{}
	form.Set(constvars.OAuthParamClientID, c.Model.ClientID)
	form.Set(constvars.OAuthParamClientSecret, c.Model.ClientSecret)
	form.Set(constvars.OAuthParamGrantType, grantType)
	return form
}

// requestToken posts form to the token endpoint. Transport faults are
// returned as they are.
func (c *consumerOAuthClient) requestToken(ctx context.Context, operation string, form url.Values) (*models.OAuthResponse, error) {
	requestID := utils.GetRequestID(ctx)

	request := requests.NewRestRequest(constvars.MethodPost, c.Model.TokenEndpointURL)
	request.SetFormBody(form)

	response, err := c.RestClient.Execute(ctx, request)
	if err != nil {
		c.Log.Error(operation+" error requesting token",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	token, err := decodeOAuthResponse(response.Body)
	if err != nil {
		c.Log.Error(operation+" error decoding token response",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info(operation+" succeeded", constvars.LoggingRequestIDKey, requestID)
	return token, nil
}
