package oauth

import (
	"context"
	"errors"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/drivers/transport"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/app/services/shared/jwtmanager"
	"mhr-fhir-client/internal/app/services/shared/rest"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/dto/requests"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/utils"
	"net/url"
)

type providerOAuthClient struct {
	Model      models.ProviderOAuthModel
	RestClient contracts.RestClient
	JWTManager *jwtmanager.JWTManager
	Log        contracts.Logger
}

// NewProviderOAuthClient presents the model's certificate on every
// connection to the token endpoint.
func NewProviderOAuthClient(model *models.ProviderOAuthModel, transportConfig transport.Config, logger contracts.Logger) (contracts.ProviderOAuthClient, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	transportConfig.ClientCertificate = model.Certificate

	return &providerOAuthClient{
		Model:      *model,
		RestClient: rest.NewRestClient(transport.NewHTTPClient(transportConfig), logger),
		JWTManager: jwtmanager.NewJWTManager(logger),
		Log:        logger,
	}, nil
}

// GetProviderToken exchanges a signed assertion for an access token on
// behalf of the clinician identified by userID (their HPI-I).
func (c *providerOAuthClient) GetProviderToken(ctx context.Context, userID, userName string) (*models.OAuthResponse, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("providerOAuthClient.GetProviderToken called",
		constvars.LoggingRequestIDKey, requestID,
		constvars.LoggingGrantTypeKey, constvars.OAuthGrantTypeJWTBearer,
	)

	if utils.IsBlank(userName) {
		return nil, exceptions.ErrEmptyOrNull("userName")
	}

	assertion, err := c.JWTManager.CreateToken(ctx, &jwtmanager.CreateTokenInput{
		ClientID:     c.Model.ClientID,
		ClientSecret: c.Model.ClientSecret,
		RedirectURL:  c.Model.RedirectURL,
		Hpio:         c.Model.Hpio,
		UserID:       userID,
	})
	if err != nil {
		c.Log.Error("providerOAuthClient.GetProviderToken error creating assertion",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	form := url.Values{}
	form.Set(constvars.OAuthParamGrantType, constvars.OAuthGrantTypeJWTBearer)
	form.Set(constvars.OAuthParamAssertion, assertion.Token)
	form.Set(constvars.OAuthParamFormat, constvars.OAuthProviderFormat)
	form.Set(constvars.OAuthParamUserName, userName)
	form.Set(constvars.OAuthParamOrganisationName, c.Model.OrganisationName)
	form.Set(constvars.OAuthParamDeviceID, c.Model.DeviceID)
	form.Set(constvars.OAuthParamDeviceMake, c.Model.DeviceMake)
	form.Set(constvars.OAuthParamDeviceModel, c.Model.DeviceModel)

	request := requests.NewRestRequest(constvars.MethodPost, c.Model.TokenEndpointURL)
	request.SetFormBody(form)

	response, err := c.RestClient.Execute(ctx, request)
	if err != nil {
		var restErr *exceptions.RestError
		if errors.As(err, &restErr) {
			providerErr := exceptions.NewOAuthProviderError(restErr.StatusCode, restErr.ResponseContent)
			c.Log.Error("providerOAuthClient.GetProviderToken token endpoint rejected request",
				constvars.LoggingRequestIDKey, requestID,
				constvars.LoggingStatusCodeKey, restErr.StatusCode,
				constvars.LoggingErrorKey, providerErr,
			)
			return nil, providerErr
		}
		c.Log.Error("providerOAuthClient.GetProviderToken error requesting token",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	token, err := decodeOAuthResponse(response.Body)
	if err != nil {
		c.Log.Error("providerOAuthClient.GetProviderToken error decoding token response",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, err
	}

	c.Log.Info("providerOAuthClient.GetProviderToken succeeded", constvars.LoggingRequestIDKey, requestID)
	return token, nil
}
