package constvars

const (
	OAuthParamClientID         = "client_id"
	OAuthParamClientSecret     = "client_secret"
	OAuthParamResponseType     = "response_type"
	OAuthParamRedirectURI      = "redirect_uri"
	OAuthParamScope            = "scope"
	OAuthParamGrantType        = "grant_type"
	OAuthParamFormat           = "format"
	OAuthParamCode             = "code"
	OAuthParamRefreshToken     = "refresh_token"
	OAuthParamAssertion        = "assertion"
	OAuthParamUserName         = "userName"
	OAuthParamOrganisationName = "organisationName"
	OAuthParamDeviceID         = "DeviceID"
	OAuthParamDeviceMake       = "DeviceMake"
	OAuthParamDeviceModel      = "DeviceModel"
)

const (
	OAuthResponseTypeCode           = "code"
	OAuthGrantTypeAuthorizationCode = "authorization_code"
	OAuthGrantTypeRefreshToken      = "refresh_token"
	OAuthGrantTypeJWTBearer         = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	OAuthConsumerFormat             = "JSON"
	OAuthProviderFormat             = "json"
)

const (
	JWTClaimIssuer         = "iss"
	JWTClaimAudience       = "aud"
	JWTClaimExpiresAt      = "exp"
	JWTClaimIssuedAt       = "iat"
	JWTClaimID             = "jti"
	JWTClaimOrganisationID = "organisationID"
	JWTClaimUserID         = "userID"
	JWTIDPrefix            = "uuid:"
	JWTClockSkewInSeconds  = 60
)
