package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationFHIRJSON = "application/json+fhir"
	MIMEApplicationForm     = "application/x-www-form-urlencoded"
)

const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAppID         = "App-Id"
	HeaderAppVersion    = "App-Version"
)

const (
	AuthorizationTypeBearer = "Bearer"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusMultipleChoices     = 300
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

const (
	DefaultHTTPTimeoutInSeconds       = 30
	DefaultMaxIdleConns               = 100
	DefaultMaxIdleConnsPerHost        = 10
	DefaultIdleConnTimeoutInSeconds   = 90
	DefaultTLSHandshakeTimeoutSeconds = 10
)
