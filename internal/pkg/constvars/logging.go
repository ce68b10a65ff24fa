package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingDocumentIDKey     = "doc_id"
	LoggingResourceKey       = "resource"
	LoggingResourceIDKey     = "resource_id"
	LoggingMethodKey         = "method"
	LoggingURIKey            = "uri"
	LoggingHeadersKey        = "headers"
	LoggingBodyKey           = "body"
	LoggingStatusCodeKey     = "status_code"
	LoggingErrorKey          = "error"
	LoggingResponseLengthKey = "response_length"
	LoggingAccessTypeKey     = "access_type"
	LoggingGrantTypeKey      = "grant_type"
	LoggingCapabilityKey     = "capability"
)

const (
	LoggerDriverZap    = "zap"
	LoggerDriverLogrus = "logrus"
)
