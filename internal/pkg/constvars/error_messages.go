package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"not_blank":    "must not be empty or whitespace",
	"url":          "must be a valid URL",
	"absolute_uri": "must be a well-formed absolute URI",
	"oneof":        "must be one of [%s]",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
}

// Argument error messages
const (
	ErrArgEmptyOrNull                  = "%s must not be null or empty"
	ErrArgNull                         = "%s must not be null"
	ErrArgIhiWithDemographic           = "an IHI search must not include birthdate, gender, family name or given name"
	ErrArgNoIhi                        = "a search without an IHI requires birthdate, gender and family name"
	ErrArgPatientIDOrSearchRequired    = "either a patient id or a patient search identifier is required"
	ErrArgAccessCodeRequired           = "an access code is required when the access type is AccessCode"
	ErrArgClassOrTypeCodeRequired      = "at least one class code or type code is required"
	ErrArgIdentifierSearch             = "an identifier search must not be combined with any other search criteria"
	ErrArgIhiRequired                  = "an IHI is required for a patient IHI search"
	ErrArgIdentifierRequired           = "an identifier is required for alternative search criteria"
	ErrArgIhiNotAllowed                = "an IHI must not be provided for alternative search criteria"
	ErrArgFamilyNameRequired           = "a family name is required for alternative search criteria"
	ErrArgUnknownIdentifierType        = "unknown identifier type %q"
	ErrArgUnknownGender                = "unknown gender %q"
	ErrArgUnknownAccessType            = "unknown access type %q"
	ErrArgUnknownDocumentStatus        = "unknown document status %q"
	ErrArgInvalidDate                  = "%s must be a date in the form YYYY-MM-DD"
	ErrArgInvalidCodedValue            = "%s must be in the form code^^system"
	ErrArgUnknownPersona               = "unknown persona %q, expected consumer or provider"
	ErrArgCapabilityNotGranted         = "operation %s is not available to this client"
	ErrArgClientCertificateUnreadable  = "client certificate could not be loaded"
	ErrArgClientCertificateUnsupported = "client certificate file does not contain both a certificate and a private key"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
)

// Error messages for developers
const (
	ErrDevInvalidInput            = "invalid input"
	ErrDevCreateHTTPRequest       = "failed to create HTTP request"
	ErrDevCannotMarshalJSON       = "failed to marshal JSON"
	ErrDevCannotReadResponse      = "failed to read HTTP response body"
	ErrDevDecodeFHIRResource      = "failed to decode %s resource from response"
	ErrDevDecodeOAuthResponse     = "failed to decode OAuth token response"
	ErrDevSignProviderAssertion   = "failed to sign provider assertion"
	ErrDevFHIRResourceTypeMissing = "body is not a FHIR resource: missing resourceType"
	ErrDevFHIRResourceMismatch    = "expected %s resource but received %s"
	ErrDevTransportFault          = "request failed with status %d"
	ErrDevMhrFhirFault            = "My Health Record request failed with status %d"
	ErrDevOAuthProviderFault      = "provider token request failed with status %d"
)

const (
	ResponseUnknown = "unknown"
)
