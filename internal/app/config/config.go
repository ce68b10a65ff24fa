package config

import (
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Driver:              utils.GetEnvString("LOGGER_DRIVER", constvars.LoggerDriverZap),
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "mhrclient.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "mhrclient_error.log"),
		},
		HTTP: HTTP{
			MaxIdleConns:    utils.GetEnvInt("HTTP_MAX_IDLE_CONNS", constvars.DefaultMaxIdleConns),
			IdleConnTimeout: utils.GetEnvDuration("HTTP_IDLE_CONN_TIMEOUT", constvars.DefaultIdleConnTimeoutInSeconds*time.Second),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:     utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Version: utils.GetEnvString("APP_VERSION", "v1.0"),
		},
		MHR: AppMHR{
			Persona:             utils.GetEnvString("MHR_PERSONA", constvars.PersonaConsumer),
			BaseUrl:             utils.GetEnvString("MHR_BASE_URL", ""),
			BearerToken:         utils.GetEnvString("MHR_BEARER_TOKEN", ""),
			ClientID:            utils.GetEnvString("MHR_CLIENT_ID", ""),
			AppVersion:          utils.GetEnvString("MHR_APP_VERSION", ""),
			CertificatePath:     utils.GetEnvString("MHR_CERTIFICATE_PATH", ""),
			CertificatePassword: utils.GetEnvString("MHR_CERTIFICATE_PASSWORD", ""),
			InsecureSkipVerify:  utils.GetEnvBool("MHR_INSECURE_SKIP_VERIFY", false),
			Timeout:             utils.GetEnvDuration("MHR_TIMEOUT", constvars.DefaultHTTPTimeoutInSeconds*time.Second),
		},
		ConsumerOAuth: AppConsumerOAuth{
			ClientID:         utils.GetEnvString("CONSUMER_OAUTH_CLIENT_ID", ""),
			ClientSecret:     utils.GetEnvString("CONSUMER_OAUTH_CLIENT_SECRET", ""),
			RedirectUrl:      utils.GetEnvString("CONSUMER_OAUTH_REDIRECT_URL", ""),
			ScopeUrl:         utils.GetEnvString("CONSUMER_OAUTH_SCOPE_URL", ""),
			LoginUrl:         utils.GetEnvString("CONSUMER_OAUTH_LOGIN_URL", ""),
			TokenEndpointUrl: utils.GetEnvString("CONSUMER_OAUTH_TOKEN_ENDPOINT_URL", ""),
		},
		ProviderOAuth: AppProviderOAuth{
			ClientID:         utils.GetEnvString("PROVIDER_OAUTH_CLIENT_ID", ""),
			ClientSecret:     utils.GetEnvString("PROVIDER_OAUTH_CLIENT_SECRET", ""),
			RedirectUrl:      utils.GetEnvString("PROVIDER_OAUTH_REDIRECT_URL", ""),
			Hpio:             utils.GetEnvString("PROVIDER_OAUTH_HPIO", ""),
			OrganisationName: utils.GetEnvString("PROVIDER_OAUTH_ORGANISATION_NAME", ""),
			DeviceID:         utils.GetEnvString("PROVIDER_OAUTH_DEVICE_ID", ""),
			DeviceMake:       utils.GetEnvString("PROVIDER_OAUTH_DEVICE_MAKE", ""),
			DeviceModel:      utils.GetEnvString("PROVIDER_OAUTH_DEVICE_MODEL", ""),
			TokenEndpointUrl: utils.GetEnvString("PROVIDER_OAUTH_TOKEN_ENDPOINT_URL", ""),
			UserID:           utils.GetEnvString("PROVIDER_OAUTH_USER_ID", ""),
			UserName:         utils.GetEnvString("PROVIDER_OAUTH_USER_NAME", ""),
		},
	}
}
