package config

import "time"

type InternalConfig struct {
	App           App              `mapstructure:"app"`
	MHR           AppMHR           `mapstructure:"mhr"`
	ConsumerOAuth AppConsumerOAuth `mapstructure:"consumer_oauth"`
	ProviderOAuth AppProviderOAuth `mapstructure:"provider_oauth"`
}

type App struct {
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// AppMHR points the client at a My Health Record FHIR gateway.
type AppMHR struct {
	// Persona selects the consumer or provider client.
	Persona             string        `mapstructure:"persona"`
	BaseUrl             string        `mapstructure:"base_url"`
	BearerToken         string        `mapstructure:"bearer_token"`
	ClientID            string        `mapstructure:"client_id"`
	AppVersion          string        `mapstructure:"app_version"`
	CertificatePath     string        `mapstructure:"certificate_path"`
	CertificatePassword string        `mapstructure:"certificate_password"`
	InsecureSkipVerify  bool          `mapstructure:"insecure_skip_verify"`
	Timeout             time.Duration `mapstructure:"timeout"`
}

type AppConsumerOAuth struct {
	ClientID         string `mapstructure:"client_id"`
	ClientSecret     string `mapstructure:"client_secret"`
	RedirectUrl      string `mapstructure:"redirect_url"`
	ScopeUrl         string `mapstructure:"scope_url"`
	LoginUrl         string `mapstructure:"login_url"`
	TokenEndpointUrl string `mapstructure:"token_endpoint_url"`
}

type AppProviderOAuth struct {
	ClientID         string `mapstructure:"client_id"`
	ClientSecret     string `mapstructure:"client_secret"`
	RedirectUrl      string `mapstructure:"redirect_url"`
	Hpio             string `mapstructure:"hpio"`
	OrganisationName string `mapstructure:"organisation_name"`
	DeviceID         string `mapstructure:"device_id"`
	DeviceMake       string `mapstructure:"device_make"`
	DeviceModel      string `mapstructure:"device_model"`
	TokenEndpointUrl string `mapstructure:"token_endpoint_url"`
	// UserID and UserName identify the clinician in provider token requests.
	UserID   string `mapstructure:"user_id"`
	UserName string `mapstructure:"user_name"`
}
