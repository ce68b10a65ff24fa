package main

import (
	"fmt"
	"mhr-fhir-client/internal/app/config"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/app/models"
	"mhr-fhir-client/internal/app/services/oauth"
	"mhr-fhir-client/internal/app/services/shared/jwtmanager"

	"github.com/spf13/cobra"
)

type verifyTokenResult struct {
	Valid  bool                   `json:"valid"`
	Reason string                 `json:"reason,omitempty"`
	Header map[string]interface{} `json:"header,omitempty"`
	Claims map[string]interface{} `json:"claims,omitempty"`
}

func consumerCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consumer",
		Short: "Consumer OAuth authorisation code flow",
	}

	loginCmd := &cobra.Command{
		Use:   "login-uri",
		Short: "Print the URI the individual signs in at",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newConsumerOAuthClient(bootstrap)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), client.GetLoginURI())
			return err
		},
	}

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Exchange an authorisation code for tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, _ := cmd.Flags().GetString("code")
			client, err := newConsumerOAuthClient(bootstrap)
			if err != nil {
				return err
			}
			response, err := client.GetToken(cmd.Context(), code)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), response)
		},
	}
	tokenCmd.Flags().String("code", "", "Authorisation code returned to the redirect URI")

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Exchange a refresh token for new tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			refreshToken, _ := cmd.Flags().GetString("refresh-token")
			client, err := newConsumerOAuthClient(bootstrap)
			if err != nil {
				return err
			}
			response, err := client.GetRefreshToken(cmd.Context(), refreshToken)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), response)
		},
	}
	refreshCmd.Flags().String("refresh-token", "", "Refresh token from an earlier exchange")

	cmd.AddCommand(loginCmd, tokenCmd, refreshCmd)
	return cmd
}

func providerCmd(bootstrap *config.Bootstrap) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider",
		Short: "Provider OAuth JWT bearer flow",
	}

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Request an access token for the configured clinician",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newProviderOAuthClient(bootstrap)
			if err != nil {
				return err
			}
			providerOAuth := bootstrap.InternalConfig.ProviderOAuth
			response, err := client.GetProviderToken(cmd.Context(), providerOAuth.UserID, providerOAuth.UserName)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), response)
		},
	}

	verifyCmd := &cobra.Command{
		Use:   "verify-token",
		Short: "Check a JWT assertion against the configured client secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, _ := cmd.Flags().GetString("token")
			providerOAuth := bootstrap.InternalConfig.ProviderOAuth

			output, err := jwtmanager.NewJWTManager(bootstrap.Logger).VerifyToken(cmd.Context(), &jwtmanager.VerifyTokenInput{
				Token:       token,
				Secret:      providerOAuth.ClientSecret,
				ClientID:    providerOAuth.ClientID,
				RedirectURL: providerOAuth.RedirectUrl,
			})
			if err != nil {
				return err
			}

			result := verifyTokenResult{
				Valid:  output.Valid,
				Header: output.Header,
				Claims: output.Claims,
			}
			if output.Reason != nil {
				result.Reason = output.Reason.Error()
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	verifyCmd.Flags().String("token", "", "Signed assertion to verify")

	cmd.AddCommand(tokenCmd, verifyCmd)
	return cmd
}

func newConsumerOAuthClient(bootstrap *config.Bootstrap) (contracts.ConsumerOAuthClient, error) {
	consumerOAuth := bootstrap.InternalConfig.ConsumerOAuth
	return oauth.NewConsumerOAuthClient(&models.ConsumerOAuthModel{
		ClientID:         consumerOAuth.ClientID,
		ClientSecret:     consumerOAuth.ClientSecret,
		RedirectURL:      consumerOAuth.RedirectUrl,
		ScopeURL:         consumerOAuth.ScopeUrl,
		LoginURL:         consumerOAuth.LoginUrl,
		TokenEndpointURL: consumerOAuth.TokenEndpointUrl,
	}, transportConfig(bootstrap), bootstrap.Logger)
}

func newProviderOAuthClient(bootstrap *config.Bootstrap) (contracts.ProviderOAuthClient, error) {
	certificate, err := loadCertificate(bootstrap)
	if err != nil {
		return nil, err
	}

	providerOAuth := bootstrap.InternalConfig.ProviderOAuth
	return oauth.NewProviderOAuthClient(&models.ProviderOAuthModel{
		ClientID:         providerOAuth.ClientID,
		ClientSecret:     providerOAuth.ClientSecret,
		RedirectURL:      providerOAuth.RedirectUrl,
		Hpio:             providerOAuth.Hpio,
		OrganisationName: providerOAuth.OrganisationName,
		DeviceID:         providerOAuth.DeviceID,
		DeviceMake:       providerOAuth.DeviceMake,
		DeviceModel:      providerOAuth.DeviceModel,
		Certificate:      certificate,
		TokenEndpointURL: providerOAuth.TokenEndpointUrl,
	}, transportConfig(bootstrap), bootstrap.Logger)
}
