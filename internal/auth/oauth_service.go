// File: internal/auth/oauth_service.go
package auth

import (
	"context"
	"errors"
	"fmt"

	"page_insights_backend/internal/config"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Permissions requested on the Facebook login dialog.
var FacebookScopes = []string{
	"email",
	"public_profile",
	"pages_show_list",
	"pages_read_engagement",
}

// OAuthService defines the Facebook login operations.
type OAuthService interface {
	LoginURL() string
	ExchangeCode(ctx context.Context, code string) (string, error)
}

type oauthService struct {
	oauthCfg *oauth2.Config
	logger   *zap.Logger
}

// NewOAuthService creates a new OAuth service.
func NewOAuthService(cfg *config.Config, logger *zap.Logger) OAuthService {
	return &oauthService{
		oauthCfg: FacebookOAuthConfig(cfg),
		logger:   logger.Named("OAuthService"),
	}
}

// FacebookOAuthConfig builds the oauth2 configuration for the Facebook app.
// Facebook expects the client credentials as parameters, not basic auth.
func FacebookOAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.FacebookAppID,
		ClientSecret: cfg.FacebookAppSecret,
		RedirectURL:  cfg.FacebookRedirectURI,
		Scopes:       FacebookScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   cfg.FacebookAuthURL,
			TokenURL:  cfg.FacebookTokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// LoginURL returns the Facebook authorization dialog URL. No state is
// attached; the token is handed back to the browser without a session.
func (s *oauthService) LoginURL() string {
	return s.oauthCfg.AuthCodeURL("")
}

// ExchangeCode trades an authorization code for a user access token.
func (s *oauthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil {
			s.logger.Error("Facebook token endpoint rejected the code",
				zap.Int("status", rerr.Response.StatusCode),
				zap.String("error_code", rerr.ErrorCode),
				zap.String("error_description", rerr.ErrorDescription),
			)
		}
		return "", fmt.Errorf("exchanging authorization code: %w", err)
	}
	return token.AccessToken, nil
}
