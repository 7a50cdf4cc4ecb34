// ════════════════════════════════════════════════════════════
// Path: config/google_oauth.go
// Google sign-in for staff accounts
// ════════════════════════════════════════════════════════════

package config

import (
	"context"
	"log"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	GoogleOAuthConfig *oauth2.Config
	OIDCVerifier      *oidc.IDTokenVerifier
)

// InitGoogleOAuth configures Google sign-in. It is a no-op when credentials are missing.
func InitGoogleOAuth() {
	if App.GoogleClientID == "" || App.GoogleClientSecret == "" {
		log.Println("⚠️  GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not set, Google sign-in disabled")
		return
	}

	redirectURL := App.GoogleRedirectURL
	if redirectURL == "" {
		redirectURL = "http://localhost:" + App.Port + "/api/auth/google/callback"
		log.Printf("⚠️  GOOGLE_REDIRECT_URL not set, using default: %s", redirectURL)
	}

	ctx, cancel := WithTimeout()
	defer cancel()
	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		log.Printf("❌ Failed to create OIDC provider, Google sign-in disabled: %v", err)
		return
	}

	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     App.GoogleClientID,
		ClientSecret: App.GoogleClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		Endpoint:     google.Endpoint,
	}
	OIDCVerifier = provider.Verifier(&oidc.Config{ClientID: App.GoogleClientID})

	log.Println("✅ Google OAuth initialized successfully")
}

// GoogleEnabled reports whether InitGoogleOAuth succeeded.
func GoogleEnabled() bool {
	return GoogleOAuthConfig != nil && OIDCVerifier != nil
}

// VerifyGoogleIDToken checks an ID token issued for this client.
func VerifyGoogleIDToken(ctx context.Context, raw string) (*oidc.IDToken, error) {
	return OIDCVerifier.Verify(ctx, raw)
}
