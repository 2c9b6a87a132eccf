package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"partnerconsole/internal/core/domain/model/partner"
	"partnerconsole/internal/core/ports"
)

var errNoAccessToken = errors.New("login response carried no access token")

const (
	loginPath   = "/auth/login/partner"
	profilePath = "/auth/me"
	logoutPath  = "/auth/logout"
)

// AuthClient implements ports.AuthClient against the platform's partner
// authentication endpoints.
type AuthClient struct {
	client *Client
}

// NewAuthClient creates an auth adapter on top of a platform client.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

var _ ports.AuthClient = (*AuthClient)(nil)

// Login exchanges credentials for a profile and token pair.
// Any 4xx rejection surfaces as ports.InvalidCredentialsError carrying the
// server's message, so the sign-in page shows the platform's own wording.
func (a *AuthClient) Login(ctx context.Context, email string, password string) (*partner.Partner, ports.Tokens, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := a.client.do(ctx, http.MethodPost, loginPath, "", body)
	if err != nil {
		return nil, ports.Tokens{}, err
	}

	if resp.status >= 400 && resp.status < 500 {
		return nil, ports.Tokens{}, &ports.InvalidCredentialsError{Message: resp.envelope.Message}
	}
	if resp.status >= 500 || !resp.envelope.Success {
		return nil, ports.Tokens{}, &ports.ServerError{Status: resp.status, Message: resp.envelope.Message}
	}

	var data loginDataDTO
	if err = json.Unmarshal(resp.envelope.Data, &data); err != nil {
		return nil, ports.Tokens{}, &ports.MalformedResponseError{Op: "login", Cause: err}
	}

	authPartner, err := data.User.toDomain()
	if err != nil {
		return nil, ports.Tokens{}, &ports.MalformedResponseError{Op: "login", Cause: err}
	}

	tokens := ports.Tokens{
		AccessToken:  data.accessToken(),
		RefreshToken: data.RefreshToken,
	}
	if tokens.AccessToken == "" {
		return nil, ports.Tokens{}, &ports.MalformedResponseError{Op: "login", Cause: errNoAccessToken}
	}

	return authPartner, tokens, nil
}

// Profile fetches the partner profile for a live access token.
func (a *AuthClient) Profile(ctx context.Context, accessToken string) (*partner.Partner, error) {
	resp, err := a.client.do(ctx, http.MethodGet, profilePath, accessToken, nil)
	if err != nil {
		return nil, err
	}
	if err = mapCommonError("profile", resp); err != nil {
		return nil, err
	}

	var data partnerDTO
	if err = json.Unmarshal(resp.envelope.Data, &data); err != nil {
		return nil, &ports.MalformedResponseError{Op: "profile", Cause: err}
	}

	authPartner, err := data.toDomain()
	if err != nil {
		return nil, &ports.MalformedResponseError{Op: "profile", Cause: err}
	}

	return authPartner, nil
}

// Logout revokes the refresh token upstream.
func (a *AuthClient) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refreshToken": refreshToken}

	resp, err := a.client.do(ctx, http.MethodPost, logoutPath, "", body)
	if err != nil {
		return err
	}

	return mapCommonError("logout", resp)
}
