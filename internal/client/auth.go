package client

import (
	"context"
	"time"

	"github.com/campuspulse/engage-go/internal/domain/user"
	"github.com/golang-jwt/jwt/v5"
)

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (*user.TokenResponse, error) {
	input := user.LoginInput{Username: username, Password: password}
	var resp user.TokenResponse
	if err := c.post(ctx, "/auth/login", input, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// TokenExpired inspects the current token's exp claim without verifying the
// signature (verification is the server's job). Missing or malformed tokens
// count as expired so callers re-login instead of issuing doomed requests.
func (c *Client) TokenExpired() bool {
	if c.token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(c.token, claims)
	if err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}
