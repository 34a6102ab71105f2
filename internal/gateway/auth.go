package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dressify/internal/dto"
	"dressify/internal/normalize"
	"dressify/internal/session"
)

// Login exchanges credentials for a new immutable session. The caller decides
// whether to persist it (session.Store) and must rebuild its client with
// WithSession — login never touches shared state.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	req := dto.LoginRequest{Email: email, Password: password}
	if err := dto.Validar(req); err != nil {
		return session.Session{}, err
	}

	body, err := c.do(ctx, http.MethodPost, "/login", nil, req)
	if err != nil {
		return session.Session{}, err
	}

	var resp struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Token == "" || len(resp.User) == 0 {
		return session.Session{}, errors.New("respuesta inválida del servidor")
	}
	cuenta, ok := normalize.Cuenta(resp.User)
	if !ok {
		return session.Session{}, errors.New("respuesta inválida del servidor")
	}

	return session.Session{
		Token:     resp.Token,
		Cuenta:    cuenta,
		CreatedAt: time.Now(),
	}, nil
}
