package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"dressify/internal/dto"
	"dressify/internal/model"
	"dressify/internal/normalize"
)

// ListarCuentas fetches accounts. perPage <= 0 falls back to a single page of
// everything, the way the report screens load.
func (c *Client) ListarCuentas(ctx context.Context, perPage int) ([]model.Cuenta, error) {
	if perPage <= 0 {
		perPage = 1000
	}
	q := url.Values{"per_page": {strconv.Itoa(perPage)}}
	body, err := c.do(ctx, http.MethodGet, "/accounts", q, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Cuentas(body), nil
}

func (c *Client) CrearCuenta(ctx context.Context, req dto.CrearCuentaRequest) error {
	if err := dto.Validar(req); err != nil {
		return err
	}
	_, err := c.do(ctx, http.MethodPost, "/accounts", nil, req)
	return err
}

func (c *Client) ActualizarCuenta(ctx context.Context, id string, req dto.ActualizarCuentaRequest) error {
	if err := dto.Validar(req); err != nil {
		return err
	}
	_, err := c.do(ctx, http.MethodPut, "/accounts/"+id, nil, req)
	return err
}

func (c *Client) EliminarCuenta(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/accounts/"+id, nil, nil)
	return err
}

// CambiarPassword changes the signed-in account's password.
func (c *Client) CambiarPassword(ctx context.Context, id string, req dto.CambiarPasswordRequest) error {
	if err := dto.Validar(req); err != nil {
		return err
	}
	_, err := c.do(ctx, http.MethodPatch, "/accounts/"+id+"/change-password", nil, req)
	return err
}
