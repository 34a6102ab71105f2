package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"dressify/internal/dto"
	"dressify/internal/model"
	"dressify/internal/normalize"
	"dressify/internal/report"
)

// PaginaVentas is one page of the sales history.
type PaginaVentas struct {
	Ventas   []model.Venta
	Page     int
	LastPage int
}

// ListarVentas fetches a history page with the server-side filters applied
// (date range / product). The page comes back sorted newest-first, matching
// the screen. Client-side report filtering is a separate, later step
// (report.FiltrarVentas).
func (c *Client) ListarVentas(ctx context.Context, qry dto.VentasQuery) (*PaginaVentas, error) {
	if err := dto.Validar(qry); err != nil {
		return nil, err
	}
	if qry.Page < 1 {
		qry.Page = 1
	}
	if qry.PerPage < 1 {
		qry.PerPage = 10
	}

	q := url.Values{
		"per_page": {strconv.Itoa(qry.PerPage)},
		"page":     {strconv.Itoa(qry.Page)},
	}
	if qry.DateFrom != "" {
		q.Set("date_from", qry.DateFrom)
	}
	if qry.DateTo != "" {
		q.Set("date_to", qry.DateTo)
	}
	if qry.ProductoID != "" {
		q.Set("product_id", qry.ProductoID)
	}

	body, err := c.do(ctx, http.MethodGet, "/sales", q, nil)
	if err != nil {
		return nil, err
	}

	current, last := normalize.Paginacion(body)
	return &PaginaVentas{
		Ventas:   report.OrdenarPorFechaDesc(normalize.Ventas(body)),
		Page:     current,
		LastPage: last,
	}, nil
}

// TodasLasVentas fetches the report-screen view: everything up to the
// PER_PAGE ceiling in a single request, unsorted.
func (c *Client) TodasLasVentas(ctx context.Context, perPage int) ([]model.Venta, error) {
	if perPage <= 0 {
		perPage = 1000
	}
	q := url.Values{"per_page": {strconv.Itoa(perPage)}}
	body, err := c.do(ctx, http.MethodGet, "/sales", q, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Ventas(body), nil
}

func (c *Client) ObtenerVenta(ctx context.Context, id string) (*model.Venta, error) {
	body, err := c.do(ctx, http.MethodGet, "/sales/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	v, ok := normalize.Venta(body)
	if !ok {
		return nil, errors.New("respuesta inválida del servidor")
	}
	return &v, nil
}

func (c *Client) CrearVenta(ctx context.Context, req dto.CrearVentaRequest) error {
	if err := dto.Validar(req); err != nil {
		return err
	}
	_, err := c.do(ctx, http.MethodPost, "/sales", nil, req)
	return err
}

// ActualizarVenta rewrites a sale's method and items. The 10-minute edit
// window is enforced at screen entry (cli), not here — the backend has the
// final say regardless.
func (c *Client) ActualizarVenta(ctx context.Context, id string, req dto.ActualizarVentaRequest) error {
	if err := dto.Validar(req); err != nil {
		return err
	}
	_, err := c.do(ctx, http.MethodPost, "/sales/"+id, nil, req)
	return err
}

// CancelarVenta moves a sale to its terminal cancelled state.
func (c *Client) CancelarVenta(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPost, "/sales/"+id+"/cancel", nil, nil)
	return err
}
