package normalize

import (
	"encoding/json"

	"dressify/internal/model"
)

type productoWire struct {
	ID             json.RawMessage `json:"id"`
	MongoID        json.RawMessage `json:"_id"`
	Nombre         string          `json:"name"`
	Descripcion    string          `json:"description"`
	Precio         json.RawMessage `json:"price"`
	PrecioOferta   json.RawMessage `json:"sale_price"`
	Stock          json.RawMessage `json:"stock"`
	Codigo         string          `json:"code"`
	Marca          string          `json:"brand"`
	ImagenPath     string          `json:"image_path"`
	Categoria      json.RawMessage `json:"category"`
	CategoriaID    json.RawMessage `json:"category_id"`
	Subcategoria   json.RawMessage `json:"subcategory"`
	SubcategoriaID json.RawMessage `json:"subcategory_id"`
	CreatedAt      string          `json:"created_at"`
}

type categoriaWire struct {
	ID     json.RawMessage `json:"id"`
	Nombre string          `json:"name"`
}

// Productos decodes a /products response body into canonical products.
func Productos(raw []byte) []model.Producto {
	items := ExtractList(raw, "products")
	productos := make([]model.Producto, 0, len(items))
	for _, item := range items {
		if p, ok := producto(item); ok {
			productos = append(productos, p)
		}
	}
	return productos
}

func producto(raw json.RawMessage) (model.Producto, bool) {
	var w productoWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return model.Producto{}, false
	}
	return model.Producto{
		ID:           primerID(w.ID, w.MongoID),
		Nombre:       w.Nombre,
		Descripcion:  w.Descripcion,
		Precio:       Monto(w.Precio),
		PrecioOferta: MontoOpcional(w.PrecioOferta),
		Stock:        Entero(w.Stock),
		Codigo:       w.Codigo,
		Marca:        w.Marca,
		ImagenPath:   w.ImagenPath,
		Categoria:    categoria(w.Categoria, w.CategoriaID),
		Subcategoria: categoria(w.Subcategoria, w.SubcategoriaID),
		CreatedAt:    Fecha(w.CreatedAt),
	}, true
}

// categoria resolves the category reference: full object first, then a bare
// category_id (the id doubles as the display name), and nil when neither is
// present — which the reports bucket as "sin categoría".
func categoria(obj, id json.RawMessage) *model.CategoriaRef {
	var w categoriaWire
	if len(obj) > 0 && string(obj) != "null" {
		if err := json.Unmarshal(obj, &w); err == nil {
			if cid := ID(w.ID); cid != "" {
				nombre := w.Nombre
				if nombre == "" {
					nombre = cid
				}
				return &model.CategoriaRef{ID: cid, Nombre: nombre}
			}
		}
	}
	if cid := ID(id); cid != "" {
		return &model.CategoriaRef{ID: cid, Nombre: cid}
	}
	return nil
}

// ProductoNombres decodes the lightweight GET /products/names index,
// de-duplicating by id the way the register screen does.
func ProductoNombres(raw []byte) []model.ProductoNombre {
	items := ExtractList(raw, "products")
	vistos := make(map[string]struct{}, len(items))
	nombres := make([]model.ProductoNombre, 0, len(items))
	for _, item := range items {
		var w productoWire
		if err := json.Unmarshal(item, &w); err != nil {
			continue
		}
		id := primerID(w.ID, w.MongoID)
		if id == "" {
			continue
		}
		if _, ok := vistos[id]; ok {
			continue
		}
		vistos[id] = struct{}{}
		nombres = append(nombres, model.ProductoNombre{ID: id, Nombre: w.Nombre})
	}
	return nombres
}
