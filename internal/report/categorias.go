package report

import "dressify/internal/model"

// CategoriaSinAsignar is the bucket id for products without a category
// reference; it renders as "Sin categoría".
const CategoriaSinAsignar = "uncategorized"

// ConteoCategoria is one bucket of the products-by-category widget.
type ConteoCategoria struct {
	CategoriaID string
	Nombre      string
	Productos   int
}

// ProductosPorCategoria groups products by category id, counting members.
// Buckets keep first-encountered order; products whose category reference is
// absent fall into the CategoriaSinAsignar bucket.
func ProductosPorCategoria(productos []model.Producto) []ConteoCategoria {
	idx := make(map[string]int)
	conteos := make([]ConteoCategoria, 0)
	for _, p := range productos {
		id, nombre := CategoriaSinAsignar, "Sin categoría"
		if p.Categoria != nil && p.Categoria.ID != "" {
			id, nombre = p.Categoria.ID, p.Categoria.Nombre
		}
		i, ok := idx[id]
		if !ok {
			i = len(conteos)
			idx[id] = i
			conteos = append(conteos, ConteoCategoria{CategoriaID: id, Nombre: nombre})
		}
		conteos[i].Productos++
	}
	return conteos
}

// ProductoMasReciente returns the product with the newest CreatedAt, or nil
// for an empty collection.
func ProductoMasReciente(productos []model.Producto) *model.Producto {
	if len(productos) == 0 {
		return nil
	}
	reciente := &productos[0]
	for i := range productos[1:] {
		if productos[i+1].CreatedAt.After(reciente.CreatedAt) {
			reciente = &productos[i+1]
		}
	}
	return reciente
}
