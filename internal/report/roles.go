package report

import "dressify/internal/model"

// ConteoRol is one bucket of the users-by-role widget.
type ConteoRol struct {
	Rol     string
	Cuentas int
}

// UsuariosPorRol groups accounts by their RAW role string ("Sin rol" when
// empty), first-encountered order.
//
// Deliberate inconsistency, preserved from the app: navigation collapses
// "administrador" into "admin" via model.NormalizarRol, but this report
// counts the raw strings as distinct buckets. Do not unify without product
// sign-off.
func UsuariosPorRol(cuentas []model.Cuenta) []ConteoRol {
	idx := make(map[string]int)
	conteos := make([]ConteoRol, 0)
	for _, c := range cuentas {
		rol := c.Rol
		if rol == "" {
			rol = "Sin rol"
		}
		i, ok := idx[rol]
		if !ok {
			i = len(conteos)
			idx[rol] = i
			conteos = append(conteos, ConteoRol{Rol: rol})
		}
		conteos[i].Cuentas++
	}
	return conteos
}

// UsuarioMasReciente returns the most recently created account, or nil for an
// empty collection.
func UsuarioMasReciente(cuentas []model.Cuenta) *model.Cuenta {
	if len(cuentas) == 0 {
		return nil
	}
	reciente := &cuentas[0]
	for i := range cuentas[1:] {
		if cuentas[i+1].CreatedAt.After(reciente.CreatedAt) {
			reciente = &cuentas[i+1]
		}
	}
	return reciente
}
