package normalize

import (
	"encoding/json"

	"dressify/internal/model"
)

type cuentaWire struct {
	ID        json.RawMessage `json:"id"`
	MongoID   json.RawMessage `json:"_id"`
	Nombre    string          `json:"name"`
	Email     string          `json:"email"`
	Rol       string          `json:"role"`
	CreatedAt string          `json:"created_at"`
}

// Cuentas decodes an /accounts response body into canonical accounts.
func Cuentas(raw []byte) []model.Cuenta {
	items := ExtractList(raw, "accounts")
	cuentas := make([]model.Cuenta, 0, len(items))
	for _, item := range items {
		if c, ok := Cuenta(item); ok {
			cuentas = append(cuentas, c)
		}
	}
	return cuentas
}

// Cuenta decodes a single account record.
func Cuenta(raw []byte) (model.Cuenta, bool) {
	var w cuentaWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return model.Cuenta{}, false
	}
	return model.Cuenta{
		ID:        primerID(w.ID, w.MongoID),
		Nombre:    w.Nombre,
		Email:     w.Email,
		Rol:       w.Rol,
		CreatedAt: Fecha(w.CreatedAt),
	}, true
}

// primerID resolves the first non-empty id among the encodings a record may
// carry ("id" is preferred over Mongo's "_id").
func primerID(candidatos ...json.RawMessage) string {
	for _, c := range candidatos {
		if id := ID(c); id != "" {
			return id
		}
	}
	return ""
}
