// Package normalize converts the backend's heterogeneous response shapes into
// the canonical records of internal/model. The backend wraps collections in
// several envelope variants and encodes ids and numbers inconsistently, so
// every response body passes through here before the rest of the client sees it.
package normalize

import "encoding/json"

// ExtractList unwraps a collection from a response body. The envelope shapes
// are tried in a fixed priority order:
//
//  1. bare array
//  2. "data" (plain collection)
//  3. "data.data" (paginated collection)
//  4. each alias key ("accounts", "products", …), bare or paginated
//  5. "results"
//
// No match yields an empty list — a missing collection is a recoverable
// condition, never an error (see decode tests for the exhaustive shapes).
func ExtractList(raw []byte, aliases ...string) []json.RawMessage {
	if arr, ok := asArray(raw); ok {
		return arr
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}

	keys := append([]string{"data"}, aliases...)
	for _, k := range keys {
		v, ok := obj[k]
		if !ok {
			continue
		}
		if arr, ok := asArray(v); ok {
			return arr
		}
		// paginated: { k: { data: [...] } }
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(v, &inner); err == nil {
			if arr, ok := asArray(inner["data"]); ok {
				return arr
			}
		}
	}

	if arr, ok := asArray(obj["results"]); ok {
		return arr
	}
	return nil
}

// ExtractDoc unwraps a single record: { data: {...} } or the bare object.
func ExtractDoc(raw []byte) json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return raw
	}
	if v, ok := obj["data"]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(v, &inner); err == nil {
			return v
		}
	}
	return raw
}

// Paginacion reads current_page / last_page from a paginated envelope,
// walking into "data" when the pagination lives one level down.
// Both default to 1 when absent.
func Paginacion(raw []byte) (current, last int) {
	current, last = 1, 1
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return
	}
	if _, ok := obj["current_page"]; !ok {
		if inner, iok := obj["data"]; iok {
			var innerObj map[string]json.RawMessage
			if err := json.Unmarshal(inner, &innerObj); err == nil {
				if _, ok := innerObj["current_page"]; ok {
					obj = innerObj
				}
			}
		}
	}
	if n := Entero(obj["current_page"]); n > 0 {
		current = n
	}
	if n := Entero(obj["last_page"]); n > 0 {
		last = n
	}
	return
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, false
	}
	return arr, true
}
