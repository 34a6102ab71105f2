package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	objectIDRe        = regexp.MustCompile(`(?i)ObjectId\(["']?([a-f\d]{24})["']?\)`)
	objectIDWrapperRe = regexp.MustCompile(`(?i)^ObjectId\(.*\)$`)
)

// ID normalizes an identifier to a plain string. Accepted forms:
// a bare string, {"$oid": "..."}, {"oid": "..."}, or the string
// representation "ObjectId('...')". Anything else yields "" — an empty id
// is retained but never matches a weak reference downstream.
func ID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if m := objectIDRe.FindStringSubmatch(s); m != nil {
			return m[1]
		}
		// A wrapper without a valid 24-hex payload never leaks through as
		// the id; empty keeps it unlinkable downstream.
		if objectIDWrapperRe.MatchString(strings.TrimSpace(s)) {
			return ""
		}
		return s
	}
	var oid struct {
		Dollar string `json:"$oid"`
		Plain  string `json:"oid"`
	}
	if err := json.Unmarshal(raw, &oid); err == nil {
		if oid.Dollar != "" {
			return oid.Dollar
		}
		if oid.Plain != "" {
			return oid.Plain
		}
	}
	return ""
}

// Monto coerces a monetary value that may arrive as a number or a numeric
// string. Absent, null or unparseable values become 0.
func Monto(raw json.RawMessage) decimal.Decimal {
	if d := optMonto(raw); d != nil {
		return *d
	}
	return decimal.Zero
}

// MontoOpcional is Monto for fields where "missing" and "zero" mean different
// things — sale_price in particular: nil is "sin oferta", 0 is an offer at 0.
func MontoOpcional(raw json.RawMessage) *decimal.Decimal {
	return optMonto(raw)
}

func optMonto(raw json.RawMessage) *decimal.Decimal {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return nil
		}
		return &d
	}
	// raw is the literal number text; NewFromString keeps full precision
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return nil
	}
	return &d
}

// Entero coerces an integer (stock, quantity, page numbers) from number or
// string form; anything else is 0.
func Entero(raw json.RawMessage) int {
	d := optMonto(raw)
	if d == nil {
		return 0
	}
	return int(d.IntPart())
}

// Texto unwraps a JSON string, returning "" for null/absent/non-string values.
func Texto(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Timestamp shapes the backend has been seen to emit. The zone-less ones
// must resolve in LOCAL time: the reports compare calendar days, and a
// near-midnight sale read as UTC lands on the wrong day.
var (
	fechaLayoutsConZona = []string{
		time.RFC3339Nano,
		time.RFC3339,
	}
	fechaLayoutsLocales = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

// Fecha parses a backend timestamp. Unparseable dates yield the zero time —
// callers decide what that means (filters skip it, the edit window treats it
// as still editable).
func Fecha(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range fechaLayoutsConZona {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	for _, layout := range fechaLayoutsLocales {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
