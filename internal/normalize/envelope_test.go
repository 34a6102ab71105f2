package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractList_FixedPriorityShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"a":1},{"a":2}]`, 2},
		{"data plano", `{"data":[{"a":1}]}`, 1},
		{"data.data paginado", `{"data":{"data":[{"a":1},{"a":2},{"a":3}],"current_page":1}}`, 3},
		{"alias accounts", `{"accounts":[{"a":1}]}`, 1},
		{"alias paginado", `{"accounts":{"data":[{"a":1},{"a":2}]}}`, 2},
		{"results", `{"results":[{"a":1}]}`, 1},
		{"success envuelto", `{"success":true,"data":{"data":[{"a":1}]}}`, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, ExtractList([]byte(tc.body), "accounts"), tc.want)
		})
	}
}

func TestExtractList_ShapeDesconocidaEsVacia(t *testing.T) {
	// unknown envelopes must resolve to empty, never error
	assert.Empty(t, ExtractList([]byte(`{"items":[{"a":1}]}`)))
	assert.Empty(t, ExtractList([]byte(`{"data":"no soy un array"}`)))
	assert.Empty(t, ExtractList([]byte(`"texto"`)))
	assert.Empty(t, ExtractList([]byte(`esto no es json`)))
}

func TestExtractList_PrioridadBareSobreData(t *testing.T) {
	// a bare array wins even if records contain a "data" key themselves
	items := ExtractList([]byte(`[{"data":[1,2,3]}]`))
	assert.Len(t, items, 1)
}

func TestExtractDoc(t *testing.T) {
	doc := ExtractDoc([]byte(`{"data":{"id":"x"}}`))
	assert.JSONEq(t, `{"id":"x"}`, string(doc))

	doc = ExtractDoc([]byte(`{"id":"y"}`))
	assert.JSONEq(t, `{"id":"y"}`, string(doc))
}

func TestPaginacion(t *testing.T) {
	cur, last := Paginacion([]byte(`{"data":[],"current_page":2,"last_page":7}`))
	assert.Equal(t, 2, cur)
	assert.Equal(t, 7, last)

	// pagination one level down, and as strings
	cur, last = Paginacion([]byte(`{"data":{"data":[],"current_page":"3","last_page":"4"}}`))
	assert.Equal(t, 3, cur)
	assert.Equal(t, 4, last)

	// absent defaults to a single page
	cur, last = Paginacion([]byte(`[1,2,3]`))
	assert.Equal(t, 1, cur)
	assert.Equal(t, 1, last)
}
