package placeholder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triple000-it/schiedam/pkg/placeholder"
)

func TestURL_Tamanos(t *testing.T) {
	cases := []struct {
		size placeholder.Size
		want string
	}{
		{placeholder.Small, "https://via.placeholder.com/40x40/f3f4f6/6b7280?text=Haring"},
		{placeholder.Medium, "https://via.placeholder.com/200x200/f3f4f6/6b7280?text=Haring"},
		{placeholder.Large, "https://via.placeholder.com/400x400/f3f4f6/6b7280?text=Haring"},
		{placeholder.Size("xl"), "https://via.placeholder.com/200x200/f3f4f6/6b7280?text=Haring"},
	}
	for _, tc := range cases {
		t.Run(string(tc.size), func(t *testing.T) {
			assert.Equal(t, tc.want, placeholder.URL("Haring", tc.size))
		})
	}
}

func TestURL_EscapaEtiqueta(t *testing.T) {
	assert.Equal(t,
		"https://via.placeholder.com/200x200/f3f4f6/6b7280?text=Caf%C3%A9%20%26%20Bar%2B",
		placeholder.URL("Café & Bar+", placeholder.Medium))
}

func TestURL_EtiquetaVacia(t *testing.T) {
	assert.Equal(t, "https://via.placeholder.com/40x40/f3f4f6/6b7280?text=Product", placeholder.URL("", placeholder.Small))
}

func TestResolver_BaseConfigurable(t *testing.T) {
	r := placeholder.New("https://img.local/ ")
	assert.Equal(t, "https://img.local/40x40/f3f4f6/6b7280?text=X", r.URL("X", placeholder.Small))
	assert.Equal(t, placeholder.URL("X", placeholder.Small), placeholder.New("").URL("X", placeholder.Small))
}
