package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	got := For("/api/moto", 7)

	expected := []Link{
		{Rel: "self", Method: "GET", Href: "/api/moto/7"},
		{Rel: "update", Method: "PUT", Href: "/api/moto/7"},
		{Rel: "delete", Method: "DELETE", Href: "/api/moto/7"},
	}
	assert.Equal(t, expected, got)
}
