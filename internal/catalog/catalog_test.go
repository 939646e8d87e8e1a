package catalog_test

import (
	"testing"

	"app/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestAll_ReturnsCopy(t *testing.T) {
	a := catalog.All()
	assert.NotEmpty(t, a)

	a[0].Price = 9999

	b := catalog.All()
	assert.NotEqual(t, int64(9999), b[0].Price)
}

func TestFind(t *testing.T) {
	p, ok := catalog.Find(2)
	assert.True(t, ok)
	assert.Equal(t, "Jaggery Blocks", p.Name)
	assert.Equal(t, int64(80), p.Price)

	_, ok = catalog.Find(999)
	assert.False(t, ok)
}
