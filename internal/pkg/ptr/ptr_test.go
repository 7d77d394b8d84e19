//go:build unit

package ptr_test

import (
	"testing"

	"flight-onboard/internal/pkg/patch"
	"flight-onboard/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestNonZero(t *testing.T) {
	assert.Nil(t, ptr.NonZero(""))
	assert.Nil(t, ptr.NonZero(0))
	assert.Equal(t, "Adiado", *ptr.NonZero("Adiado"))
}

func TestOfAndCoalesce(t *testing.T) {
	p := ptr.Of(7)
	*p = 8
	assert.Equal(t, 8, patch.Coalesce(p, 0))
	assert.Equal(t, 3, patch.Coalesce[int](nil, 3))
}
