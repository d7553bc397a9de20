package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFullName(t *testing.T) {
	first, last := SplitFullName("Abebe Kebede Tola")
	assert.Equal(t, "Abebe", first)
	assert.Equal(t, "Kebede Tola", last)

	first, last = SplitFullName("  Hana  ")
	assert.Equal(t, "Hana", first)
	assert.Empty(t, last)

	first, last = SplitFullName("")
	assert.Empty(t, first)
	assert.Empty(t, last)
}
