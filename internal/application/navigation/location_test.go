package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magazzino/gestionale/internal/application/navigation"
)

func TestMemoryLocationStartsEmpty(t *testing.T) {
	loc := navigation.NewMemoryLocation()

	assert.Equal(t, "", loc.Fragment())
	assert.Equal(t, 1, loc.Len())
}

func TestMemoryLocationSetFragmentAppends(t *testing.T) {
	loc := navigation.NewMemoryLocation()

	var fired int
	loc.Listen(func() { fired++ })

	loc.SetFragment("trasferimento")
	assert.Equal(t, "trasferimento", loc.Fragment())
	assert.Equal(t, 2, loc.Len())
	assert.Equal(t, 1, fired)
}

func TestMemoryLocationIdenticalFragmentIsNoOp(t *testing.T) {
	loc := navigation.NewMemoryLocation()
	loc.SetFragment("home")

	var fired int
	loc.Listen(func() { fired++ })

	loc.SetFragment("home")
	assert.Equal(t, 0, fired)
	assert.Equal(t, 2, loc.Len())
}

func TestMemoryLocationBack(t *testing.T) {
	loc := navigation.NewMemoryLocation()
	loc.SetFragment("a")
	loc.SetFragment("b")

	assert.True(t, loc.Back())
	assert.Equal(t, "a", loc.Fragment())

	assert.True(t, loc.Back())
	assert.Equal(t, "", loc.Fragment())

	// Inizio cronologia: nessun ulteriore passo indietro.
	assert.False(t, loc.Back())
}

func TestMemoryLocationBackThenNewEntryTruncatesForward(t *testing.T) {
	loc := navigation.NewMemoryLocation()
	loc.SetFragment("a")
	loc.SetFragment("b")
	loc.Back()

	loc.SetFragment("c")
	assert.Equal(t, "c", loc.Fragment())
	// "", "a", "c": la voce "b" è stata scartata.
	assert.Equal(t, 3, loc.Len())
}
