package toast_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magazzino/gestionale/internal/application/ports"
	"github.com/magazzino/gestionale/internal/infrastructure/toast"
)

func TestNotifyAppendsInOrder(t *testing.T) {
	c := toast.NewCenter(toast.WithTTL(0))
	defer c.Close()

	c.Notify("Errore", "Impossibile comunicare con il server. Riprovare più tardi.", ports.SeverityDanger)
	c.Notify("Successo", "Documento BI1 creato con successo", ports.SeveritySuccess)

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "Errore", active[0].Title)
	assert.Equal(t, ports.SeverityDanger, active[0].Severity)
	assert.Equal(t, "Successo", active[1].Title)
	assert.NotEmpty(t, active[0].ID)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestNotifyStampsClock(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	c := toast.NewCenter(toast.WithTTL(0), toast.WithClock(func() time.Time { return now }))
	defer c.Close()

	c.Notify("Attenzione", "Articolo non trovato", ports.SeverityWarning)
	require.Len(t, c.Active(), 1)
	assert.Equal(t, now, c.Active()[0].ShownAt)
}

func TestDismissRemovesOnlyTarget(t *testing.T) {
	c := toast.NewCenter(toast.WithTTL(0))
	defer c.Close()

	c.Notify("Errore", "primo", ports.SeverityDanger)
	c.Notify("Errore", "secondo", ports.SeverityDanger)
	active := c.Active()
	require.Len(t, active, 2)

	c.Dismiss(active[0].ID)
	rest := c.Active()
	require.Len(t, rest, 1)
	assert.Equal(t, "secondo", rest[0].Message)

	// Id sconosciuto: nessun effetto.
	c.Dismiss("inesistente")
	assert.Len(t, c.Active(), 1)
}

func TestAutoDismissAfterTTL(t *testing.T) {
	c := toast.NewCenter(toast.WithTTL(20 * time.Millisecond))
	defer c.Close()

	c.Notify("Successo", "Documento DDT1 creato con successo", ports.SeveritySuccess)
	require.Len(t, c.Active(), 1)

	assert.Eventually(t, func() bool {
		return len(c.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestZeroTTLDisablesAutoDismiss(t *testing.T) {
	c := toast.NewCenter(toast.WithTTL(0))
	defer c.Close()

	c.Notify("Attenzione", "resta visibile", ports.SeverityWarning)
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, c.Active(), 1)
}

func TestActiveReturnsCopy(t *testing.T) {
	c := toast.NewCenter(toast.WithTTL(0))
	defer c.Close()

	c.Notify("Errore", "originale", ports.SeverityDanger)
	snapshot := c.Active()
	snapshot[0].Message = "manomesso"

	assert.Equal(t, "originale", c.Active()[0].Message)
}
