// Sessione dimostrativa: guida i quattro flussi sul gateway simulato
// senza latenza, stampando notifiche e documenti creati.
package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/application/flow"
	"github.com/magazzino/gestionale/internal/application/navigation"
	"github.com/magazzino/gestionale/internal/application/ports"
	"github.com/magazzino/gestionale/internal/application/shell"
	"github.com/magazzino/gestionale/internal/infrastructure/mockgateway"
	"github.com/magazzino/gestionale/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{Env: "development", Level: "warn"})
	gw := mockgateway.New(log, mockgateway.WithLatency(false))

	notifier := ports.NotifierFunc(func(title, message string, severity ports.Severity) {
		fmt.Printf("  [%s] %s: %s\n", severity, title, message)
	})

	sh := shell.New(navigation.NewMemoryLocation(), gw, notifier, log,
		shell.WithConfirm(func(string) bool { return true }))
	sh.Start()
	ctx := context.Background()

	fmt.Println("== Trasferimento interno ==")
	sh.OpenFlow(flow.KindTrasferimento)
	must(sh.SelectWarehouses(1, 2))
	_, err := sh.Search(ctx, "Articolo")
	must(err)
	must(sh.SelectResult(0))
	must(sh.AddItem(decimal.NewFromInt(10), decimal.NewFromFloat(15.50)))
	must(sh.Submit(ctx))
	printDocument(sh)

	fmt.Println("== Movimentazione verso cliente ==")
	sh.OpenFlow(flow.KindMovimentazione)
	_, err = sh.SelectClientType(ctx, "TT")
	must(err)
	must(sh.SelectClient(1))
	_, err = sh.Search(ctx, "Prodotto")
	must(err)
	must(sh.SelectResult(0))
	must(sh.AddItem(decimal.NewFromInt(2), decimal.NewFromFloat(12.30)))
	must(sh.Submit(ctx))
	printDocument(sh)

	fmt.Println("== Carico da movimentazione esterna ==")
	sh.OpenFlow(flow.KindCaricoEsterno)
	must(sh.SelectDestination(3))
	must(sh.SelectMovement(ctx, 1))
	must(sh.Submit(ctx))
	printDocument(sh)

	fmt.Println("== Carico da ordine fornitore (inserimento libero) ==")
	sh.OpenFlow(flow.KindCaricoFornitore)
	must(sh.SelectDestination(1))
	_, err = sh.SelectSupplier(ctx, 1)
	must(err)
	must(sh.FreeEntry())
	must(sh.ScanBarcode(ctx, "4567890123456"))
	must(sh.AddItem(decimal.NewFromInt(5), decimal.NewFromFloat(12.30)))
	must(sh.Submit(ctx))
	printDocument(sh)

	fmt.Println("== Registro movimenti ==")
	movements, err := gw.AppliedMovements(ctx)
	must(err)
	for _, m := range movements {
		fmt.Printf("  articolo %d  qta %s  tipo %s\n", m.ArticleID, m.Quantity, m.Type)
	}
}

func printDocument(sh *shell.Shell) {
	doc := sh.Machine().Document()
	fmt.Printf("  documento %s (%s) con %d righe\n\n", doc.Number, doc.Type, len(doc.Items))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
