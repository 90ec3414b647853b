package entity

import "github.com/shopspring/decimal"

// Warehouse rappresenta un magazzino aziendale.
type Warehouse struct {
	ID   int64
	Name string
	Code string
}

// Supplier rappresenta un fornitore; Type è la categoria commerciale (TT, TG, FLY, GEN).
type Supplier struct {
	ID   int64
	Name string
	Type string
	Code string
}

// Client rappresenta un cliente esterno di una categoria (TT, TG, FLY).
type Client struct {
	ID   int64
	Name string
	Code string
}

// Article rappresenta un articolo a magazzino; Code è anche il codice a barre.
type Article struct {
	ID    int64
	Code  string
	Name  string
	Price decimal.Decimal
	Stock decimal.Decimal
}
