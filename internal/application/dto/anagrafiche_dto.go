package dto

import (
	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// WarehouseResponse magazzino in uscita.
type WarehouseResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
	Code string `json:"codice"`
}

func FromWarehouse(w entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{ID: w.ID, Name: w.Name, Code: w.Code}
}

func FromWarehouses(list []entity.Warehouse) []WarehouseResponse {
	out := make([]WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, FromWarehouse(w))
	}
	return out
}

// SupplierResponse fornitore in uscita.
type SupplierResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
	Type string `json:"tipologia"`
	Code string `json:"codice"`
}

func FromSuppliers(list []entity.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, SupplierResponse{ID: s.ID, Name: s.Name, Type: s.Type, Code: s.Code})
	}
	return out
}

// ClientResponse cliente in uscita.
type ClientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
	Code string `json:"codice"`
}

func FromClients(list []entity.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ClientResponse{ID: c.ID, Name: c.Name, Code: c.Code})
	}
	return out
}

// ArticleResponse articolo in uscita; prezzo e giacenza come decimali
// esatti.
type ArticleResponse struct {
	ID    int64           `json:"id"`
	Code  string          `json:"codice"`
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"prezzo"`
	Stock decimal.Decimal `json:"giacenza"`
}

func FromArticle(a entity.Article) ArticleResponse {
	return ArticleResponse{ID: a.ID, Code: a.Code, Name: a.Name, Price: a.Price, Stock: a.Stock}
}

func FromArticles(list []entity.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromArticle(a))
	}
	return out
}
