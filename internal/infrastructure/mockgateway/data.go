package mockgateway

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// Dati campione fissi del backend simulato. Gli id sono stabili: i test e
// la demo vi fanno affidamento.

func sampleWarehouses() []entity.Warehouse {
	return []entity.Warehouse{
		{ID: 1, Name: "Magazzino Centrale", Code: "MC"},
		{ID: 2, Name: "Magazzino Nord", Code: "MN"},
		{ID: 3, Name: "Magazzino Sud", Code: "MS"},
		{ID: 4, Name: "Deposito Esterno", Code: "DE"},
	}
}

func sampleSuppliers() []entity.Supplier {
	return []entity.Supplier{
		{ID: 1, Name: "Fornitore TT", Type: "TT", Code: "FTT001"},
		{ID: 2, Name: "Fornitore TG", Type: "TG", Code: "FTG001"},
		{ID: 3, Name: "Fornitore FLY", Type: "FLY", Code: "FLY001"},
		{ID: 4, Name: "Fornitore Generale", Type: "GEN", Code: "GEN001"},
	}
}

func sampleClients() map[string][]entity.Client {
	return map[string][]entity.Client{
		"TT": {
			{ID: 1, Name: "Cliente TT 1", Code: "CTT001"},
			{ID: 2, Name: "Cliente TT 2", Code: "CTT002"},
		},
		"TG": {
			{ID: 3, Name: "Cliente TG 1", Code: "CTG001"},
			{ID: 4, Name: "Cliente TG 2", Code: "CTG002"},
		},
		"FLY": {
			{ID: 5, Name: "Cliente FLY 1", Code: "CFLY001"},
			{ID: 6, Name: "Cliente FLY 2", Code: "CFLY002"},
		},
	}
}

func sampleArticles() []entity.Article {
	return []entity.Article{
		{ID: 1, Code: "1234567890123", Name: "Articolo Test 1", Price: decimal.NewFromFloat(15.50), Stock: decimal.NewFromInt(100)},
		{ID: 2, Code: "2345678901234", Name: "Articolo Test 2", Price: decimal.NewFromFloat(25.00), Stock: decimal.NewFromInt(50)},
		{ID: 3, Code: "3456789012345", Name: "Articolo Test 3", Price: decimal.NewFromFloat(8.75), Stock: decimal.NewFromInt(200)},
		{ID: 4, Code: "4567890123456", Name: "Prodotto Esempio", Price: decimal.NewFromFloat(12.30), Stock: decimal.NewFromInt(75)},
	}
}

func sampleOrders() []entity.SupplierOrder {
	return []entity.SupplierOrder{
		{
			ID: 1, Number: "OF001", SupplierID: 1, SupplierName: "Fornitore TT",
			Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Status: entity.OrderStatusPending,
			Items: []entity.OrderItem{
				{ArticleID: 1, ArticleName: "Articolo Test 1", OrderedQty: decimal.NewFromInt(50), ReceivedQty: decimal.Zero},
				{ArticleID: 2, ArticleName: "Articolo Test 2", OrderedQty: decimal.NewFromInt(30), ReceivedQty: decimal.Zero},
			},
		},
		{
			ID: 2, Number: "OF002", SupplierID: 2, SupplierName: "Fornitore TG",
			Date: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), Status: entity.OrderStatusPartial,
			Items: []entity.OrderItem{
				{ArticleID: 3, ArticleName: "Articolo Test 3", OrderedQty: decimal.NewFromInt(100), ReceivedQty: decimal.NewFromInt(60)},
				{ArticleID: 4, ArticleName: "Prodotto Esempio", OrderedQty: decimal.NewFromInt(25), ReceivedQty: decimal.NewFromInt(25)},
			},
		},
		{
			ID: 3, Number: "OF003", SupplierID: 1, SupplierName: "Fornitore TT",
			Date: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), Status: entity.OrderStatusPending,
			Items: []entity.OrderItem{
				{ArticleID: 1, ArticleName: "Articolo Test 1", OrderedQty: decimal.NewFromInt(25), ReceivedQty: decimal.Zero},
				{ArticleID: 3, ArticleName: "Articolo Test 3", OrderedQty: decimal.NewFromInt(75), ReceivedQty: decimal.Zero},
			},
		},
	}
}

func sampleMovements() []entity.ExternalMovement {
	return []entity.ExternalMovement{
		{
			ID: 1, Number: "ME001", Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ClientType: "TT", ClientName: "Cliente TT 1", Status: "shipped",
			Items: []entity.MovementItem{
				{ArticleID: 1, ArticleName: "Articolo Test 1", Quantity: decimal.NewFromInt(20), Price: decimal.NewFromFloat(15.50)},
				{ArticleID: 2, ArticleName: "Articolo Test 2", Quantity: decimal.NewFromInt(15), Price: decimal.NewFromFloat(25.00)},
			},
		},
		{
			ID: 2, Number: "ME002", Date: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			ClientType: "TG", ClientName: "Cliente TG 1", Status: "shipped",
			Items: []entity.MovementItem{
				{ArticleID: 3, ArticleName: "Articolo Test 3", Quantity: decimal.NewFromInt(30), Price: decimal.NewFromFloat(8.75)},
				{ArticleID: 4, ArticleName: "Prodotto Esempio", Quantity: decimal.NewFromInt(10), Price: decimal.NewFromFloat(12.30)},
			},
		},
		{
			ID: 3, Number: "ME003", Date: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			ClientType: "FLY", ClientName: "Cliente FLY 1", Status: "shipped",
			Items: []entity.MovementItem{
				{ArticleID: 1, ArticleName: "Articolo Test 1", Quantity: decimal.NewFromInt(40), Price: decimal.NewFromFloat(15.50)},
				{ArticleID: 3, ArticleName: "Articolo Test 3", Quantity: decimal.NewFromInt(25), Price: decimal.NewFromFloat(8.75)},
			},
		},
	}
}
