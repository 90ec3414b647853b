package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magazzino/gestionale/internal/domain/entity"
	"github.com/magazzino/gestionale/internal/infrastructure/pdf"
)

func TestGenerateDocumentPDF(t *testing.T) {
	gen := pdf.NewGenerator()
	doc := &entity.Document{
		ID:            "doc-1",
		Type:          entity.DocTypeBollaInterna,
		Number:        "BI1700000000000",
		Date:          time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		WarehouseFrom: 1,
		WarehouseTo:   2,
		Status:        "created",
		Items: []entity.DraftItem{
			{ArticleID: 1, Name: "Articolo Test 1", Quantity: decimal.NewFromInt(5), Price: decimal.NewFromFloat(15.50)},
			{ArticleID: 2, Name: "Articolo Test 2", Quantity: decimal.NewFromInt(3), Price: decimal.NewFromFloat(25.00)},
		},
	}

	out, err := gen.GenerateDocumentPDF(context.Background(), doc)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateDocumentPDFAllTypes(t *testing.T) {
	gen := pdf.NewGenerator()
	base := entity.Document{
		ID:     "doc-2",
		Number: "X1",
		Date:   time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC),
		Items: []entity.DraftItem{
			{ArticleID: 1, Name: "Prodotto Esempio", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromFloat(12.30)},
		},
	}

	for _, docType := range []entity.DocumentType{
		entity.DocTypeBollaInterna,
		entity.DocTypeDDTEmesso,
		entity.DocTypeCaricoMerce,
	} {
		doc := base
		doc.Type = docType
		out, err := gen.GenerateDocumentPDF(context.Background(), &doc)
		require.NoError(t, err, string(docType))
		assert.NotEmpty(t, out, string(docType))
	}
}
