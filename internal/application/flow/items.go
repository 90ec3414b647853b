package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/domain"
	"github.com/magazzino/gestionale/internal/domain/entity"
)

// Search cerca articoli per codice a barre o testo libero. Query sotto i
// due caratteri svuota i risultati senza interrogare il gateway.
func (m *Machine) Search(ctx context.Context, query string) ([]entity.Article, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < 2 {
		m.results = nil
		return nil, nil
	}
	articles, err := m.gw.SearchArticles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ricerca articoli: %w", err)
	}
	m.results = articles
	return articles, nil
}

// SearchResults ritorna l'ultimo insieme di risultati.
func (m *Machine) SearchResults() []entity.Article {
	out := make([]entity.Article, len(m.results))
	copy(out, m.results)
	return out
}

// SelectResult seleziona il risultato di ricerca all'indice dato.
func (m *Machine) SelectResult(index int) error {
	if index < 0 || index >= len(m.results) {
		return ErrArticleNotFound
	}
	m.SelectArticle(m.results[index])
	return nil
}

// SelectArticle memorizza l'articolo come selezione corrente per la
// prossima AddItem e precompila il modulo d'inserimento.
func (m *Machine) SelectArticle(article entity.Article) {
	a := article
	m.selected = &a
	m.results = nil
	m.entry = Entry{
		Text:  fmt.Sprintf("%s - %s", article.Code, article.Name),
		Price: article.Price,
	}
}

// SelectedArticle ritorna la selezione corrente, o nil.
func (m *Machine) SelectedArticle() *entity.Article {
	return m.selected
}

// Entry ritorna lo stato del modulo d'inserimento.
func (m *Machine) EntryForm() Entry { return m.entry }

// AddItem aggiunge una riga manuale. Regole in ordine fisso, vince la
// prima che fallisce: articolo selezionato, quantità strettamente
// positiva, prezzo non negativo. Se esiste già una riga con lo stesso
// articolo la sua quantità viene incrementata (prezzo invariato), niente
// duplicati. A inserimento riuscito il modulo viene azzerato.
func (m *Machine) AddItem(quantity, price decimal.Decimal) error {
	if m.phase != PhaseItems {
		return domain.ErrInvalidInput
	}
	if m.selected == nil {
		return ErrNoArticle
	}
	if !quantity.IsPositive() {
		return ErrInvalidQuantity
	}
	if price.IsNegative() {
		return ErrInvalidPrice
	}

	if idx := m.indexOf(m.selected.ID); idx >= 0 {
		m.items[idx].Quantity = m.items[idx].Quantity.Add(quantity)
	} else {
		m.items = append(m.items, Item{
			ArticleID: m.selected.ID,
			Code:      m.selected.Code,
			Name:      m.selected.Name,
			Quantity:  quantity,
			Price:     price,
		})
	}

	m.selected = nil
	m.entry = Entry{}
	m.results = nil
	return nil
}

// EditItem ricopia i campi della riga nel modulo d'inserimento e la
// rimuove dalla collezione (rimuovi-e-precompila per il reinserimento).
// Vietato per righe da movimentazione esterna.
func (m *Machine) EditItem(index int) error {
	if index < 0 || index >= len(m.items) {
		return ErrNoSuchItem
	}
	item := m.items[index]
	if item.FromMovement {
		return ErrItemLocked
	}

	m.entry = Entry{
		Text:     fmt.Sprintf("%s - %s", item.Code, item.Name),
		Quantity: item.Quantity,
		Price:    item.Price,
	}
	m.selected = &entity.Article{
		ID:    item.ArticleID,
		Code:  item.Code,
		Name:  item.Name,
		Price: item.Price,
	}
	return m.RemoveItem(index)
}

// RemoveItem elimina la riga all'indice dato; a collezione vuota l'invio
// risulta di nuovo disabilitato (CanSubmit).
func (m *Machine) RemoveItem(index int) error {
	if index < 0 || index >= len(m.items) {
		return ErrNoSuchItem
	}
	m.items = append(m.items[:index], m.items[index+1:]...)
	return nil
}

// UpdateItemQuantity aggiorna la quantità di una riga da ordine, con
// quantità non negativa. Il limite dell'ordinato vale solo al caricamento
// iniziale dell'ordine e qui non viene riverificato.
func (m *Machine) UpdateItemQuantity(index int, quantity decimal.Decimal) error {
	if index < 0 || index >= len(m.items) {
		return ErrNoSuchItem
	}
	if !m.items[index].FromOrder {
		return ErrNotOrderItem
	}
	if quantity.IsNegative() {
		return ErrInvalidQuantity
	}
	m.items[index].Quantity = quantity
	return nil
}

// indexOf ritorna l'indice della riga con l'articolo dato, o -1.
func (m *Machine) indexOf(articleID int64) int {
	for i := range m.items {
		if m.items[i].ArticleID == articleID {
			return i
		}
	}
	return -1
}
