package domain

import "errors"

// Errori di dominio (senza dipendenze esterne).
// Tassonomia dei guasti del gateway: timeout (limite di attesa superato),
// comunicazione (ogni altro guasto di trasporto) e non-trovato.
var (
	ErrTimeout       = errors.New("timeout: la richiesta ha impiegato troppo tempo")
	ErrCommunication = errors.New("errore di comunicazione")
	ErrNotFound      = errors.New("risorsa non trovata")
	ErrInvalidInput  = errors.New("input non valido")
)
