package entities

import "time"

// Deceased is an interred person (falecido), linked to one gravesite and to
// the plot-holder responsible for it.
type Deceased struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	BirthDate   time.Time `json:"data_nascimento"`
	DeathDate   time.Time `json:"data_falecimento"`
	Cause       string    `json:"motivo,omitempty"`
	CPF         string    `json:"cpf"`
	GravesiteID int64     `json:"id_tumulo"`
	CreatedAt   time.Time `json:"created_at"`
}

type DeceasedFilter struct {
	GravesiteID int64
	CPF         string
}
