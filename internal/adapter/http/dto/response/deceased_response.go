package response

import (
	"time"

	"cemiterio_api/internal/domain/entities"
)

type DeceasedResponse struct {
	ID              string    `json:"id"`
	Nome            string    `json:"nome"`
	DataNascimento  string    `json:"data_nascimento"`
	DataFalecimento string    `json:"data_falecimento"`
	Motivo          string    `json:"motivo,omitempty"`
	CPF             string    `json:"cpf"`
	IDTumulo        int64     `json:"id_tumulo"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromDeceased(d entities.Deceased) DeceasedResponse {
	return DeceasedResponse{
		ID:              d.ID,
		Nome:            d.Name,
		DataNascimento:  formatDate(d.BirthDate),
		DataFalecimento: formatDate(d.DeathDate),
		Motivo:          d.Cause,
		CPF:             d.CPF,
		IDTumulo:        d.GravesiteID,
		CreatedAt:       d.CreatedAt,
	}
}

func FromDeceasedList(items []entities.Deceased) []DeceasedResponse {
	out := make([]DeceasedResponse, 0, len(items))
	for _, d := range items {
		out = append(out, FromDeceased(d))
	}
	return out
}

// DeceasedOccupancyResponse pairs a burial or exhumation with the resulting
// gravesite.
type DeceasedOccupancyResponse struct {
	Falecido DeceasedResponse  `json:"falecido"`
	Tumulo   GravesiteResponse `json:"tumulo"`
}
