package response

import (
	"time"

	"cemiterio_api/internal/domain/entities"
)

type LocationResponse struct {
	Quadra string `json:"quadra"`
	Setor  string `json:"setor"`
	Numero string `json:"numero"`
}

type GravesiteResponse struct {
	ID          int64            `json:"id"`
	Status      string           `json:"status"`
	Tipo        string           `json:"tipo"`
	Capacidade  int              `json:"capacidade"`
	Ocupacao    int              `json:"ocupacao"`
	Localizacao LocationResponse `json:"localizacao"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func FromGravesite(g entities.Gravesite) GravesiteResponse {
	return GravesiteResponse{
		ID:         g.ID,
		Status:     string(g.Status),
		Tipo:       g.Type,
		Capacidade: g.Capacity,
		Ocupacao:   g.Occupancy,
		Localizacao: LocationResponse{
			Quadra: g.Location.Quadra,
			Setor:  g.Location.Setor,
			Numero: g.Location.Numero,
		},
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func FromGravesites(items []entities.Gravesite) []GravesiteResponse {
	out := make([]GravesiteResponse, 0, len(items))
	for _, g := range items {
		out = append(out, FromGravesite(g))
	}
	return out
}
