package response

import (
	"time"

	"cemiterio_api/internal/domain/entities"
)

type PlotholderResponse struct {
	CPF       string    `json:"cpf"`
	Nome      string    `json:"nome"`
	Telefone  string    `json:"telefone"`
	Email     string    `json:"email"`
	Endereco  string    `json:"endereco"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPlotholder(h entities.Plotholder) PlotholderResponse {
	return PlotholderResponse{
		CPF:       h.CPF,
		Nome:      h.Name,
		Telefone:  h.Phone,
		Email:     h.Email,
		Endereco:  h.Address,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func FromPlotholders(items []entities.Plotholder) []PlotholderResponse {
	out := make([]PlotholderResponse, 0, len(items))
	for _, h := range items {
		out = append(out, FromPlotholder(h))
	}
	return out
}
