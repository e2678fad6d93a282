package response

import (
	"time"

	"cemiterio_api/internal/domain/entities"
)

type ContractResponse struct {
	CPF            string    `json:"cpf"`
	IDTumulo       int64     `json:"id_tumulo"`
	DataInicio     string    `json:"data_inicio"`
	PrazoVigencia  int       `json:"prazo_vigencia"`
	DataVencimento string    `json:"data_vencimento"`
	Valor          float64   `json:"valor"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		CPF:            c.CPF,
		IDTumulo:       c.GravesiteID,
		DataInicio:     formatDate(c.StartDate),
		PrazoVigencia:  c.TermMonths,
		DataVencimento: formatDate(c.EndDate),
		Valor:          c.Value,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromContracts(items []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromContract(c))
	}
	return out
}

// ContractReservationResponse is returned by POST /contrato together with
// the gravesite state the reservation produced.
type ContractReservationResponse struct {
	Contrato ContractResponse  `json:"contrato"`
	Tumulo   GravesiteResponse `json:"tumulo"`
}

type ContractReleaseResponse struct {
	Tumulo GravesiteResponse `json:"tumulo"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(entities.DateLayout)
}
