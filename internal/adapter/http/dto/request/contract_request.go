package request

import "cemiterio_api/internal/domain/entities"

type CreateContractRequest struct {
	CPF           string  `json:"cpf" binding:"required,cpf"`
	IDTumulo      int64   `json:"id_tumulo" binding:"required,gt=0"`
	DataInicio    string  `json:"data_inicio" binding:"required"`
	PrazoVigencia int     `json:"prazo_vigencia" binding:"required,gt=0"`
	Valor         float64 `json:"valor" binding:"required,gt=0"`
	Status        string  `json:"status" binding:"omitempty,oneof=ativo reservado"`
}

// ToEntity parses the start date; an omitted status means ativo.
func (r CreateContractRequest) ToEntity() (entities.Contract, error) {
	start, err := parseDate(r.DataInicio)
	if err != nil {
		return entities.Contract{}, err
	}
	status := entities.ContractStatusAtivo
	if r.Status != "" {
		status = entities.ContractStatus(r.Status)
	}
	return entities.Contract{
		CPF:         r.CPF,
		GravesiteID: r.IDTumulo,
		StartDate:   start,
		TermMonths:  r.PrazoVigencia,
		Value:       r.Valor,
		Status:      status,
	}, nil
}

type UpdateContractStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ativo reservado"`
}

type UpdateContractTermsRequest struct {
	DataInicio    *string  `json:"data_inicio"`
	PrazoVigencia *int     `json:"prazo_vigencia" binding:"omitempty,gt=0"`
	Valor         *float64 `json:"valor" binding:"omitempty,gt=0"`
}

func (r UpdateContractTermsRequest) ToPatch() (entities.ContractTermsPatch, error) {
	p := entities.ContractTermsPatch{
		TermMonths: r.PrazoVigencia,
		Value:      r.Valor,
	}
	if r.DataInicio != nil {
		start, err := parseDate(*r.DataInicio)
		if err != nil {
			return entities.ContractTermsPatch{}, err
		}
		p.StartDate = &start
	}
	return p, nil
}
