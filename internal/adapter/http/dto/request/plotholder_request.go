package request

import "cemiterio_api/internal/domain/entities"

type CreatePlotholderRequest struct {
	CPF      string `json:"cpf" binding:"required,cpf"`
	Nome     string `json:"nome" binding:"required"`
	Telefone string `json:"telefone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Endereco string `json:"endereco"`
}

func (r CreatePlotholderRequest) ToEntity() entities.Plotholder {
	return entities.Plotholder{
		CPF:     r.CPF,
		Name:    r.Nome,
		Phone:   r.Telefone,
		Email:   r.Email,
		Address: r.Endereco,
	}
}

// UpdatePlotholderRequest is a merge edit: absent fields keep their value.
type UpdatePlotholderRequest struct {
	Nome     *string `json:"nome" binding:"omitempty,min=1"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Endereco *string `json:"endereco"`
}

func (r UpdatePlotholderRequest) ToPatch() entities.PlotholderPatch {
	return entities.PlotholderPatch{
		Name:    r.Nome,
		Phone:   r.Telefone,
		Email:   r.Email,
		Address: r.Endereco,
	}
}
