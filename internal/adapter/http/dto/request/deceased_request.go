package request

import "cemiterio_api/internal/domain/entities"

type CreateDeceasedRequest struct {
	Nome            string `json:"nome" binding:"required"`
	DataNascimento  string `json:"data_nascimento" binding:"required"`
	DataFalecimento string `json:"data_falecimento" binding:"required"`
	Motivo          string `json:"motivo"`
	CPF             string `json:"cpf" binding:"required,cpf"`
	IDTumulo        int64  `json:"id_tumulo" binding:"required,gt=0"`
}

func (r CreateDeceasedRequest) ToEntity() (entities.Deceased, error) {
	birth, err := parseDate(r.DataNascimento)
	if err != nil {
		return entities.Deceased{}, err
	}
	death, err := parseDate(r.DataFalecimento)
	if err != nil {
		return entities.Deceased{}, err
	}
	return entities.Deceased{
		Name:        r.Nome,
		BirthDate:   birth,
		DeathDate:   death,
		Cause:       r.Motivo,
		CPF:         r.CPF,
		GravesiteID: r.IDTumulo,
	}, nil
}
