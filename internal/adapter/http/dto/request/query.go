package request

import "cemiterio_api/internal/domain/entities"

const DefaultExpiringDays = 30

type GravesiteListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=vazio reservado cheio"`
	Tipo   string `form:"tipo"`
	Quadra string `form:"quadra"`
}

func (q GravesiteListQuery) ToFilter() entities.GravesiteFilter {
	return entities.GravesiteFilter{
		Status: entities.GravesiteStatus(q.Status),
		Type:   q.Tipo,
		Quadra: q.Quadra,
	}
}

type ContractListQuery struct {
	CPF      string `form:"cpf" binding:"omitempty,cpf"`
	IDTumulo int64  `form:"id_tumulo" binding:"omitempty,gt=0"`
	Status   string `form:"status" binding:"omitempty,oneof=ativo reservado"`
}

func (q ContractListQuery) ToFilter() entities.ContractFilter {
	return entities.ContractFilter{
		CPF:         entities.NormalizeCPF(q.CPF),
		GravesiteID: q.IDTumulo,
		Status:      entities.ContractStatus(q.Status),
	}
}

type ExpiringContractsQuery struct {
	Dias *int `form:"dias"`
}

func (q ExpiringContractsQuery) ResolveDays() int {
	if q.Dias == nil {
		return DefaultExpiringDays
	}
	return *q.Dias
}

type DeceasedListQuery struct {
	IDTumulo int64  `form:"id_tumulo" binding:"omitempty,gt=0"`
	CPF      string `form:"cpf" binding:"omitempty,cpf"`
}

func (q DeceasedListQuery) ToFilter() entities.DeceasedFilter {
	return entities.DeceasedFilter{
		GravesiteID: q.IDTumulo,
		CPF:         entities.NormalizeCPF(q.CPF),
	}
}
