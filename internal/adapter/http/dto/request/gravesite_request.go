package request

import "cemiterio_api/internal/domain/entities"

type LocationRequest struct {
	Quadra string `json:"quadra"`
	Setor  string `json:"setor"`
	Numero string `json:"numero"`
}

type CreateGravesiteRequest struct {
	Tipo        string          `json:"tipo" binding:"required"`
	Capacidade  int             `json:"capacidade" binding:"required,gt=0"`
	Localizacao LocationRequest `json:"localizacao"`
}

func (r CreateGravesiteRequest) ToLocation() entities.Location {
	return entities.Location{
		Quadra: r.Localizacao.Quadra,
		Setor:  r.Localizacao.Setor,
		Numero: r.Localizacao.Numero,
	}
}

type LocationPatchRequest struct {
	Quadra *string `json:"quadra"`
	Setor  *string `json:"setor"`
	Numero *string `json:"numero"`
}

// UpdateGravesiteRequest carries a partial edit. Occupancy is not editable
// here; it only moves through burials and exhumations.
//
// Location fields are accepted flat or under localizacao; a nested value wins
// over the flat one for the same field.
type UpdateGravesiteRequest struct {
	Tipo        *string               `json:"tipo" binding:"omitempty,min=1"`
	Capacidade  *int                  `json:"capacidade" binding:"omitempty,gt=0"`
	Status      *string               `json:"status" binding:"omitempty,oneof=vazio reservado cheio"`
	Quadra      *string               `json:"quadra"`
	Setor       *string               `json:"setor"`
	Numero      *string               `json:"numero"`
	Localizacao *LocationPatchRequest `json:"localizacao"`
}

func (r UpdateGravesiteRequest) ToPatch() entities.GravesitePatch {
	p := entities.GravesitePatch{
		Type:     r.Tipo,
		Capacity: r.Capacidade,
	}
	if r.Status != nil {
		s := entities.GravesiteStatus(*r.Status)
		p.Status = &s
	}
	p.Quadra, p.Setor, p.Numero = r.Quadra, r.Setor, r.Numero
	if l := r.Localizacao; l != nil {
		p.Quadra = firstSet(l.Quadra, p.Quadra)
		p.Setor = firstSet(l.Setor, p.Setor)
		p.Numero = firstSet(l.Numero, p.Numero)
	}
	return p
}

func firstSet(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}
