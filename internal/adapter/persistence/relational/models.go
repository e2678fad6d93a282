package relational

import (
	"time"

	"cemiterio_api/internal/domain/entities"

	"gorm.io/datatypes"
)

// gravesiteModel maps the tumulos table.
//
// Versao is bumped by every write; the occupancy transactions use that bump
// to take the row lock before reading derived state.
type gravesiteModel struct {
	ID          int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Status      string         `gorm:"column:status;type:varchar(16);not null;index"`
	Tipo        string         `gorm:"column:tipo;type:varchar(64)"`
	Capacidade  int            `gorm:"column:capacidade;not null"`
	Ocupacao    int            `gorm:"column:ocupacao;not null"`
	Versao      int64          `gorm:"column:versao;not null"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	Localizacao *locationModel `gorm:"foreignKey:GravesiteID;references:ID;constraint:OnDelete:CASCADE"`
}

func (gravesiteModel) TableName() string { return "tumulos" }

type locationModel struct {
	GravesiteID int64  `gorm:"column:id_tumulo;primaryKey;autoIncrement:false"`
	Quadra      string `gorm:"column:quadra;type:varchar(32);index"`
	Setor       string `gorm:"column:setor;type:varchar(32)"`
	Numero      string `gorm:"column:numero;type:varchar(32)"`
}

func (locationModel) TableName() string { return "localizacoes" }

type contractModel struct {
	CPF            string         `gorm:"column:cpf;primaryKey;type:varchar(14)"`
	GravesiteID    int64          `gorm:"column:id_tumulo;primaryKey;autoIncrement:false;index"`
	DataInicio     datatypes.Date `gorm:"column:data_inicio;not null"`
	PrazoVigencia  int            `gorm:"column:prazo_vigencia;not null"`
	DataVencimento datatypes.Date `gorm:"column:data_vencimento;not null;index"`
	Valor          float64        `gorm:"column:valor;not null"`
	Status         string         `gorm:"column:status;type:varchar(16);not null"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`

	Titular *plotholderModel `gorm:"foreignKey:CPF;references:CPF;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (contractModel) TableName() string { return "contratos" }

type deceasedModel struct {
	ID              string         `gorm:"column:id;primaryKey;type:varchar(36)"`
	Nome            string         `gorm:"column:nome;type:varchar(255);not null"`
	DataNascimento  datatypes.Date `gorm:"column:data_nascimento;not null"`
	DataFalecimento datatypes.Date `gorm:"column:data_falecimento;not null"`
	Motivo          string         `gorm:"column:motivo;type:text"`
	CPF             string         `gorm:"column:cpf;type:varchar(14);not null;index"`
	GravesiteID     int64          `gorm:"column:id_tumulo;not null;index"`
	CreatedAt       time.Time      `gorm:"column:created_at"`

	Titular *plotholderModel `gorm:"foreignKey:CPF;references:CPF;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (deceasedModel) TableName() string { return "falecidos" }

type plotholderModel struct {
	CPF       string    `gorm:"column:cpf;primaryKey;type:varchar(14)"`
	Nome      string    `gorm:"column:nome;type:varchar(255);not null"`
	Telefone  string    `gorm:"column:telefone;type:varchar(32)"`
	Email     string    `gorm:"column:email;type:varchar(255)"`
	Endereco  string    `gorm:"column:endereco;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (plotholderModel) TableName() string { return "titulares" }

func toGravesiteModel(g entities.Gravesite) gravesiteModel {
	return gravesiteModel{
		ID:         g.ID,
		Status:     string(g.Status),
		Tipo:       g.Type,
		Capacidade: g.Capacity,
		Ocupacao:   g.Occupancy,
		Versao:     1,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
		Localizacao: &locationModel{
			GravesiteID: g.ID,
			Quadra:      g.Location.Quadra,
			Setor:       g.Location.Setor,
			Numero:      g.Location.Numero,
		},
	}
}

func fromGravesiteModel(m gravesiteModel) entities.Gravesite {
	g := entities.Gravesite{
		ID:        m.ID,
		Status:    entities.GravesiteStatus(m.Status),
		Type:      m.Tipo,
		Capacity:  m.Capacidade,
		Occupancy: m.Ocupacao,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
	if m.Localizacao != nil {
		g.Location = entities.Location{
			Quadra: m.Localizacao.Quadra,
			Setor:  m.Localizacao.Setor,
			Numero: m.Localizacao.Numero,
		}
	}
	return g
}

func toContractModel(c entities.Contract) contractModel {
	return contractModel{
		CPF:            c.CPF,
		GravesiteID:    c.GravesiteID,
		DataInicio:     datatypes.Date(c.StartDate),
		PrazoVigencia:  c.TermMonths,
		DataVencimento: datatypes.Date(c.EndDate),
		Valor:          c.Value,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func fromContractModel(m contractModel) entities.Contract {
	return entities.Contract{
		CPF:         m.CPF,
		GravesiteID: m.GravesiteID,
		StartDate:   entities.DateOnly(time.Time(m.DataInicio)),
		TermMonths:  m.PrazoVigencia,
		EndDate:     entities.DateOnly(time.Time(m.DataVencimento)),
		Value:       m.Valor,
		Status:      entities.ContractStatus(m.Status),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func toDeceasedModel(d entities.Deceased) deceasedModel {
	return deceasedModel{
		ID:              d.ID,
		Nome:            d.Name,
		DataNascimento:  datatypes.Date(d.BirthDate),
		DataFalecimento: datatypes.Date(d.DeathDate),
		Motivo:          d.Cause,
		CPF:             d.CPF,
		GravesiteID:     d.GravesiteID,
		CreatedAt:       d.CreatedAt,
	}
}

func fromDeceasedModel(m deceasedModel) entities.Deceased {
	return entities.Deceased{
		ID:          m.ID,
		Name:        m.Nome,
		BirthDate:   entities.DateOnly(time.Time(m.DataNascimento)),
		DeathDate:   entities.DateOnly(time.Time(m.DataFalecimento)),
		Cause:       m.Motivo,
		CPF:         m.CPF,
		GravesiteID: m.GravesiteID,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func toPlotholderModel(h entities.Plotholder) plotholderModel {
	return plotholderModel{
		CPF:       h.CPF,
		Nome:      h.Name,
		Telefone:  h.Phone,
		Email:     h.Email,
		Endereco:  h.Address,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func fromPlotholderModel(m plotholderModel) entities.Plotholder {
	return entities.Plotholder{
		CPF:       m.CPF,
		Name:      m.Nome,
		Phone:     m.Telefone,
		Email:     m.Email,
		Address:   m.Endereco,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}
