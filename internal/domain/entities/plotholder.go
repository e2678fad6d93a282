package entities

import (
	"strings"
	"time"
)

// Plotholder is the person contractually responsible for gravesites (titular).
type Plotholder struct {
	CPF       string    `json:"cpf"`
	Name      string    `json:"nome"`
	Phone     string    `json:"telefone"`
	Email     string    `json:"email"`
	Address   string    `json:"endereco"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlotholderPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

func (p PlotholderPatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Email == nil && p.Address == nil
}

func (h Plotholder) ApplyPatch(p PlotholderPatch) Plotholder {
	if p.Name != nil {
		h.Name = strings.TrimSpace(*p.Name)
	}
	if p.Phone != nil {
		h.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Email != nil {
		h.Email = strings.TrimSpace(*p.Email)
	}
	if p.Address != nil {
		h.Address = strings.TrimSpace(*p.Address)
	}
	return h
}
