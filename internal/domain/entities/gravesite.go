package entities

import (
	"strings"
	"time"
)

// GravesiteStatus is the availability of a gravesite (túmulo).
//
// Transitions:
//   - vazio -> reservado on the first contract
//   - reservado -> cheio when a burial reaches capacity
//   - cheio -> reservado when an exhumation or a capacity raise frees a slot
//   - reservado -> vazio when the last contract is cancelled with no occupants

type GravesiteStatus string

const (
	GravesiteStatusVazio     GravesiteStatus = "vazio"
	GravesiteStatusReservado GravesiteStatus = "reservado"
	GravesiteStatusCheio     GravesiteStatus = "cheio"
)

func (s GravesiteStatus) Valid() bool {
	switch s {
	case GravesiteStatusVazio, GravesiteStatusReservado, GravesiteStatusCheio:
		return true
	}
	return false
}

// Location is informational; no invariant depends on it.
type Location struct {
	Quadra string `json:"quadra"`
	Setor  string `json:"setor"`
	Numero string `json:"numero"`
}

// Gravesite is a burial unit with a finite number of slots.
//
// Invariants kept by every store:
//   - 0 <= Occupancy <= Capacity
//   - Status == cheio iff Occupancy == Capacity
//   - Status == vazio implies Occupancy == 0
type Gravesite struct {
	ID        int64           `json:"id"`
	Status    GravesiteStatus `json:"status"`
	Type      string          `json:"tipo"`
	Capacity  int             `json:"capacidade"`
	Occupancy int             `json:"ocupacao"`
	Location  Location        `json:"localizacao"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GravesitePatch carries the fields of a partial update. Nil means "keep".
type GravesitePatch struct {
	Type     *string
	Capacity *int
	Status   *GravesiteStatus
	Quadra   *string
	Setor    *string
	Numero   *string
}

func (p GravesitePatch) IsEmpty() bool {
	return p.Type == nil && p.Capacity == nil && p.Status == nil &&
		p.Quadra == nil && p.Setor == nil && p.Numero == nil
}

func (p GravesitePatch) TouchesLocation() bool {
	return p.Quadra != nil || p.Setor != nil || p.Numero != nil
}

type GravesiteFilter struct {
	Status GravesiteStatus
	Type   string
	Quadra string
}

func NewGravesite(tipo string, capacity int, loc Location, now time.Time) Gravesite {
	return Gravesite{
		Status:    GravesiteStatusVazio,
		Type:      strings.TrimSpace(tipo),
		Capacity:  capacity,
		Occupancy: 0,
		Location:  loc,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ResolveStatus derives the status implied by occupancy, capacity and the
// number of contracts referencing the gravesite.
func ResolveStatus(occupancy, capacity, contracts int) GravesiteStatus {
	if capacity > 0 && occupancy >= capacity {
		return GravesiteStatusCheio
	}
	if occupancy == 0 && contracts == 0 {
		return GravesiteStatusVazio
	}
	return GravesiteStatusReservado
}

// CheckInvariants validates I1 and I2 for the current field values.
func (g Gravesite) CheckInvariants(contracts int) error {
	if g.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if g.Occupancy < 0 || g.Occupancy > g.Capacity {
		return ErrCapacityBelowOccupancy
	}
	switch g.Status {
	case GravesiteStatusCheio:
		if g.Occupancy != g.Capacity {
			return ErrInvalidGravesiteStatus
		}
	case GravesiteStatusVazio:
		if g.Occupancy != 0 || contracts > 0 {
			return ErrInvalidGravesiteStatus
		}
	case GravesiteStatusReservado:
		// Occupants left behind by a cancelled contract keep the gravesite reserved.
		if g.Occupancy >= g.Capacity || (contracts == 0 && g.Occupancy == 0) {
			return ErrInvalidGravesiteStatus
		}
	default:
		return ErrInvalidGravesiteStatus
	}
	return nil
}

func (g Gravesite) CanReserve() error {
	if g.Status == GravesiteStatusCheio || g.Occupancy >= g.Capacity {
		return ErrGravesiteFull
	}
	return nil
}

// AfterReservation returns the gravesite as it must look once a new contract
// references it.
func (g Gravesite) AfterReservation(contracts int) (Gravesite, error) {
	if err := g.CanReserve(); err != nil {
		return Gravesite{}, err
	}
	g.Status = ResolveStatus(g.Occupancy, g.Capacity, contracts+1)
	return g, nil
}

func (g Gravesite) AfterBurial() (Gravesite, error) {
	if g.Occupancy >= g.Capacity {
		return Gravesite{}, ErrCapacityExceeded
	}
	g.Occupancy++
	g.Status = ResolveStatus(g.Occupancy, g.Capacity, 1)
	return g, nil
}

func (g Gravesite) AfterExhumation(remainingContracts int) (Gravesite, error) {
	if g.Occupancy <= 0 {
		return Gravesite{}, ErrInvariantViolation
	}
	g.Occupancy--
	g.Status = ResolveStatus(g.Occupancy, g.Capacity, remainingContracts)
	return g, nil
}

func (g Gravesite) AfterRelease(remainingContracts int) Gravesite {
	g.Status = ResolveStatus(g.Occupancy, g.Capacity, remainingContracts)
	return g
}

// ApplyPatch merges the provided fields over g. When the patch does not set
// a status, the status is re-derived from the new capacity.
func (g Gravesite) ApplyPatch(p GravesitePatch, contracts int) (Gravesite, error) {
	next := g
	if p.Type != nil {
		next.Type = strings.TrimSpace(*p.Type)
	}
	if p.Capacity != nil {
		if *p.Capacity <= 0 {
			return Gravesite{}, ErrInvalidCapacity
		}
		if *p.Capacity < g.Occupancy {
			return Gravesite{}, ErrCapacityBelowOccupancy
		}
		next.Capacity = *p.Capacity
	}
	if p.Quadra != nil {
		next.Location.Quadra = strings.TrimSpace(*p.Quadra)
	}
	if p.Setor != nil {
		next.Location.Setor = strings.TrimSpace(*p.Setor)
	}
	if p.Numero != nil {
		next.Location.Numero = strings.TrimSpace(*p.Numero)
	}
	if p.Status != nil {
		next.Status = *p.Status
	} else {
		next.Status = ResolveStatus(next.Occupancy, next.Capacity, contracts)
	}
	if err := next.CheckInvariants(contracts); err != nil {
		return Gravesite{}, err
	}
	return next, nil
}
