package entities

import "time"

// ContractStatus is the lifecycle state of a contract (contrato).
//
// Cancellation is not a status: a cancelled contract is deleted.

type ContractStatus string

const (
	ContractStatusAtivo     ContractStatus = "ativo"
	ContractStatusReservado ContractStatus = "reservado"
)

func (s ContractStatus) Valid() bool {
	return s == ContractStatusAtivo || s == ContractStatusReservado
}

// Contract binds a plot-holder to a gravesite for a term.
//
// Storage model:
//   - key: (cpf, id_tumulo); a plot-holder has at most one contract per gravesite
//   - EndDate is derived from StartDate + TermMonths and persisted so that
//     "expiring soon" queries are range scans
type Contract struct {
	CPF         string         `json:"cpf"`
	GravesiteID int64          `json:"id_tumulo"`
	StartDate   time.Time      `json:"data_inicio"`
	TermMonths  int            `json:"prazo_vigencia"`
	EndDate     time.Time      `json:"data_vencimento"`
	Value       float64        `json:"valor"`
	Status      ContractStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type ContractFilter struct {
	CPF         string
	GravesiteID int64
	Status      ContractStatus
}

// ContractTermsPatch carries editable commercial terms. Nil means "keep".
type ContractTermsPatch struct {
	StartDate  *time.Time
	TermMonths *int
	Value      *float64
}

func (p ContractTermsPatch) IsEmpty() bool {
	return p.StartDate == nil && p.TermMonths == nil && p.Value == nil
}

func ContractEndDate(start time.Time, termMonths int) time.Time {
	return DateOnly(start).AddDate(0, termMonths, 0)
}

func (c Contract) ApplyTerms(p ContractTermsPatch) Contract {
	if p.StartDate != nil {
		c.StartDate = DateOnly(*p.StartDate)
	}
	if p.TermMonths != nil {
		c.TermMonths = *p.TermMonths
	}
	if p.Value != nil {
		c.Value = *p.Value
	}
	c.EndDate = ContractEndDate(c.StartDate, c.TermMonths)
	return c
}

// ValidateContractTransition allows reservado <-> ativo. Keeping the same
// status is accepted as a no-op.
func ValidateContractTransition(current, next ContractStatus) error {
	if !current.Valid() || !next.Valid() {
		return ErrInvalidTransition
	}
	return nil
}

func CheckContractUniqueness(cpf string, gravesiteID int64, existing []Contract) error {
	for _, c := range existing {
		if c.CPF == cpf && c.GravesiteID == gravesiteID {
			return ErrDuplicateContract
		}
	}
	return nil
}
