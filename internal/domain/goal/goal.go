package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// SavingsBit é uma fatia paga individualmente do valor alvo de uma meta.
// A transição pending → paid é definitiva pela API pública.
type SavingsBit struct {
	Id      string     `json:"id"`
	Index   int        `json:"index"`
	Amount  float64    `json:"amount"`
	Status  BitStatus  `json:"status"`
	DueDate time.Time  `json:"dueDate"`
	PaidAt  *time.Time `json:"paidAt,omitempty"`
	PaidBy  *ulid.ULID `json:"paidBy,omitempty"`
}

type Goal struct {
	Id            ulid.ULID    `json:"id"`
	Name          string       `json:"name"`
	TargetAmount  float64      `json:"targetAmount"`
	TotalSlots    int          `json:"totalSlots"`
	Frequency     Frequency    `json:"frequency"`
	DurationValue int          `json:"durationValue"`
	DurationUnit  string       `json:"durationUnit"`
	Category      string       `json:"category"`
	Status        GoalStatus   `json:"status"`
	SavingsPlan   []SavingsBit `json:"savingsPlan"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// TotalSaved soma as parcelas já pagas do plano.
func (g *Goal) TotalSaved() float64 {
	var total float64
	for i := range g.SavingsPlan {
		if g.SavingsPlan[i].Status == BitPaid {
			total += g.SavingsPlan[i].Amount
		}
	}
	return total
}

// Progress retorna o percentual pago em relação ao valor alvo.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.TotalSaved() / g.TargetAmount * 100
}

// FindBit retorna o índice da parcela no plano, ou -1.
func (g *Goal) FindBit(bitId string) int {
	for i := range g.SavingsPlan {
		if g.SavingsPlan[i].Id == bitId {
			return i
		}
	}
	return -1
}
