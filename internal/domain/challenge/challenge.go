package challenge

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

type Type string

const (
	// TypeAmount acompanha o valor total poupado dentro da janela.
	TypeAmount Type = "AMOUNT"
	// TypeCount acompanha o número de pagamentos dentro da janela.
	TypeCount Type = "COUNT"
)

type Challenge struct {
	Id            ulid.ULID  `json:"id"`
	TemplateId    string     `json:"templateId"`
	Type          Type       `json:"type"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	TargetAmount  float64    `json:"targetAmount,omitempty"`
	TargetCount   int        `json:"targetCount,omitempty"`
	CurrentAmount float64    `json:"currentAmount"`
	CurrentCount  int        `json:"currentCount"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	Status        Status     `json:"status"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	Reward        string     `json:"reward"`
	Badge         string     `json:"badge"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// TargetReached indica se o alvo foi atingido com o progresso atual.
func (c *Challenge) TargetReached() bool {
	switch c.Type {
	case TypeAmount:
		return c.TargetAmount > 0 && c.CurrentAmount >= c.TargetAmount
	case TypeCount:
		return c.TargetCount > 0 && c.CurrentCount >= c.TargetCount
	default:
		return false
	}
}

// InWindow indica se o instante está dentro da janela do desafio.
func (c *Challenge) InWindow(at time.Time) bool {
	return !at.Before(c.StartDate) && !at.After(c.EndDate)
}
