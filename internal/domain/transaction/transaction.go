package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Types string

const TypeDebit Types = "DEBIT"

type Transaction struct {
	Id          ulid.ULID `json:"id"`
	GoalId      ulid.ULID `json:"goalId"`
	AccountId   ulid.ULID `json:"accountId"`
	Type        Types     `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
