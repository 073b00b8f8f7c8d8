package contracts

import (
	domainGoal "Piggyvault/internal/domain/goal"
)

type GoalCreateRequest struct {
	Name          string  `json:"name" binding:"omitempty,max=100"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Slots         int     `json:"slots" binding:"required,gt=0"`
	Frequency     string  `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	DurationValue int     `json:"duration_value" binding:"omitempty,gt=0"`
	DurationUnit  string  `json:"duration_unit" binding:"omitempty,max=10"`
	Category      string  `json:"category" binding:"omitempty,max=30"`
}

type GoalUpdateRequest struct {
	Name          string  `json:"name" binding:"omitempty,max=100"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Slots         int     `json:"slots" binding:"required,gt=0"`
	Frequency     string  `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	DurationValue int     `json:"duration_value" binding:"omitempty,gt=0"`
	DurationUnit  string  `json:"duration_unit" binding:"omitempty,max=10"`
}

type PaymentRequest struct {
	BitId     string `json:"bit_id" binding:"required"`
	AccountId string `json:"account_id" binding:"omitempty"`
}

type GoalResponse struct {
	Goal *domainGoal.Goal `json:"goal"`
}

type GoalListResponse struct {
	Goals []*domainGoal.Goal `json:"goals"`
	Total int                `json:"total"`
}

// PaymentResponse cobre os dois desfechos de um pagamento: aplicado, com o
// resultado completo, ou ignorado sem efeito.
type PaymentResponse struct {
	Applied bool                      `json:"applied"`
	Result  *domainGoal.PaymentResult `json:"result,omitempty"`
}
