package contracts

import (
	domainAccount "Piggyvault/internal/domain/account"
)

type AccountCreateRequest struct {
	UpiId     string `json:"upi_id" binding:"required,max=100"`
	Name      string `json:"name" binding:"required,max=100"`
	IsDefault bool   `json:"is_default"`
}

type AccountDefaultRequest struct {
	AccountId string `json:"account_id" binding:"required"`
}

type AccountResponse struct {
	Account *domainAccount.Account `json:"account"`
}

type AccountListResponse struct {
	Accounts  []*domainAccount.Account `json:"accounts"`
	DefaultId string                   `json:"defaultId,omitempty"`
	Total     int                      `json:"total"`
}
