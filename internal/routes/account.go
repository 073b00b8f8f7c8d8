package routes

import (
	"net/http"

	"Piggyvault/internal/contracts"
	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAccount(c *gin.Context) {
	var body contracts.AccountCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	created, err := h.AccountService.CreateAccount(ctx, body.UpiId, body.Name, body.IsDefault)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AccountResponse{Account: created})
}

func (h *Handler) ListAccounts(c *gin.Context) {
	ctx := c.Request.Context()
	accounts, err := h.AccountService.ListAccounts(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := contracts.AccountListResponse{Accounts: accounts, Total: len(accounts)}
	if defaultID, err := h.AccountService.DefaultAccountId(ctx); err == nil && defaultID != nil {
		response.DefaultId = defaultID.String()
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	accountID, err := h.parseIdParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.AccountService.DeleteAccount(ctx, accountID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Conta removida com sucesso"})
}

func (h *Handler) SetDefaultAccount(c *gin.Context) {
	var body contracts.AccountDefaultRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	accountID, err := pkg.ParseULID(body.AccountId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("account_id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.AccountService.SetDefaultAccount(ctx, accountID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Conta padrão definida com sucesso"})
}
