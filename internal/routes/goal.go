package routes

import (
	"net/http"

	"Piggyvault/internal/contracts"
	"Piggyvault/internal/domain/goal"
	appErrors "Piggyvault/internal/errors"
	"Piggyvault/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

func (h *Handler) CreateGoal(c *gin.Context) {
	var body contracts.GoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := goal.CreateGoalRequest{
		Name:          body.Name,
		Amount:        body.Amount,
		Slots:         body.Slots,
		Frequency:     goal.Frequency(body.Frequency),
		DurationValue: body.DurationValue,
		DurationUnit:  body.DurationUnit,
		Category:      body.Category,
	}

	ctx := c.Request.Context()
	created, err := h.GoalService.CreateGoal(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalResponse{Goal: created})
}

func (h *Handler) UpdateGoal(c *gin.Context) {
	var body contracts.GoalUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	goalID, err := h.parseIdParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := goal.UpdateGoalRequest{
		Name:          body.Name,
		Amount:        body.Amount,
		Slots:         body.Slots,
		Frequency:     goal.Frequency(body.Frequency),
		DurationValue: body.DurationValue,
		DurationUnit:  body.DurationUnit,
	}

	ctx := c.Request.Context()
	updated, err := h.GoalService.UpdateGoal(ctx, goalID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: updated})
}

func (h *Handler) ListGoals(c *gin.Context) {
	ctx := c.Request.Context()
	goals, err := h.GoalService.ListGoals(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalListResponse{Goals: goals, Total: len(goals)})
}

func (h *Handler) GetGoal(c *gin.Context) {
	goalID, err := h.parseIdParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.GetGoalById(ctx, goalID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: entity})
}

func (h *Handler) GetGoalPlan(c *gin.Context) {
	goalID, err := h.parseIdParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.GetGoalById(ctx, goalID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":       entity.SavingsPlan,
		"totalSaved": entity.TotalSaved(),
		"progress":   entity.Progress(),
	})
}

func (h *Handler) GetActiveGoal(c *gin.Context) {
	ctx := c.Request.Context()
	entity, err := h.GoalService.ActiveGoal(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: entity})
}

func (h *Handler) ActivateGoal(c *gin.Context) {
	goalID, err := h.parseIdParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.GoalService.SwitchGoal(ctx, goalID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta ativada com sucesso"})
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	goalID, err := h.parseIdParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.GoalService.DeleteGoal(ctx, goalID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta removida com sucesso"})
}

// MakePayment aplica o pagamento de uma parcela da meta ativa. Parcela
// desconhecida ou já paga responde 200 com applied=false.
func (h *Handler) MakePayment(c *gin.Context) {
	var body contracts.PaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()

	var accountID ulid.ULID
	if body.AccountId != "" {
		parsed, err := pkg.ParseULID(body.AccountId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("account_id", "formato inválido"))
			return
		}
		accountID = parsed
	} else {
		defaultID, err := h.AccountService.DefaultAccountId(ctx)
		if err != nil {
			h.respondError(c, err)
			return
		}
		if defaultID == nil {
			h.respondError(c, appErrors.NewValidationError("account_id", "é obrigatório quando não há conta padrão"))
			return
		}
		accountID = *defaultID
	}

	result, err := h.GoalService.MakePayment(ctx, body.BitId, accountID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PaymentResponse{Applied: result != nil, Result: result})
}

func (h *Handler) parseIdParam(c *gin.Context) (ulid.ULID, error) {
	id := c.Param("id")
	if id == "" {
		return ulid.ULID{}, appErrors.NewValidationError("id", "é obrigatório")
	}
	parsed, err := pkg.ParseULID(id)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError("id", "formato inválido")
	}
	return parsed, nil
}
