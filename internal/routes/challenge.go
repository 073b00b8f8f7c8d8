package routes

import (
	"net/http"

	"Piggyvault/internal/contracts"
	"Piggyvault/internal/domain/challenge"
	appErrors "Piggyvault/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListChallengeTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.ChallengeTemplateListResponse{Templates: challenge.Templates})
}

func (h *Handler) StartChallenge(c *gin.Context) {
	var body contracts.ChallengeStartRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	started, err := h.ChallengeService.StartChallenge(ctx, body.TemplateId)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ChallengeResponse{Challenge: started})
}

func (h *Handler) GetChallenge(c *gin.Context) {
	challengeID, err := h.parseIdParam(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.ChallengeService.GetChallengeById(ctx, challengeID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ChallengeResponse{Challenge: entity})
}

func (h *Handler) ListChallenges(c *gin.Context) {
	ctx := c.Request.Context()
	challenges, err := h.ChallengeService.List(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ChallengeListResponse{Challenges: challenges, Total: len(challenges)})
}
