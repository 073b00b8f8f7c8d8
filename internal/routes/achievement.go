package routes

import (
	"net/http"
	"time"

	"Piggyvault/internal/contracts"
	"Piggyvault/internal/domain/achievement"

	"github.com/gin-gonic/gin"
)

// ListAchievements devolve o catálogo completo com o estado de desbloqueio
// de cada conquista.
func (h *Handler) ListAchievements(c *gin.Context) {
	ctx := c.Request.Context()
	unlocks, err := h.AchievementService.ListUnlocks(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	unlockedAt := make(map[string]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.Id] = u.UnlockedAt
	}

	definitions := achievement.AllDefinitions()
	views := make([]contracts.AchievementView, 0, len(definitions))
	unlocked := 0
	for _, def := range definitions {
		view := contracts.AchievementView{
			Id:          def.Id,
			Title:       def.Title,
			Description: def.Description,
		}
		if at, ok := unlockedAt[def.Id]; ok {
			view.Unlocked = true
			view.UnlockedAt = at.Format(time.RFC3339)
			unlocked++
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, contracts.AchievementListResponse{
		Achievements: views,
		Unlocked:     unlocked,
		Total:        len(views),
	})
}
