package contracts

// AchievementView junta a definição estática com o estado de desbloqueio.
type AchievementView struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  string `json:"unlockedAt,omitempty"`
}

type AchievementListResponse struct {
	Achievements []AchievementView `json:"achievements"`
	Unlocked     int               `json:"unlocked"`
	Total        int               `json:"total"`
}
