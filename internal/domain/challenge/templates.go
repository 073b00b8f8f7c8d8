package challenge

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

type Template struct {
	Id           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Difficulty   Difficulty `json:"difficulty"`
	DurationDays int        `json:"durationDays"`
	Type         Type       `json:"type"`
	TargetAmount float64    `json:"targetAmount,omitempty"`
	TargetCount  int        `json:"targetCount,omitempty"`
	Reward       string     `json:"reward"`
	Badge        string     `json:"badge"`
}

var Templates = []Template{
	{
		Id:           "sprint_saver",
		Title:        "Sprint de 7 Dias",
		Description:  "Poupe todos os dias por 7 dias consecutivos",
		Difficulty:   DifficultyEasy,
		DurationDays: 7,
		Type:         TypeCount,
		TargetCount:  7,
		Reward:       "sprint_champion",
		Badge:        "⚡ Campeão do Sprint",
	},
	{
		Id:           "weekend_warrior",
		Title:        "Guerreiro do Fim de Semana",
		Description:  "Poupe 500 a cada fim de semana durante um mês",
		Difficulty:   DifficultyMedium,
		DurationDays: 30,
		Type:         TypeAmount,
		TargetAmount: 2000,
		Reward:       "weekend_master",
		Badge:        "🏆 Mestre do Fim de Semana",
	},
	{
		Id:           "savings_streak",
		Title:        "Rei da Sequência",
		Description:  "Mantenha uma sequência de 30 dias poupando",
		Difficulty:   DifficultyHard,
		DurationDays: 30,
		Type:         TypeCount,
		TargetCount:  30,
		Reward:       "streak_legend",
		Badge:        "🔥 Lenda da Sequência",
	},
	{
		Id:           "thousand_club",
		Title:        "Clube do 1K",
		Description:  "Poupe 1000 em uma única semana",
		Difficulty:   DifficultyMedium,
		DurationDays: 7,
		Type:         TypeAmount,
		TargetAmount: 1000,
		Reward:       "one_k_achiever",
		Badge:        "⭐ Conquistador do 1K",
	},
	{
		Id:           "daily_discipline",
		Title:        "Disciplina Diária",
		Description:  "Poupe 50 todos os dias durante 14 dias",
		Difficulty:   DifficultyMedium,
		DurationDays: 14,
		Type:         TypeAmount,
		TargetAmount: 700,
		Reward:       "discipline_master",
		Badge:        "🎯 Mestre da Disciplina",
	},
	{
		Id:           "monthly_marathon",
		Title:        "Maratona Mensal",
		Description:  "Poupe 5000 em 30 dias",
		Difficulty:   DifficultyHard,
		DurationDays: 30,
		Type:         TypeAmount,
		TargetAmount: 5000,
		Reward:       "marathon_champion",
		Badge:        "🏃 Campeão da Maratona",
	},
	{
		Id:           "payday_boost",
		Title:        "Impulso do Pagamento",
		Description:  "Poupe 1500 nas primeiras 24 horas",
		Difficulty:   DifficultyMedium,
		DurationDays: 1,
		Type:         TypeAmount,
		TargetAmount: 1500,
		Reward:       "payday_pro",
		Badge:        "🎁 Profissional do Pagamento",
	},
	{
		Id:           "century_challenge",
		Title:        "Desafio do Século",
		Description:  "Complete 100 transações de poupança",
		Difficulty:   DifficultyHard,
		DurationDays: 60,
		Type:         TypeCount,
		TargetCount:  100,
		Reward:       "century_maker",
		Badge:        "💯 Centurião",
	},
	{
		Id:           "royal_saver",
		Title:        "Poupador Real",
		Description:  "Poupe 10000 em 60 dias",
		Difficulty:   DifficultyExpert,
		DurationDays: 60,
		Type:         TypeAmount,
		TargetAmount: 10000,
		Reward:       "royalty_status",
		Badge:        "👑 Status de Realeza",
	},
	{
		Id:           "quick_start",
		Title:        "Largada Rápida",
		Description:  "Poupe 3 vezes nas primeiras 24 horas",
		Difficulty:   DifficultyEasy,
		DurationDays: 1,
		Type:         TypeCount,
		TargetCount:  3,
		Reward:       "quick_starter",
		Badge:        "⚡ Velocista",
	},
	{
		Id:           "consistency_king",
		Title:        "Rei da Consistência",
		Description:  "Poupe ao menos uma vez a cada 3 dias por um mês",
		Difficulty:   DifficultyMedium,
		DurationDays: 30,
		Type:         TypeCount,
		TargetCount:  10,
		Reward:       "consistency_crown",
		Badge:        "📅 Coroa da Consistência",
	},
	{
		Id:           "mega_saver",
		Title:        "Mega Poupador",
		Description:  "Poupe 20000 em 90 dias",
		Difficulty:   DifficultyExpert,
		DurationDays: 90,
		Type:         TypeAmount,
		TargetAmount: 20000,
		Reward:       "mega_legend",
		Badge:        "🏆 Mega Lenda",
	},
}

func TemplateById(id string) (Template, bool) {
	for _, template := range Templates {
		if template.Id == id {
			return template, true
		}
	}
	return Template{}, false
}
