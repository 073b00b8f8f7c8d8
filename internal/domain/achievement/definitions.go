package achievement

// Identificadores de conquistas. Os ids são estáveis: fazem parte dos dados
// persistidos e de exportações de backup.
const (
	BeginnersLuck = "beginners_luck"
	FirstDrop     = "first_drop"
	HighFive      = "high_five"
	OnARoll       = "on_a_roll"
	BigSpender    = "big_spender"
	HalfwayHero   = "halfway_hero"
	GoalCrusher   = "goal_crusher"
	PiggyMaster   = "piggy_master"
	WeekLong      = "week_long"
	MonthStrong   = "month_strong"
	CenturyClub   = "century_club"

	ChallengeRookie = "challenge_rookie"
	ChallengeMaster = "challenge_master"
)

type Definition struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var Definitions = []Definition{
	{Id: BeginnersLuck, Title: "Sorte de Principiante", Description: "Crie sua primeira meta de poupança."},
	{Id: FirstDrop, Title: "Primeira Gota", Description: "Pague sua primeira parcela."},
	{Id: HighFive, Title: "Toca Aqui", Description: "Pague 5 parcelas no total."},
	{Id: OnARoll, Title: "Embalado", Description: "Pague 10 parcelas no total."},
	{Id: BigSpender, Title: "Mão Aberta", Description: "Pague uma única parcela acima de 1000."},
	{Id: HalfwayHero, Title: "Herói da Metade", Description: "Alcance 50% de uma meta."},
	{Id: GoalCrusher, Title: "Destruidor de Metas", Description: "Complete uma meta de poupança (100%)."},
	{Id: PiggyMaster, Title: "Mestre do Cofrinho", Description: "Complete 3 metas de poupança."},
	{Id: WeekLong, Title: "Semana Inteira", Description: "Mantenha uma sequência de 7 dias poupando."},
	{Id: MonthStrong, Title: "Mês Firme", Description: "Mantenha uma sequência de 30 dias poupando."},
	{Id: CenturyClub, Title: "Clube dos Cem", Description: "Mantenha uma sequência de 100 dias poupando!"},
}

// Conquistas concedidas por desafios: as recompensas configuradas nos
// modelos, mais as de marco de 1º e 5º desafio concluído.
var ChallengeDefinitions = []Definition{
	{Id: ChallengeRookie, Title: "Estreante em Desafios", Description: "Complete seu primeiro desafio."},
	{Id: ChallengeMaster, Title: "Mestre dos Desafios", Description: "Complete 5 desafios."},
	{Id: "sprint_champion", Title: "Campeão do Sprint", Description: "Poupe todos os dias por 7 dias seguidos."},
	{Id: "weekend_master", Title: "Mestre do Fim de Semana", Description: "Poupe 2000 em fins de semana durante um mês."},
	{Id: "streak_legend", Title: "Lenda da Sequência", Description: "Mantenha uma sequência de 30 dias em um desafio."},
	{Id: "one_k_achiever", Title: "Clube do 1K", Description: "Poupe 1000 em uma única semana."},
	{Id: "discipline_master", Title: "Mestre da Disciplina", Description: "Poupe 50 por dia durante 14 dias."},
	{Id: "marathon_champion", Title: "Campeão da Maratona", Description: "Poupe 5000 em 30 dias."},
	{Id: "payday_pro", Title: "Profissional do Pagamento", Description: "Poupe 1500 em 24 horas."},
	{Id: "century_maker", Title: "Centurião", Description: "Complete 100 transações de poupança."},
	{Id: "royalty_status", Title: "Status de Realeza", Description: "Poupe 10000 em 60 dias."},
	{Id: "quick_starter", Title: "Largada Rápida", Description: "Poupe 3 vezes nas primeiras 24 horas."},
	{Id: "consistency_crown", Title: "Coroa da Consistência", Description: "Poupe ao menos uma vez a cada 3 dias por um mês."},
	{Id: "mega_legend", Title: "Mega Lenda", Description: "Poupe 20000 em 90 dias."},
}

func AllDefinitions() []Definition {
	all := make([]Definition, 0, len(Definitions)+len(ChallengeDefinitions))
	all = append(all, Definitions...)
	all = append(all, ChallengeDefinitions...)
	return all
}

func FindDefinition(id string) (Definition, bool) {
	for _, def := range Definitions {
		if def.Id == id {
			return def, true
		}
	}
	for _, def := range ChallengeDefinitions {
		if def.Id == id {
			return def, true
		}
	}
	return Definition{}, false
}
