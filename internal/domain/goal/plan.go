package goal

import (
	"math"
	"math/rand"
	"time"

	"Piggyvault/internal/pkg"
)

const dayDuration = 24 * time.Hour

func frequencyInterval(frequency Frequency) time.Duration {
	switch frequency {
	case Weekly:
		return 7 * dayDuration
	case Monthly:
		return 30 * dayDuration
	case Yearly:
		return 365 * dayDuration
	default:
		return dayDuration
	}
}

// Escada de denominações por faixa do valor médio por parcela. O menor
// degrau também é o piso de cada parcela no caso normal.
func chunkLadder(avgSlotAmount float64) (float64, [4]float64) {
	switch {
	case avgSlotAmount > 50000:
		return 5000, [4]float64{5000, 10000, 20000, 50000}
	case avgSlotAmount > 5000:
		return 500, [4]float64{500, 1000, 2000, 5000}
	case avgSlotAmount > 500:
		return 100, [4]float64{100, 200, 500, 1000}
	default:
		return 50, [4]float64{50, 100, 200, 500}
	}
}

// Bandas de probabilidade para o sorteio de denominação: quanto maior o
// saldo restante, maior a chance de denominações altas.
var chunkBands = []struct {
	threshold float64
	index     int
}{
	{0.9, 3},
	{0.7, 2},
	{0.4, 1},
	{0.0, 0},
}

func pickChunk(chunks [4]float64, remaining float64) float64 {
	r := rand.Float64()
	for _, band := range chunkBands {
		if r > band.threshold && remaining >= chunks[band.index] {
			return chunks[band.index]
		}
	}
	return chunks[0]
}

// GeneratePlan particiona o valor alvo em `slots` parcelas cuja soma é
// exatamente `amount`, com vencimentos espaçados pela frequência a partir de
// `now` e ordem de exibição embaralhada. Valores e quantidade de parcelas já
// chegam validados pelo serviço.
func GeneratePlan(amount float64, slots int, frequency Frequency, now time.Time) []SavingsBit {
	interval := frequencyInterval(frequency)
	minAmount, chunks := chunkLadder(amount / float64(slots))

	// Caso degenerado: não há piso para todas as parcelas. Divisão igual,
	// com o resto distribuído uma unidade por vez nas primeiras parcelas.
	if amount < minAmount*float64(slots) {
		bitAmount := math.Floor(amount / float64(slots))
		remainder := int(amount - bitAmount*float64(slots))

		plan := make([]SavingsBit, 0, slots)
		for i := 0; i < slots; i++ {
			bitValue := bitAmount
			if i < remainder {
				bitValue++
			}
			plan = append(plan, SavingsBit{
				Id:      pkg.GenerateULID(),
				Index:   i + 1,
				Amount:  bitValue,
				Status:  BitPending,
				DueDate: now.Add(time.Duration(i) * interval),
			})
		}
		return plan
	}

	raw := make([]float64, slots)
	for i := range raw {
		raw[i] = minAmount
	}

	remaining := amount - minAmount*float64(slots)
	for remaining >= minAmount {
		idx := rand.Intn(slots)
		chunk := pickChunk(chunks, remaining)
		raw[idx] += chunk
		remaining -= chunk
	}
	// Sobra menor que o piso cai inteira em uma parcela aleatória.
	if remaining > 0 {
		raw[rand.Intn(slots)] += remaining
	}

	plan := make([]SavingsBit, 0, slots)
	for i := 0; i < slots; i++ {
		plan = append(plan, SavingsBit{
			Id:      pkg.GenerateULID(),
			Index:   i + 1,
			Amount:  raw[i],
			Status:  BitPending,
			DueDate: now.Add(time.Duration(i) * interval),
		})
	}

	// Fisher-Yates: a posição de exibição não carrega significado.
	for i := len(plan) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		plan[i], plan[j] = plan[j], plan[i]
	}

	return plan
}
