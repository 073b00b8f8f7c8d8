package goal_test

import (
	"testing"
	"time"

	"Piggyvault/internal/domain/goal"
)

func TestGeneratePlanSumsToTarget(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		amount float64
		slots  int
	}{
		{"faixa baixa", 3000, 10},
		{"faixa média", 80000, 12},
		{"faixa alta", 300000, 20},
		{"faixa máxima", 2000000, 24},
		{"parcela única", 5000, 1},
		{"degenerado", 120, 10},
		{"degenerado com resto", 127, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := goal.GeneratePlan(tc.amount, tc.slots, goal.Daily, now)

			if len(plan) != tc.slots {
				t.Fatalf("esperava %d parcelas, obteve %d", tc.slots, len(plan))
			}

			var sum float64
			for _, bit := range plan {
				sum += bit.Amount
				if bit.Amount < 0 {
					t.Errorf("parcela com valor negativo: %f", bit.Amount)
				}
				if bit.Status != goal.BitPending {
					t.Errorf("parcela nova deveria estar pendente, obteve %s", bit.Status)
				}
			}
			if sum != tc.amount {
				t.Errorf("soma das parcelas = %f, esperava %f", sum, tc.amount)
			}
		})
	}
}

func TestGeneratePlanUniqueIds(t *testing.T) {
	plan := goal.GeneratePlan(50000, 50, goal.Weekly, time.Now())

	seen := make(map[string]bool, len(plan))
	for _, bit := range plan {
		if bit.Id == "" {
			t.Fatal("parcela sem id")
		}
		if seen[bit.Id] {
			t.Fatalf("id duplicado no plano: %s", bit.Id)
		}
		seen[bit.Id] = true
	}
}

func TestGeneratePlanDueDateSpacing(t *testing.T) {
	now := time.Now()
	plan := goal.GeneratePlan(7000, 7, goal.Weekly, now)

	// A ordem das parcelas é embaralhada; o conjunto de vencimentos continua
	// sendo now + i*7d para cada índice.
	byIndex := make(map[int]time.Time, len(plan))
	for _, bit := range plan {
		byIndex[bit.Index] = bit.DueDate
	}

	for i := 1; i <= 7; i++ {
		due, ok := byIndex[i]
		if !ok {
			t.Fatalf("índice %d ausente do plano", i)
		}
		expected := now.Add(time.Duration(i-1) * 7 * 24 * time.Hour)
		if !due.Equal(expected) {
			t.Errorf("vencimento do índice %d = %v, esperava %v", i, due, expected)
		}
	}
}

func TestGeneratePlanDegenerateEvenSplit(t *testing.T) {
	plan := goal.GeneratePlan(105, 10, goal.Daily, time.Now())

	// 105/10: piso 10 em todas, resto 5 distribuído uma unidade por parcela.
	tens, elevens := 0, 0
	for _, bit := range plan {
		switch bit.Amount {
		case 10:
			tens++
		case 11:
			elevens++
		default:
			t.Fatalf("valor inesperado no caso degenerado: %f", bit.Amount)
		}
	}
	if tens != 5 || elevens != 5 {
		t.Errorf("esperava 5 parcelas de 10 e 5 de 11, obteve %d e %d", tens, elevens)
	}
}

func TestGeneratePlanAmountsAreWholeUnits(t *testing.T) {
	plan := goal.GeneratePlan(987654, 33, goal.Monthly, time.Now())

	for _, bit := range plan {
		if bit.Amount != float64(int64(bit.Amount)) {
			t.Errorf("parcela com valor fracionário: %f", bit.Amount)
		}
	}
}
