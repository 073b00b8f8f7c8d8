package achievement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"Piggyvault/internal/domain/achievement"
	"Piggyvault/internal/domain/shared"
)

type fakeAchievementRepository struct {
	createFn func(ctx context.Context, u *achievement.Unlock) error
	listFn   func(ctx context.Context) ([]*achievement.Unlock, error)
}

func (f *fakeAchievementRepository) Create(ctx context.Context, u *achievement.Unlock) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeAchievementRepository) List(ctx context.Context) ([]*achievement.Unlock, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func TestUnlockIsIdempotent(t *testing.T) {
	created := 0
	repo := &fakeAchievementRepository{
		createFn: func(ctx context.Context, u *achievement.Unlock) error {
			created++
			return nil
		},
	}

	events := shared.NewEmitter()
	emitted := 0
	events.Subscribe(func(e shared.Event) {
		if _, ok := e.(shared.AchievementUnlocked); ok {
			emitted++
		}
	})

	svc := achievement.NewService(repo, events)
	ctx := context.Background()

	fresh, err := svc.Unlock(ctx, achievement.FirstDrop)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !fresh {
		t.Error("primeiro desbloqueio deveria retornar true")
	}

	fresh, err = svc.Unlock(ctx, achievement.FirstDrop)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if fresh {
		t.Error("segundo desbloqueio deveria retornar false")
	}

	if created != 1 {
		t.Errorf("esperava 1 registro persistido, obteve %d", created)
	}
	if emitted != 1 {
		t.Errorf("esperava 1 notificação, obteve %d", emitted)
	}
}

func TestUnlockUnknownIdIsNoOp(t *testing.T) {
	repo := &fakeAchievementRepository{
		createFn: func(ctx context.Context, u *achievement.Unlock) error {
			t.Fatal("id desconhecido não deveria persistir nada")
			return nil
		},
	}

	svc := achievement.NewService(repo, shared.NewEmitter())
	fresh, err := svc.Unlock(context.Background(), "conquista_inexistente")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if fresh {
		t.Error("id desconhecido não deveria desbloquear")
	}
}

func TestUnlockRollsBackOnPersistError(t *testing.T) {
	boom := errors.New("disco cheio")
	failing := true
	repo := &fakeAchievementRepository{
		createFn: func(ctx context.Context, u *achievement.Unlock) error {
			if failing {
				return boom
			}
			return nil
		},
	}

	svc := achievement.NewService(repo, shared.NewEmitter())
	ctx := context.Background()

	if _, err := svc.Unlock(ctx, achievement.FirstDrop); !errors.Is(err, boom) {
		t.Fatalf("esperava o erro de persistência, obteve %v", err)
	}

	// Depois da falha o id continua disponível para novo desbloqueio.
	failing = false
	fresh, err := svc.Unlock(ctx, achievement.FirstDrop)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !fresh {
		t.Error("desbloqueio após falha deveria funcionar")
	}
}

func TestLoadRestoresUnlockedSet(t *testing.T) {
	repo := &fakeAchievementRepository{
		listFn: func(ctx context.Context) ([]*achievement.Unlock, error) {
			return []*achievement.Unlock{
				{Id: achievement.FirstDrop, UnlockedAt: time.Now()},
				{Id: achievement.HighFive, UnlockedAt: time.Now()},
			}, nil
		},
	}

	svc := achievement.NewService(repo, shared.NewEmitter())
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !svc.IsUnlocked(achievement.FirstDrop) || !svc.IsUnlocked(achievement.HighFive) {
		t.Error("conquistas persistidas deveriam constar como desbloqueadas após a carga")
	}
	if svc.IsUnlocked(achievement.BigSpender) {
		t.Error("conquista nunca desbloqueada não deveria constar")
	}
}

func TestHandlePaymentTriggers(t *testing.T) {
	cases := []struct {
		name    string
		payment achievement.PaymentContext
		want    []string
	}{
		{
			name:    "primeiro pagamento",
			payment: achievement.PaymentContext{Amount: 100, TxCount: 1, Streak: 1, Progress: 5},
			want:    []string{achievement.FirstDrop},
		},
		{
			name:    "quinto pagamento",
			payment: achievement.PaymentContext{Amount: 100, TxCount: 5, Streak: 1, Progress: 10},
			want:    []string{achievement.FirstDrop, achievement.HighFive},
		},
		{
			name:    "pagamento alto",
			payment: achievement.PaymentContext{Amount: 1500, TxCount: 2, Streak: 1, Progress: 10},
			want:    []string{achievement.FirstDrop, achievement.BigSpender},
		},
		{
			name:    "sequência de sete dias",
			payment: achievement.PaymentContext{Amount: 100, TxCount: 7, Streak: 7, Progress: 20},
			want:    []string{achievement.FirstDrop, achievement.HighFive, achievement.WeekLong},
		},
		{
			name:    "metade da meta",
			payment: achievement.PaymentContext{Amount: 100, TxCount: 2, Streak: 1, Progress: 50},
			want:    []string{achievement.FirstDrop, achievement.HalfwayHero},
		},
		{
			name: "meta concluída",
			payment: achievement.PaymentContext{
				Amount: 100, TxCount: 3, Streak: 1, Progress: 100,
				GoalCompleted: true, CompletedGoals: 1,
			},
			want: []string{achievement.FirstDrop, achievement.HalfwayHero, achievement.GoalCrusher},
		},
		{
			name: "terceira meta concluída",
			payment: achievement.PaymentContext{
				Amount: 100, TxCount: 3, Streak: 1, Progress: 100,
				GoalCompleted: true, CompletedGoals: 3,
			},
			want: []string{
				achievement.FirstDrop, achievement.HalfwayHero,
				achievement.GoalCrusher, achievement.PiggyMaster,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := achievement.NewService(&fakeAchievementRepository{}, shared.NewEmitter())
			newly, err := svc.HandlePayment(context.Background(), tc.payment)
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if len(newly) != len(tc.want) {
				t.Fatalf("desbloqueios = %v, esperava %v", newly, tc.want)
			}
			for i := range tc.want {
				if newly[i] != tc.want[i] {
					t.Errorf("desbloqueios = %v, esperava %v", newly, tc.want)
					break
				}
			}
		})
	}
}

func TestHandleChallengeCompletedMilestones(t *testing.T) {
	svc := achievement.NewService(&fakeAchievementRepository{}, shared.NewEmitter())
	ctx := context.Background()

	newly, err := svc.HandleChallengeCompleted(ctx, "quick_starter", 1)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(newly) != 2 || newly[0] != "quick_starter" || newly[1] != achievement.ChallengeRookie {
		t.Errorf("primeira conclusão deveria dar a recompensa e challenge_rookie, obteve %v", newly)
	}

	newly, err = svc.HandleChallengeCompleted(ctx, "sprint_champion", 5)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(newly) != 2 || newly[0] != "sprint_champion" || newly[1] != achievement.ChallengeMaster {
		t.Errorf("quinta conclusão deveria dar a recompensa e challenge_master, obteve %v", newly)
	}
}
