package activities

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

// Time-of-day windows for the dashboard suggestion block. Mornings favor
// high-energy play, afternoons creative medium-energy, evenings calm.
const (
	contextMorning   = "Manhã de energia! ☀️"
	contextAfternoon = "Tarde criativa! 🎨"
	contextEvening   = "Hora de acalmar... 🌙"
	contextFallback  = "Sugestão especial ✨"
)

// othersCount is how many alternatives accompany the featured pick.
const othersCount = 4

func (s *service) Suggest(ctx context.Context, ageMonths *int) (*domain.Suggestions, error) {
	all, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sug := suggestFrom(all, ageMonths, time.Now(), rand.Intn, rand.Shuffle)
	if sug == nil {
		return nil, fmt.Errorf("no suitable activities: %w", domain.ErrNotFound)
	}
	return sug, nil
}

// energyWindow returns the energy levels favored at the given hour plus the
// context label shown on the dashboard.
func energyWindow(hour int) ([]string, string) {
	switch {
	case hour >= 6 && hour < 12:
		return []string{domain.EnergyHigh, domain.EnergyMedium}, contextMorning
	case hour >= 12 && hour < 18:
		return []string{domain.EnergyMedium, domain.EnergyHigh}, contextAfternoon
	default:
		return []string{domain.EnergyLow, domain.EnergyMedium}, contextEvening
	}
}

// suggestFrom picks one random featured activity from the time-of-day energy
// window (age-filtered when an age is known) and up to four shuffled
// alternatives from the age-filtered pool, excluding the featured pick.
// Randomness is injected so tests can pin it.
func suggestFrom(
	all []domain.Activity,
	ageMonths *int,
	now time.Time,
	intn func(int) int,
	shuffle func(int, func(i, j int)),
) *domain.Suggestions {
	energies, context := energyWindow(now.Hour())

	ageOK := func(a domain.Activity) bool {
		return ageMonths == nil || a.SuitableForAge(*ageMonths)
	}
	inWindow := func(a domain.Activity) bool {
		for _, e := range energies {
			if a.Energy == e {
				return true
			}
		}
		return false
	}

	var candidates, pool []domain.Activity
	for _, a := range all {
		if !ageOK(a) {
			continue
		}
		pool = append(pool, a)
		if inWindow(a) {
			candidates = append(candidates, a)
		}
	}

	// No activity matches the current energy window: fall back to the whole
	// age-appropriate pool with a generic context label.
	if len(candidates) == 0 {
		candidates = pool
		context = contextFallback
	}
	if len(candidates) == 0 {
		return nil
	}

	featured := candidates[intn(len(candidates))]

	others := make([]domain.Activity, 0, len(pool))
	for _, a := range pool {
		if a.ActivityID != featured.ActivityID {
			others = append(others, a)
		}
	}
	shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	if len(others) > othersCount {
		others = others[:othersCount]
	}

	return &domain.Suggestions{
		Context:  context,
		Featured: featured,
		Others:   others,
	}
}
