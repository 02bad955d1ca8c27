package activities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

type staticStore struct {
	all []domain.Activity
}

func (s *staticStore) Get(_ context.Context, activityID string) (*domain.Activity, error) {
	for i := range s.all {
		if s.all[i].ActivityID == activityID {
			return &s.all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *staticStore) GetBySlug(_ context.Context, slug string) (*domain.Activity, error) {
	for i := range s.all {
		if s.all[i].Slug == slug {
			return &s.all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *staticStore) Scan(_ context.Context) ([]domain.Activity, error) {
	return s.all, nil
}

func TestDefaultLibrary_EntriesAreValid(t *testing.T) {
	lib := DefaultLibrary()
	require.NotEmpty(t, lib)

	seenSlugs := map[string]bool{}
	for _, a := range lib {
		assert.NotEmpty(t, a.Title, "slug %s", a.Slug)
		assert.NotEmpty(t, a.Description, "slug %s", a.Slug)
		assert.NotEmpty(t, a.Category, "slug %s", a.Slug)
		// Stable IDs keep re-seeding idempotent.
		assert.Equal(t, a.Slug, a.ActivityID)
		assert.False(t, seenSlugs[a.Slug], "duplicate slug %s", a.Slug)
		seenSlugs[a.Slug] = true
		assert.Contains(t, []string{domain.EnergyLow, domain.EnergyMedium, domain.EnergyHigh}, a.Energy, "slug %s", a.Slug)
		assert.LessOrEqual(t, a.MinAgeMonths, a.MaxAgeMonths, "slug %s", a.Slug)
	}
}

func TestDefaultLibrary_CoversEveryEnergyWindow(t *testing.T) {
	byEnergy := map[string]int{}
	for _, a := range DefaultLibrary() {
		byEnergy[a.Energy]++
	}
	// Each time-of-day window must have at least one candidate so the
	// suggestion block never falls back for lack of catalog coverage.
	assert.Positive(t, byEnergy[domain.EnergyLow])
	assert.Positive(t, byEnergy[domain.EnergyMedium])
	assert.Positive(t, byEnergy[domain.EnergyHigh])
}

func TestDefaultLibrary_FlowsThroughList(t *testing.T) {
	svc := NewService(&staticStore{all: DefaultLibrary()})

	all, err := svc.List(context.Background(), domain.ActivityFilter{})
	require.NoError(t, err)
	assert.Len(t, all, len(DefaultLibrary()))

	art, err := svc.List(context.Background(), domain.ActivityFilter{Category: "arte"})
	require.NoError(t, err)
	require.NotEmpty(t, art)
	for _, a := range art {
		assert.Equal(t, "arte", a.Category)
	}
}

func TestDefaultLibrary_FlowsThroughSuggest(t *testing.T) {
	lib := DefaultLibrary()

	for _, hour := range []int{9, 15, 20} {
		sug := suggestFrom(lib, nil, at(hour), pickFirst, noShuffle)
		require.NotNil(t, sug, "hour %d", hour)
		assert.NotEqual(t, contextFallback, sug.Context, "hour %d", hour)
		assert.NotEmpty(t, sug.Others, "hour %d", hour)
	}

	// A toddler age must still leave suggestions on the table.
	age := 24
	sug := suggestFrom(lib, &age, at(9), pickFirst, noShuffle)
	require.NotNil(t, sug)
	assert.True(t, sug.Featured.SuitableForAge(age))
}
