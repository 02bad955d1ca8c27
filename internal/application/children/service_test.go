package children

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Put(ctx context.Context, c *domain.Child) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockStore) Get(ctx context.Context, childID string) (*domain.Child, error) {
	args := m.Called(ctx, childID)
	if c := args.Get(0); c != nil {
		return c.(*domain.Child), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) ListByOwner(ctx context.Context, ownerID string) ([]domain.Child, error) {
	args := m.Called(ctx, ownerID)
	if l := args.Get(0); l != nil {
		return l.([]domain.Child), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, childID string, updates map[string]interface{}) error {
	return m.Called(ctx, childID, updates).Error(0)
}

func (m *mockStore) SoftDelete(ctx context.Context, childID string) error {
	return m.Called(ctx, childID).Error(0)
}

func activeChild(owner string) *domain.Child {
	return &domain.Child{
		ChildID:   "c1",
		OwnerID:   owner,
		Name:      "Alice",
		Birthdate: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
		Enable:    1,
	}
}

func TestCreate_Valid(t *testing.T) {
	store := new(mockStore)
	store.On("Put", mock.Anything, mock.MatchedBy(func(c *domain.Child) bool {
		return c.ChildID != "" && c.OwnerID == "owner-1" && c.Name == "Alice" && c.Enable == 1
	})).Return(nil).Once()

	svc := NewService(store)
	c, err := svc.Create(context.Background(), "owner-1", domain.CreateChildRequest{
		Name:      "Alice",
		Birthdate: "2023-05-10",
	})

	require.NoError(t, err)
	assert.Equal(t, 2023, c.Birthdate.Year())
	store.AssertExpectations(t)
}

func TestCreate_BadBirthdate(t *testing.T) {
	svc := NewService(new(mockStore))

	_, err := svc.Create(context.Background(), "owner-1", domain.CreateChildRequest{
		Name:      "Alice",
		Birthdate: "10/05/2023",
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	_, err = svc.Create(context.Background(), "owner-1", domain.CreateChildRequest{
		Name:      "Alice",
		Birthdate: future,
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestGet_OwnershipEnforced(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, "c1").Return(activeChild("owner-1"), nil)

	svc := NewService(store)
	_, err := svc.Get(context.Background(), "intruder", "c1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGet_SoftDeletedIsNotFound(t *testing.T) {
	c := activeChild("owner-1")
	c.Enable = 0
	store := new(mockStore)
	store.On("Get", mock.Anything, "c1").Return(c, nil)

	svc := NewService(store)
	_, err := svc.Get(context.Background(), "owner-1", "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_OnlyProvidedFields(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, "c1").Return(activeChild("owner-1"), nil)
	store.On("Update", mock.Anything, "c1", map[string]interface{}{"name": "Alicia"}).Return(nil).Once()

	svc := NewService(store)
	name := "Alicia"
	_, err := svc.Update(context.Background(), "owner-1", "c1", domain.UpdateChildRequest{Name: &name})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdate_NoFields(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, "c1").Return(activeChild("owner-1"), nil)

	svc := NewService(store)
	_, err := svc.Update(context.Background(), "owner-1", "c1", domain.UpdateChildRequest{})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestDelete_SoftDeletes(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, "c1").Return(activeChild("owner-1"), nil)
	store.On("SoftDelete", mock.Anything, "c1").Return(nil).Once()

	svc := NewService(store)
	require.NoError(t, svc.Delete(context.Background(), "owner-1", "c1"))
	store.AssertExpectations(t)
}

func TestAgeInMonths(t *testing.T) {
	c := &domain.Child{Birthdate: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 12, c.AgeInMonths(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 11, c.AgeInMonths(time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, c.AgeInMonths(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
}
