package article

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R15hav/blog/internal/domain"
)

// mockStore implements domain.ArticleRepository in memory.
type mockStore struct {
	items   map[string]domain.Article
	order   []string
	failure error // injected storage fault
}

func newMockStore() *mockStore {
	return &mockStore{items: make(map[string]domain.Article)}
}

func (m *mockStore) Create(a *domain.Article) error {
	if m.failure != nil {
		return m.failure
	}
	m.items[a.ID] = *a
	m.order = append(m.order, a.ID)
	return nil
}

func (m *mockStore) FindByID(id string) (*domain.Article, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	a, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *mockStore) List() ([]domain.Article, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	out := make([]domain.Article, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out, nil
}

func (m *mockStore) Update(a *domain.Article) error {
	if m.failure != nil {
		return m.failure
	}
	m.items[a.ID] = *a
	return nil
}

func (m *mockStore) Delete(id string) error {
	if m.failure != nil {
		return m.failure
	}
	delete(m.items, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

type ident string

func (i ident) UserID() string { return string(i) }

func boolPtr(b bool) *bool { return &b }

func validInput() *Input {
	return &Input{
		Title:       "A",
		Content:     "B",
		Published:   boolPtr(true),
		CreatedDate: "2024-01-01 10:00:00",
	}
}

func TestCreate_OwnerAndRoundTrip(t *testing.T) {
	store := newMockStore()

	created, err := Create(store, ident("user-u"), validInput())
	require.NoError(t, err)
	require.NotNil(t, created)

	_, uuidErr := uuid.Parse(created.ID)
	assert.NoError(t, uuidErr, "id must be a well-formed uuid")
	assert.Equal(t, "user-u", created.OwnerID)
	assert.Equal(t, "true", created.Published)
	assert.Equal(t, "2024-01-01 10:00:00", created.CreatedDate)

	got, err := GetByID(store, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_PublishedNormalization(t *testing.T) {
	store := newMockStore()

	created, err := Create(store, ident("u"), &Input{
		Title: "A", Content: "B", Published: boolPtr(false), CreatedDate: "2024-01-01 10:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "false", created.Published)

	// 缺省为 true
	created, err = Create(store, ident("u"), &Input{
		Title: "A", Content: "B", CreatedDate: "2024-01-01 10:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "true", created.Published)
}

func TestCreate_BadDateRejectedBeforePersist(t *testing.T) {
	store := newMockStore()

	for _, bad := range []string{
		"2024-01-01T10:00:00Z",
		"2024-01-01",
		"01-01-2024 10:00:00",
		"2024-01-01 10:00:00.123",
		"",
	} {
		in := validInput()
		in.CreatedDate = bad
		_, err := Create(store, ident("u"), in)
		require.Error(t, err, "date %q must be rejected", bad)
		assert.Equal(t, domain.FailInvalid, domain.KindOf(err))
	}
	assert.Empty(t, store.items, "no partial writes on validation failure")
}

func TestCreate_StorageFaultIsInternal(t *testing.T) {
	store := newMockStore()
	store.failure = errors.New("connection reset")

	_, err := Create(store, ident("u"), validInput())
	require.Error(t, err)
	assert.Equal(t, domain.FailInternal, domain.KindOf(err), "infra fault must not be reported as bad input")
}

func TestList_NaturalOrder(t *testing.T) {
	store := newMockStore()
	first, err := Create(store, ident("u"), validInput())
	require.NoError(t, err)
	second, err := Create(store, ident("v"), validInput())
	require.NoError(t, err)

	all, err := List(store)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestGetByID_Failures(t *testing.T) {
	store := newMockStore()

	_, err := GetByID(store, "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, domain.FailInvalid, domain.KindOf(err))

	_, err = GetByID(store, uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, domain.FailNotFound, domain.KindOf(err))
}

func TestUpdate_Overwrite(t *testing.T) {
	store := newMockStore()
	created, err := Create(store, ident("u"), validInput())
	require.NoError(t, err)

	updated, err := Update(store, ident("u"), created.ID, &Input{
		Title: "A2", Content: "B2", Published: boolPtr(false), CreatedDate: "2025-02-02 20:30:40",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "u", updated.OwnerID, "owner never reassigned")
	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, "B2", updated.Content)
	assert.Equal(t, "false", updated.Published)
	assert.Equal(t, "2025-02-02 20:30:40", updated.CreatedDate)

	got, err := GetByID(store, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdate_FailureOrdering(t *testing.T) {
	store := newMockStore()
	created, err := Create(store, ident("owner"), validInput())
	require.NoError(t, err)

	bad := &Input{Title: "x", Content: "y", CreatedDate: "garbage"}

	// id 非法优先于一切
	_, err = Update(store, ident("owner"), "nope", bad)
	assert.Equal(t, domain.FailInvalid, domain.KindOf(err))

	// 不存在优先于属主与日期
	_, err = Update(store, ident("owner"), uuid.NewString(), bad)
	assert.Equal(t, domain.FailNotFound, domain.KindOf(err))

	// 非属主优先于日期
	_, err = Update(store, ident("intruder"), created.ID, bad)
	assert.Equal(t, domain.FailForbidden, domain.KindOf(err))

	// 属主 + 坏日期 → Invalid，且记录不变
	_, err = Update(store, ident("owner"), created.ID, bad)
	assert.Equal(t, domain.FailInvalid, domain.KindOf(err))

	got, err := GetByID(store, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got, "failed update must leave the record unchanged")
}

func TestDelete_OwnershipAndRemoval(t *testing.T) {
	store := newMockStore()
	created, err := Create(store, ident("user-u"), validInput())
	require.NoError(t, err)

	// 他人删除 → Forbidden，记录还在
	_, err = Delete(store, ident("user-v"), created.ID)
	assert.Equal(t, domain.FailForbidden, domain.KindOf(err))
	got, err := GetByID(store, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// 属主删除 → 成功，随后查询 NotFound
	ack, err := Delete(store, ident("user-u"), created.ID)
	require.NoError(t, err)
	assert.True(t, ack.Success)

	_, err = GetByID(store, created.ID)
	assert.Equal(t, domain.FailNotFound, domain.KindOf(err))
}

func TestDelete_Failures(t *testing.T) {
	store := newMockStore()

	_, err := Delete(store, ident("u"), "###")
	assert.Equal(t, domain.FailInvalid, domain.KindOf(err))

	_, err = Delete(store, ident("u"), uuid.NewString())
	assert.Equal(t, domain.FailNotFound, domain.KindOf(err))
}
