package identity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"silent-auction/internal/auctionerrors"
	"silent-auction/internal/localstore"
	model "silent-auction/internal/models"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	local, err := localstore.Open("file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })
	return NewCache(local)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   model.Identity
		wantErr bool
	}{
		{
			name:  "name and email only",
			input: model.Identity{Name: "Anna Larsen", Email: "anna@example.com"},
		},
		{
			name:  "full record with phone",
			input: model.Identity{Name: "Anna Larsen", Email: "anna@example.com", Phone: "081-234-5678"},
		},
		{
			name:    "missing name",
			input:   model.Identity{Email: "anna@example.com"},
			wantErr: true,
		},
		{
			name:    "missing email",
			input:   model.Identity{Name: "Anna Larsen"},
			wantErr: true,
		},
		{
			name:    "whitespace only name",
			input:   model.Identity{Name: "   ", Email: "anna@example.com"},
			wantErr: true,
		},
		{
			name:    "phone too short",
			input:   model.Identity{Name: "Anna Larsen", Email: "anna@example.com", Phone: "12345"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cache := newTestCache(t)

			got, err := cache.Register(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, auctionerrors.ErrInvalidIdentity)
				// Field validation is not a missing-identity condition.
				require.NotErrorIs(t, err, auctionerrors.ErrIdentityMissing)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, got.Name)
			require.NotEmpty(t, got.Email)
		})
	}
}

func TestRegister_TrimsFields(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t)

	got, err := cache.Register(model.Identity{Name: "  Anna  ", Email: " anna@example.com "})
	require.NoError(t, err)
	require.Equal(t, "Anna", got.Name)
	require.Equal(t, "anna@example.com", got.Email)
}

func TestCurrent_RoundTrip(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t)

	registered, err := cache.Register(model.Identity{
		Name:  "Anna Larsen",
		Email: "anna@example.com",
		Phone: "0812345678",
	})
	require.NoError(t, err)

	got, err := cache.Current()
	require.NoError(t, err)
	require.Equal(t, registered, got)
}

func TestCurrent_MissingIdentity(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t)

	_, err := cache.Current()
	require.ErrorIs(t, err, auctionerrors.ErrIdentityMissing)
}

func TestClear_RemovesIdentity(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t)

	_, err := cache.Register(model.Identity{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)

	require.NoError(t, cache.Clear())

	_, err = cache.Current()
	require.ErrorIs(t, err, auctionerrors.ErrIdentityMissing)
}

// A registration survives reopening the backing store, matching a browser
// reload on the same device.
func TestIdentity_SurvivesReopen(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/local.db"

	local, err := localstore.Open(path)
	require.NoError(t, err)
	_, err = NewCache(local).Register(model.Identity{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)
	require.NoError(t, local.Close())

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := NewCache(reopened).Current()
	require.NoError(t, err)
	require.Equal(t, "Anna", got.Name)
}
