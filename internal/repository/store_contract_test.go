package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func newResponsavel(cpf, nome string) *models.Responsavel {
	return &models.Responsavel{
		Contato: models.Contato{
			CPF:            cpf,
			Nome:           nome,
			GrauParentesco: "Mãe",
			Telefone:       "21987654321",
			Endereco:       "Rua das Flores, 10",
			Email:          nome + "@example.com",
		},
		CriancasIDs: []string{},
	}
}

// runStoreContract exercises the behaviour every Store implementation shares.
// The responsaveis store must enforce a unique cpf.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store[models.Responsavel]) {
	ctx := context.Background()

	t.Run("create stamps metadata", func(t *testing.T) {
		store := newStore(t)
		r := newResponsavel("52998224725", "ana")
		require.NoError(t, store.Create(ctx, r))

		assert.NotEmpty(t, r.ID)
		assert.False(t, r.CreatedAt.IsZero())
		assert.Equal(t, r.CreatedAt, r.UpdatedAt)
		assert.Equal(t, int32(1), r.Version)

		got, err := store.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "ana", got.Nome)
		assert.Equal(t, r.CreatedAt.UnixMilli(), got.CreatedAt.UnixMilli())
	})

	t.Run("get missing returns not found", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("list newest first with paging", func(t *testing.T) {
		store := newStore(t)
		for i, cpf := range []string{"52998224725", "11144477735", "12345678909"} {
			require.NoError(t, store.Create(ctx, newResponsavel(cpf, []string{"a", "b", "c"}[i])))
			time.Sleep(2 * time.Millisecond)
		}

		all, err := store.List(ctx, ListOptions{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].Nome, all[1].Nome, all[2].Nome})

		page, err := store.List(ctx, ListOptions{Skip: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "b", page[0].Nome)

		n, err := store.Count(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("duplicate unique field", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Create(ctx, newResponsavel("52998224725", "ana")))
		err := store.Create(ctx, newResponsavel("52998224725", "bia"))
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("find by and update", func(t *testing.T) {
		store := newStore(t)
		r := newResponsavel("52998224725", "ana")
		require.NoError(t, store.Create(ctx, r))

		found, err := store.FindBy(ctx, "cpf", "52998224725")
		require.NoError(t, err)
		assert.Equal(t, r.ID, found.ID)

		updated, err := store.Update(ctx, r.ID, bson.M{"nome": "Ana Maria"})
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", updated.Nome)
		assert.Equal(t, int32(2), updated.Version)
		assert.False(t, updated.UpdatedAt.Before(r.UpdatedAt))

		_, err = store.Update(ctx, "missing", bson.M{"nome": "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("array membership", func(t *testing.T) {
		store := newStore(t)
		a := newResponsavel("52998224725", "ana")
		b := newResponsavel("11144477735", "bia")
		require.NoError(t, store.Create(ctx, a))
		require.NoError(t, store.Create(ctx, b))

		require.NoError(t, store.AddToSet(ctx, a.ID, "criancasIds", "k1"))
		require.NoError(t, store.AddToSet(ctx, a.ID, "criancasIds", "k1"))
		require.NoError(t, store.AddToSet(ctx, b.ID, "criancasIds", "k1"))
		require.NoError(t, store.AddToSet(ctx, b.ID, "criancasIds", "k2"))

		got, err := store.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"k1"}, got.CriancasIDs)

		containing, err := store.ListContaining(ctx, "criancasIds", "k1")
		require.NoError(t, err)
		assert.Len(t, containing, 2)

		require.NoError(t, store.Pull(ctx, b.ID, "criancasIds", "k2"))
		got, err = store.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"k1"}, got.CriancasIDs)

		n, err := store.PullFromAll(ctx, "criancasIds", "k1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		containing, err = store.ListContaining(ctx, "criancasIds", "k1")
		require.NoError(t, err)
		assert.Empty(t, containing)

		assert.ErrorIs(t, store.AddToSet(ctx, "missing", "criancasIds", "k1"), ErrNotFound)
	})

	t.Run("replace with optimistic lock", func(t *testing.T) {
		store := newStore(t)
		r := newResponsavel("52998224725", "ana")
		require.NoError(t, store.Create(ctx, r))

		first, err := store.Get(ctx, r.ID)
		require.NoError(t, err)
		second, err := store.Get(ctx, r.ID)
		require.NoError(t, err)

		first.Nome = "first"
		require.NoError(t, store.Replace(ctx, first))
		assert.Equal(t, int32(2), first.Version)

		second.Nome = "second"
		err = store.Replace(ctx, second)
		assert.True(t, utils.IsOptimisticLockError(err), "got %v", err)
		assert.Equal(t, int32(1), second.Version)

		got, err := store.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "first", got.Nome)

		ghost := newResponsavel("11144477735", "ghost")
		ghost.ID = "missing"
		assert.ErrorIs(t, store.Replace(ctx, ghost), ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		store := newStore(t)
		r := newResponsavel("52998224725", "ana")
		require.NoError(t, store.Create(ctx, r))

		require.NoError(t, store.Delete(ctx, r.ID))
		_, err := store.Get(ctx, r.ID)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.ErrorIs(t, store.Delete(ctx, r.ID), ErrNotFound)
	})
}
