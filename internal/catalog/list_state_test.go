package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iyhunko/product-catalog/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListState_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("empty remote collection", func(t *testing.T) {
		// given
		svc := new(MockService)
		svc.On("ListProducts", mock.Anything).Return([]catalog.Product{}, nil)
		list := catalog.NewListState(svc)
		assert.Equal(t, catalog.StatusIdle, list.Status())

		// when
		err := list.Refresh(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, catalog.StatusReady, list.Status())
		assert.Empty(t, list.Products())
		assert.True(t, list.Empty())
		assert.NoError(t, list.Err())
	})

	t.Run("refresh is idempotent for an unchanged remote", func(t *testing.T) {
		// given
		remote := []catalog.Product{
			{ID: "1", Name: "Caneta", Price: price("2.5")},
			{ID: "2", Name: "Caderno", Price: price("12.9")},
		}
		svc := new(MockService)
		svc.On("ListProducts", mock.Anything).Return(remote, nil)
		list := catalog.NewListState(svc)

		// when
		require.NoError(t, list.Refresh(ctx))
		first := list.Products()
		require.NoError(t, list.Refresh(ctx))
		second := list.Products()

		// then
		assert.Equal(t, first, second)
		assert.Len(t, second, 2)
		assert.False(t, list.Empty())
		svc.AssertNumberOfCalls(t, "ListProducts", 2)
	})

	t.Run("failure keeps the previous collection", func(t *testing.T) {
		// given
		svc := new(MockService)
		svc.On("ListProducts", mock.Anything).Return([]catalog.Product{{ID: "1", Name: "Caneta", Price: price("2.5")}}, nil).Once()
		svc.On("ListProducts", mock.Anything).Return(nil, errors.New("connection refused")).Once()
		list := catalog.NewListState(svc)
		require.NoError(t, list.Refresh(ctx))

		// when
		err := list.Refresh(ctx)

		// then
		var fetchErr *catalog.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "list", fetchErr.Op)
		assert.Equal(t, catalog.StatusError, list.Status())
		assert.Equal(t, err, list.Err())
		require.Len(t, list.Products(), 1)
		assert.Equal(t, "Caneta", list.Products()[0].Name)
	})

	t.Run("second refresh while loading is ignored", func(t *testing.T) {
		// given
		started := make(chan struct{})
		release := make(chan struct{})
		svc := new(MockService)
		svc.On("ListProducts", mock.Anything).
			Run(func(mock.Arguments) {
				close(started)
				<-release
			}).
			Return([]catalog.Product{}, nil).Once()
		list := catalog.NewListState(svc)

		done := make(chan error, 1)
		go func() { done <- list.Refresh(ctx) }()
		<-started

		// when
		err := list.Refresh(ctx)

		// then
		assert.ErrorIs(t, err, catalog.ErrBusy)
		assert.Equal(t, catalog.StatusLoading, list.Status())
		close(release)
		require.NoError(t, <-done)
		svc.AssertNumberOfCalls(t, "ListProducts", 1)
	})

	t.Run("detached list drops a late result", func(t *testing.T) {
		// given
		started := make(chan struct{})
		svc := new(MockService)
		svc.On("ListProducts", mock.Anything).
			Run(func(args mock.Arguments) {
				close(started)
				<-args.Get(0).(context.Context).Done()
			}).
			Return([]catalog.Product{{ID: "1", Name: "Caneta", Price: price("2.5")}}, nil).Once()
		list := catalog.NewListState(svc)

		done := make(chan error, 1)
		go func() { done <- list.Refresh(ctx) }()
		<-started

		// when
		list.Detach()

		// then
		assert.ErrorIs(t, <-done, catalog.ErrDetached)
		assert.Empty(t, list.Products())
		assert.ErrorIs(t, list.Refresh(ctx), catalog.ErrDetached)
	})
}

func TestListState_Remove(t *testing.T) {
	ctx := context.Background()
	remote := []catalog.Product{
		{ID: "7", Name: "Caneta", Price: price("2.5")},
		{ID: "8", Name: "Caderno", Price: price("12.9")},
	}

	t.Run("declined confirmation issues no delete", func(t *testing.T) {
		// given
		svc := new(MockService)
		svc.On("ListProducts", mock.Anything).Return(remote, nil).Once()
		list := catalog.NewListState(svc)
		require.NoError(t, list.Refresh(ctx))

		var asked string
		confirmer := catalog.ConfirmFunc(func(prompt string) bool {
			asked = prompt
			return false
		})

		// when
		removed, err := list.Remove(ctx, "7", confirmer)

		// then
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, catalog.DeletePrompt, asked)
		assert.Equal(t, remote, list.Products())
		svc.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
		svc.AssertNumberOfCalls(t, "ListProducts", 1)
	})

	t.Run("confirmed delete re-fetches the collection", func(t *testing.T) {
		// given
		svc := new(MockService)
		svc.On("ListProducts", mock.Anything).Return(remote, nil).Once()
		svc.On("DeleteProduct", mock.Anything, "7").Return(nil).Once()
		svc.On("ListProducts", mock.Anything).Return(remote[1:], nil).Once()
		list := catalog.NewListState(svc)
		require.NoError(t, list.Refresh(ctx))

		// when
		removed, err := list.Remove(ctx, "7", answer(true))

		// then
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, catalog.StatusReady, list.Status())
		assert.Equal(t, remote[1:], list.Products())
		svc.AssertExpectations(t)
	})

	t.Run("rejected delete keeps the collection and surfaces the error", func(t *testing.T) {
		// given
		svc := new(MockService)
		svc.On("ListProducts", mock.Anything).Return(remote, nil).Once()
		svc.On("DeleteProduct", mock.Anything, "7").Return(errors.New("500 internal")).Once()
		list := catalog.NewListState(svc)
		require.NoError(t, list.Refresh(ctx))

		// when
		removed, err := list.Remove(ctx, "7", answer(true))

		// then
		assert.False(t, removed)
		var subErr *catalog.SubmissionError
		require.ErrorAs(t, err, &subErr)
		assert.Equal(t, "delete", subErr.Op)
		assert.Equal(t, "7", subErr.ID)
		assert.Equal(t, catalog.StatusReady, list.Status())
		assert.Equal(t, remote, list.Products())
		svc.AssertNumberOfCalls(t, "ListProducts", 1)
	})

	t.Run("nil confirmer never deletes", func(t *testing.T) {
		svc := new(MockService)
		list := catalog.NewListState(svc)

		removed, err := list.Remove(ctx, "7", nil)

		require.NoError(t, err)
		assert.False(t, removed)
		svc.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
	})
}
