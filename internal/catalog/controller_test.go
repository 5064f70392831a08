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

type recordingNavigator struct {
	routes []string
}

func (n *recordingNavigator) Navigate(route string) {
	n.routes = append(n.routes, route)
}

func TestController_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("successful save returns to the list", func(t *testing.T) {
		// given
		svc := new(MockService)
		svc.On("CreateProduct", mock.Anything, inputMatching("Caneta", "2.5")).
			Return(catalog.Product{ID: "1", Name: "Caneta", Price: price("2.5")}, nil)
		nav := &recordingNavigator{}
		ctrl := catalog.NewController(svc, nav, answer(true))

		require.NoError(t, ctrl.ShowForm(ctx, ""))
		require.NoError(t, ctrl.SetField(catalog.FieldName, "Caneta"))
		require.NoError(t, ctrl.SetField(catalog.FieldPrice, "2,50"))

		// when
		err := ctrl.Save(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{catalog.ListRoute}, nav.routes)
		assert.Equal(t, catalog.StatusDone, ctrl.Form().Status())
	})

	t.Run("failed save stays on the form", func(t *testing.T) {
		// given
		svc := new(MockService)
		svc.On("CreateProduct", mock.Anything, mock.Anything).Return(catalog.Product{}, errors.New("boom"))
		nav := &recordingNavigator{}
		ctrl := catalog.NewController(svc, nav, answer(true))

		require.NoError(t, ctrl.ShowForm(ctx, ""))
		require.NoError(t, ctrl.SetField(catalog.FieldName, "Caneta"))
		require.NoError(t, ctrl.SetField(catalog.FieldPrice, "2"))

		// when
		err := ctrl.Save(ctx)

		// then
		require.Error(t, err)
		assert.Empty(t, nav.routes)
		assert.Equal(t, catalog.Draft{Name: "Caneta", Price: "2"}, ctrl.Form().Draft())
	})

	t.Run("resumed form saves without fetching", func(t *testing.T) {
		svc := new(MockService)
		svc.On("UpdateProduct", mock.Anything, "3", inputMatching("Régua", "4")).
			Return(catalog.Product{ID: "3", Name: "Régua", Price: price("4")}, nil)
		nav := &recordingNavigator{}
		ctrl := catalog.NewController(svc, nav, answer(true))

		require.NoError(t, ctrl.ResumeForm("3", catalog.Draft{Name: "Régua", Price: "4"}))
		require.NoError(t, ctrl.Save(ctx))

		assert.Equal(t, []string{catalog.ListRoute}, nav.routes)
		svc.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
	})

	t.Run("save without a form", func(t *testing.T) {
		ctrl := catalog.NewController(new(MockService), nil, nil)

		assert.ErrorIs(t, ctrl.Save(ctx), catalog.ErrNotReady)
		assert.ErrorIs(t, ctrl.SetField(catalog.FieldName, "x"), catalog.ErrNotReady)
	})
}

func TestController_ShowFormReplacesPreviousForm(t *testing.T) {
	ctx := context.Background()
	svc := new(MockService)
	svc.On("GetProduct", mock.Anything, "2").Return(catalog.Product{ID: "2", Name: "Régua", Price: price("4")}, nil)
	ctrl := catalog.NewController(svc, nil, nil)

	require.NoError(t, ctrl.ShowForm(ctx, ""))
	first := ctrl.Form()
	require.NoError(t, ctrl.ShowForm(ctx, "2"))

	assert.NotSame(t, first, ctrl.Form())
	assert.ErrorIs(t, first.Load(ctx, ""), catalog.ErrDetached)
	assert.Equal(t, "Régua", ctrl.Form().Draft().Name)
}

func TestController_Navigation(t *testing.T) {
	nav := &recordingNavigator{}
	ctrl := catalog.NewController(new(MockService), nav, nil)

	ctrl.New()
	ctrl.Edit("7")
	ctrl.Cancel()

	assert.Equal(t, []string{"/novo", "/editar/7", "/"}, nav.routes)
}

func TestController_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("declined", func(t *testing.T) {
		svc := new(MockService)
		ctrl := catalog.NewController(svc, nil, answer(false))

		removed, err := ctrl.Delete(ctx, "7")

		require.NoError(t, err)
		assert.False(t, removed)
		svc.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
	})

	t.Run("confirmed", func(t *testing.T) {
		svc := new(MockService)
		svc.On("DeleteProduct", mock.Anything, "7").Return(nil)
		svc.On("ListProducts", mock.Anything).Return([]catalog.Product{}, nil)
		ctrl := catalog.NewController(svc, nil, answer(true))

		removed, err := ctrl.Delete(ctx, "7")

		require.NoError(t, err)
		assert.True(t, removed)
		assert.True(t, ctrl.List().Empty())
	})
}

func TestController_Close(t *testing.T) {
	ctx := context.Background()
	svc := new(MockService)
	ctrl := catalog.NewController(svc, nil, nil)
	require.NoError(t, ctrl.ShowForm(ctx, ""))

	ctrl.Close()

	assert.ErrorIs(t, ctrl.ShowList(ctx), catalog.ErrDetached)
	assert.ErrorIs(t, ctrl.Form().Submit(ctx), catalog.ErrDetached)
	svc.AssertNotCalled(t, "ListProducts", mock.Anything)
}
