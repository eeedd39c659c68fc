package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/localshop/internal/models"
	"github.com/Skotchmaster/localshop/internal/repo"
)

func loginJohn(t *testing.T, env *testEnv) {
	t.Helper()
	_, err := env.Shop.Auth.Login(context.Background(), "john@gmail.com", "123456")
	require.NoError(t, err)
}

func addProducts(t *testing.T, env *testEnv, products ...models.Product) {
	t.Helper()
	ctx := context.Background()
	r := repo.New(env.Store)
	all, err := r.Products(ctx)
	require.NoError(t, err)
	require.NoError(t, r.SaveProducts(ctx, append(all, products...)))
}

func TestCartService_AddItem_SameIDAccumulates(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 17} {
		n := n
		t.Run(fmt.Sprintf("%d_adds", n), func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			ctx := context.Background()
			loginJohn(t, env)

			for i := 0; i < n; i++ {
				item, err := env.Shop.Cart.AddItem(ctx, 1)
				require.NoError(t, err)
				assert.Equal(t, i+1, item.Quantity)
			}

			items, err := env.Shop.Cart.Snapshot(ctx)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, int64(1), items[0].ID)
			assert.Equal(t, n, items[0].Quantity)
			assert.Equal(t, "Galaxy S25 Ultra", items[0].Name)

			total, err := env.Shop.Cart.TotalQuantity(ctx)
			require.NoError(t, err)
			assert.Equal(t, n, total)
		})
	}
}

func TestCartService_AddItem_UnknownProductLeavesCartUnchanged(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	loginJohn(t, env)
	_, err := env.Shop.Cart.AddItem(ctx, 1)
	require.NoError(t, err)
	before, _ := env.raw(t, models.CartKey)

	item, err := env.Shop.Cart.AddItem(ctx, 999)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrProductNotFound)

	after, _ := env.raw(t, models.CartKey)
	assert.Equal(t, before, after)
}

func TestCartService_AddItem_NoSessionHasNoSideEffects(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	before, _ := env.raw(t, models.CartKey)

	for _, pid := range []int64{1, 999} {
		item, err := env.Shop.Cart.AddItem(ctx, pid)
		assert.Nil(t, item)
		assert.ErrorIs(t, err, ErrNoSession)
	}

	after, _ := env.raw(t, models.CartKey)
	assert.Equal(t, before, after)
	assert.Empty(t, env.Events.Types())
}

func TestCartService_SnapshotKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	addProducts(t, env,
		models.Product{ID: 2, Name: "Buds", Price: 9999},
		models.Product{ID: 3, Name: "Watch", Price: 29999},
	)
	loginJohn(t, env)

	for _, pid := range []int64{3, 1, 3, 2, 3} {
		_, err := env.Shop.Cart.AddItem(ctx, pid)
		require.NoError(t, err)
	}

	items, err := env.Shop.Cart.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, []int{3, 1, 1}, []int{items[0].Quantity, items[1].Quantity, items[2].Quantity})

	total, err := env.Shop.Cart.TotalQuantity(ctx)
	require.NoError(t, err)
	sum := 0
	for _, it := range items {
		sum += it.Quantity
	}
	assert.Equal(t, sum, total)
}

func TestCartService_ItemIsSnapshotOfProduct(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	loginJohn(t, env)

	_, err := env.Shop.Cart.AddItem(ctx, 1)
	require.NoError(t, err)

	r := repo.New(env.Store)
	products, err := r.Products(ctx)
	require.NoError(t, err)
	products[0].Price = 1
	require.NoError(t, r.SaveProducts(ctx, products))

	item, err := env.Shop.Cart.AddItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(129999), item.Price)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartService_EmptyCart(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	total, err := env.Shop.Cart.TotalQuantity(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	items, err := env.Shop.Cart.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_CartSurvivesLogout(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	loginJohn(t, env)
	_, err := env.Shop.Cart.AddItem(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, env.Shop.Auth.Logout(ctx))

	total, err := env.Shop.Cart.TotalQuantity(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestCatalogService_FindByID(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.Shop.Catalog.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Galaxy S25 Ultra", p.Name)

	p, err = env.Shop.Catalog.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, p)

	list, err := env.Shop.Catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestShop_EndToEnd(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	shop := env.Shop

	_, err := shop.Auth.Register(ctx, "Jane", "jane@x.com", "pw1")
	require.NoError(t, err)

	_, err = shop.Auth.Register(ctx, "Jane", "jane@x.com", "pw1")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = shop.Auth.Login(ctx, "jane@x.com", "pw1")
	require.NoError(t, err)

	_, err = shop.Cart.AddItem(ctx, 1)
	require.NoError(t, err)
	_, err = shop.Cart.AddItem(ctx, 1)
	require.NoError(t, err)

	items, err := shop.Cart.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)

	require.NoError(t, shop.Auth.Logout(ctx))

	_, err = shop.Cart.AddItem(ctx, 1)
	require.ErrorIs(t, err, ErrNoSession)

	assert.Equal(t, []string{
		"user_registered",
		"user_logged_in",
		"cart_item_added",
		"cart_item_added",
		"user_logged_out",
	}, env.Events.Types())
}
