package purchase_test

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/entities"
	"Go-Shopping-Inventory/internal/testutil"
	"Go-Shopping-Inventory/pkg/purchase"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseRepositoryCreateFetchDelete(t *testing.T) {
	ctx := context.Background()
	repo := purchase.NewPurchaseRepository[entities.FoodPurchase](testutil.OpenDB(t))

	rice, err := entities.NewFoodPurchase("Rice", "5kg bag", false, nil, 3, false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, rice))
	assert.Positive(t, rice.ID)

	beans, err := entities.NewFoodPurchase("Beans", "Black", false, nil, 2, false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, beans))

	items, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, rice.ID, items[0].ID)
	assert.Equal(t, "Beans", items[1].ProductName)

	require.NoError(t, repo.Delete(ctx, rice.ID))

	items, err = repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, beans.ID, items[0].ID)
}

func TestPurchaseRepositoryDeleteMissing(t *testing.T) {
	ctx := context.Background()
	repo := purchase.NewPurchaseRepository[entities.MiscPurchase](testutil.OpenDB(t))

	tape, err := entities.NewMiscPurchase("Tape", "Duct", false, nil, 1, false, "Hardware")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tape))

	err = repo.Delete(ctx, tape.ID+100)
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 0), domain.ErrInvalidPurchaseID)

	items, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPurchaseRepositoryLastPhotoNumber(t *testing.T) {
	ctx := context.Background()
	repo := purchase.NewPurchaseRepository[entities.CleaningPurchase](testutil.OpenDB(t))

	assert.Equal(t, 0, repo.LastPhotoNumber(ctx))

	for _, n := range []int{1, 3, 2} {
		p, err := entities.NewCleaningPurchase("Soap", "Lemon", true, testutil.IntPtr(n), 1, false, "MartX")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, p))
	}

	assert.Equal(t, 3, repo.LastPhotoNumber(ctx))

	pending, err := entities.NewCleaningPurchase("Sponge", "Yellow", false, nil, 2, false, "MartX")
	require.NoError(t, err)
	pending.MarkPhotoPending()
	require.NoError(t, repo.Create(ctx, pending))
	require.NotNil(t, pending.PhotoNumber)
	assert.Equal(t, 4, *pending.PhotoNumber)

	inUse, err := repo.PhotoInUse(ctx, 4)
	require.NoError(t, err)
	assert.True(t, inUse)
	inUse, err = repo.PhotoInUse(ctx, 5)
	require.NoError(t, err)
	assert.False(t, inUse)
}

func TestPurchaseRepositoryRejectsTakenPhotoNumber(t *testing.T) {
	ctx := context.Background()
	repo := purchase.NewPurchaseRepository[entities.FoodPurchase](testutil.OpenDB(t))

	apples, err := entities.NewFoodPurchase("Apples", "Red", true, testutil.IntPtr(1), 6, false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, apples))

	pears, err := entities.NewFoodPurchase("Pears", "Green", true, testutil.IntPtr(1), 2, false)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, pears), domain.ErrPhotoNumberTaken)

	plums, err := entities.NewFoodPurchase("Plums", "Ripe", false, nil, 1, false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, plums))
	require.NoError(t, plums.SetPhoto(true, testutil.IntPtr(1)))
	assert.ErrorIs(t, repo.Update(ctx, plums), domain.ErrPhotoNumberTaken)

	require.NoError(t, apples.SetQuantity(7))
	require.NoError(t, repo.Update(ctx, apples), "a row keeps its own number")

	items, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[1].PhotoNumber)
}

func TestPurchaseRepositoryConcurrentPhotoNumbers(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	repo := purchase.NewPurchaseRepository[entities.FoodPurchase](db)

	const adds = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = make(map[int]int)
	)
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := entities.NewFoodPurchase("Eggs", "Dozen", false, nil, 1, false)
			if !assert.NoError(t, err) {
				return
			}
			p.MarkPhotoPending()
			if !assert.NoError(t, repo.Create(ctx, p)) {
				return
			}
			mu.Lock()
			numbers[*p.PhotoNumber]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, numbers, adds)
	for n, count := range numbers {
		assert.Equal(t, 1, count, "photo number %d", n)
	}
}

func TestPurchaseRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := purchase.NewPurchaseRepository[entities.FoodPurchase](testutil.OpenDB(t))

	milk, err := entities.NewFoodPurchase("Milk", "1L", true, testutil.IntPtr(5), 1, false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, milk))

	require.NoError(t, milk.SetQuantity(4))
	require.NoError(t, milk.SetPhoto(false, nil))
	require.NoError(t, repo.Update(ctx, milk))

	got, err := repo.FindByID(ctx, milk.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)
	assert.False(t, got.HasPhoto)
	assert.Nil(t, got.PhotoNumber)

	ghost, err := entities.NewFoodPurchase("Ghost", "None", false, nil, 1, false)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrInvalidPurchaseID)

	ghost.ID = milk.ID + 50
	assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrPurchaseNotFound)
}

func TestPurchaseRepositoryRejectsInvalidRow(t *testing.T) {
	ctx := context.Background()
	repo := purchase.NewPurchaseRepository[entities.FoodPurchase](testutil.OpenDB(t))

	bad := &entities.FoodPurchase{Purchase: entities.Purchase{ProductName: "", Description: "x", Quantity: 1}}
	assert.ErrorIs(t, repo.Create(ctx, bad), domain.ErrBlankProductName)

	items, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPurchaseRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	repo := purchase.NewPurchaseRepository[entities.FoodPurchase](testutil.OpenDB(t))

	_, err := repo.FindByID(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidPurchaseID)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
}

func TestPurchaseRepositoryClose(t *testing.T) {
	ctx := context.Background()
	repo := purchase.NewPurchaseRepository[entities.FoodPurchase](testutil.OpenDB(t))
	assert.Equal(t, entities.TableFoodPurchase, repo.TableName())

	require.NoError(t, repo.Close())
	require.NoError(t, repo.Close())

	_, err := repo.FetchAll(ctx)
	assert.ErrorIs(t, err, domain.ErrGatewayClosed)

	p, err := entities.NewFoodPurchase("Rice", "5kg bag", false, nil, 3, false)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, p), domain.ErrGatewayClosed)
	_, err = repo.PhotoInUse(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrGatewayClosed)
	assert.Equal(t, 0, repo.LastPhotoNumber(ctx))
}
