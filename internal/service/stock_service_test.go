package service

import (
	"testing"

	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRunningTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(repository.NewStockMovementRepo(db), db)
	product := createProduct(t, db, "REF-001", 0, 10)

	steps := []struct {
		kind model.MovementKind
		qty  int
	}{
		{model.MovementIn, 20},
		{model.MovementOut, 5},
		{model.MovementIn, 7},
		{model.MovementOut, 2},
	}

	expected := 0
	for _, step := range steps {
		input := MovementInput{ProductID: product.ID, Quantity: step.qty}
		var err error
		if step.kind == model.MovementIn {
			_, err = svc.RecordInbound(input)
			expected += step.qty
		} else {
			_, err = svc.RecordOutbound(input)
			expected -= step.qty
		}
		require.NoError(t, err)
		assert.Equal(t, expected, reloadProduct(t, db, product).StockQuantity)
	}

	// on-hand equals the ledger sum, and every step left a row behind
	var count int64
	require.NoError(t, db.Model(&model.StockMovement{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, len(steps), count)
}

func TestOutboundInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(repository.NewStockMovementRepo(db), db)
	product := createProduct(t, db, "REF-001", 3, 10)

	_, err := svc.RecordOutbound(MovementInput{ProductID: product.ID, Quantity: 5})
	require.ErrorIs(t, err, apperr.ErrInsufficientStock)

	// stock unchanged, no movement row
	assert.Equal(t, 3, reloadProduct(t, db, product).StockQuantity)
	var count int64
	require.NoError(t, db.Model(&model.StockMovement{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMovementUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(repository.NewStockMovementRepo(db), db)

	_, err := svc.RecordInbound(MovementInput{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.RecordOutbound(MovementInput{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.StockMovement{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMovementValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(repository.NewStockMovementRepo(db), db)
	product := createProduct(t, db, "REF-001", 10, 5)

	testCases := []struct {
		name  string
		input MovementInput
	}{
		{"zero quantity", MovementInput{ProductID: product.ID, Quantity: 0}},
		{"negative quantity", MovementInput{ProductID: product.ID, Quantity: -4}},
		{"missing product id", MovementInput{Quantity: 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordInbound(tc.input)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			_, err = svc.RecordOutbound(tc.input)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}

	assert.Equal(t, 10, reloadProduct(t, db, product).StockQuantity)
}

func TestAlertThresholdScenario(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(repository.NewStockMovementRepo(db), db)
	products := repository.NewProductRepo(db)
	product := createProduct(t, db, "REF-001", 10, 5)

	lowStockRefs := func() []string {
		low, err := products.LowStock()
		require.NoError(t, err)
		refs := make([]string, len(low))
		for i, p := range low {
			refs[i] = p.Reference
		}
		return refs
	}

	_, err := svc.RecordOutbound(MovementInput{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, reloadProduct(t, db, product).StockQuantity)
	assert.NotContains(t, lowStockRefs(), "REF-001")

	_, err = svc.RecordOutbound(MovementInput{ProductID: product.ID, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, reloadProduct(t, db, product).StockQuantity)
	assert.Contains(t, lowStockRefs(), "REF-001")
}

func TestHistoryAndRecent(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(repository.NewStockMovementRepo(db), db)
	first := createProduct(t, db, "REF-001", 0, 5)
	second := createProduct(t, db, "REF-002", 0, 5)

	for _, productID := range []uuid.UUID{first.ID, second.ID} {
		_, err := svc.RecordInbound(MovementInput{ProductID: productID, Quantity: 4, Reason: "restock"})
		require.NoError(t, err)
	}
	_, err := svc.RecordOutbound(MovementInput{ProductID: first.ID, Quantity: 1})
	require.NoError(t, err)

	history, err := svc.History(first.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// newest first
	assert.Equal(t, model.MovementOut, history[0].Kind)
	assert.Equal(t, model.MovementIn, history[1].Kind)

	recent, err := svc.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// joined with the product for display
	require.NotNil(t, recent[0].Product)
	assert.Equal(t, "REF-001", recent[0].Product.Reference)
}
