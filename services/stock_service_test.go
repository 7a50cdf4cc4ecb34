package services_test

import (
	"errors"
	"testing"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/Sarujan100/best-wishes-final-sub001/testutil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func seedProduct(t *testing.T, db *gorm.DB, sku string, stock int) models.Product {
	t.Helper()
	p := models.Product{
		Name:             "Product " + sku,
		SKU:              sku,
		ShortDescription: "test",
		MainCategory:     "gifts",
		RetailPrice:      10,
		Stock:            stock,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func TestStockBecameLow(t *testing.T) {
	cases := []struct {
		before, after int
		want          bool
	}{
		{20, 15, false},
		{20, 10, true},
		{8, 5, false},
		{8, 0, true},
		{0, 0, false},
		{5, 12, false},
	}
	for _, tc := range cases {
		if got := services.StockBecameLow(tc.before, tc.after); got != tc.want {
			t.Errorf("StockBecameLow(%d, %d) = %v, want %v", tc.before, tc.after, got, tc.want)
		}
	}
}

func TestReserveStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	a := seedProduct(t, db, "BW-A", 12)
	b := seedProduct(t, db, "BW-B", 1)

	var changes []services.StockChange
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		changes, err = services.ReserveStock(tx, map[uuid.UUID]int{a.ID: 3, b.ID: 1})
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 2 {
		t.Fatalf("changes = %+v", changes)
	}

	var got models.Product
	db.First(&got, "id = ?", a.ID)
	if got.Stock != 9 || got.StockStatus != models.StockLow {
		t.Errorf("a: stock %d status %s", got.Stock, got.StockStatus)
	}
	var gotB models.Product
	db.First(&gotB, "id = ?", b.ID)
	if gotB.Stock != 0 || gotB.StockStatus != models.StockOutOfStock {
		t.Errorf("b: stock %d status %s", gotB.Stock, gotB.StockStatus)
	}
}

func TestReserveStockIsAllOrNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	a := seedProduct(t, db, "BW-A", 5)
	b := seedProduct(t, db, "BW-B", 2)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := services.ReserveStock(tx, map[uuid.UUID]int{a.ID: 1, b.ID: 3})
		return err
	})
	if !errors.Is(err, services.ErrInsufficientStock) {
		t.Fatalf("err = %v", err)
	}
	var short *services.InsufficientStockError
	if !errors.As(err, &short) || len(short.Items) != 1 || short.Items[0].ProductID != b.ID {
		t.Fatalf("shortages = %+v", short)
	}
	if short.Items[0].Requested != 3 || short.Items[0].Available != 2 {
		t.Errorf("shortage = %+v", short.Items[0])
	}

	var got models.Product
	db.First(&got, "id = ?", a.ID)
	if got.Stock != 5 {
		t.Errorf("a was changed despite the failure: %d", got.Stock)
	}
}

func TestReserveStockUnknownProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	missing := uuid.Must(uuid.NewV7())

	_, err := services.ReserveStock(db, map[uuid.UUID]int{missing: 1})
	if !errors.Is(err, services.ErrInsufficientStock) {
		t.Fatalf("err = %v", err)
	}
}
