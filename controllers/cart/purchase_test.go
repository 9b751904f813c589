package cartControllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sergiofrancodev/ecommerce-academlo/models"
)

type fakeMailer struct {
	welcomes      []string
	confirmations []string
	items         []models.CartItem
	total         decimal.Decimal
	err           error
}

func (f *fakeMailer) SendWelcome(_ context.Context, to, _ string) error {
	f.welcomes = append(f.welcomes, to)
	return f.err
}

func (f *fakeMailer) SendOrderConfirmation(_ context.Context, to string, items []models.CartItem, total decimal.Decimal) error {
	f.confirmations = append(f.confirmations, to)
	f.items = items
	f.total = total
	return f.err
}

func TestPurchaseSingleItem(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, 20, "10.00")
	require.NoError(t, addProductToCart(db, user, AddProductInput{ProductID: product.ID, Quantity: 2}))

	purchased, total, err := purchaseCart(db, user)
	require.NoError(t, err)

	require.True(t, total.Equal(decimal.RequireFromString("20.00")), "total was %s", total)
	require.Len(t, purchased, 1)
	require.Equal(t, models.CartItemStatusPurchased, purchased[0].Status)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	require.Equal(t, 18, fresh.Quantity)

	var cart models.Cart
	require.NoError(t, db.First(&cart, "user_id = ?", user.ID).Error)
	require.Equal(t, models.CartStatusPurchased, cart.Status)

	var order models.Order
	require.NoError(t, db.First(&order, "user_id = ?", user.ID).Error)
	require.Equal(t, cart.ID, order.CartID)
	require.True(t, order.TotalPrice.Equal(total))
}

func TestPurchaseSumsAllActiveItems(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "multi@example.com")
	first := createTestProduct(t, db, 5, "3.50")
	second := createTestProduct(t, db, 8, "12.25")
	require.NoError(t, addProductToCart(db, user, AddProductInput{ProductID: first.ID, Quantity: 2}))
	require.NoError(t, addProductToCart(db, user, AddProductInput{ProductID: second.ID, Quantity: 3}))

	_, total, err := purchaseCart(db, user)
	require.NoError(t, err)

	// 2*3.50 + 3*12.25
	require.True(t, total.Equal(decimal.RequireFromString("43.75")), "total was %s", total)

	var firstFresh, secondFresh models.Product
	require.NoError(t, db.First(&firstFresh, "id = ?", first.ID).Error)
	require.NoError(t, db.First(&secondFresh, "id = ?", second.ID).Error)
	require.Equal(t, 3, firstFresh.Quantity)
	require.Equal(t, 5, secondFresh.Quantity)
}

func TestPurchaseSkipsRemovedItems(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "skips@example.com")
	kept := createTestProduct(t, db, 5, "2.00")
	dropped := createTestProduct(t, db, 5, "99.00")
	require.NoError(t, addProductToCart(db, user, AddProductInput{ProductID: kept.ID, Quantity: 1}))
	require.NoError(t, addProductToCart(db, user, AddProductInput{ProductID: dropped.ID, Quantity: 1}))

	cart, err := activeCart(db, user.ID)
	require.NoError(t, err)
	var droppedItem models.CartItem
	require.NoError(t, db.Where("cart_id = ? AND product_id = ?", cart.ID, dropped.ID).First(&droppedItem).Error)
	_, err = removeProductFromCart(db, user, droppedItem.ID)
	require.NoError(t, err)

	purchased, total, err := purchaseCart(db, user)
	require.NoError(t, err)
	require.Len(t, purchased, 1)
	require.True(t, total.Equal(decimal.RequireFromString("2.00")))

	var droppedFresh models.Product
	require.NoError(t, db.First(&droppedFresh, "id = ?", dropped.ID).Error)
	require.Equal(t, 5, droppedFresh.Quantity)
}

func TestPurchaseWithoutCartFails(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "nocart@example.com")

	_, _, err := purchaseCart(db, user)
	appErr := requireAppError(t, err, 404)
	require.Equal(t, "Cart not found", appErr.Message)
}

func TestPurchaseEmptyCartSucceedsWithZeroTotal(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "empty@example.com")
	product := createTestProduct(t, db, 5, "4.00")
	require.NoError(t, addProductToCart(db, user, AddProductInput{ProductID: product.ID, Quantity: 1}))

	cart, err := activeCart(db, user.ID)
	require.NoError(t, err)
	var item models.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.ID).First(&item).Error)
	_, err = removeProductFromCart(db, user, item.ID)
	require.NoError(t, err)

	purchased, total, err := purchaseCart(db, user)
	require.NoError(t, err)
	require.Empty(t, purchased)
	require.True(t, total.IsZero())
}

func TestPurchaseInsufficientStockRollsBackEverything(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "rollback@example.com")
	fine := createTestProduct(t, db, 10, "1.00")
	scarce := createTestProduct(t, db, 5, "1.00")
	require.NoError(t, addProductToCart(db, user, AddProductInput{ProductID: fine.ID, Quantity: 2}))
	require.NoError(t, addProductToCart(db, user, AddProductInput{ProductID: scarce.ID, Quantity: 5}))

	// Stock drained after the item went into the cart.
	require.NoError(t, db.Model(scarce).Update("quantity", 1).Error)

	_, _, err := purchaseCart(db, user)
	requireAppError(t, err, 400)

	// The sibling write must have rolled back with the failure.
	var fineFresh models.Product
	require.NoError(t, db.First(&fineFresh, "id = ?", fine.ID).Error)
	require.Equal(t, 10, fineFresh.Quantity)

	var items []models.CartItem
	require.NoError(t, db.Where("status = ?", models.CartItemStatusActive).Find(&items).Error)
	require.Len(t, items, 2)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.Zero(t, orderCount)

	cart, err := activeCart(db, user.ID)
	require.NoError(t, err)
	require.Equal(t, models.CartStatusActive, cart.Status)
}

func TestPurchaseHandlerSendsConfirmation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	user := createTestUser(t, db, "mail@example.com")
	product := createTestProduct(t, db, 20, "10.00")
	require.NoError(t, addProductToCart(db, user, AddProductInput{ProductID: product.ID, Quantity: 2}))

	mailer := &fakeMailer{}

	r := gin.New()
	r.POST("/cart/purchase", func(c *gin.Context) {
		c.Set("sessionUser", user)
		c.Next()
	}, PurchaseCart(db, mailer))

	req := httptest.NewRequest(http.MethodPost, "/cart/purchase", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"success"}`, w.Body.String())

	require.Equal(t, []string{"mail@example.com"}, mailer.confirmations)
	require.Len(t, mailer.items, 1)
	require.Equal(t, 2, mailer.items[0].Quantity)
	require.True(t, mailer.total.Equal(decimal.RequireFromString("20.00")))
}
