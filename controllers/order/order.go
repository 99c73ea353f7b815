package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
	"github.com/mdasifmahmuddev/banglabaari-server/models"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

// -------- Request structs --------

type OrderItemInput struct {
	ProductID uint    `json:"productId" binding:"required"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Image     string  `json:"image"`
}

type ShippingAddressInput struct {
	FullName   string `json:"fullName" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode"`
	District   string `json:"district"`
}

type PlaceOrderRequest struct {
	UserEmail       string               `json:"userEmail" binding:"required,email"`
	Items           []OrderItemInput     `json:"items" binding:"required,min=1,dive"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress" binding:"required"`
	TotalAmount     *float64             `json:"totalAmount" binding:"required"`
	Notes           string               `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

// -------- Helpers --------

// ParseOrderStatus maps a client string to a known status. Any status may
// follow any other; only the value itself is checked.
func ParseOrderStatus(s string) (models.OrderStatus, error) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", errors.New("invalid order status")
}

// GenerateOrderNumber builds a BB<millis><counter> number. The counter is the
// existing order count plus one, zero-padded to at least four digits; attempt
// bumps it when a previous try collided.
func GenerateOrderNumber(count int64, now time.Time, attempt int) string {
	return fmt.Sprintf("BB%d%04d", now.UnixMilli(), count+1+int64(attempt))
}

const maxNumberAttempts = 3

// -------- Core logic --------

// PlaceOrder converts the submitted items into an immutable order and empties
// the user's cart in the same transaction. Item snapshots are trusted as
// given; product pricing is not re-validated.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (*models.Order, error) {
	var user models.User
	err := db.Where("email = ?", strings.ToLower(req.UserEmail)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	snapshot := func() []models.OrderItem {
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, models.OrderItem{
				ProductID: it.ProductID,
				Title:     it.Title,
				Price:     it.Price,
				Quantity:  it.Quantity,
				Size:      it.Size,
				Color:     it.Color,
				Image:     it.Image,
			})
		}
		return items
	}

	// The count-then-format number can collide under concurrency; the unique
	// index rejects the loser and we retry with a bumped counter. A rolled
	// back attempt leaves ids on the item structs, so each try gets a fresh
	// snapshot.
	var lastErr error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		order := models.Order{
			UserID: user.ID,
			Items:  snapshot(),
			ShippingAddress: models.ShippingAddress{
				FullName:   req.ShippingAddress.FullName,
				Phone:      req.ShippingAddress.Phone,
				Address:    req.ShippingAddress.Address,
				City:       req.ShippingAddress.City,
				PostalCode: req.ShippingAddress.PostalCode,
				District:   req.ShippingAddress.District,
			},
			TotalAmount:   *req.TotalAmount,
			PaymentMethod: models.PaymentMethodCOD,
			OrderStatus:   models.OrderStatusPending,
			Notes:         req.Notes,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.Order{}).Count(&count).Error; err != nil {
				return err
			}
			order.OrderNumber = GenerateOrderNumber(count, time.Now(), attempt)

			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			return tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error
		})
		if err == nil {
			return &order, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			lastErr = err
			continue
		}
		return nil, apperr.Internal(err)
	}
	return nil, apperr.Wrap(apperr.CodeConflict, "Could not allocate order number", lastErr)
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB, notify func(models.Order)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, apperr.Validation("Invalid order data"))
			return
		}

		order, err := PlaceOrder(db, req)
		if err != nil {
			utils.Error(c, err)
			return
		}

		if notify != nil {
			notify(*order)
		}
		utils.RespondMessage(c, http.StatusCreated, "Order placed successfully!", order)
	}
}

// GET /orders/user/:email
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		err := db.Where("email = ?", strings.ToLower(c.Param("email"))).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, apperr.NotFound("User not found"))
			return
		}
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		var orders []models.Order
		if err := db.Where("user_id = ?", user.ID).
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}
		utils.Respond(c, http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		err := db.Preload("Items.Product").
			First(&order, "id = ?", c.Param("id")).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, apperr.NotFound("Order not found"))
			return
		}
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}
		utils.Respond(c, http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}
		utils.Respond(c, http.StatusOK, orders)
	}
}

// PUT /admin/orders/:id
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, apperr.Validation("orderStatus is required"))
			return
		}

		status, err := ParseOrderStatus(req.OrderStatus)
		if err != nil {
			utils.Error(c, apperr.Validation("Invalid order status"))
			return
		}

		var order models.Order
		dbErr := db.First(&order, "id = ?", c.Param("id")).Error
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			utils.Error(c, apperr.NotFound("Order not found"))
			return
		}
		if dbErr != nil {
			utils.Error(c, apperr.Internal(dbErr))
			return
		}

		if err := db.Model(&order).Update("order_status", status).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		if err := db.Preload("User").First(&order, order.ID).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}
		utils.Respond(c, http.StatusOK, order)
	}
}
