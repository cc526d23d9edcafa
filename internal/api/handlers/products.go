package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/lvnb04/cloudtrack/internal/engine"
	"github.com/lvnb04/cloudtrack/internal/store"
	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// Onboarder defines the interface for onboarding a tracking request.
type Onboarder interface {
	Onboard(ctx context.Context, req engine.OnboardRequest) (*domain.TrackedItem, error)
}

// ProductHandler handles tracked product operations.
type ProductHandler struct {
	onboarder Onboarder
	store     store.Store
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(o Onboarder, s store.Store) *ProductHandler {
	return &ProductHandler{onboarder: o, store: s}
}

// OnboardRequestBody is the JSON body for POST /api/v1/products.
type OnboardRequestBody struct {
	URL                string `json:"url"`
	Price              string `json:"price"`
	ServiceType        string `json:"serviceType"`
	NotificationType   string `json:"notificationType"`
	NotificationTarget string `json:"notificationTarget"`
}

// OnboardResponse is the success body for POST /api/v1/products.
type OnboardResponse struct {
	Status string `json:"status" example:"Product added successfully!"`
	ID     string `json:"id" example:"https://www.amazon.in/dp/B0CHX1W1XY"`
}

// Onboard handles POST /api/v1/products.
//
// @Summary Track a product
// @Description Validates the request, fetches the product's current state, and adds it to the tracking catalog.
// @Tags products
// @Accept json
// @Produce json
// @Param request body OnboardRequestBody true "Tracking request"
// @Success 200 {object} OnboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products [post]
func (h *ProductHandler) Onboard(c echo.Context) error {
	var body OnboardRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	item, err := h.onboarder.Onboard(c.Request().Context(), engine.OnboardRequest{
		URL:                body.URL,
		Price:              body.Price,
		ServiceType:        body.ServiceType,
		NotificationType:   body.NotificationType,
		NotificationTarget: body.NotificationTarget,
	})
	if err != nil {
		var vErr *engine.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": vErr.Msg,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, OnboardResponse{
		Status: "Product added successfully!",
		ID:     item.ID,
	})
}

// List handles GET /api/v1/products.
//
// @Summary List tracked products
// @Description Returns every item in the tracking catalog.
// @Tags products
// @Produce json
// @Success 200 {array} domain.TrackedItem
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	items, err := h.store.ListItems(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing products: " + err.Error(),
		})
	}

	if items == nil {
		items = []domain.TrackedItem{}
	}

	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/v1/products/:id. The id is the URL-escaped
// canonical product URL.
//
// @Summary Get a tracked product
// @Description Returns a single tracked item by its canonical identity.
// @Tags products
// @Produce json
// @Param id path string true "URL-escaped canonical product URL"
// @Success 200 {object} domain.TrackedItem
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := url.QueryUnescape(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid product id",
		})
	}

	item, err := h.store.GetItem(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "product not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "getting product: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, item)
}
