package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

// /api/cart, /api/cart/items/{id} を登録。
// 認証不要：未ログインでも追加・合計確認ができる。
func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/cart")
	g.Use(middleware.CartSession(cfg))

	g.GET("", h.getCart)
	g.DELETE("", h.clearCart)
	g.POST("/items", h.addItem)
	g.PATCH("/items/:id", h.patchItem)
	g.DELETE("/items/:id", h.deleteItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	key, ok := getCartSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "missing cart session"})
	}

	out, err := h.uc.GetCart(c.Request().Context(), key)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	key, ok := getCartSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "missing cart session"})
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), key, usecase.AddCartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) patchItem(c echo.Context) error {
	key, ok := getCartSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "missing cart session"})
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid body"})
	}

	out, err := h.uc.UpdateQuantity(c.Request().Context(), key, productID, usecase.UpdateCartItemInput{
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	key, ok := getCartSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "missing cart session"})
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid id"})
	}

	out, err := h.uc.RemoveItem(c.Request().Context(), key, productID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clearCart(c echo.Context) error {
	key, ok := getCartSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "missing cart session"})
	}

	out, err := h.uc.ClearCart(c.Request().Context(), key)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
