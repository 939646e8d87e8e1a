package handler

import (
	"net/http"
	"strconv"

	"app/internal/catalog"

	"github.com/labstack/echo/v4"
)

// /api/products の公開API。カタログは固定リスト。
type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// 公開商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/products", h.list)
	e.GET("/api/products/:id", h.detail)
}

type ProductListResponse struct {
	Items []catalog.Product `json:"items"`
}

func (h *ProductHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, ProductListResponse{Items: catalog.All()})
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid id"})
	}

	p, ok := catalog.Find(id)
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "not found"})
	}

	return c.JSON(http.StatusOK, p)
}
