package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demostore/catalog-api/internal/api/metrics"
	"github.com/demostore/catalog-api/internal/core/domain"
	"github.com/demostore/catalog-api/internal/core/ports"
)

// ProductHandler serves the catalog CRUD routes. Every route is registered
// behind the auth gate.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products.
//
// @Summary      List all products
// @Description  Returns every product ordered by creation time, newest first. Not paginated.
// @Tags         products
// @Produce      json
// @Success      200  {array}   productResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid product status")
		}
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(created.Category).Inc()
	return c.JSON(http.StatusCreated, toProductResponse(created))
}

// Update handles PUT /products/:id. Only fields present in the body change;
// updatedAt is refreshed regardless.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return mapProductError(err)
	}

	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toProductResponse(updated))
}

// UpdateStatus handles PATCH /products/:id/status.
//
// @Summary      Change a product's status
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Product id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products/{id}/status [patch]
func (h *ProductHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return mapProductError(err)
	}

	metrics.ProductMutationsTotal.WithLabelValues("status").Inc()
	return c.JSON(http.StatusOK, toProductResponse(updated))
}

// Delete handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id  path      string  true  "Product id"
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return mapProductError(err)
	}

	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// mapProductError translates domain sentinels into HTTP errors; anything
// else bubbles to the central error handler as a generic 500.
func mapProductError(err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	case errors.Is(err, domain.ErrInvalidStatus):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product status")
	}
	return err
}
