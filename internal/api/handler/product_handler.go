package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/api-productos/products-api/internal/api/metrics"
	"github.com/api-productos/products-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product CRUD.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /api/v1/products.
//
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
		Image:       req.Image,
	}, userID)
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Producto creado exitosamente",
		Data:    product,
	})
}

// List handles GET /api/v1/products. Unspecified query criteria are omitted
// from the filter, not defaulted.
//
// @Summary      List products with optional filters
// @Tags         products
// @Produce      json
// @Param        category  query     string   false  "Exact category match"
// @Param        minPrice  query     number   false  "Lower price bound"
// @Param        maxPrice  query     number   false  "Upper price bound"
// @Param        isActive  query     boolean  false  "Active flag match"
// @Param        userId    query     string   false  "Owner id match"
// @Success      200  {object}  Response
// @Failure      500  {object}  Response
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filters, err := parseFilters(c)
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	count := len(products)
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Count:   &count,
		Data:    products,
	})
}

// Get handles GET /api/v1/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: product})
}

// Update handles PUT /api/v1/products/:id. Absent fields are left untouched.
//
// @Summary      Update a product (owner or admin)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Failure      403   {object}  Response
// @Failure      404   {object}  Response
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		DescriptionSet: req.descriptionSet,
		Price:          req.Price,
		Stock:          req.Stock,
		Category:       req.Category,
		Image:          req.Image,
		ImageSet:       req.imageSet,
		IsActive:       req.IsActive,
	}, userID, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Producto actualizado exitosamente",
		Data:    product,
	})
}

// Delete handles DELETE /api/v1/products/:id — soft delete, the row stays.
//
// @Summary      Soft-delete a product (owner or admin)
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.SoftDelete(c.Request().Context(), c.Param("id"), userID, role); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.WithLabelValues("soft").Inc()

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Producto eliminado exitosamente",
	})
}

// PermanentDelete handles DELETE /api/v1/products/:id/permanent. The route is
// gated to administrators; the service performs no ownership check.
//
// @Summary      Permanently delete a product (admin only)
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /products/{id}/permanent [delete]
func (h *ProductHandler) PermanentDelete(c echo.Context) error {
	if err := h.service.HardDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.WithLabelValues("hard").Inc()

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Producto eliminado permanentemente",
	})
}

// parseFilters builds ProductFilters from the query string. Each criterion is
// included only when its parameter is present.
func parseFilters(c echo.Context) (ports.ProductFilters, error) {
	filters := ports.ProductFilters{
		Category: c.QueryParam("category"),
		UserID:   c.QueryParam("userId"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, echo.NewHTTPError(http.StatusBadRequest, "El parámetro minPrice no es un número")
		}
		filters.MinPrice = &v
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, echo.NewHTTPError(http.StatusBadRequest, "El parámetro maxPrice no es un número")
		}
		filters.MaxPrice = &v
	}
	if raw := c.QueryParam("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, echo.NewHTTPError(http.StatusBadRequest, "El parámetro isActive no es un booleano")
		}
		filters.IsActive = &active
	}

	return filters, nil
}
