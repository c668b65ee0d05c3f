package server

import (
	"errors"
	"net/http"
	"strconv"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"

	"github.com/nvquang/product-api/internal/models"
	"github.com/nvquang/product-api/internal/usecase"
)

type ProductController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Health(c echo.Context) error
}

type productController struct {
	productUsecase usecase.ProductUsecase
}

func NewProductController(productUsecase usecase.ProductUsecase) ProductController {
	return &productController{
		productUsecase: productUsecase,
	}
}

func (pc *productController) List(c echo.Context) error {
	ctx := c.Request().Context()
	products, err := pc.productUsecase.GetAllProducts(ctx)
	if err != nil {
		log.Errorw(ctx, "failed to list products", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong!"})
	}
	return c.JSON(http.StatusOK, products)
}

func (pc *productController) Create(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if msg := usecase.ValidateProduct(&product); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx := c.Request().Context()
	saved, err := pc.productUsecase.SaveProduct(ctx, &product)
	if err != nil {
		log.Errorw(ctx, "failed to save product", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong!"})
	}

	return c.JSON(http.StatusCreated, saved)
}

func (pc *productController) Get(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid Product Id"})
	}

	ctx := c.Request().Context()
	product, err := pc.productUsecase.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		log.Errorw(ctx, "failed to get product", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong!"})
	}

	return c.JSON(http.StatusOK, product)
}

func (pc *productController) Update(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid Product Id"})
	}

	var update models.ProductUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	product, err := pc.productUsecase.UpdateProduct(ctx, id, update)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		log.Errorw(ctx, "failed to update product", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong!"})
	}

	return c.JSON(http.StatusOK, product)
}

// Delete answers 200 whether or not a document matched. The service layer
// has no found/not-found signal for deletes; see DeleteProduct.
func (pc *productController) Delete(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid Product Id"})
	}

	ctx := c.Request().Context()
	if err := pc.productUsecase.DeleteProduct(ctx, id); err != nil {
		log.Errorw(ctx, "failed to delete product", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong!"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully!"})
}

func (pc *productController) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "product-api",
	})
}

func parseProductID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
