package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Repuestos-api/internal/application/catalog"
	"github.com/jhoicas/Repuestos-api/internal/application/dto"
)

// PartHandler maneja las peticiones HTTP del catálogo de piezas.
type PartHandler struct {
	uc *catalog.CatalogUseCase
}

// NewPartHandler construye el handler.
func NewPartHandler(uc *catalog.CatalogUseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pieza
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartRequest  true  "Datos de la pieza"
// @Success      201   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search godoc
// @Summary      Buscar piezas por nombre o número; sin término devuelve todo el catálogo
// @Tags         parts
// @Produce      json
// @Param        q     query  string  false  "Término de búsqueda"
// @Param        type  query  string  false  "Filtrar por categoría"
// @Success      200   {object}  dto.PartListResponse
// @Router       /api/parts [get]
func (h *PartHandler) Search(c *fiber.Ctx) error {
	if partType := c.Query("type"); partType != "" {
		out, err := h.uc.ListByType(partType)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Piezas en o bajo el límite de reposición (0 lista las agotadas)
// @Tags         parts
// @Produce      json
// @Param        threshold  query  int  false  "Límite de reposición"  default(5)
// @Success      200  {object}  dto.PartListResponse
// @Router       /api/parts/low-stock [get]
func (h *PartHandler) LowStock(c *fiber.Ctx) error {
	// threshold ausente usa el umbral por defecto; 0 explícito es válido.
	out, err := h.uc.LowStock(c.QueryInt("threshold", catalog.DefaultLowStockThreshold))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByNumber godoc
// @Summary      Obtener pieza por número
// @Tags         parts
// @Produce      json
// @Param        part_number  path  string  true  "Número de pieza"
// @Success      200  {object}  dto.PartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{part_number} [get]
func (h *PartHandler) GetByNumber(c *fiber.Ctx) error {
	out, err := h.uc.GetByNumber(c.Params("part_number"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pieza no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pieza (el número de pieza es inmutable)
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        part_number  path  string  true  "Número de pieza"
// @Param        body  body  dto.UpdatePartRequest  true  "Campos mutables"
// @Success      200   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts/{part_number} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("part_number"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pieza no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pieza sin ventas asociadas
// @Tags         parts
// @Produce      json
// @Param        part_number  path  string  true  "Número de pieza"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/parts/{part_number} [delete]
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("part_number")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
