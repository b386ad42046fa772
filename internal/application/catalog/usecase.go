package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// DefaultLowStockThreshold límite de reposición cuando el caller no indica uno.
const DefaultLowStockThreshold = 5

// CatalogUseCase casos de uso CRUD del catálogo de piezas. La cantidad solo la
// muta el registrador de ventas; aquí se fija al crear/editar la pieza completa.
type CatalogUseCase struct {
	partRepo repository.PartRepository
	saleRepo repository.SaleRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(partRepo repository.PartRepository, saleRepo repository.SaleRepository) *CatalogUseCase {
	return &CatalogUseCase{partRepo: partRepo, saleRepo: saleRepo}
}

// Create valida y crea una pieza nueva. Rechaza números de pieza repetidos.
func (uc *CatalogUseCase) Create(in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if err := ValidatePart(in.PartNumber, in.Name, in.Quantity, in.CostPrice, in.SellingPrice); err != nil {
		return nil, err
	}
	existing, err := uc.partRepo.GetByNumber(in.PartNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	part := &entity.Part{
		ID:           uuid.New().String(),
		PartNumber:   in.PartNumber,
		Name:         in.Name,
		Type:         in.Type,
		Quantity:     in.Quantity,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.partRepo.Create(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByNumber obtiene una pieza por su número. Devuelve (nil, nil) si no existe.
func (uc *CatalogUseCase) GetByNumber(partNumber string) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByNumber(partNumber)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	return toPartResponse(part), nil
}

// Search busca por nombre o número (substring, case-insensitive).
// Término vacío devuelve todo el catálogo; sin coincidencias, lista vacía.
func (uc *CatalogUseCase) Search(term string) (*dto.PartListResponse, error) {
	list, err := uc.partRepo.Search(term)
	if err != nil {
		return nil, err
	}
	return toPartListResponse(list), nil
}

// ListByType lista las piezas de una categoría.
func (uc *CatalogUseCase) ListByType(partType string) (*dto.PartListResponse, error) {
	list, err := uc.partRepo.ListByType(partType)
	if err != nil {
		return nil, err
	}
	return toPartListResponse(list), nil
}

// Update re-valida todos los campos mutables y los aplica completos.
// El part_number es inmutable. Devuelve (nil, nil) si la pieza no existe.
func (uc *CatalogUseCase) Update(partNumber string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	if err := ValidatePart(partNumber, in.Name, in.Quantity, in.CostPrice, in.SellingPrice); err != nil {
		return nil, err
	}
	part, err := uc.partRepo.GetByNumber(partNumber)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	part.Name = in.Name
	part.Type = in.Type
	part.Quantity = in.Quantity
	part.CostPrice = in.CostPrice
	part.SellingPrice = in.SellingPrice
	part.UpdatedAt = time.Now()
	if err := uc.partRepo.Update(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Delete elimina una pieza sin ventas asociadas. Si existen ventas devuelve
// ErrReferenced: el historial de ganancias se preserva siempre.
func (uc *CatalogUseCase) Delete(partNumber string) error {
	part, err := uc.partRepo.GetByNumber(partNumber)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	count, err := uc.saleRepo.CountByPart(part.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrReferenced
	}
	return uc.partRepo.Delete(part.ID)
}

// LowStock lista las piezas con cantidad <= threshold. Cero es un umbral
// válido (piezas agotadas); solo un valor negativo cae al umbral por defecto.
func (uc *CatalogUseCase) LowStock(threshold int) (*dto.PartListResponse, error) {
	if threshold < 0 {
		threshold = DefaultLowStockThreshold
	}
	list, err := uc.partRepo.LowStock(threshold)
	if err != nil {
		return nil, err
	}
	return toPartListResponse(list), nil
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	return &dto.PartResponse{
		ID:           p.ID,
		PartNumber:   p.PartNumber,
		Name:         p.Name,
		Type:         p.Type,
		Quantity:     p.Quantity,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPartListResponse(list []*entity.Part) *dto.PartListResponse {
	items := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartResponse(p))
	}
	return &dto.PartListResponse{Items: items, Total: len(items)}
}
