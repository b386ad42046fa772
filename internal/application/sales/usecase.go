package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// Mensajes de validación de ventas, en el orden del contrato:
// cantidad no positiva → cantidad supera stock → precio no positivo.
const (
	msgQuantityNotPositive  = "la cantidad debe ser mayor que cero"
	msgQuantityExceedsStock = "la cantidad solicitada supera el stock disponible"
	msgPriceNotPositive     = "el precio de venta debe ser mayor que cero"
)

// RecordSaleUseCase registra una venta como unidad atómica: bloquea la fila de
// la pieza (SELECT FOR UPDATE), decrementa el stock e inserta el registro de
// venta con la ganancia calculada, todo en una sola transacción.
type RecordSaleUseCase struct {
	txRunner TxRunner
	partRepo repository.PartRepository
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner, partRepo repository.PartRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner, partRepo: partRepo}
}

// validateSale aplica las reglas de venta en orden fijo contra la pieza leída.
func validateSale(part *entity.Part, quantity int, sellingPrice decimal.Decimal) error {
	if quantity <= 0 {
		return domain.NewValidation(msgQuantityNotPositive)
	}
	if quantity > part.Quantity {
		return domain.NewValidation(msgQuantityExceedsStock)
	}
	if !sellingPrice.GreaterThan(decimal.Zero) {
		return domain.NewValidation(msgPriceNotPositive)
	}
	return nil
}

// RecordSale ejecuta la venta. Las fallas de validación no tocan el estado;
// cualquier falla de persistencia dentro de la tx revierte decremento e
// inserción juntos (nunca hay estado parcial observable).
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	part, err := uc.partRepo.GetByNumber(in.PartNumber)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	if err := validateSale(part, in.Quantity, in.SellingPrice); err != nil {
		return nil, err
	}

	now := time.Now()
	var created *entity.Sale

	err = uc.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Re-lee con bloqueo de fila: otra instancia pudo vender entre la
		// validación y el inicio de la tx.
		locked, err := partRepo.GetByNumberForUpdate(in.PartNumber)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > locked.Quantity {
			return domain.NewValidation(msgQuantityExceedsStock)
		}

		profit := in.SellingPrice.Sub(locked.CostPrice).Mul(decimal.NewFromInt(int64(in.Quantity)))

		if err := partRepo.UpdateQuantity(locked.ID, locked.Quantity-in.Quantity); err != nil {
			return err
		}
		sale := &entity.Sale{
			ID:           uuid.New().String(),
			PartID:       locked.ID,
			Quantity:     in.Quantity,
			SellingPrice: in.SellingPrice,
			SaleDate:     now,
			Profit:       profit,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		created = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(created), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		PartID:       s.PartID,
		Quantity:     s.Quantity,
		SellingPrice: s.SellingPrice,
		SaleDate:     s.SaleDate,
		Profit:       s.Profit,
	}
}
