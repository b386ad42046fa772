package staff

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// Mensajes de validación de trabajadores.
const (
	msgWorkerNameRequired      = "el nombre del trabajador es requerido"
	msgWorkerSalaryNotPositive = "el salario debe ser mayor que cero"
)

// StaffUseCase casos de uso de trabajadores: directorio, asistencia y nómina.
type StaffUseCase struct {
	workerRepo repository.WorkerRepository
	attRepo    repository.AttendanceRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(workerRepo repository.WorkerRepository, attRepo repository.AttendanceRepository) *StaffUseCase {
	return &StaffUseCase{workerRepo: workerRepo, attRepo: attRepo}
}

func validateWorker(name string, salary decimal.Decimal) error {
	if name == "" {
		return domain.NewValidation(msgWorkerNameRequired)
	}
	if !salary.GreaterThan(decimal.Zero) {
		return domain.NewValidation(msgWorkerSalaryNotPositive)
	}
	return nil
}

// CreateWorker registra un trabajador nuevo.
func (uc *StaffUseCase) CreateWorker(in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	if err := validateWorker(in.Name, in.Salary); err != nil {
		return nil, err
	}
	now := time.Now()
	worker := &entity.Worker{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Salary:    in.Salary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.workerRepo.Create(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// GetWorker obtiene un trabajador por ID. Devuelve (nil, nil) si no existe.
func (uc *StaffUseCase) GetWorker(id string) (*dto.WorkerResponse, error) {
	worker, err := uc.workerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}
	return toWorkerResponse(worker), nil
}

// UpdateWorker re-valida y aplica los campos mutables completos.
func (uc *StaffUseCase) UpdateWorker(id string, in dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	if err := validateWorker(in.Name, in.Salary); err != nil {
		return nil, err
	}
	worker, err := uc.workerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}
	worker.Name = in.Name
	worker.Phone = in.Phone
	worker.Salary = in.Salary
	worker.UpdatedAt = time.Now()
	if err := uc.workerRepo.Update(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// DeleteWorker elimina un trabajador por ID.
func (uc *StaffUseCase) DeleteWorker(id string) error {
	worker, err := uc.workerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if worker == nil {
		return domain.ErrNotFound
	}
	return uc.workerRepo.Delete(id)
}

// ListWorkers lista todos los trabajadores.
func (uc *StaffUseCase) ListWorkers() (*dto.WorkerListResponse, error) {
	list, err := uc.workerRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkerResponse(w))
	}
	return &dto.WorkerListResponse{Items: items, Total: len(items)}, nil
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		Phone:     w.Phone,
		Salary:    w.Salary,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
