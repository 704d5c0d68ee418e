package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/repository"
	"github.com/teleclinic/telemed-api/pkg/apperror"
)

type PatientService interface {
	CreatePatient(ctx context.Context, caller *model.User, req *model.CreatePatientRequest) (string, error)
	ListPatients(ctx context.Context, caller *model.User) ([]*model.Patient, error)
	// Authorize checks that the patient exists and that the caller may
	// read records rooted at it: owners and doctors pass, everyone
	// else is rejected.
	Authorize(ctx context.Context, caller *model.User, patientID string) (*model.Patient, error)
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, caller *model.User, req *model.CreatePatientRequest) (string, error) {
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	patient := &model.Patient{
		UserID:        caller.ID,
		Name:          req.Name,
		Age:           req.Age,
		Gender:        req.Gender,
		BloodPressure: req.BloodPressure,
		HeartRate:     req.HeartRate,
		Temperature:   req.Temperature,
		Priority:      priority,
	}

	id, err := s.repo.Create(ctx, patient)
	if err != nil {
		return "", fmt.Errorf("failed to create patient: %w", err)
	}
	return id, nil
}

func (s *Service) ListPatients(ctx context.Context, caller *model.User) ([]*model.Patient, error) {
	if caller.Role == model.RoleDoctor {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, caller.ID)
}

func (s *Service) Authorize(ctx context.Context, caller *model.User, patientID string) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("patient")
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if patient.UserID != caller.ID && caller.Role != model.RoleDoctor {
		return nil, apperror.Forbidden("not authorized to view this patient's records")
	}
	return patient, nil
}
