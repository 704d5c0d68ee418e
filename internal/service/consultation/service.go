package consultation

import (
	"context"
	"fmt"

	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/repository"
	"github.com/teleclinic/telemed-api/internal/service/patient"
)

type ConsultationService interface {
	// CreateConsultation writes without checking that the patient id
	// exists; reads enforce it instead.
	CreateConsultation(ctx context.Context, caller *model.User, req *model.CreateConsultationRequest) (string, error)
	ListConsultations(ctx context.Context, caller *model.User, patientID string) ([]*model.Consultation, error)
}

type Service struct {
	repo     repository.ConsultationRepository
	patients patient.PatientService
}

func NewService(repo repository.ConsultationRepository, patients patient.PatientService) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
	}
}

func (s *Service) CreateConsultation(ctx context.Context, caller *model.User, req *model.CreateConsultationRequest) (string, error) {
	consultation := &model.Consultation{
		PatientID:    req.PatientID,
		DoctorID:     caller.ID,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		Notes:        req.Notes,
	}

	id, err := s.repo.Create(ctx, consultation)
	if err != nil {
		return "", fmt.Errorf("failed to create consultation: %w", err)
	}
	return id, nil
}

func (s *Service) ListConsultations(ctx context.Context, caller *model.User, patientID string) ([]*model.Consultation, error) {
	if _, err := s.patients.Authorize(ctx, caller, patientID); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}
