package labtest

import (
	"context"
	"fmt"

	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/repository"
	"github.com/teleclinic/telemed-api/internal/service/patient"
)

type LabTestService interface {
	CreateLabTest(ctx context.Context, caller *model.User, req *model.CreateLabTestRequest) (string, error)
	ListLabTests(ctx context.Context, caller *model.User, patientID string) ([]*model.LabTest, error)
}

type Service struct {
	repo     repository.LabTestRepository
	patients patient.PatientService
}

func NewService(repo repository.LabTestRepository, patients patient.PatientService) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
	}
}

func (s *Service) CreateLabTest(ctx context.Context, caller *model.User, req *model.CreateLabTestRequest) (string, error) {
	labTest := &model.LabTest{
		PatientID: req.PatientID,
		TestName:  req.TestName,
		Result:    req.Result,
		Notes:     req.Notes,
	}

	id, err := s.repo.Create(ctx, labTest)
	if err != nil {
		return "", fmt.Errorf("failed to create lab test: %w", err)
	}
	return id, nil
}

func (s *Service) ListLabTests(ctx context.Context, caller *model.User, patientID string) ([]*model.LabTest, error) {
	if _, err := s.patients.Authorize(ctx, caller, patientID); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}
