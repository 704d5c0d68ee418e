package message

import (
	"context"
	"fmt"

	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/repository"
	"github.com/teleclinic/telemed-api/internal/service/patient"
)

type MessageService interface {
	CreateMessage(ctx context.Context, caller *model.User, req *model.CreateMessageRequest) (string, error)
	ListMessages(ctx context.Context, caller *model.User, patientID string) ([]*model.Message, error)
}

type Service struct {
	repo     repository.MessageRepository
	patients patient.PatientService
}

func NewService(repo repository.MessageRepository, patients patient.PatientService) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
	}
}

func (s *Service) CreateMessage(ctx context.Context, caller *model.User, req *model.CreateMessageRequest) (string, error) {
	message := &model.Message{
		PatientID: req.PatientID,
		SenderID:  caller.ID,
		Content:   req.Content,
		IsUrgent:  req.IsUrgent,
	}

	id, err := s.repo.Create(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}
	return id, nil
}

func (s *Service) ListMessages(ctx context.Context, caller *model.User, patientID string) ([]*model.Message, error) {
	if _, err := s.patients.Authorize(ctx, caller, patientID); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}
