package consultation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/pkg/apperror"
)

type mockConsultationRepo struct {
	mock.Mock
}

func (m *mockConsultationRepo) Create(ctx context.Context, consultation *model.Consultation) (string, error) {
	args := m.Called(ctx, consultation)
	return args.String(0), args.Error(1)
}

func (m *mockConsultationRepo) ListByPatient(ctx context.Context, patientID string) ([]*model.Consultation, error) {
	args := m.Called(ctx, patientID)
	if c := args.Get(0); c != nil {
		return c.([]*model.Consultation), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPatientService struct {
	mock.Mock
}

func (m *mockPatientService) CreatePatient(ctx context.Context, caller *model.User, req *model.CreatePatientRequest) (string, error) {
	args := m.Called(ctx, caller, req)
	return args.String(0), args.Error(1)
}

func (m *mockPatientService) ListPatients(ctx context.Context, caller *model.User) ([]*model.Patient, error) {
	args := m.Called(ctx, caller)
	if p := args.Get(0); p != nil {
		return p.([]*model.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPatientService) Authorize(ctx context.Context, caller *model.User, patientID string) (*model.Patient, error) {
	args := m.Called(ctx, caller, patientID)
	if p := args.Get(0); p != nil {
		return p.(*model.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

var doctor = &model.User{ID: "doc-1", Role: model.RoleDoctor}

func TestCreateConsultationStampsDoctorWithoutReferentialCheck(t *testing.T) {
	repo := new(mockConsultationRepo)
	patients := new(mockPatientService)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Consultation) bool {
		return c.DoctorID == "doc-1" && c.PatientID == "ghost-patient"
	})).Return("con-1", nil)

	svc := NewService(repo, patients)
	id, err := svc.CreateConsultation(context.Background(), doctor, &model.CreateConsultationRequest{
		PatientID:    "ghost-patient",
		Diagnosis:    "flu",
		Prescription: "rest",
	})

	require.NoError(t, err)
	assert.Equal(t, "con-1", id)
	// Writes are lenient: existence is enforced at read time only.
	patients.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything, mock.Anything)
}

func TestListConsultationsMissingPatient(t *testing.T) {
	repo := new(mockConsultationRepo)
	patients := new(mockPatientService)
	patients.On("Authorize", mock.Anything, doctor, "missing").Return(nil, apperror.NotFound("patient"))

	svc := NewService(repo, patients)
	_, err := svc.ListConsultations(context.Background(), doctor, "missing")

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	repo.AssertNotCalled(t, "ListByPatient", mock.Anything, mock.Anything)
}

func TestListConsultationsForbidden(t *testing.T) {
	repo := new(mockConsultationRepo)
	patients := new(mockPatientService)
	stranger := &model.User{ID: "user-b", Role: model.RolePatient}
	patients.On("Authorize", mock.Anything, stranger, "pat-1").
		Return(nil, apperror.Forbidden("not authorized to view this patient's records"))

	svc := NewService(repo, patients)
	_, err := svc.ListConsultations(context.Background(), stranger, "pat-1")

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestListConsultationsAuthorized(t *testing.T) {
	repo := new(mockConsultationRepo)
	patients := new(mockPatientService)
	owner := &model.User{ID: "user-a", Role: model.RolePatient}

	patients.On("Authorize", mock.Anything, owner, "pat-1").
		Return(&model.Patient{ID: "pat-1", UserID: "user-a"}, nil)
	repo.On("ListByPatient", mock.Anything, "pat-1").
		Return([]*model.Consultation{{ID: "con-1", PatientID: "pat-1"}}, nil)

	svc := NewService(repo, patients)
	consultations, err := svc.ListConsultations(context.Background(), owner, "pat-1")

	require.NoError(t, err)
	assert.Len(t, consultations, 1)
}
