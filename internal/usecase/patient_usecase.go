package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-service/internal/converter"
	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
	"hospital-management-service/internal/domain/repository"
	"hospital-management-service/internal/infrastructure/cache"
	"hospital-management-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, adminID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, filter *entity.ActorFilter) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, adminID uuid.UUID, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, adminID uuid.UUID, patientID uuid.UUID) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
	listCache    cache.ListCache
	cacheTTL     time.Duration
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	listCache cache.ListCache,
	cacheTTL time.Duration,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
		listCache:    listCache,
		cacheTTL:     cacheTTL,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, adminID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	dateOfBirth, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	active := true
	user := &entity.User{
		RoleID:      entity.RoleIDPatient,
		Email:       req.Email,
		Password:    string(hashedPassword),
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dateOfBirth,
		Gender:      req.Gender,
		IsActive:    &active,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionPatientCreate, "user", user.ID.String(), user.Email); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(user), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.userRepo.FindByIDAndRole(u.db.WithContext(ctx), patientID, entity.RoleIDPatient)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// ListPatients serves the filtered patient list through the query cache.
// Entries expire by TTL; patient mutations tolerate that staleness window.
func (u *patientUsecase) ListPatients(ctx context.Context, filter *entity.ActorFilter) (*dto.PatientListResponse, error) {
	key := cache.PatientListKey(filter)

	patients, err := cache.Fetch(ctx, u.listCache, key, u.cacheTTL, func() ([]dto.PatientResponse, error) {
		users, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RoleIDPatient, filter)
		if err != nil {
			return nil, err
		}
		return converter.PatientsToResponses(users), nil
	})
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: patients,
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, adminID uuid.UUID, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.userRepo.FindByIDAndRole(tx, patientID, entity.RoleIDPatient)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldEmail := patient.Email

	if req.Email != "" {
		patient.Email = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		patient.Password = string(hashedPassword)
	}
	if req.FullName != "" {
		patient.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		patient.PhoneNumber = req.PhoneNumber
	}
	if req.DateOfBirth != "" {
		dateOfBirth, err := parseDateOfBirth(req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		patient.DateOfBirth = dateOfBirth
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.IsActive != nil {
		patient.IsActive = req.IsActive
	}

	if err := u.userRepo.Update(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionPatientUpdate, "user", patient.ID.String(), oldEmail, patient.Email); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, adminID uuid.UUID, patientID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.userRepo.FindByIDAndRole(tx, patientID, entity.RoleIDPatient)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if _, err := u.userRepo.Delete(tx, patientID); err != nil {
		if isForeignKeyError(err, "patient_id") {
			return ErrActorHasAppointments
		}
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionPatientDelete, "user", patientID.String(), patient.Email); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func parseDateOfBirth(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &parsed, nil
}
