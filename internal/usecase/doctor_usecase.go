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
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrActorHasAppointments = errors.New("user still has appointments")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, adminID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, filter *entity.ActorFilter) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
	listCache    cache.ListCache
	cacheTTL     time.Duration
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	listCache cache.ListCache,
	cacheTTL time.Duration,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
		listCache:    listCache,
		cacheTTL:     cacheTTL,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, adminID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		RoleID:         entity.RoleIDDoctor,
		Email:          req.Email,
		Password:       string(hashedPassword),
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		Specialization: req.Specialization,
		Gender:         req.Gender,
		IsActive:       &active,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionDoctorCreate, "user", user.ID.String(), user.Email); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(user), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.userRepo.FindByIDAndRole(u.db.WithContext(ctx), doctorID, entity.RoleIDDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

// ListDoctors serves the filtered doctor list through the query cache.
// Entries expire by TTL; doctor mutations tolerate that staleness window.
func (u *doctorUsecase) ListDoctors(ctx context.Context, filter *entity.ActorFilter) (*dto.DoctorListResponse, error) {
	key := cache.DoctorListKey(filter)

	doctors, err := cache.Fetch(ctx, u.listCache, key, u.cacheTTL, func() ([]dto.DoctorResponse, error) {
		users, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RoleIDDoctor, filter)
		if err != nil {
			return nil, err
		}
		return converter.DoctorsToResponses(users), nil
	})
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.userRepo.FindByIDAndRole(tx, doctorID, entity.RoleIDDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldEmail := doctor.Email

	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		doctor.Password = string(hashedPassword)
	}
	if req.FullName != "" {
		doctor.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		doctor.PhoneNumber = req.PhoneNumber
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.Gender != "" {
		doctor.Gender = req.Gender
	}
	if req.IsActive != nil {
		doctor.IsActive = req.IsActive
	}

	if err := u.userRepo.Update(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionDoctorUpdate, "user", doctor.ID.String(), oldEmail, doctor.Email); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.userRepo.FindByIDAndRole(tx, doctorID, entity.RoleIDDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if _, err := u.userRepo.Delete(tx, doctorID); err != nil {
		if isForeignKeyError(err, "doctor_id") {
			return ErrActorHasAppointments
		}
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionDoctorDelete, "user", doctorID.String(), doctor.Email); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
