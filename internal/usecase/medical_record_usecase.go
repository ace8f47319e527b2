package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"hospital-management-service/internal/converter"
	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
	"hospital-management-service/internal/domain/repository"
	"hospital-management-service/internal/domain/scope"
	"hospital-management-service/internal/infrastructure/cache"
	"hospital-management-service/internal/infrastructure/storage"
	"hospital-management-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicalRecordNotFound     = errors.New("medical record not found")
	ErrPermissionDenied          = errors.New("permission denied")
	ErrRecordParticipantMismatch = errors.New("doctor or patient does not match the appointment")
)

type MedicalRecordUsecase interface {
	CreateRecord(ctx context.Context, decision scope.Decision, actorID uuid.UUID, appointmentID uuid.UUID, req *dto.CreateMedicalRecordRequest, reportName string, report io.Reader) (*dto.MedicalRecordResponse, error)
	GetRecord(ctx context.Context, decision scope.Decision, recordID uuid.UUID) (*dto.MedicalRecordResponse, error)
	ListRecords(ctx context.Context, decision scope.Decision, appointmentID uuid.UUID) (*dto.MedicalRecordListResponse, error)
	UpdateRecord(ctx context.Context, decision scope.Decision, actorID uuid.UUID, recordID uuid.UUID, req *dto.UpdateMedicalRecordRequest, reportName string, report io.Reader) (*dto.MedicalRecordResponse, error)
	DeleteRecord(ctx context.Context, decision scope.Decision, actorID uuid.UUID, recordID uuid.UUID) error
}

type medicalRecordUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	recordRepo      repository.MedicalRecordRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	fileStore       storage.FileStore
	listCache       cache.ListCache
	cacheTTL        time.Duration
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	fileStore storage.FileStore,
	listCache cache.ListCache,
	cacheTTL time.Duration,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:              db,
		log:             log,
		recordRepo:      recordRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		fileStore:       fileStore,
		listCache:       listCache,
		cacheTTL:        cacheTTL,
	}
}

func (u *medicalRecordUsecase) CreateRecord(ctx context.Context, decision scope.Decision, actorID uuid.UUID, appointmentID uuid.UUID, req *dto.CreateMedicalRecordRequest, reportName string, report io.Reader) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !decision.AllowsDoctor(appointment.DoctorID) {
		return nil, ErrPermissionDenied
	}
	if err := validateRecordParticipants(appointment, req.DoctorID, req.PatientID); err != nil {
		return nil, err
	}

	record := &entity.MedicalRecord{
		AppointmentID: appointment.ID,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Notes:         req.Notes,
	}

	if report != nil {
		path, err := u.fileStore.Save(ctx, reportName, report)
		if err != nil {
			u.log.Warnf("Failed to store report file: %+v", err)
			return nil, err
		}
		record.ReportPath = path
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		u.removeFile(ctx, record.ReportPath)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionRecordCreate, "medical_record", record.ID.String(), record.Diagnosis); err != nil {
		u.removeFile(ctx, record.ReportPath)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		u.removeFile(ctx, record.ReportPath)
		return nil, err
	}

	u.invalidateRecordList(ctx, appointment)

	record.Appointment = *appointment
	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetRecord(ctx context.Context, decision scope.Decision, recordID uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	if !decision.AllowsDoctor(record.Appointment.DoctorID) {
		return nil, ErrPermissionDenied
	}

	return converter.MedicalRecordToResponse(record), nil
}

// ListRecords returns the records of one appointment through the query
// cache. The access check runs on every call; only the row fetch is cached.
func (u *medicalRecordUsecase) ListRecords(ctx context.Context, decision scope.Decision, appointmentID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !decision.AllowsDoctor(appointment.DoctorID) {
		return nil, ErrPermissionDenied
	}

	key := cache.RecordListKey(appointment.ID, appointment.PatientID, appointment.DoctorID)

	records, err := cache.Fetch(ctx, u.listCache, key, u.cacheTTL, func() ([]dto.MedicalRecordResponse, error) {
		rows, err := u.recordRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
		if err != nil {
			return nil, err
		}
		return converter.MedicalRecordsToResponses(rows), nil
	})
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: records,
		Total:   len(records),
	}, nil
}

func (u *medicalRecordUsecase) UpdateRecord(ctx context.Context, decision scope.Decision, actorID uuid.UUID, recordID uuid.UUID, req *dto.UpdateMedicalRecordRequest, reportName string, report io.Reader) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	if !decision.AllowsDoctor(record.Appointment.DoctorID) {
		return nil, ErrPermissionDenied
	}

	oldDiagnosis := record.Diagnosis
	oldReportPath := record.ReportPath

	if req.Diagnosis != "" {
		record.Diagnosis = req.Diagnosis
	}
	if req.Treatment != "" {
		record.Treatment = req.Treatment
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}

	newReportPath := ""
	if report != nil {
		newReportPath, err = u.fileStore.Save(ctx, reportName, report)
		if err != nil {
			u.log.Warnf("Failed to store report file: %+v", err)
			return nil, err
		}
		record.ReportPath = newReportPath
	}

	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update medical record: %+v", err)
		u.removeFile(ctx, newReportPath)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionRecordUpdate, "medical_record", record.ID.String(), oldDiagnosis, record.Diagnosis); err != nil {
		u.removeFile(ctx, newReportPath)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		u.removeFile(ctx, newReportPath)
		return nil, err
	}

	if newReportPath != "" && oldReportPath != "" {
		u.removeFile(ctx, oldReportPath)
	}
	u.invalidateRecordList(ctx, &record.Appointment)

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) DeleteRecord(ctx context.Context, decision scope.Decision, actorID uuid.UUID, recordID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return err
	}
	if record == nil {
		return ErrMedicalRecordNotFound
	}
	if !decision.AllowsDoctor(record.Appointment.DoctorID) {
		return ErrPermissionDenied
	}

	if _, err := u.recordRepo.Delete(tx, recordID); err != nil {
		u.log.Warnf("Failed to delete medical record: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionRecordDelete, "medical_record", recordID.String(), record.Diagnosis); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.removeFile(ctx, record.ReportPath)
	u.invalidateRecordList(ctx, &record.Appointment)

	return nil
}

// invalidateRecordList drops exactly the cached list of this appointment's
// records. Other cached lists keep their TTL.
func (u *medicalRecordUsecase) invalidateRecordList(ctx context.Context, appointment *entity.Appointment) {
	key := cache.RecordListKey(appointment.ID, appointment.PatientID, appointment.DoctorID)
	if err := u.listCache.Invalidate(ctx, key); err != nil {
		u.log.Warnf("Failed to invalidate record list cache: %+v", err)
	}
}

func (u *medicalRecordUsecase) removeFile(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := u.fileStore.Remove(ctx, path); err != nil {
		u.log.Warnf("Failed to remove report file: %+v", err)
	}
}

// validateRecordParticipants cross-checks the optional doctor/patient form
// values against the appointment's own participants. A record can only ever
// describe the appointment it belongs to.
func validateRecordParticipants(appointment *entity.Appointment, doctorID, patientID string) error {
	if doctorID != "" {
		id, err := uuid.Parse(doctorID)
		if err != nil || id != appointment.DoctorID {
			return ErrRecordParticipantMismatch
		}
	}
	if patientID != "" {
		id, err := uuid.Parse(patientID)
		if err != nil || id != appointment.PatientID {
			return ErrRecordParticipantMismatch
		}
	}
	return nil
}
