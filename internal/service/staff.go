package service

import (
	"errors"
	"fmt"
	"time"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// certificationExpiringWindow is how far ahead of the expiry date a
// certification is reported as expiring soon.
const certificationExpiringWindow = 30 * 24 * time.Hour

// StaffService handles business logic for staff members and certifications
type StaffService struct {
	repo      repository.StaffRepositoryInterface
	validator *validator.Validate
}

// NewStaffService creates a new staff service
func NewStaffService(repo repository.StaffRepositoryInterface, validator *validator.Validate) *StaffService {
	return &StaffService{repo: repo, validator: validator}
}

// CreateStaffMemberRequest represents the request to create a staff member
type CreateStaffMemberRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Role           string `json:"role" validate:"max=100"`
	Specialization string `json:"specialization" validate:"max=100"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"max=50"`
	AvatarURL      string `json:"avatar_url" validate:"omitempty,max=500"`
}

// UpdateStaffMemberRequest represents a partial update to a staff member
type UpdateStaffMemberRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=100"`
	Role           *string `json:"role" validate:"omitempty,max=100"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,max=50"`
	AvatarURL      *string `json:"avatar_url" validate:"omitempty,max=500"`
}

// CreateCertificationRequest represents the request to add a certification
type CreateCertificationRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=200"`
	ObtainedDate time.Time  `json:"obtained_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`
}

// UpdateCertificationRequest represents a partial certification update
type UpdateCertificationRequest struct {
	Name         *string    `json:"name" validate:"omitempty,min=1,max=200"`
	ObtainedDate *time.Time `json:"obtained_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`
}

// CertificationResponse includes the status derived from the expiry date
type CertificationResponse struct {
	ID            uuid.UUID                  `json:"id"`
	StaffMemberID uuid.UUID                  `json:"staff_member_id"`
	Name          string                     `json:"name"`
	ObtainedDate  time.Time                  `json:"obtained_date"`
	ExpiryDate    *time.Time                 `json:"expiry_date"`
	Status        models.CertificationStatus `json:"status"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// StaffMemberResponse represents the response for staff operations
type StaffMemberResponse struct {
	ID             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	Role           string                  `json:"role"`
	Specialization string                  `json:"specialization"`
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone"`
	AvatarURL      string                  `json:"avatar_url"`
	Certifications []CertificationResponse `json:"certifications"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// StaffListResponse represents a paginated list of staff members
type StaffListResponse struct {
	Members  []StaffMemberResponse `json:"members"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// Create creates a new staff member
func (s *StaffService) Create(req *CreateStaffMemberRequest) (*StaffMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member := &models.StaffMember{
		Name:           req.Name,
		Role:           req.Role,
		Specialization: req.Specialization,
		Email:          req.Email,
		Phone:          req.Phone,
		AvatarURL:      req.AvatarURL,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	return staffToResponse(member, time.Now().UTC()), nil
}

// GetByID retrieves a staff member with derived certification statuses
func (s *StaffService) GetByID(id uuid.UUID) (*StaffMemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffMemberNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return staffToResponse(member, time.Now().UTC()), nil
}

// GetAll retrieves staff members with pagination
func (s *StaffService) GetAll(page, pageSize int) (*StaffListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	members, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff members: %w", err)
	}

	now := time.Now().UTC()
	responses := make([]StaffMemberResponse, len(members))
	for i := range members {
		responses[i] = *staffToResponse(&members[i], now)
	}

	return &StaffListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a staff member
func (s *StaffService) Update(id uuid.UUID, req *UpdateStaffMemberRequest) (*StaffMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffMemberNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Specialization != nil {
		updates["specialization"] = *req.Specialization
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update staff member: %w", err)
		}
	}

	return s.GetByID(id)
}

// Delete removes a staff member and, by cascade, their certifications
func (s *StaffService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStaffMemberNotFound
		}
		return fmt.Errorf("failed to get staff member: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}

// AddCertification adds a certification to a staff member
func (s *StaffService) AddCertification(staffID uuid.UUID, req *CreateCertificationRequest) (*CertificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(staffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffMemberNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}

	cert := &models.Certification{
		StaffMemberID: staffID,
		Name:          req.Name,
		ObtainedDate:  req.ObtainedDate,
		ExpiryDate:    req.ExpiryDate,
	}

	if err := s.repo.AddCertification(cert); err != nil {
		return nil, fmt.Errorf("failed to add certification: %w", err)
	}

	return certToResponse(cert, time.Now().UTC()), nil
}

// UpdateCertification applies a partial update to a certification
func (s *StaffService) UpdateCertification(id uuid.UUID, req *UpdateCertificationRequest) (*CertificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetCertificationByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCertificationNotFound
		}
		return nil, fmt.Errorf("failed to get certification: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ObtainedDate != nil {
		updates["obtained_date"] = *req.ObtainedDate
	}
	if req.ExpiryDate != nil {
		updates["expiry_date"] = *req.ExpiryDate
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateCertification(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update certification: %w", err)
		}
	}

	cert, err := s.repo.GetCertificationByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload certification: %w", err)
	}
	return certToResponse(cert, time.Now().UTC()), nil
}

// DeleteCertification removes a certification
func (s *StaffService) DeleteCertification(id uuid.UUID) error {
	if _, err := s.repo.GetCertificationByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCertificationNotFound
		}
		return fmt.Errorf("failed to get certification: %w", err)
	}
	if err := s.repo.DeleteCertification(id); err != nil {
		return fmt.Errorf("failed to delete certification: %w", err)
	}
	return nil
}

func staffToResponse(member *models.StaffMember, now time.Time) *StaffMemberResponse {
	certs := make([]CertificationResponse, len(member.Certifications))
	for i := range member.Certifications {
		certs[i] = *certToResponse(&member.Certifications[i], now)
	}
	return &StaffMemberResponse{
		ID:             member.ID,
		Name:           member.Name,
		Role:           member.Role,
		Specialization: member.Specialization,
		Email:          member.Email,
		Phone:          member.Phone,
		AvatarURL:      member.AvatarURL,
		Certifications: certs,
		CreatedAt:      member.CreatedAt,
		UpdatedAt:      member.UpdatedAt,
	}
}

func certToResponse(cert *models.Certification, now time.Time) *CertificationResponse {
	return &CertificationResponse{
		ID:            cert.ID,
		StaffMemberID: cert.StaffMemberID,
		Name:          cert.Name,
		ObtainedDate:  cert.ObtainedDate,
		ExpiryDate:    cert.ExpiryDate,
		Status:        cert.StatusAt(now, certificationExpiringWindow),
		CreatedAt:     cert.CreatedAt,
		UpdatedAt:     cert.UpdatedAt,
	}
}
