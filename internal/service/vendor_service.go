package service

import (
	"context"
	"encoding/json"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperror"

	"gorm.io/datatypes"
)

// --- DTOs ---

type CreateVendorRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	GSTIN   string `json:"gstin"`
}

type UpdateVendorRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	GSTIN   string `json:"gstin"`
}

type UpdateVendorStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AppendCommunicationRequest wraps one free-form log entry. The entry is
// stored as-is; the service never interprets its shape.
type AppendCommunicationRequest struct {
	Log json.RawMessage `json:"log" binding:"required"`
}

// --- Interface ---

type VendorService interface {
	ListVendors(ctx context.Context) ([]model.Vendor, error)
	CreateVendor(ctx context.Context, req CreateVendorRequest) (*model.Vendor, error)
	UpdateVendor(ctx context.Context, id uint, req UpdateVendorRequest) (*model.Vendor, error)
	DeleteVendor(ctx context.Context, id uint) error
	UpdateVendorStatus(ctx context.Context, id uint, req UpdateVendorStatusRequest) (*model.Vendor, error)
	AppendCommunication(ctx context.Context, id uint, req AppendCommunicationRequest) (*model.Vendor, error)
}

type vendorService struct {
	vendorRepo repository.VendorRepository
}

func NewVendorService(vendorRepo repository.VendorRepository) VendorService {
	return &vendorService{vendorRepo: vendorRepo}
}

// --- Implementation ---

func (s *vendorService) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	vendors, err := s.vendorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vendors: %w", err)
	}
	return vendors, nil
}

// CreateVendor stores a new vendor. The approval status is forced to
// "pending" regardless of caller input.
func (s *vendorService) CreateVendor(ctx context.Context, req CreateVendorRequest) (*model.Vendor, error) {
	vendor := &model.Vendor{
		Name:              req.Name,
		Address:           req.Address,
		Phone:             req.Phone,
		Email:             req.Email,
		GSTIN:             req.GSTIN,
		Status:            model.VendorPending,
		CommunicationLogs: datatypes.JSON("[]"),
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return vendor, nil
}

// UpdateVendor replaces the vendor's contact fields. Status and the
// communication log are only mutated through their dedicated endpoints.
func (s *vendorService) UpdateVendor(ctx context.Context, id uint, req UpdateVendorRequest) (*model.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vendor.Name = req.Name
	vendor.Address = req.Address
	vendor.Phone = req.Phone
	vendor.Email = req.Email
	vendor.GSTIN = req.GSTIN

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}
	return vendor, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, id uint) error {
	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return nil
}

func (s *vendorService) UpdateVendorStatus(ctx context.Context, id uint, req UpdateVendorStatusRequest) (*model.Vendor, error) {
	status, err := model.ParseVendorStatus(req.Status)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !vendor.Status.CanTransition(status) {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("cannot transition vendor status from %q to %q", vendor.Status, status))
	}

	if err := s.vendorRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update vendor status: %w", err)
	}
	return s.vendorRepo.FindByID(ctx, id)
}

func (s *vendorService) AppendCommunication(ctx context.Context, id uint, req AppendCommunicationRequest) (*model.Vendor, error) {
	if err := s.vendorRepo.AppendCommunication(ctx, id, datatypes.JSON(req.Log)); err != nil {
		return nil, err
	}
	return s.vendorRepo.FindByID(ctx, id)
}
