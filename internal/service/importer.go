package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"maintenance-portal-backend/internal/database/models"
	apperrors "maintenance-portal-backend/internal/errors"
	"maintenance-portal-backend/internal/logger"
	"maintenance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// importHeader is the fixed column layout shared by CSV and XLSX
// imports, the export and the downloadable template.
var importHeader = []string{
	"Name", "Model", "Manufacturer", "Supplier", "Serial Number",
	"Inventory Number", "Description", "UF", "Status", "Loan",
	"Building", "Service", "Location", "Groups",
}

// DuplicateResolution selects how rows colliding with existing serial
// numbers are handled.
type DuplicateResolution string

// Duplicate resolutions
const (
	ResolutionImportAll DuplicateResolution = "import-all"
	ResolutionSkip      DuplicateResolution = "skip-duplicates"
	ResolutionReplace   DuplicateResolution = "replace-existing"
)

// IsValid reports whether the resolution is one of the supported values
func (r DuplicateResolution) IsValid() bool {
	switch r {
	case ResolutionImportAll, ResolutionSkip, ResolutionReplace:
		return true
	}
	return false
}

// ImportError locates one rejected value in the uploaded file
type ImportError struct {
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ImportResult summarizes an import run. When Errors is non-empty no
// row was written at all.
type ImportResult struct {
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Replaced int           `json:"replaced"`
	Errors   []ImportError `json:"errors"`
}

// parsedRow is one validated file row ready for insertion
type parsedRow struct {
	line       int
	equipment  models.Equipment
	groupIDs   []uuid.UUID
	serial     string
	duplicates bool
}

// ImporterService loads equipment batches from CSV or XLSX files.
// Validation is all-or-nothing: a single bad value rejects the whole
// batch and nothing is written.
type ImporterService struct {
	equipmentRepo repository.EquipmentRepositoryInterface
	groupRepo     repository.EquipmentGroupRepositoryInterface
	buildingRepo  repository.BuildingRepositoryInterface
	serviceRepo   repository.FacilityServiceRepositoryInterface
	locationRepo  repository.LocationRepositoryInterface
	membership    *MembershipService
	log           *logger.Logger
}

// NewImporterService creates a new importer service
func NewImporterService(
	equipmentRepo repository.EquipmentRepositoryInterface,
	groupRepo repository.EquipmentGroupRepositoryInterface,
	buildingRepo repository.BuildingRepositoryInterface,
	serviceRepo repository.FacilityServiceRepositoryInterface,
	locationRepo repository.LocationRepositoryInterface,
	membership *MembershipService,
	log *logger.Logger,
) *ImporterService {
	return &ImporterService{
		equipmentRepo: equipmentRepo,
		groupRepo:     groupRepo,
		buildingRepo:  buildingRepo,
		serviceRepo:   serviceRepo,
		locationRepo:  locationRepo,
		membership:    membership,
		log:           log,
	}
}

// Import reads the uploaded file, dispatching on its extension
func (s *ImporterService) Import(filename string, r io.Reader, resolution DuplicateResolution) (*ImportResult, error) {
	if !resolution.IsValid() {
		return nil, apperrors.NewValidationError("resolution", fmt.Sprintf("unknown duplicate resolution %q", resolution))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return s.ImportCSV(r, resolution)
	case ".xlsx":
		return s.ImportXLSX(r, resolution)
	default:
		return nil, apperrors.NewValidationError("file", "unsupported file type, expected .csv or .xlsx")
	}
}

// ImportCSV imports a CSV file. Quoted fields containing commas are
// handled by the reader.
func (s *ImporterService) ImportCSV(r io.Reader, resolution DuplicateResolution) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewValidationError("file", fmt.Sprintf("malformed CSV: %v", err))
		}
		rows = append(rows, record)
	}

	return s.importRows(rows, resolution)
}

// ImportXLSX imports the first sheet of an XLSX workbook
func (s *ImporterService) ImportXLSX(r io.Reader, resolution DuplicateResolution) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewValidationError("file", fmt.Sprintf("malformed XLSX: %v", err))
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return s.importRows(rows, resolution)
}

func (s *ImporterService) importRows(rows [][]string, resolution DuplicateResolution) (*ImportResult, error) {
	result := &ImportResult{Errors: []ImportError{}}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, ImportError{
			Line: 1, Field: "header", Message: "file is empty",
		})
		return result, apperrors.ErrImportRejected
	}

	if err := checkHeader(rows[0]); err != nil {
		result.Errors = append(result.Errors, ImportError{
			Line: 1, Field: "header", Value: strings.Join(rows[0], ","), Message: err.Error(),
		})
		return result, apperrors.ErrImportRejected
	}

	parsed := make([]parsedRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		if isBlankRow(row) {
			continue
		}
		p, errs := s.parseRow(line, row)
		if len(errs) > 0 {
			result.Errors = append(result.Errors, errs...)
			continue
		}
		parsed = append(parsed, p)
	}

	if len(result.Errors) > 0 {
		return result, apperrors.ErrImportRejected
	}

	// Duplicate detection happens after validation so the error report
	// is complete either way.
	toInsert := make([]parsedRow, 0, len(parsed))
	var replaceSerials []string
	for _, p := range parsed {
		if p.serial == "" || resolution == ResolutionImportAll {
			toInsert = append(toInsert, p)
			continue
		}
		existing, err := s.equipmentRepo.GetBySerialNumber(p.serial)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check serial number: %w", err)
		}
		if existing == nil {
			toInsert = append(toInsert, p)
			continue
		}
		switch resolution {
		case ResolutionSkip:
			result.Skipped++
		case ResolutionReplace:
			replaceSerials = append(replaceSerials, p.serial)
			result.Replaced++
			toInsert = append(toInsert, p)
		}
	}

	if len(replaceSerials) > 0 {
		if err := s.equipmentRepo.DeleteBySerialNumbers(replaceSerials); err != nil {
			return nil, fmt.Errorf("failed to replace existing equipments: %w", err)
		}
	}

	if len(toInsert) == 0 {
		return result, nil
	}

	equipments := make([]models.Equipment, len(toInsert))
	for i, p := range toInsert {
		equipments[i] = p.equipment
	}
	if err := s.equipmentRepo.BulkCreate(equipments); err != nil {
		return nil, fmt.Errorf("failed to insert equipments: %w", err)
	}
	result.Imported = len(equipments)

	// Attach group memberships now that the rows have ids.
	byGroup := map[uuid.UUID][]uuid.UUID{}
	for i, p := range toInsert {
		for _, groupID := range p.groupIDs {
			byGroup[groupID] = append(byGroup[groupID], equipments[i].ID)
		}
	}
	for groupID, newIDs := range byGroup {
		group, err := s.groupRepo.GetByID(groupID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload group: %w", err)
		}
		desired := append(append([]uuid.UUID(nil), group.EquipmentIDs...), newIDs...)
		if _, err := s.membership.UpdateGroupMembers(groupID, &UpdateMembersRequest{EquipmentIDs: desired}); err != nil {
			return nil, fmt.Errorf("failed to attach imported equipments to group: %w", err)
		}
	}

	s.log.WithFields(map[string]interface{}{
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"replaced": result.Replaced,
	}).Info("equipment import completed")

	return result, nil
}

// parseRow validates and resolves one data row. All errors on the row
// are reported, not just the first.
func (s *ImporterService) parseRow(line int, row []string) (parsedRow, []ImportError) {
	var errs []ImportError

	get := func(col int) string {
		if col < len(row) {
			return strings.TrimSpace(row[col])
		}
		return ""
	}

	p := parsedRow{line: line}
	eq := models.Equipment{
		Name:            get(0),
		Model:           get(1),
		Manufacturer:    get(2),
		Supplier:        get(3),
		SerialNumber:    get(4),
		InventoryNumber: get(5),
		Description:     get(6),
		UF:              get(7),
	}
	eq.DescriptionIsCustom = eq.Description != ""
	eq.HealthPercentage = 100
	eq.AssociatedGroupIDs = []uuid.UUID{}

	if eq.Name == "" {
		errs = append(errs, ImportError{Line: line, Field: "Name", Message: "name is required"})
	}

	status := models.EquipmentStatus(strings.ToLower(get(8)))
	if status == "" {
		status = models.EquipmentOperational
	}
	if !status.IsValid() {
		errs = append(errs, ImportError{
			Line: line, Field: "Status", Value: get(8),
			Message: "status must be one of operational, maintenance, faulty",
		})
	}
	eq.Status = status

	if raw := get(9); raw != "" {
		loan, ok := parseLoan(raw)
		if !ok {
			errs = append(errs, ImportError{
				Line: line, Field: "Loan", Value: raw,
				Message: "loan must be oui/non, yes/no, true/false or 1/0",
			})
		}
		eq.Loan = loan
	}

	buildingName, serviceName, locationName := get(10), get(11), get(12)
	var building *models.Building
	if buildingName != "" {
		b, err := s.buildingRepo.GetByNameInsensitive(buildingName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs = append(errs, ImportError{
					Line: line, Field: "Building", Value: buildingName, Message: "unknown building",
				})
			} else {
				errs = append(errs, ImportError{
					Line: line, Field: "Building", Value: buildingName, Message: "lookup failed",
				})
			}
		} else {
			building = b
			eq.BuildingID = &b.ID
		}
	}
	var service *models.FacilityService
	if serviceName != "" {
		if building == nil {
			errs = append(errs, ImportError{
				Line: line, Field: "Service", Value: serviceName,
				Message: "service requires a valid building",
			})
		} else {
			svc, err := s.serviceRepo.GetByNameInsensitive(building.ID, serviceName)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					errs = append(errs, ImportError{
						Line: line, Field: "Service", Value: serviceName,
						Message: fmt.Sprintf("unknown service in building %q", building.Name),
					})
				} else {
					errs = append(errs, ImportError{
						Line: line, Field: "Service", Value: serviceName, Message: "lookup failed",
					})
				}
			} else {
				service = svc
				eq.ServiceID = &svc.ID
			}
		}
	}
	if locationName != "" {
		if service == nil {
			errs = append(errs, ImportError{
				Line: line, Field: "Location", Value: locationName,
				Message: "location requires a valid service",
			})
		} else {
			loc, err := s.locationRepo.GetByNameInsensitive(service.ID, locationName)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					errs = append(errs, ImportError{
						Line: line, Field: "Location", Value: locationName,
						Message: fmt.Sprintf("unknown location in service %q", service.Name),
					})
				} else {
					errs = append(errs, ImportError{
						Line: line, Field: "Location", Value: locationName, Message: "lookup failed",
					})
				}
			} else {
				eq.LocationID = &loc.ID
			}
		}
	}

	if raw := get(13); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			group, err := s.groupRepo.GetByNameInsensitive(name)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					errs = append(errs, ImportError{
						Line: line, Field: "Groups", Value: name, Message: "unknown group",
					})
				} else {
					errs = append(errs, ImportError{
						Line: line, Field: "Groups", Value: name, Message: "lookup failed",
					})
				}
				continue
			}
			p.groupIDs = append(p.groupIDs, group.ID)
		}
	}

	p.equipment = eq
	p.serial = eq.SerialNumber
	return p, errs
}

func checkHeader(row []string) error {
	if len(row) < len(importHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(importHeader), len(row))
	}
	for i, want := range importHeader {
		if !strings.EqualFold(strings.TrimSpace(row[i]), want) {
			return fmt.Errorf("column %d must be %q", i+1, want)
		}
	}
	return nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseLoan(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "oui", "yes", "true", "1":
		return true, true
	case "non", "no", "false", "0":
		return false, true
	}
	return false, false
}
