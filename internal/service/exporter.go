package service

import (
	"bytes"
	"fmt"
	"strings"

	"maintenance-portal-backend/internal/database/models"
	"maintenance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet = "Equipments"
	lookupSheet = "Lookups"

	// Data validations cover this many rows in the template.
	templateRows = 1000
)

// ExporterService produces XLSX exports of the equipment list and the
// import template with reference-data dropdowns.
type ExporterService struct {
	equipmentRepo repository.EquipmentRepositoryInterface
	groupRepo     repository.EquipmentGroupRepositoryInterface
	buildingRepo  repository.BuildingRepositoryInterface
	serviceRepo   repository.FacilityServiceRepositoryInterface
	locationRepo  repository.LocationRepositoryInterface
}

// NewExporterService creates a new exporter service
func NewExporterService(
	equipmentRepo repository.EquipmentRepositoryInterface,
	groupRepo repository.EquipmentGroupRepositoryInterface,
	buildingRepo repository.BuildingRepositoryInterface,
	serviceRepo repository.FacilityServiceRepositoryInterface,
	locationRepo repository.LocationRepositoryInterface,
) *ExporterService {
	return &ExporterService{
		equipmentRepo: equipmentRepo,
		groupRepo:     groupRepo,
		buildingRepo:  buildingRepo,
		serviceRepo:   serviceRepo,
		locationRepo:  locationRepo,
	}
}

// Export writes the full equipment list as a styled XLSX workbook
func (s *ExporterService) Export() (*bytes.Buffer, error) {
	equipments, _, err := s.equipmentRepo.GetAll(-1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipments: %w", err)
	}

	names, err := s.referenceNames()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), exportSheet)

	if err := s.writeHeader(f, exportSheet); err != nil {
		return nil, err
	}

	for i, eq := range equipments {
		row := i + 2
		values := []interface{}{
			eq.Name, eq.Model, eq.Manufacturer, eq.Supplier, eq.SerialNumber,
			eq.InventoryNumber, eq.Description, eq.UF, string(eq.Status),
			loanLabel(eq.Loan),
			names.building(eq.BuildingID), names.service(eq.ServiceID), names.location(eq.LocationID),
			strings.Join(names.groups(eq.AssociatedGroupIDs), ", "),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	return f.WriteToBuffer()
}

// Template writes an empty import workbook with dropdowns for Status,
// Loan and Groups, and cascading Building, Service and Location
// dropdowns driven by named lookup ranges and INDIRECT.
func (s *ExporterService) Template() (*bytes.Buffer, error) {
	buildings, err := s.buildingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load buildings: %w", err)
	}
	groups, _, err := s.groupRepo.GetAll(-1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), exportSheet)
	if _, err := f.NewSheet(lookupSheet); err != nil {
		return nil, fmt.Errorf("failed to create lookup sheet: %w", err)
	}

	if err := s.writeHeader(f, exportSheet); err != nil {
		return nil, err
	}

	// Lookup layout: column A holds building names; each building and
	// each service then gets its own column holding its children, with
	// a named range pointing at it for INDIRECT.
	if len(buildings) > 0 {
		if err := writeLookupColumn(f, 1, "Buildings", buildingNames(buildings)); err != nil {
			return nil, err
		}
	}

	col := 2
	for _, b := range buildings {
		services, err := s.serviceRepo.GetByBuildingID(b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load services: %w", err)
		}
		if len(services) > 0 {
			if err := writeLookupColumn(f, col, rangeName(b.Name), serviceNames(services)); err != nil {
				return nil, err
			}
			col++
		}
		for _, svc := range services {
			locations, err := s.locationRepo.GetByServiceID(svc.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to load locations: %w", err)
			}
			if len(locations) > 0 {
				if err := writeLookupColumn(f, col, rangeName(svc.Name), locationNames(locations)); err != nil {
					return nil, err
				}
				col++
			}
		}
	}

	f.SetSheetVisible(lookupSheet, false)

	// Flat dropdowns.
	statusDV := excelize.NewDataValidation(true)
	statusDV.Sqref = fmt.Sprintf("I2:I%d", templateRows)
	statusDV.SetDropList([]string{"operational", "maintenance", "faulty"})
	if err := f.AddDataValidation(exportSheet, statusDV); err != nil {
		return nil, fmt.Errorf("failed to add status dropdown: %w", err)
	}

	loanDV := excelize.NewDataValidation(true)
	loanDV.Sqref = fmt.Sprintf("J2:J%d", templateRows)
	loanDV.SetDropList([]string{"oui", "non"})
	if err := f.AddDataValidation(exportSheet, loanDV); err != nil {
		return nil, fmt.Errorf("failed to add loan dropdown: %w", err)
	}

	if len(groups) > 0 {
		groupDV := excelize.NewDataValidation(true)
		groupDV.Sqref = fmt.Sprintf("N2:N%d", templateRows)
		groupDV.SetDropList(groupNames(groups))
		if err := f.AddDataValidation(exportSheet, groupDV); err != nil {
			return nil, fmt.Errorf("failed to add group dropdown: %w", err)
		}
	}

	// Cascading dropdowns: the building pick drives the service list,
	// the service pick drives the location list.
	if len(buildings) > 0 {
		buildingDV := excelize.NewDataValidation(true)
		buildingDV.Sqref = fmt.Sprintf("K2:K%d", templateRows)
		buildingDV.SetSqrefDropList("Buildings")
		if err := f.AddDataValidation(exportSheet, buildingDV); err != nil {
			return nil, fmt.Errorf("failed to add building dropdown: %w", err)
		}

		serviceDV := excelize.NewDataValidation(true)
		serviceDV.Sqref = fmt.Sprintf("L2:L%d", templateRows)
		serviceDV.SetSqrefDropList(`INDIRECT(SUBSTITUTE($K2," ","_"))`)
		if err := f.AddDataValidation(exportSheet, serviceDV); err != nil {
			return nil, fmt.Errorf("failed to add service dropdown: %w", err)
		}

		locationDV := excelize.NewDataValidation(true)
		locationDV.Sqref = fmt.Sprintf("M2:M%d", templateRows)
		locationDV.SetSqrefDropList(`INDIRECT(SUBSTITUTE($L2," ","_"))`)
		if err := f.AddDataValidation(exportSheet, locationDV); err != nil {
			return nil, fmt.Errorf("failed to add location dropdown: %w", err)
		}
	}

	return f.WriteToBuffer()
}

func (s *ExporterService) writeHeader(f *excelize.File, sheet string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	for i, title := range importHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	last, _ := excelize.CoordinatesToCellName(len(importHeader), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "F", 20)
	f.SetColWidth(sheet, "G", "G", 40)
	f.SetColWidth(sheet, "H", "J", 12)
	f.SetColWidth(sheet, "K", "N", 22)
	return nil
}

func writeLookupColumn(f *excelize.File, col int, name string, values []string) error {
	head, _ := excelize.CoordinatesToCellName(col, 1)
	f.SetCellValue(lookupSheet, head, name)
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col, i+2)
		f.SetCellValue(lookupSheet, cell, v)
	}
	start, _ := excelize.CoordinatesToCellName(col, 2, true)
	end, _ := excelize.CoordinatesToCellName(col, len(values)+1, true)
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     name,
		RefersTo: fmt.Sprintf("%s!%s:%s", lookupSheet, start, end),
	})
}

// rangeName turns a reference name into a valid workbook defined name
func rangeName(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		case r == ' ', r == '-':
			return '_'
		}
		return -1
	}, name)
	if clean == "" || (clean[0] >= '0' && clean[0] <= '9') {
		clean = "_" + clean
	}
	return clean
}

// referenceIndex caches id-to-name lookups for the export
type referenceIndex struct {
	buildings map[uuid.UUID]string
	services  map[uuid.UUID]string
	locations map[uuid.UUID]string
	groupSet  map[uuid.UUID]string
}

func (s *ExporterService) referenceNames() (*referenceIndex, error) {
	idx := &referenceIndex{
		buildings: map[uuid.UUID]string{},
		services:  map[uuid.UUID]string{},
		locations: map[uuid.UUID]string{},
		groupSet:  map[uuid.UUID]string{},
	}

	buildings, err := s.buildingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load buildings: %w", err)
	}
	for _, b := range buildings {
		idx.buildings[b.ID] = b.Name
	}

	services, err := s.serviceRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	for _, svc := range services {
		idx.services[svc.ID] = svc.Name
	}

	locations, err := s.locationRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	for _, loc := range locations {
		idx.locations[loc.ID] = loc.Name
	}

	groups, _, err := s.groupRepo.GetAll(-1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	for _, g := range groups {
		idx.groupSet[g.ID] = g.Name
	}

	return idx, nil
}

func (idx *referenceIndex) building(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return idx.buildings[*id]
}

func (idx *referenceIndex) service(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return idx.services[*id]
}

func (idx *referenceIndex) location(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return idx.locations[*id]
}

func (idx *referenceIndex) groups(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := idx.groupSet[id]; ok {
			out = append(out, name)
		}
	}
	return out
}

func loanLabel(loan bool) string {
	if loan {
		return "oui"
	}
	return "non"
}

func buildingNames(buildings []models.Building) []string {
	out := make([]string, len(buildings))
	for i, b := range buildings {
		out[i] = b.Name
	}
	return out
}

func serviceNames(services []models.FacilityService) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.Name
	}
	return out
}

func locationNames(locations []models.Location) []string {
	out := make([]string, len(locations))
	for i, l := range locations {
		out[i] = l.Name
	}
	return out
}

func groupNames(groups []models.EquipmentGroup) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Name
	}
	return out
}
