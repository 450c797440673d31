package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"maintenance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SelectorPageSize is the fixed page size of picker dialogs
const SelectorPageSize = 10

// SelectionMode controls how a selector commits choices
type SelectionMode string

// Selection modes
const (
	// SelectSingle commits as soon as an item is picked.
	SelectSingle SelectionMode = "single"
	// SelectMulti accumulates picks and commits only on Confirm.
	SelectMulti SelectionMode = "multi"
)

// SelectorItem is one pickable row. SearchText fields are matched by
// case-insensitive substring; Attributes by exact match.
type SelectorItem struct {
	ID         uuid.UUID
	Label      string
	SearchText []string
	Attributes map[string]string
}

// SelectorPage is the currently visible slice of a selector
type SelectorPage struct {
	Items     []SelectorItem
	Page      int
	PageCount int
	Total     int
}

// Selector implements picker dialog semantics over an already-fetched
// item list: substring search, AND-combined exact filters, fixed-size
// pagination that snaps back to the first page whenever the search or a
// filter changes, and single or multi selection.
type Selector struct {
	mode     SelectionMode
	items    []SelectorItem
	query    string
	filters  map[string]string
	page     int
	selected map[uuid.UUID]bool
	initial  []uuid.UUID
	done     bool
}

// NewSelector creates a selector over items, with any prior selection
// restored so Cancel can fall back to it.
func NewSelector(mode SelectionMode, items []SelectorItem, preselected []uuid.UUID) *Selector {
	s := &Selector{
		mode:     mode,
		items:    items,
		filters:  map[string]string{},
		page:     1,
		selected: map[uuid.UUID]bool{},
		initial:  append([]uuid.UUID(nil), preselected...),
	}
	for _, id := range preselected {
		s.selected[id] = true
	}
	return s
}

// SetQuery replaces the search text and snaps back to the first page
// when it actually changed.
func (s *Selector) SetQuery(query string) {
	query = strings.TrimSpace(query)
	if query != s.query {
		s.query = query
		s.page = 1
	}
}

// SetFilter sets an exact-match filter. An empty value clears the
// filter. Any change snaps back to the first page.
func (s *Selector) SetFilter(key, value string) {
	current, exists := s.filters[key]
	if value == "" {
		if exists {
			delete(s.filters, key)
			s.page = 1
		}
		return
	}
	if !exists || current != value {
		s.filters[key] = value
		s.page = 1
	}
}

// SetPage moves to the given page, clamped to the valid range
func (s *Selector) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if max := s.pageCount(); page > max {
		page = max
	}
	s.page = page
}

// Reopen resets the view state for a fresh dialog without touching the
// committed selection.
func (s *Selector) Reopen() {
	s.query = ""
	s.filters = map[string]string{}
	s.page = 1
	s.done = false
}

// Visible returns the current page of matching items
func (s *Selector) Visible() SelectorPage {
	matches := s.matches()
	total := len(matches)
	pageCount := (total + SelectorPageSize - 1) / SelectorPageSize
	if pageCount < 1 {
		pageCount = 1
	}
	page := s.page
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * SelectorPageSize
	end := start + SelectorPageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return SelectorPage{
		Items:     matches[start:end],
		Page:      page,
		PageCount: pageCount,
		Total:     total,
	}
}

// Toggle flips an item's selection. In single mode the pick replaces
// any prior one and commits immediately; the returned flag reports
// whether the dialog is finished.
func (s *Selector) Toggle(id uuid.UUID) (committed bool) {
	if s.mode == SelectSingle {
		s.selected = map[uuid.UUID]bool{id: true}
		s.done = true
		return true
	}
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
	return false
}

// IsSelected reports whether an item is currently selected
func (s *Selector) IsSelected(id uuid.UUID) bool {
	return s.selected[id]
}

// Confirm commits the accumulated selection, in item-list order
func (s *Selector) Confirm() []uuid.UUID {
	s.done = true
	out := make([]uuid.UUID, 0, len(s.selected))
	for _, item := range s.items {
		if s.selected[item.ID] {
			out = append(out, item.ID)
		}
	}
	// Selected ids not present in the item list are kept at the end so
	// a filtered view cannot silently drop them.
	inItems := make(map[uuid.UUID]bool, len(s.items))
	for _, item := range s.items {
		inItems[item.ID] = true
	}
	extras := make([]uuid.UUID, 0)
	for id := range s.selected {
		if !inItems[id] {
			extras = append(extras, id)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i].String() < extras[j].String() })
	return append(out, extras...)
}

// Cancel discards the in-dialog changes and restores the selection the
// dialog was opened with.
func (s *Selector) Cancel() []uuid.UUID {
	s.selected = map[uuid.UUID]bool{}
	for _, id := range s.initial {
		s.selected[id] = true
	}
	s.done = true
	return append([]uuid.UUID(nil), s.initial...)
}

func (s *Selector) pageCount() int {
	n := (len(s.matches()) + SelectorPageSize - 1) / SelectorPageSize
	if n < 1 {
		n = 1
	}
	return n
}

func (s *Selector) matches() []SelectorItem {
	query := strings.ToLower(s.query)
	out := make([]SelectorItem, 0, len(s.items))
	for _, item := range s.items {
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		if !matchesFilters(item, s.filters) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesQuery(item SelectorItem, loweredQuery string) bool {
	for _, field := range item.SearchText {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}

func matchesFilters(item SelectorItem, filters map[string]string) bool {
	for key, want := range filters {
		if item.Attributes[key] != want {
			return false
		}
	}
	return true
}

// selectorState is the per-session view state kept server side so a
// stateless client still gets the page-reset behaviour.
type selectorState struct {
	Query   string
	Filters map[string]string
}

// SelectorService serves equipment picker pages over HTTP sessions
type SelectorService struct {
	equipmentRepo repository.EquipmentRepositoryInterface
	sessions      *cache.Cache
}

// NewSelectorService creates a new selector service
func NewSelectorService(equipmentRepo repository.EquipmentRepositoryInterface) *SelectorService {
	return &SelectorService{
		equipmentRepo: equipmentRepo,
		sessions:      cache.New(10*time.Minute, 30*time.Minute),
	}
}

// EquipmentSelectorRequest carries the picker view parameters
type EquipmentSelectorRequest struct {
	SessionID  string
	Query      string
	Status     string
	GroupID    string
	BuildingID string
	ServiceID  string
	LocationID string
	Page       int
}

// EquipmentSelectorResponse is one page of pickable equipments
type EquipmentSelectorResponse struct {
	SessionID  string              `json:"session_id"`
	Equipments []EquipmentResponse `json:"equipments"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	PageCount  int                 `json:"page_count"`
	Total      int                 `json:"total"`
}

// EquipmentPage returns one picker page. A missing session id opens a
// new session; a changed search or filter snaps the page back to 1.
func (s *SelectorService) EquipmentPage(req *EquipmentSelectorRequest) (*EquipmentSelectorResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	filters := map[string]string{}
	if req.Status != "" {
		filters["status"] = req.Status
	}
	if req.BuildingID != "" {
		filters["building"] = req.BuildingID
	}
	if req.ServiceID != "" {
		filters["service"] = req.ServiceID
	}
	if req.LocationID != "" {
		filters["location"] = req.LocationID
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	sessionFilters := map[string]string{}
	for k, v := range filters {
		sessionFilters[k] = v
	}
	if req.GroupID != "" {
		sessionFilters["group"] = req.GroupID
	}
	if prev, found := s.sessions.Get(sessionID); found {
		state := prev.(selectorState)
		if state.Query != strings.TrimSpace(req.Query) || !equalFilters(state.Filters, sessionFilters) {
			page = 1
		}
	} else {
		// Fresh session behaves like a reopened dialog.
		page = 1
	}
	s.sessions.SetDefault(sessionID, selectorState{
		Query:   strings.TrimSpace(req.Query),
		Filters: sessionFilters,
	})

	equipments, _, err := s.equipmentRepo.GetAll(-1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipments: %w", err)
	}

	items := make([]SelectorItem, 0, len(equipments))
	byID := make(map[uuid.UUID]*EquipmentResponse, len(equipments))
	for i := range equipments {
		eq := &equipments[i]
		// Group membership is a list attribute, filtered up front.
		if req.GroupID != "" && !containsGroup(eq.AssociatedGroupIDs, req.GroupID) {
			continue
		}
		attrs := map[string]string{"status": string(eq.Status)}
		if eq.BuildingID != nil {
			attrs["building"] = eq.BuildingID.String()
		}
		if eq.ServiceID != nil {
			attrs["service"] = eq.ServiceID.String()
		}
		if eq.LocationID != nil {
			attrs["location"] = eq.LocationID.String()
		}
		items = append(items, SelectorItem{
			ID:    eq.ID,
			Label: eq.Name,
			SearchText: []string{
				eq.Name, eq.Model, eq.Manufacturer, eq.SerialNumber, eq.InventoryNumber,
			},
			Attributes: attrs,
		})
		byID[eq.ID] = equipmentToResponse(eq)
	}

	sel := NewSelector(SelectMulti, items, nil)
	sel.SetQuery(req.Query)
	for key, value := range filters {
		sel.SetFilter(key, value)
	}
	sel.SetPage(page)

	view := sel.Visible()
	responses := make([]EquipmentResponse, 0, len(view.Items))
	for _, item := range view.Items {
		if eq, ok := byID[item.ID]; ok {
			responses = append(responses, *eq)
		}
	}

	return &EquipmentSelectorResponse{
		SessionID:  sessionID,
		Equipments: responses,
		Page:       view.Page,
		PageSize:   SelectorPageSize,
		PageCount:  view.PageCount,
		Total:      view.Total,
	}, nil
}

func containsGroup(groupIDs []uuid.UUID, want string) bool {
	for _, id := range groupIDs {
		if id.String() == want {
			return true
		}
	}
	return false
}

func equalFilters(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
