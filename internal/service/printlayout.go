package service

import (
	"fmt"
	"math"

	apperrors "maintenance-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Page geometry in millimeters.
const (
	pageMarginMM       = 10.0
	headerHeightMM     = 15.0
	footerHeightMM     = 10.0
	landscapeReserveMM = 8.0
	cardGapMM          = 3.0

	// Height over width of a printed card.
	cardAspectRatio = 2.16

	// Fraction of the limiting content dimension a single-card-per-page
	// layout uses.
	singleCardFraction = 0.85

	maxGridCols = 8
	maxGridRows = 6
)

// CardSize selects a card density tier for the print layout
type CardSize string

// Supported card size tiers, densest last
const (
	CardSingle CardSize = "single"
	CardXLarge CardSize = "xlarge"
	CardLarge  CardSize = "large"
	CardMedium CardSize = "medium"
	CardSmall  CardSize = "small"
	CardXSmall CardSize = "xsmall"
)

// sizeTier caps the grid and sets the minimum legible card width
type sizeTier struct {
	MaxCols    int
	MaxRows    int
	MinWidthMM float64
}

var sizeTiers = map[CardSize]sizeTier{
	CardXLarge: {MaxCols: 2, MaxRows: 2, MinWidthMM: 70},
	CardLarge:  {MaxCols: 3, MaxRows: 3, MinWidthMM: 58},
	CardMedium: {MaxCols: 4, MaxRows: 4, MinWidthMM: 45},
	CardSmall:  {MaxCols: 6, MaxRows: 5, MinWidthMM: 32},
	CardXSmall: {MaxCols: 8, MaxRows: 6, MinWidthMM: 20},
}

// pageFormat is a paper size in millimeters, portrait orientation
type pageFormat struct {
	WidthMM  float64
	HeightMM float64
}

var pageFormats = map[string]pageFormat{
	"a4":     {WidthMM: 210, HeightMM: 297},
	"a3":     {WidthMM: 297, HeightMM: 420},
	"letter": {WidthMM: 216, HeightMM: 279},
	"legal":  {WidthMM: 216, HeightMM: 356},
}

// PrintLayoutService computes print grid layouts and paginates item
// sets across pages. It is purely arithmetic; rendering happens client
// side.
type PrintLayoutService struct {
	validator *validator.Validate
}

// NewPrintLayoutService creates a new print layout service
func NewPrintLayoutService(validator *validator.Validate) *PrintLayoutService {
	return &PrintLayoutService{validator: validator}
}

// PrintLayoutRequest describes the items and paper to lay out
type PrintLayoutRequest struct {
	ItemCount     int      `json:"item_count" validate:"required,min=1"`
	Format        string   `json:"format" validate:"required"`
	Orientation   string   `json:"orientation" validate:"required,oneof=portrait landscape"`
	CardSize      CardSize `json:"card_size" validate:"required"`
	IncludeHeader bool     `json:"include_header"`
	IncludeFooter bool     `json:"include_footer"`
}

// PrintPage is one page of the paginated layout. Indexes are
// zero-based and End is exclusive.
type PrintPage struct {
	Number int `json:"number"`
	Start  int `json:"start"`
	End    int `json:"end"`
	Count  int `json:"count"`
}

// PrintLayoutResponse is the computed grid and pagination
type PrintLayoutResponse struct {
	Columns      int         `json:"columns"`
	Rows         int         `json:"rows"`
	CardsPerPage int         `json:"cards_per_page"`
	CardWidthMM  float64     `json:"card_width_mm"`
	CardHeightMM float64     `json:"card_height_mm"`
	ScaleFactor  float64     `json:"scale_factor"`
	PageCount    int         `json:"page_count"`
	Pages        []PrintPage `json:"pages"`
}

// Compute lays the requested number of items out on the given paper.
// The grid is searched over cols 1-8 and rows 1-6 within the tier's
// caps, maximizing cards per page; ties go to the wider card. Every
// page holds at least one card, so pagination always terminates.
func (s *PrintLayoutService) Compute(req *PrintLayoutRequest) (*PrintLayoutResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	format, ok := pageFormats[req.Format]
	if !ok {
		return nil, apperrors.NewValidationError("format", fmt.Sprintf("unknown page format %q", req.Format))
	}

	pageW, pageH := format.WidthMM, format.HeightMM
	if req.Orientation == "landscape" {
		pageW, pageH = pageH, pageW
	}

	contentW := pageW - 2*pageMarginMM
	contentH := pageH - 2*pageMarginMM
	if req.IncludeHeader {
		contentH -= headerHeightMM
	}
	if req.IncludeFooter {
		contentH -= footerHeightMM
	}
	if req.Orientation == "landscape" {
		contentH -= landscapeReserveMM
	}

	var cols, rows int
	var cardW, cardH float64

	if req.CardSize == CardSingle {
		cols, rows = 1, 1
		cardW = contentW * singleCardFraction
		cardH = cardW * cardAspectRatio
		if cardH > contentH {
			// Too tall for the page: size from the height instead,
			// keeping the aspect ratio.
			cardH = contentH * singleCardFraction
			cardW = cardH / cardAspectRatio
		}
	} else {
		tier, ok := sizeTiers[req.CardSize]
		if !ok {
			return nil, apperrors.NewValidationError("card_size", fmt.Sprintf("unknown card size %q", req.CardSize))
		}
		cols, rows, cardW, cardH = bestGrid(contentW, contentH, tier)
	}

	// Width of a card on a reference 3-column grid over the same
	// content area, used by clients to scale card typography.
	refWidth := (contentW - 2*cardGapMM) / 3
	scale := cardW / refWidth

	cardsPerPage := cols * rows
	pageCount := (req.ItemCount + cardsPerPage - 1) / cardsPerPage

	pages := make([]PrintPage, pageCount)
	for i := 0; i < pageCount; i++ {
		start := i * cardsPerPage
		end := start + cardsPerPage
		if end > req.ItemCount {
			end = req.ItemCount
		}
		pages[i] = PrintPage{
			Number: i + 1,
			Start:  start,
			End:    end,
			Count:  end - start,
		}
	}

	return &PrintLayoutResponse{
		Columns:      cols,
		Rows:         rows,
		CardsPerPage: cardsPerPage,
		CardWidthMM:  round2(cardW),
		CardHeightMM: round2(cardH),
		ScaleFactor:  round2(scale),
		PageCount:    pageCount,
		Pages:        pages,
	}, nil
}

// bestGrid searches every grid within the tier's caps. For each
// (cols, rows) pair the card is sized to the tighter of the column
// width and the row height, so the card shrinks below the column limit
// whenever that admits another row. The densest layout wins; ties go
// to the wider card.
func bestGrid(contentW, contentH float64, tier sizeTier) (cols, rows int, cardW, cardH float64) {
	maxCols := tier.MaxCols
	if maxCols > maxGridCols {
		maxCols = maxGridCols
	}
	maxRows := tier.MaxRows
	if maxRows > maxGridRows {
		maxRows = maxGridRows
	}

	best := 0
	cols, rows = 1, 1
	for c := 1; c <= maxCols; c++ {
		widthLimit := (contentW - cardGapMM*float64(c-1)) / float64(c)
		for r := 1; r <= maxRows; r++ {
			heightLimit := (contentH - cardGapMM*float64(r-1)) / float64(r)
			w := math.Min(widthLimit, heightLimit/cardAspectRatio)
			if w < tier.MinWidthMM {
				continue
			}
			if c*r > best || (c*r == best && w > cardW) {
				best = c * r
				cols, rows = c, r
				cardW, cardH = w, w*cardAspectRatio
			}
		}
	}

	if best == 0 {
		// Nothing satisfies the minimum width, fall back to one card
		// sized to the content area, aspect ratio preserved.
		cols, rows = 1, 1
		cardW = math.Min(contentW, contentH/cardAspectRatio)
		cardH = cardW * cardAspectRatio
	}
	return cols, rows, cardW, cardH
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
