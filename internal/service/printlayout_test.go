package service_test

import (
	"testing"

	"maintenance-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// PrintLayoutServiceTestSuite defines the test suite for PrintLayoutService
type PrintLayoutServiceTestSuite struct {
	suite.Suite
	layoutService *service.PrintLayoutService
}

// SetupTest sets up the test suite
func (suite *PrintLayoutServiceTestSuite) SetupTest() {
	suite.layoutService = service.NewPrintLayoutService(validator.New())
}

// TestComputeA4PortraitMedium tests the reference A4 portrait layout
func (suite *PrintLayoutServiceTestSuite) TestComputeA4PortraitMedium() {
	resp, err := suite.layoutService.Compute(&service.PrintLayoutRequest{
		ItemCount:     37,
		Format:        "a4",
		Orientation:   "portrait",
		CardSize:      service.CardMedium,
		IncludeHeader: true,
		IncludeFooter: true,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, resp.Columns)
	assert.Equal(suite.T(), 2, resp.Rows)
	assert.Equal(suite.T(), 8, resp.CardsPerPage)
	assert.Equal(suite.T(), 5, resp.PageCount)
	assert.Len(suite.T(), resp.Pages, 5)

	// Full pages then a 5-item remainder
	last := resp.Pages[4]
	assert.Equal(suite.T(), 5, last.Number)
	assert.Equal(suite.T(), 32, last.Start)
	assert.Equal(suite.T(), 37, last.End)
	assert.Equal(suite.T(), 5, last.Count)
}

// TestComputePagesAreContiguous tests that page ranges tile the item set
// without gaps or overlap
func (suite *PrintLayoutServiceTestSuite) TestComputePagesAreContiguous() {
	resp, err := suite.layoutService.Compute(&service.PrintLayoutRequest{
		ItemCount:   53,
		Format:      "letter",
		Orientation: "landscape",
		CardSize:    service.CardSmall,
	})

	assert.NoError(suite.T(), err)

	next := 0
	total := 0
	for i, page := range resp.Pages {
		assert.Equal(suite.T(), i+1, page.Number)
		assert.Equal(suite.T(), next, page.Start)
		assert.Greater(suite.T(), page.End, page.Start)
		assert.Equal(suite.T(), page.End-page.Start, page.Count)
		next = page.End
		total += page.Count
	}
	assert.Equal(suite.T(), 53, next)
	assert.Equal(suite.T(), 53, total)
}

// TestComputeDensityOrdering tests that smaller card tiers never fit
// fewer cards per page than larger ones
func (suite *PrintLayoutServiceTestSuite) TestComputeDensityOrdering() {
	capacity := func(size service.CardSize) int {
		resp, err := suite.layoutService.Compute(&service.PrintLayoutRequest{
			ItemCount:   100,
			Format:      "a4",
			Orientation: "portrait",
			CardSize:    size,
		})
		assert.NoError(suite.T(), err)
		return resp.CardsPerPage
	}

	xlarge := capacity(service.CardXLarge)
	large := capacity(service.CardLarge)
	medium := capacity(service.CardMedium)
	small := capacity(service.CardSmall)
	xsmall := capacity(service.CardXSmall)

	assert.GreaterOrEqual(suite.T(), large, xlarge)
	assert.GreaterOrEqual(suite.T(), medium, large)
	assert.GreaterOrEqual(suite.T(), small, medium)
	assert.GreaterOrEqual(suite.T(), xsmall, small)
}

// TestComputeSingleCard tests the one-card-per-page layout. On A4
// portrait the card at 85% of the width would be too tall, so it is
// sized from the height instead, keeping the aspect ratio.
func (suite *PrintLayoutServiceTestSuite) TestComputeSingleCard() {
	resp, err := suite.layoutService.Compute(&service.PrintLayoutRequest{
		ItemCount:   3,
		Format:      "a4",
		Orientation: "portrait",
		CardSize:    service.CardSingle,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Columns)
	assert.Equal(suite.T(), 1, resp.Rows)
	assert.Equal(suite.T(), 1, resp.CardsPerPage)
	assert.Equal(suite.T(), 3, resp.PageCount)
	assert.InDelta(suite.T(), 109.0, resp.CardWidthMM, 0.01)
	assert.InDelta(suite.T(), 235.45, resp.CardHeightMM, 0.01)
	assert.InDelta(suite.T(), 2.16, resp.CardHeightMM/resp.CardWidthMM, 0.001)
}

// TestComputeA4PortraitXSmall tests that the grid search shrinks cards
// below the column limit when that admits more rows: on bare A4
// portrait the densest xsmall layout is eight columns by six rows
func (suite *PrintLayoutServiceTestSuite) TestComputeA4PortraitXSmall() {
	resp, err := suite.layoutService.Compute(&service.PrintLayoutRequest{
		ItemCount:   100,
		Format:      "a4",
		Orientation: "portrait",
		CardSize:    service.CardXSmall,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 8, resp.Columns)
	assert.Equal(suite.T(), 6, resp.Rows)
	assert.Equal(suite.T(), 48, resp.CardsPerPage)
	assert.InDelta(suite.T(), 20.22, resp.CardWidthMM, 0.01)
}

// TestComputeUnknownFormat tests rejection of an unsupported paper size
func (suite *PrintLayoutServiceTestSuite) TestComputeUnknownFormat() {
	resp, err := suite.layoutService.Compute(&service.PrintLayoutRequest{
		ItemCount:   10,
		Format:      "b5",
		Orientation: "portrait",
		CardSize:    service.CardMedium,
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

// TestComputeInvalidItemCount tests that an empty item set fails validation
func (suite *PrintLayoutServiceTestSuite) TestComputeInvalidItemCount() {
	resp, err := suite.layoutService.Compute(&service.PrintLayoutRequest{
		ItemCount:   0,
		Format:      "a4",
		Orientation: "portrait",
		CardSize:    service.CardMedium,
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestComputeHeaderShrinksContent tests that reserving header and footer
// space can only reduce the grid
func (suite *PrintLayoutServiceTestSuite) TestComputeHeaderShrinksContent() {
	bare, err := suite.layoutService.Compute(&service.PrintLayoutRequest{
		ItemCount:   20,
		Format:      "a4",
		Orientation: "landscape",
		CardSize:    service.CardSmall,
	})
	assert.NoError(suite.T(), err)

	framed, err := suite.layoutService.Compute(&service.PrintLayoutRequest{
		ItemCount:     20,
		Format:        "a4",
		Orientation:   "landscape",
		CardSize:      service.CardSmall,
		IncludeHeader: true,
		IncludeFooter: true,
	})
	assert.NoError(suite.T(), err)

	assert.LessOrEqual(suite.T(), framed.CardsPerPage, bare.CardsPerPage)
}

// TestPrintLayoutServiceTestSuite runs the test suite
func TestPrintLayoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PrintLayoutServiceTestSuite))
}
