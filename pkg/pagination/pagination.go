package pagination

import "strconv"

const (
	// DefaultPerPage is the standard page size when one is not provided.
	DefaultPerPage = 25
	// MaxPerPage caps how many rows any listing can request.
	MaxPerPage = 100
)

// Params holds page/per-page inputs from controllers or services.
type Params struct {
	Page    int
	PerPage int
}

// FromQuery parses raw query values; anything malformed falls back to defaults.
func FromQuery(pageRaw, perPageRaw string) Params {
	page, _ := strconv.Atoi(pageRaw)
	perPage, _ := strconv.Atoi(perPageRaw)
	return Params{Page: page, PerPage: perPage}.Normalize()
}

// Normalize enforces the configured defaults and maximums.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset converts the page number into a row offset.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PerPage
}
