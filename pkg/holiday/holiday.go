// Package holiday answers "is this date a public holiday" per country.
// Japan is computed natively (equinox formulas and substitute-holiday rules
// need day-level control); other countries use the rickar/cal definitions.
package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/au"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/it"
	"github.com/rickar/cal/v2/us"
)

var countryHolidays = map[string][]*cal.Holiday{
	"US": us.Holidays,
	"GB": gb.Holidays,
	"DE": de.Holidays,
	"FR": fr.Holidays,
	"IT": it.Holidays,
	"ES": es.Holidays,
	"CA": ca.Holidays,
	"AU": au.Holidays,
}

// Service resolves holidays for one configured country.
type Service struct {
	country string
	cal     *cal.Calendar
}

// New builds a service for the given ISO country code.
func New(country string) *Service {
	s := &Service{}
	s.Init(country)
	return s
}

// Init switches the service to a country. Re-initialization with the same
// country is a no-op.
func (s *Service) Init(country string) {
	if s.country == country {
		return
	}
	s.country = country

	if country == "JP" {
		s.cal = nil // native path
		return
	}
	defs, ok := countryHolidays[country]
	if !ok {
		s.cal = &cal.Calendar{Name: country}
		return
	}
	c := &cal.Calendar{Name: country}
	c.AddHoliday(defs...)
	s.cal = c
}

// Country returns the active country code.
func (s *Service) Country() string { return s.country }

// IsHoliday reports whether date is a public holiday in the configured
// country.
func (s *Service) IsHoliday(date time.Time) bool {
	return s.Name(date) != ""
}

// Name returns the holiday name for date, or "" when it is a regular day.
func (s *Service) Name(date time.Time) string {
	if s.country == "JP" {
		name, _ := japaneseHoliday(date)
		return name
	}
	if s.cal == nil {
		return ""
	}
	actual, observed, h := s.cal.IsHoliday(date)
	if (actual || observed) && h != nil {
		return h.Name
	}
	return ""
}
