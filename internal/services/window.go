package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"saleslens/internal/domain"
)

var ErrInvalidWindow = errors.New("month and year are required")

// ResolveWindow turns a (month, year) pair into the inclusive date window
// every report query shares. The end bound is literally day 31 for every
// month: the upstream feed has always been queried that way, and the bounds
// compare as ISO date strings, so "2023-02-31" still caps February without
// reaching into March. Clamping to the month's real last day would be a
// behavior change; don't do it silently.
func ResolveWindow(month, year string) (domain.Window, error) {
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return domain.Window{}, ErrInvalidWindow
	}
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y < 1 {
		return domain.Window{}, ErrInvalidWindow
	}
	return domain.Window{
		Start: fmt.Sprintf("%04d-%02d-01", y, m),
		End:   fmt.Sprintf("%04d-%02d-31", y, m),
	}, nil
}
