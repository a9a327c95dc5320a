package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/domain/repository"
)

// SchoolUseCase encapsulates partner-school reference data access.
type SchoolUseCase struct {
	schools repository.SchoolRepository
}

// NewSchoolUseCase constructs SchoolUseCase.
func NewSchoolUseCase(schools repository.SchoolRepository) *SchoolUseCase {
	return &SchoolUseCase{schools: schools}
}

// List returns all partner schools.
func (u *SchoolUseCase) List(ctx context.Context) ([]model.School, error) {
	return u.schools.List(ctx)
}

// Search filters schools by a case-insensitive substring of name or
// location. An empty query returns everything.
func (u *SchoolUseCase) Search(ctx context.Context, query string) ([]model.School, error) {
	schools, err := u.schools.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return schools, nil
	}
	var out []model.School
	for _, school := range schools {
		if strings.Contains(strings.ToLower(school.Name), query) ||
			strings.Contains(strings.ToLower(school.Location), query) {
			out = append(out, school)
		}
	}
	return out, nil
}

// Add registers a partner school. Name and location are required.
func (u *SchoolUseCase) Add(ctx context.Context, school model.School) error {
	fields := domainErrors.FieldErrors{}
	if strings.TrimSpace(school.Name) == "" {
		fields["name"] = "school name is required"
	}
	if strings.TrimSpace(school.Location) == "" {
		fields["location"] = "school location is required"
	}
	if len(fields) > 0 {
		return fields
	}
	return u.schools.Append(ctx, school)
}
