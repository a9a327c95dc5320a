package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/ledger"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/domain/registry"
	"github.com/monisha-uniforms/storefront/internal/domain/repository"
)

// Defaults applied to a school derived from a bulk order, until the
// school is properly onboarded.
const (
	newSchoolImage        = "https://images.unsplash.com/photo-1580582932707-520aed937b7b?w=800"
	newSchoolDescription  = "New partner school"
	newSchoolTimings      = "8:00 AM - 2:30 PM"
	newSchoolAvailability = "In Stock"
)

// BulkOrderInput is everything the bulk-order form collects.
type BulkOrderInput struct {
	SchoolName string
	Location   string
	Contact    model.Contact
	LevelID    string
	Ledger     model.Ledger
	// NewSchool registers the school as a partner on submission.
	NewSchool bool
}

// ParentOrderInput is an individual-student order as collected from a
// parent.
type ParentOrderInput struct {
	StudentName string
	SchoolName  string
	LevelID     string
	Items       []model.OrderLine
}

// OrderUseCase assembles and manages bulk and parent orders.
type OrderUseCase struct {
	orders          repository.OrderRepository
	schools         repository.SchoolRepository
	parents         repository.ParentOrderRepository
	allowDuplicates bool

	now   func() time.Time
	newID func() string
}

// NewOrderUseCase constructs OrderUseCase. allowDuplicates carries the
// ledger duplicate-row policy into submission-time validation.
func NewOrderUseCase(
	orders repository.OrderRepository,
	schools repository.SchoolRepository,
	parents repository.ParentOrderRepository,
	allowDuplicates bool,
) *OrderUseCase {
	return &OrderUseCase{
		orders:          orders,
		schools:         schools,
		parents:         parents,
		allowDuplicates: allowDuplicates,
		now:             time.Now,
		newID:           uuid.NewString,
	}
}

// Assemble validates the form input and builds the immutable order
// snapshot. Row totals and the grand total are recomputed from live
// price and quantity fields; totals carried in the input are ignored.
func (u *OrderUseCase) Assemble(in BulkOrderInput) (*model.OrderRecord, error) {
	fields := domainErrors.FieldErrors{}
	if strings.TrimSpace(in.SchoolName) == "" {
		fields["name"] = "school name is required"
	}
	if strings.TrimSpace(in.Location) == "" {
		fields["location"] = "school location is required"
	}
	if strings.TrimSpace(in.Contact.Person) == "" {
		fields["contactPerson"] = "contact person is required"
	}
	if strings.TrimSpace(in.Contact.Phone) == "" {
		fields["contactPhone"] = "contact phone is required"
	}
	if strings.TrimSpace(in.Contact.Email) == "" {
		fields["contactEmail"] = "contact email is required"
	}
	if in.LevelID != "" {
		if _, ok := registry.LevelByID(in.LevelID); !ok {
			fields["level"] = fmt.Sprintf("unknown level %q", in.LevelID)
		}
	}
	u.validateLedger(in.Ledger, fields)
	if len(fields) > 0 {
		return nil, fields
	}

	book := ledger.FromLedger(in.Ledger)
	uniforms := model.OrderUniforms{}
	for _, g := range model.Genders() {
		uniforms[g] = map[model.Category][]model.OrderLine{}
		for _, c := range model.Categories() {
			lines := make([]model.OrderLine, 0, len(book.Items(g, c)))
			for _, item := range book.Items(g, c) {
				item.TotalPrice = item.Price * float64(item.Quantity)
				level := item.Level
				if level == "" {
					level = in.LevelID
				}
				lines = append(lines, model.OrderLine{LineItem: item, LevelType: level})
			}
			uniforms[g][c] = lines
		}
	}

	return &model.OrderRecord{
		ID:          u.newID(),
		SchoolName:  in.SchoolName,
		Location:    in.Location,
		Contact:     in.Contact,
		LevelID:     in.LevelID,
		Uniforms:    uniforms,
		OrderDate:   u.now().UTC(),
		Status:      model.OrderStatusPending,
		TotalAmount: book.GrandTotal(),
	}, nil
}

func (u *OrderUseCase) validateLedger(l model.Ledger, fields domainErrors.FieldErrors) {
	for g, categories := range l {
		if _, ok := model.ParseGender(string(g)); !ok {
			fields[fmt.Sprintf("uniforms.%s", g)] = fmt.Sprintf("unknown gender %q", string(g))
			continue
		}
		for c, items := range categories {
			if _, ok := model.ParseCategory(string(c)); !ok {
				fields[fmt.Sprintf("uniforms.%s.%s", g, c)] = fmt.Sprintf("unknown category %q", string(c))
				continue
			}
			seen := map[string]bool{}
			for i, item := range items {
				rowKey := fmt.Sprintf("uniforms.%s.%s[%d]", g, c, i)
				if item.Price < 0 {
					fields[rowKey+".price"] = "price must not be negative"
				}
				if item.Quantity < 0 {
					fields[rowKey+".quantity"] = "quantity must not be negative"
				}
				if !u.allowDuplicates && item.Type != "" {
					pair := item.Type + "/" + item.Variant
					if seen[pair] {
						fields[rowKey] = fmt.Sprintf("duplicate entry for %s %s", item.Type, item.Variant)
					}
					seen[pair] = true
				}
			}
		}
	}
}

// Submit assembles the order, registers the school as a partner when
// requested, and appends the order in pending state.
func (u *OrderUseCase) Submit(ctx context.Context, in BulkOrderInput) (*model.OrderRecord, error) {
	record, err := u.Assemble(in)
	if err != nil {
		return nil, err
	}
	if in.NewSchool {
		if err := u.schools.Append(ctx, u.deriveSchool(in)); err != nil {
			return nil, err
		}
	}
	if err := u.orders.Append(ctx, *record); err != nil {
		return nil, err
	}
	return record, nil
}

// deriveSchool builds a partner-school entry from the order form, with
// placeholder metadata until the school is onboarded for real.
func (u *OrderUseCase) deriveSchool(in BulkOrderInput) model.School {
	book := ledger.FromLedger(in.Ledger)
	uniforms := model.UniformSet{}
	prices := map[model.Gender]float64{}
	for _, g := range model.Genders() {
		uniforms[g] = map[model.Category][]string{}
		for _, c := range model.Categories() {
			names := []string{}
			for _, item := range book.Items(g, c) {
				if item.Type == "" {
					continue
				}
				names = append(names, strings.TrimSpace(item.Type+" "+item.Variant))
			}
			uniforms[g][c] = names
		}
		prices[g] = book.GenderTotal(g)
	}
	return model.School{
		ID:                  u.newID(),
		Name:                in.SchoolName,
		Location:            in.Location,
		Image:               newSchoolImage,
		Students:            "New",
		Established:         u.now().Year(),
		Uniforms:            uniforms,
		UniformPrice:        prices,
		Description:         newSchoolDescription,
		Rating:              5.0,
		Reviews:             0,
		Accreditation:       "Pending",
		Facilities:          []string{},
		Timings:             newSchoolTimings,
		Contact:             model.SchoolContact{Phone: in.Contact.Phone, Email: in.Contact.Email},
		AdmissionOpen:       true,
		UniformAvailability: newSchoolAvailability,
	}
}

// List returns every bulk order.
func (u *OrderUseCase) List(ctx context.Context) ([]model.OrderRecord, error) {
	return u.orders.List(ctx)
}

// Get returns one bulk order by id.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.OrderRecord, error) {
	return u.orders.GetByID(ctx, id)
}

// Cancel moves a pending order to cancelled.
func (u *OrderUseCase) Cancel(ctx context.Context, id string) (*model.OrderRecord, error) {
	return u.orders.UpdateStatus(ctx, id, model.OrderStatusCancelled)
}

// AwaitingSubmission returns pending bulk orders, oldest first.
func (u *OrderUseCase) AwaitingSubmission(ctx context.Context, limit int) ([]model.OrderRecord, error) {
	return u.orders.ListByStatus(ctx, model.OrderStatusPending, limit)
}

// MarkSubmitted finalizes a pending bulk order.
func (u *OrderUseCase) MarkSubmitted(ctx context.Context, id string) (*model.OrderRecord, error) {
	return u.orders.UpdateStatus(ctx, id, model.OrderStatusSubmitted)
}

// SubmitParent validates and appends an individual-student order. Line
// totals and the order total are recomputed from price and quantity.
func (u *OrderUseCase) SubmitParent(ctx context.Context, in ParentOrderInput) (*model.ParentOrder, error) {
	fields := domainErrors.FieldErrors{}
	if strings.TrimSpace(in.StudentName) == "" {
		fields["studentName"] = "student name is required"
	}
	if strings.TrimSpace(in.SchoolName) == "" {
		fields["schoolName"] = "school name is required"
	}
	if in.LevelID != "" {
		if _, ok := registry.LevelByID(in.LevelID); !ok {
			fields["level"] = fmt.Sprintf("unknown level %q", in.LevelID)
		}
	}
	for i, item := range in.Items {
		if item.Price < 0 {
			fields[fmt.Sprintf("items[%d].price", i)] = "price must not be negative"
		}
		if item.Quantity < 0 {
			fields[fmt.Sprintf("items[%d].quantity", i)] = "quantity must not be negative"
		}
	}
	if len(fields) > 0 {
		return nil, fields
	}

	var total float64
	items := make([]model.OrderLine, len(in.Items))
	for i, item := range in.Items {
		item.TotalPrice = item.Price * float64(item.Quantity)
		if item.LevelType == "" {
			item.LevelType = in.LevelID
		}
		items[i] = item
		total += item.TotalPrice
	}

	order := model.ParentOrder{
		ID:          u.newID(),
		StudentName: in.StudentName,
		SchoolName:  in.SchoolName,
		LevelID:     in.LevelID,
		Items:       items,
		OrderDate:   u.now().UTC(),
		Status:      model.OrderStatusPending,
		TotalAmount: total,
	}
	if err := u.parents.Append(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListParent returns every individual-student order.
func (u *OrderUseCase) ListParent(ctx context.Context) ([]model.ParentOrder, error) {
	return u.parents.List(ctx)
}

// CancelParent moves a pending parent order to cancelled.
func (u *OrderUseCase) CancelParent(ctx context.Context, id string) (*model.ParentOrder, error) {
	return u.parents.UpdateStatus(ctx, id, model.OrderStatusCancelled)
}

// ParentAwaitingSubmission returns pending parent orders, oldest first.
func (u *OrderUseCase) ParentAwaitingSubmission(ctx context.Context, limit int) ([]model.ParentOrder, error) {
	return u.parents.ListByStatus(ctx, model.OrderStatusPending, limit)
}

// MarkParentSubmitted finalizes a pending parent order.
func (u *OrderUseCase) MarkParentSubmitted(ctx context.Context, id string) (*model.ParentOrder, error) {
	return u.parents.UpdateStatus(ctx, id, model.OrderStatusSubmitted)
}
