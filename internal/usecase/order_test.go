package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/test"
)

func fixedOrderUseCase(orders *test.OrderRepositoryStub, schools *test.SchoolRepositoryStub, parents *test.ParentOrderRepositoryStub) *OrderUseCase {
	u := NewOrderUseCase(orders, schools, parents, true)
	u.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	seq := 0
	u.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return u
}

func validInput() BulkOrderInput {
	l := model.NewLedger()
	l[model.GenderBoys][model.CategorySummer] = []model.LineItem{
		{ID: "r1", Type: "shirt", Variant: "Half Sleeve", Price: 10, Quantity: 2},
		{ID: "r2", Type: "trousers", Variant: "Regular Fit", Price: 50, Quantity: 1},
	}
	return BulkOrderInput{
		SchoolName: "Greenwood High",
		Location:   "Hyderabad",
		Contact:    model.Contact{Person: "A. Rao", Phone: "9000000000", Email: "rao@example.com"},
		LevelID:    "o_level",
		Ledger:     l,
	}
}

func TestAssembleComputesTotals(t *testing.T) {
	u := fixedOrderUseCase(&test.OrderRepositoryStub{}, &test.SchoolRepositoryStub{}, &test.ParentOrderRepositoryStub{})

	record, err := u.Assemble(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.TotalAmount != 70 {
		t.Fatalf("expected total 70, got %v", record.TotalAmount)
	}
	if record.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", record.Status)
	}

	lines := record.Uniforms[model.GenderBoys][model.CategorySummer]
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].TotalPrice != 20 || lines[1].TotalPrice != 50 {
		t.Fatalf("row totals not recomputed: %+v", lines)
	}
	if lines[0].LevelType != "o_level" {
		t.Fatalf("expected level fallback to order level, got %q", lines[0].LevelType)
	}
}

func TestAssembleIgnoresStaleRowTotals(t *testing.T) {
	u := fixedOrderUseCase(&test.OrderRepositoryStub{}, &test.SchoolRepositoryStub{}, &test.ParentOrderRepositoryStub{})

	in := validInput()
	in.Ledger[model.GenderBoys][model.CategorySummer][0].TotalPrice = 9999

	record, err := u.Assemble(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.TotalAmount != 70 {
		t.Fatalf("stale cached total leaked into amount: %v", record.TotalAmount)
	}
}

func TestAssembleRowLevelOverridesOrderLevel(t *testing.T) {
	u := fixedOrderUseCase(&test.OrderRepositoryStub{}, &test.SchoolRepositoryStub{}, &test.ParentOrderRepositoryStub{})

	in := validInput()
	in.Ledger[model.GenderBoys][model.CategorySummer][0].Level = "a_level"

	record, err := u.Assemble(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := record.Uniforms[model.GenderBoys][model.CategorySummer]
	if lines[0].LevelType != "a_level" {
		t.Fatalf("expected row level kept, got %q", lines[0].LevelType)
	}
	if lines[1].LevelType != "o_level" {
		t.Fatalf("expected order level fallback, got %q", lines[1].LevelType)
	}
}

func TestAssembleValidation(t *testing.T) {
	u := fixedOrderUseCase(&test.OrderRepositoryStub{}, &test.SchoolRepositoryStub{}, &test.ParentOrderRepositoryStub{})

	in := validInput()
	in.SchoolName = " "
	in.Contact.Email = ""
	in.LevelID = "kindergarten"
	in.Ledger[model.GenderBoys][model.CategorySummer][0].Price = -5

	_, err := u.Assemble(in)
	var fields domainErrors.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatal("field errors must match ErrValidation")
	}
	for _, key := range []string{"name", "contactEmail", "level", "uniforms.boys.summer[0].price"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing field error %q in %v", key, fields)
		}
	}
}

func TestAssembleRejectsDuplicatesWhenDisallowed(t *testing.T) {
	orders := &test.OrderRepositoryStub{}
	u := NewOrderUseCase(orders, &test.SchoolRepositoryStub{}, &test.ParentOrderRepositoryStub{}, false)

	in := validInput()
	in.Ledger[model.GenderBoys][model.CategorySummer] = append(
		in.Ledger[model.GenderBoys][model.CategorySummer],
		model.LineItem{ID: "r3", Type: "shirt", Variant: "Half Sleeve", Price: 10, Quantity: 1},
	)

	_, err := u.Assemble(in)
	var fields domainErrors.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fields["uniforms.boys.summer[2]"]; !ok {
		t.Fatalf("expected duplicate row error, got %v", fields)
	}
}

func TestSubmitAppendsPendingOrder(t *testing.T) {
	orders := &test.OrderRepositoryStub{}
	schools := &test.SchoolRepositoryStub{}
	u := fixedOrderUseCase(orders, schools, &test.ParentOrderRepositoryStub{})

	record, err := u.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders.Records) != 1 || orders.Records[0].ID != record.ID {
		t.Fatalf("order not appended: %+v", orders.Records)
	}
	if len(schools.Schools) != 0 {
		t.Fatalf("school must not be registered without the flag: %+v", schools.Schools)
	}
}

func TestSubmitRegistersNewSchool(t *testing.T) {
	orders := &test.OrderRepositoryStub{}
	schools := &test.SchoolRepositoryStub{}
	u := fixedOrderUseCase(orders, schools, &test.ParentOrderRepositoryStub{})

	in := validInput()
	in.NewSchool = true

	if _, err := u.Submit(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schools.Schools) != 1 {
		t.Fatalf("expected school registered, got %+v", schools.Schools)
	}
	school := schools.Schools[0]
	if school.Name != "Greenwood High" || school.Accreditation != "Pending" || !school.AdmissionOpen {
		t.Fatalf("unexpected derived school: %+v", school)
	}
	names := school.Uniforms[model.GenderBoys][model.CategorySummer]
	if len(names) != 2 || names[0] != "shirt Half Sleeve" {
		t.Fatalf("unexpected flattened uniforms: %v", names)
	}
	if school.UniformPrice[model.GenderBoys] != 70 {
		t.Fatalf("unexpected gender price: %v", school.UniformPrice)
	}
	if school.UniformPrice[model.GenderGirls] != 0 {
		t.Fatalf("unexpected girls price: %v", school.UniformPrice)
	}
}

func TestCancelAndMarkSubmitted(t *testing.T) {
	orders := &test.OrderRepositoryStub{}
	u := fixedOrderUseCase(orders, &test.SchoolRepositoryStub{}, &test.ParentOrderRepositoryStub{})

	record, err := u.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := u.MarkSubmitted(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != model.OrderStatusSubmitted {
		t.Fatalf("expected submitted, got %s", updated.Status)
	}

	if _, err := u.Cancel(context.Background(), record.ID); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSubmitParentComputesTotals(t *testing.T) {
	parents := &test.ParentOrderRepositoryStub{}
	u := fixedOrderUseCase(&test.OrderRepositoryStub{}, &test.SchoolRepositoryStub{}, parents)

	order, err := u.SubmitParent(context.Background(), ParentOrderInput{
		StudentName: "Anika",
		SchoolName:  "Greenwood High",
		LevelID:     "o_level",
		Items: []model.OrderLine{
			{LineItem: model.LineItem{ID: "p1", Type: "shirt", Price: 25, Quantity: 3, TotalPrice: 1}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.TotalAmount != 75 {
		t.Fatalf("expected total 75, got %v", order.TotalAmount)
	}
	if order.Items[0].TotalPrice != 75 || order.Items[0].LevelType != "o_level" {
		t.Fatalf("unexpected item: %+v", order.Items[0])
	}
	if len(parents.Orders) != 1 {
		t.Fatalf("order not appended: %+v", parents.Orders)
	}
}

func TestSubmitParentValidation(t *testing.T) {
	u := fixedOrderUseCase(&test.OrderRepositoryStub{}, &test.SchoolRepositoryStub{}, &test.ParentOrderRepositoryStub{})

	_, err := u.SubmitParent(context.Background(), ParentOrderInput{
		Items: []model.OrderLine{{LineItem: model.LineItem{Price: -1}}},
	})
	var fields domainErrors.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected field errors, got %v", err)
	}
	for _, key := range []string{"studentName", "schoolName", "items[0].price"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing field error %q in %v", key, fields)
		}
	}
}

func TestAssembleRejectsUnknownLedgerKeys(t *testing.T) {
	u := fixedOrderUseCase(&test.OrderRepositoryStub{}, &test.SchoolRepositoryStub{}, &test.ParentOrderRepositoryStub{})

	in := validInput()
	in.Ledger["unisex"] = map[model.Category][]model.LineItem{
		model.CategorySummer: {{Price: 10, Quantity: 2}},
	}
	in.Ledger[model.GenderBoys]["weird"] = []model.LineItem{{Price: 5, Quantity: 3}}

	record, err := u.Assemble(in)
	if record != nil {
		t.Fatalf("expected no record, got %+v", record)
	}
	var fields domainErrors.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected field errors, got %v", err)
	}
	for _, key := range []string{"uniforms.unisex", "uniforms.boys.weird"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing field error %q in %v", key, fields)
		}
	}
}
