package schema

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/clauseparse/internal/contract"
)

func validDoc() *contract.Contract {
	date := "2024-01-05"
	num := "1"
	return &contract.Contract{
		Title:         "MASTER SERVICES AGREEMENT",
		ContractType:  "Master Services Agreement",
		EffectiveDate: &date,
		Sections: []contract.Section{
			{
				Title:  "DEFINITIONS",
				Number: &num,
				Clauses: []contract.Clause{
					{Text: "Foo means bar.", Label: "(a)", Index: 0},
					{Text: "Baz means qux.", Label: "(b)", Index: 1},
				},
			},
		},
	}
}

func hasViolation(t *testing.T, errs []string, substr string) {
	t.Helper()
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return
		}
	}
	t.Errorf("expected a violation containing %q, got %v", substr, errs)
}

func TestValidate_Conforming(t *testing.T) {
	if errs := Validate(validDoc()); len(errs) != 0 {
		t.Errorf("expected no violations, got %v", errs)
	}
}

func TestValidate_Placeholder(t *testing.T) {
	if errs := Validate(contract.Placeholder()); len(errs) != 0 {
		t.Errorf("expected placeholder to conform, got %v", errs)
	}
}

func TestValidate_NilDocument(t *testing.T) {
	errs := Validate(nil)
	if len(errs) != 1 || errs[0] != "document missing" {
		t.Errorf("unexpected violations: %v", errs)
	}
}

func TestValidate_EmptyTitleAndType(t *testing.T) {
	c := validDoc()
	c.Title = "  "
	c.ContractType = ""
	errs := Validate(c)
	hasViolation(t, errs, "title invalid")
	hasViolation(t, errs, "contract_type invalid")
}

func TestValidate_NonISODate(t *testing.T) {
	c := validDoc()
	bad := "January 5, 2024"
	c.EffectiveDate = &bad
	hasViolation(t, Validate(c), "effective_date not ISO")
}

func TestValidate_EmptySection(t *testing.T) {
	c := validDoc()
	c.Sections = append(c.Sections, contract.Section{Title: "EMPTY"})
	hasViolation(t, Validate(c), "sections[1].clauses missing or empty")
}

func TestValidate_BlankClauseText(t *testing.T) {
	c := validDoc()
	c.Sections[0].Clauses[1].Text = "   "
	hasViolation(t, Validate(c), "sections[0].clauses[1].text invalid")
}

func TestValidate_IndexMismatch(t *testing.T) {
	c := validDoc()
	c.Sections[0].Clauses[1].Index = 7
	hasViolation(t, Validate(c), "sections[0].clauses[1].index must be 1")
}

func TestCheck(t *testing.T) {
	if ok, errs := Check(validDoc()); !ok || len(errs) != 0 {
		t.Errorf("expected pass, got ok=%v errs=%v", ok, errs)
	}
	bad := validDoc()
	bad.Title = ""
	if ok, errs := Check(bad); ok || len(errs) == 0 {
		t.Error("expected failure with violations")
	}
}

func TestAssert(t *testing.T) {
	if err := Assert(validDoc()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	bad := validDoc()
	bad.Title = ""
	err := Assert(bad)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "title invalid") {
		t.Errorf("expected violation detail in error, got %v", err)
	}
}

func TestFix_DropsClauselessSections(t *testing.T) {
	c := validDoc()
	c.Sections = append(c.Sections, contract.Section{Title: "EMPTY"})
	fixed := Fix(c)
	if len(fixed.Sections) != 1 {
		t.Fatalf("expected empty section dropped, got %d sections", len(fixed.Sections))
	}
	// Input untouched.
	if len(c.Sections) != 2 {
		t.Error("expected input to be unchanged")
	}
}

func TestFix_NullsNonISODate(t *testing.T) {
	c := validDoc()
	bad := "Jan 5 2024"
	c.EffectiveDate = &bad
	fixed := Fix(c)
	if fixed.EffectiveDate != nil {
		t.Errorf("expected nil date, got %q", *fixed.EffectiveDate)
	}
}

func TestFix_ReindexesAndNormalizes(t *testing.T) {
	num := " 2 "
	c := &contract.Contract{
		Title:        "T",
		ContractType: "Agreement",
		Sections: []contract.Section{
			{
				Title:  "A",
				Number: &num,
				Clauses: []contract.Clause{
					{Text: "some   spaced   text", Label: " (a) ", Index: 5},
					{Text: "next", Index: 9},
				},
			},
		},
	}
	fixed := Fix(c)
	sec := fixed.Sections[0]
	if *sec.Number != "2" {
		t.Errorf("expected trimmed number, got %q", *sec.Number)
	}
	if sec.Clauses[0].Text != "some spaced text" {
		t.Errorf("expected collapsed text, got %q", sec.Clauses[0].Text)
	}
	if sec.Clauses[0].Label != "(a)" {
		t.Errorf("expected trimmed label, got %q", sec.Clauses[0].Label)
	}
	if sec.Clauses[0].Index != 0 || sec.Clauses[1].Index != 1 {
		t.Errorf("expected reindexed clauses, got %d and %d", sec.Clauses[0].Index, sec.Clauses[1].Index)
	}
}

func TestFix_NeverInventsRequiredFields(t *testing.T) {
	c := &contract.Contract{Sections: []contract.Section{}}
	fixed := Fix(c)
	if fixed.Title != "" || fixed.ContractType != "" {
		t.Errorf("expected missing fields left empty, got %q/%q", fixed.Title, fixed.ContractType)
	}
	if ok, _ := Check(fixed); ok {
		t.Error("expected the fixed document to still fail validation")
	}
}

func TestFix_Idempotent(t *testing.T) {
	c := validDoc()
	bad := "not a date"
	c.EffectiveDate = &bad
	c.Sections = append(c.Sections, contract.Section{Title: "EMPTY"})

	once := Fix(c)
	twice := Fix(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected Fix to be idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestFix_ThenValidatePasses(t *testing.T) {
	c := validDoc()
	bad := "nope"
	c.EffectiveDate = &bad
	c.Sections = append(c.Sections, contract.Section{Title: "EMPTY"})
	c.Sections[0].Clauses[1].Index = 42

	if ok, errs := Check(Fix(c)); !ok {
		t.Errorf("expected fixed document to pass, got %v", errs)
	}
}
