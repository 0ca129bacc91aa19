package models

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name               string
		page, limit, total int
		wantPages          int
		wantNext, wantPrev bool
		wantStart, wantEnd int
	}{
		{"empty collection", 1, 10, 0, 0, false, false, 0, 0},
		{"second page of eight", 2, 5, 8, 2, false, true, 5, 8},
		{"first page of eight", 1, 5, 8, 2, true, false, 0, 5},
		{"beyond range", 4, 5, 8, 2, false, true, 8, 8},
		{"defaults applied", 0, 0, 25, 3, true, false, 0, 10},
		{"huge page stays empty", 1<<62 + 1, 2, 8, 4, false, true, 8, 8},
		{"huge limit", 1, 1 << 62, 8, 1, false, false, 0, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			s, e := p.Bounds(tt.total)
			assert.Equal(t, tt.wantStart, s)
			assert.Equal(t, tt.wantEnd, e)
		})
	}
}

func TestQueryValues_OmitsAbsentParams(t *testing.T) {
	q := Query{Search: "  ", Status: "all", Filters: map[string]string{"account_type": "bank", "category": ""}, Page: 2}
	v := q.Values()

	assert.Equal(t, url.Values{"account_type": {"bank"}, "page": {"2"}}, v)
	assert.Empty(t, Query{}.Values())
}

func TestQueryFromValues_RoundTrip(t *testing.T) {
	q := Query{Search: "bca", Status: "active", Filters: map[string]string{"account_type": "bank"}, Page: 3, Limit: 5, SortBy: "bank_name", SortOrder: SortAsc}
	got := QueryFromValues(q.Values())
	assert.Equal(t, q, got)

	bad := QueryFromValues(url.Values{"page": {"x"}, "limit": {"-1"}})
	assert.Zero(t, bad.Page)
	assert.Zero(t, bad.Limit)
}

func TestQueryConditions(t *testing.T) {
	q := Query{Status: "pending", Filters: map[string]string{"report_type": "product", "x": "all"}}
	assert.Equal(t, map[string]string{"status": "pending", "report_type": "product"}, q.Conditions())
	assert.Equal(t, "bca", Query{Search: " BCA "}.Term())
}

func TestValidateCategoryInput(t *testing.T) {
	require.NoError(t, ValidateCategoryInput(CategoryInput{Name: "Books"}))

	err := ValidateCategoryInput(CategoryInput{Name: "B", Status: "gone"})
	require.Error(t, err)
	v, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, v, "name")
	assert.Contains(t, v, "status")

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	d := string(long)
	err = ValidateCategoryPatch(CategoryPatch{Description: &d})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}

func TestCategoryPatchApply_OnlyPresentFields(t *testing.T) {
	c := Category{ID: 1, Name: "Books", Description: "paper", Status: StatusActive, ProductCount: 4}
	name := "E-books"
	CategoryPatch{Name: &name}.Apply(&c)

	assert.Equal(t, "E-books", c.Name)
	assert.Equal(t, "paper", c.Description)
	assert.Equal(t, StatusActive, c.Status)
	assert.Equal(t, 4, c.ProductCount)
}

func TestAssign_FillsInputsAndPatches(t *testing.T) {
	items, err := AssignmentsFromStrings([]string{"bank_name=BCA", "account_number=0123", "is_active=true"})
	require.NoError(t, err)

	var in BankAccountInput
	require.NoError(t, Assign(&in, items))
	assert.Equal(t, "0123", in.AccountNumber)
	assert.True(t, in.IsActive)

	var p PaymentPatch
	require.NoError(t, Assign(&p, []Assignment{{Name: "amount", Value: "150000.50"}, {Name: "notes", Value: "a=b"}}))
	require.NotNil(t, p.Amount)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("150000.5")))
	assert.Nil(t, p.Status)
	assert.Equal(t, "a=b", *p.Notes)

	assert.Error(t, Assign(&p, []Assignment{{Name: "nope", Value: "1"}}))
	assert.Error(t, Assign(in, nil))

	_, err = AssignmentsFromStrings([]string{"justname"})
	assert.ErrorIs(t, err, ErrIncorrectAssignment)
}

func TestEntityFields(t *testing.T) {
	b := &BankAccount{ID: 7, AccountType: AccountTypeEwallet, IsActive: true}
	v, ok := b.Field("status")
	require.True(t, ok)
	assert.Equal(t, StatusActive, v)

	_, ok = b.Field("unknown")
	assert.False(t, ok)

	p := &PaymentOrder{Amount: decimal.NewFromInt(1250)}
	v, _ = p.Field("amount")
	assert.Equal(t, "1250", v)
}
