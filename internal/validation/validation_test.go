package validation

import (
	"strings"
	"testing"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/types"
)

func strPtr(s string) *string { return &s }

func TestRegisterUserSchema(t *testing.T) {
	cases := []struct {
		name     string
		req      types.RegisterUserRequest
		wantErrs []string
	}{
		{
			name: "valid",
			req:  types.RegisterUserRequest{Username: "alice", Password: "pw123456", Name: "Alice"},
		},
		{
			name: "trims_whitespace",
			req:  types.RegisterUserRequest{Username: "  alice  ", Password: "pw123456", Name: " Alice "},
		},
		{
			name:     "all_missing_aggregates",
			req:      types.RegisterUserRequest{},
			wantErrs: []string{"username", "password", "name"},
		},
		{
			name:     "short_password",
			req:      types.RegisterUserRequest{Username: "alice", Password: "pw", Name: "Alice"},
			wantErrs: []string{"password"},
		},
		{
			name:     "short_username",
			req:      types.RegisterUserRequest{Username: "al", Password: "pw123456", Name: "Alice"},
			wantErrs: []string{"username"},
		},
		{
			name:     "long_username",
			req:      types.RegisterUserRequest{Username: strings.Repeat("a", 101), Password: "pw123456", Name: "Alice"},
			wantErrs: []string{"username"},
		},
		{
			name:     "whitespace_only_name",
			req:      types.RegisterUserRequest{Username: "alice", Password: "pw123456", Name: "   "},
			wantErrs: []string{"name"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := RegisterUser(&tc.req)
			assertSchemaResult(t, err, tc.wantErrs)
		})
	}
}

func TestUpdateUserSchema(t *testing.T) {
	cases := []struct {
		name    string
		req     types.UpdateUserRequest
		wantErr bool
	}{
		{name: "name_only", req: types.UpdateUserRequest{Name: strPtr("New Name")}},
		{name: "password_only", req: types.UpdateUserRequest{Password: strPtr("newpass1")}},
		{name: "nothing_provided", req: types.UpdateUserRequest{}, wantErr: true},
		{name: "short_password", req: types.UpdateUserRequest{Password: strPtr("pw")}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := UpdateUser(&tc.req)
			if (err != nil) != tc.wantErr {
				t.Fatalf("UpdateUser(%+v) error = %v, wantErr %v", tc.req, err, tc.wantErr)
			}
		})
	}
}

func TestCreateContactSchema(t *testing.T) {
	cases := []struct {
		name     string
		req      types.CreateContactRequest
		wantErrs []string
	}{
		{
			name: "minimal",
			req:  types.CreateContactRequest{FirstName: "Jo"},
		},
		{
			name: "full",
			req: types.CreateContactRequest{
				FirstName: "Jo",
				LastName:  strPtr("Lee"),
				Email:     strPtr("jo@x.com"),
				Phone:     strPtr("5551234567"),
			},
		},
		{
			name:     "missing_first_name",
			req:      types.CreateContactRequest{Email: strPtr("jo@x.com")},
			wantErrs: []string{"first_name"},
		},
		{
			name:     "bad_email",
			req:      types.CreateContactRequest{FirstName: "Jo", Email: strPtr("not-an-email")},
			wantErrs: []string{"email"},
		},
		{
			name: "aggregates_multiple",
			req: types.CreateContactRequest{
				Email: strPtr("nope"),
				Phone: strPtr(strings.Repeat("5", 21)),
			},
			wantErrs: []string{"first_name", "email", "phone"},
		},
		{
			name: "blank_optional_treated_absent",
			req:  types.CreateContactRequest{FirstName: "Jo", Email: strPtr("   ")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CreateContact(&tc.req)
			assertSchemaResult(t, err, tc.wantErrs)
		})
	}
}

func TestSearchContactsSchema(t *testing.T) {
	cases := []struct {
		name     string
		req      types.SearchContactsRequest
		wantErrs []string
	}{
		{name: "defaults", req: types.SearchContactsRequest{Page: 1, Size: 10}},
		{name: "max_size", req: types.SearchContactsRequest{Page: 1, Size: 100}},
		{name: "page_zero", req: types.SearchContactsRequest{Page: 0, Size: 10}, wantErrs: []string{"page"}},
		{name: "size_zero", req: types.SearchContactsRequest{Page: 1, Size: 0}, wantErrs: []string{"size"}},
		{name: "size_over_cap", req: types.SearchContactsRequest{Page: 1, Size: 101}, wantErrs: []string{"size"}},
		{
			name: "filters_pass_through",
			req:  types.SearchContactsRequest{Name: strPtr("jo"), Email: strPtr("x"), Phone: strPtr("555"), Page: 1, Size: 10},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := SearchContacts(&tc.req)
			assertSchemaResult(t, err, tc.wantErrs)
		})
	}
}

func TestCreateAddressSchema(t *testing.T) {
	cases := []struct {
		name     string
		req      types.CreateAddressRequest
		wantErrs []string
	}{
		{
			name: "minimal",
			req:  types.CreateAddressRequest{Country: "Indonesia", PostalCode: "12345"},
		},
		{
			name:     "missing_required",
			req:      types.CreateAddressRequest{Street: strPtr("Jl. Sudirman 1")},
			wantErrs: []string{"country", "postal_code"},
		},
		{
			name:     "postal_code_too_long",
			req:      types.CreateAddressRequest{Country: "Indonesia", PostalCode: "12345678901"},
			wantErrs: []string{"postal_code"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CreateAddress(&tc.req)
			assertSchemaResult(t, err, tc.wantErrs)
		})
	}
}

// assertSchemaResult checks the error is a validation failure naming exactly
// the expected fields (no more, no fewer).
func assertSchemaResult(t *testing.T, err error, wantFields []string) {
	t.Helper()
	if len(wantFields) == 0 {
		if err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected validation error for fields %v, got nil", wantFields)
	}
	ae := apierr.From(err)
	if ae == nil || ae.Code != apierr.CodeValidation {
		t.Fatalf("expected %s failure, got %v", apierr.CodeValidation, err)
	}
	var vErr *Error
	if !asValidationError(err, &vErr) {
		t.Fatalf("expected aggregated *validation.Error, got %T", ae.Err)
	}
	got := map[string]bool{}
	for _, fe := range vErr.Fields {
		got[fe.Field] = true
	}
	if len(got) != len(wantFields) {
		t.Fatalf("violated fields = %v, want %v", vErr.Fields, wantFields)
	}
	for _, f := range wantFields {
		if !got[f] {
			t.Fatalf("missing violation for field %q in %v", f, vErr.Fields)
		}
	}
}

func asValidationError(err error, target **Error) bool {
	ae := apierr.From(err)
	if ae == nil {
		return false
	}
	v, ok := ae.Err.(*Error)
	if !ok {
		return false
	}
	*target = v
	return true
}
