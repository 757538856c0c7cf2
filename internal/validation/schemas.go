package validation

import (
	"errors"

	"github.com/arioseno/contactbook-backend/internal/apierr"
	"github.com/arioseno/contactbook-backend/internal/normalization"
	"github.com/arioseno/contactbook-backend/internal/types"
)

// The schema functions trim their input in place before checking, so a field
// of only whitespace counts as absent (optional) or missing (required).

func RegisterUser(req *types.RegisterUserRequest) error {
	req.Username = normalization.Trim(req.Username)
	req.Name = normalization.Trim(req.Name)
	return Check(
		StringRule{Field: "username", Value: &req.Username, Required: true, Min: 3, Max: 100},
		StringRule{Field: "password", Value: &req.Password, Required: true, Min: 6, Max: 100},
		StringRule{Field: "name", Value: &req.Name, Required: true, Min: 1, Max: 100},
	)
}

func LoginUser(req *types.LoginUserRequest) error {
	req.Username = normalization.Trim(req.Username)
	return Check(
		StringRule{Field: "username", Value: &req.Username, Required: true, Max: 100},
		StringRule{Field: "password", Value: &req.Password, Required: true, Max: 100},
	)
}

func UpdateUser(req *types.UpdateUserRequest) error {
	req.Name = normalization.TrimPtr(req.Name)
	if req.Name == nil && req.Password == nil {
		return apierr.Validation(errors.New("at least one of name or password must be provided"))
	}
	return Check(
		StringRule{Field: "name", Value: req.Name, Min: 1, Max: 100},
		StringRule{Field: "password", Value: req.Password, Min: 6, Max: 100},
	)
}

func contactFieldRules(firstName *string, lastName, email, phone *string) []Rule {
	return []Rule{
		StringRule{Field: "first_name", Value: firstName, Required: true, Min: 1, Max: 100},
		StringRule{Field: "last_name", Value: lastName, Max: 100},
		StringRule{Field: "email", Value: email, Max: 100, Email: true},
		StringRule{Field: "phone", Value: phone, Max: 20},
	}
}

func CreateContact(req *types.CreateContactRequest) error {
	req.FirstName = normalization.Trim(req.FirstName)
	req.LastName = normalization.TrimPtr(req.LastName)
	req.Email = normalization.TrimPtr(req.Email)
	req.Phone = normalization.TrimPtr(req.Phone)
	return Check(contactFieldRules(&req.FirstName, req.LastName, req.Email, req.Phone)...)
}

func UpdateContact(req *types.UpdateContactRequest) error {
	req.FirstName = normalization.Trim(req.FirstName)
	req.LastName = normalization.TrimPtr(req.LastName)
	req.Email = normalization.TrimPtr(req.Email)
	req.Phone = normalization.TrimPtr(req.Phone)
	return Check(contactFieldRules(&req.FirstName, req.LastName, req.Email, req.Phone)...)
}

func SearchContacts(req *types.SearchContactsRequest) error {
	req.Name = normalization.TrimPtr(req.Name)
	req.Email = normalization.TrimPtr(req.Email)
	req.Phone = normalization.TrimPtr(req.Phone)
	return Check(
		StringRule{Field: "name", Value: req.Name, Min: 1, Max: 100},
		StringRule{Field: "email", Value: req.Email, Min: 1, Max: 100},
		StringRule{Field: "phone", Value: req.Phone, Min: 1, Max: 20},
		IntRule{Field: "page", Value: req.Page, Min: 1},
		IntRule{Field: "size", Value: req.Size, Min: 1, Max: 100},
	)
}

func addressFieldRules(street, city, province *string, country, postalCode *string) []Rule {
	return []Rule{
		StringRule{Field: "street", Value: street, Max: 100},
		StringRule{Field: "city", Value: city, Max: 100},
		StringRule{Field: "province", Value: province, Max: 100},
		StringRule{Field: "country", Value: country, Required: true, Min: 1, Max: 100},
		StringRule{Field: "postal_code", Value: postalCode, Required: true, Min: 1, Max: 10},
	}
}

func CreateAddress(req *types.CreateAddressRequest) error {
	req.Street = normalization.TrimPtr(req.Street)
	req.City = normalization.TrimPtr(req.City)
	req.Province = normalization.TrimPtr(req.Province)
	req.Country = normalization.Trim(req.Country)
	req.PostalCode = normalization.Trim(req.PostalCode)
	return Check(addressFieldRules(req.Street, req.City, req.Province, &req.Country, &req.PostalCode)...)
}

func UpdateAddress(req *types.UpdateAddressRequest) error {
	req.Street = normalization.TrimPtr(req.Street)
	req.City = normalization.TrimPtr(req.City)
	req.Province = normalization.TrimPtr(req.Province)
	req.Country = normalization.Trim(req.Country)
	req.PostalCode = normalization.Trim(req.PostalCode)
	return Check(addressFieldRules(req.Street, req.City, req.Province, &req.Country, &req.PostalCode)...)
}
