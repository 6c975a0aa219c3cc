package booking

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"ratefinder/internal/pkg/errs"
)

const maxCustomerNameLength = 200

// Customer is the person a booking is made for.
type Customer struct {
	name  string
	email string
}

// NewCustomer trims and validates both fields. The email must be a bare
// address such as "asha@example.com".
func NewCustomer(name, email string) (Customer, error) {
	c := Customer{}
	if err := errors.Join(c.setName(name), c.setEmail(email)); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if len(name) > maxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customer name length", len(name), 1, maxCustomerNameLength)
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("customer email", fmt.Errorf("%q is not an email address", email))
	}
	c.email = strings.ToLower(email)
	return nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
