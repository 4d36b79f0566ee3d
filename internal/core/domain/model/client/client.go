// Package client holds the Client entity. Clients are maintained by an external
// administrative process; the order rule engine only reads them.
package client

import (
	"errors"
	"strings"

	"wholesale/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client was not created through RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via RestoreClient")

// Client is a wholesale customer identified by an externally assigned code.
// The number of articles a client ever ordered is derived from its orders and
// is read through ports.ClientRepository, not stored here.
type Client struct {
	code          string
	company       string
	address       string
	isConstructed bool
}

// RestoreClient rebuilds a client from persisted state.
// code and company are required; the address may be empty.
func RestoreClient(code, company, address string) (*Client, error) {
	c := &Client{
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setCode(code),
		c.setCompany(company),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the client was created through RestoreClient.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// Code returns the client key.
func (c *Client) Code() string {
	return c.code
}

// Company returns the company name.
func (c *Client) Company() string {
	return c.company
}

// Address returns the postal address, used as the default delivery address of new orders.
func (c *Client) Address() string {
	return c.address
}

func (c *Client) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("client code")
	}
	c.code = code
	return nil
}

func (c *Client) setCompany(company string) error {
	if strings.TrimSpace(company) == "" {
		return errs.NewValueIsRequiredError("company")
	}
	c.company = company
	return nil
}
