package hrms

import (
	"context"
	"fmt"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
)

// The backend exposes no login endpoint and no role claims; both login
// checks are ordinary authenticated reads issued for their authorization
// outcome rather than their data.

// VerifyCredential validates a credential against GET /employees, a
// resource every authenticated role can read.
func (c *Client) VerifyCredential(ctx context.Context, cred domainauth.Credential) error {
	return c.get(ctx, cred, "/employees", nil)
}

// ProbePayrollAccess reads one payroll record, which only managers and
// above are authorized for. Any failure, including not-found, reads as
// "not a manager" to the caller.
func (c *Client) ProbePayrollAccess(ctx context.Context, cred domainauth.Credential, employeeID int) error {
	return c.get(ctx, cred, fmt.Sprintf("/payroll/%d", employeeID), nil)
}
