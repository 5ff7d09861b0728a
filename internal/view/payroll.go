package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"billdesk/internal/bridge"
)

// PayrollView joins the employee roster with their payroll history. Both
// fetches run concurrently and the view fails as a whole if either does.
type PayrollView struct {
	session Session
	client  *bridge.Client

	Employees []bridge.Employee
	Records   []bridge.PayrollRecord
}

func NewPayrollView(ctx context.Context, session Session, client *bridge.Client) (*PayrollView, error) {
	v := &PayrollView{session: session, client: client}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		employees, err := client.GetEmployees(gctx)
		if err != nil {
			return err
		}
		v.Employees = employees
		return nil
	})
	g.Go(func() error {
		records, err := client.GetPayrollRecords(gctx)
		if err != nil {
			return err
		}
		v.Records = records
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return v, nil
}

// RecordsFor returns one employee's payroll history, newest first as
// delivered by the host.
func (v *PayrollView) RecordsFor(employeeID int64) []bridge.PayrollRecord {
	var out []bridge.PayrollRecord
	for _, r := range v.Records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}

// MarkPaid flips a pending payroll record to Paid.
func (v *PayrollView) MarkPaid(ctx context.Context, id int64) error {
	if err := v.client.UpdatePayrollStatus(ctx, id, "Paid"); err != nil {
		return err
	}
	for i := range v.Records {
		if v.Records[i].ID == id {
			v.Records[i].Status = "Paid"
		}
	}
	return nil
}
