// Package command maps bridge command names onto the service layer. The
// same dispatcher backs both the in-process invoker of the desktop shell
// and the HTTP command endpoint.
package command

import (
	"context"
	"encoding/json"
	"fmt"

	"billdesk/internal/model"
	"billdesk/internal/service"
)

type actorKey struct{}

// WithActor stores the authenticated caller in the context for Dispatch.
func WithActor(ctx context.Context, actor service.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the caller stored by WithActor, or a zero Actor.
func ActorFrom(ctx context.Context) service.Actor {
	if actor, ok := ctx.Value(actorKey{}).(service.Actor); ok {
		return actor
	}
	return service.Actor{}
}

// Notifier pushes change events to connected clients. The websocket hub
// implements it; tests use a stub.
type Notifier interface {
	BroadcastEvent(resource, action string, id int64)
}

// ErrUnknownCommand is wrapped with the offending name by Dispatch.
var ErrUnknownCommand = fmt.Errorf("unknown command")

type handlerFunc func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error)

// Dispatcher routes named commands to services. It implements
// bridge.Dispatcher.
type Dispatcher struct {
	handlers  map[string]handlerFunc
	adminOnly map[string]bool
}

type Services struct {
	Customers service.CustomerService
	Products  service.ProductService
	Invoices  service.InvoiceService
	Dashboard service.DashboardService
	Settings  service.SettingsService
	Templates service.TemplateService
	Employees service.EmployeeService
	Payroll   service.PayrollService
	Audit     service.AuditService
	Users     service.UserService
	Export    service.ExportService
}

func NewDispatcher(svcs Services, notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		handlers:  make(map[string]handlerFunc),
		adminOnly: make(map[string]bool),
	}
	d.registerCustomerCommands(svcs.Customers, notifier)
	d.registerProductCommands(svcs.Products, notifier)
	d.registerInvoiceCommands(svcs.Invoices, svcs.Export, notifier)
	d.registerDashboardCommands(svcs.Dashboard)
	d.registerSettingsCommands(svcs.Settings)
	d.registerTemplateCommands(svcs.Templates, notifier)
	d.registerEmployeeCommands(svcs.Employees, notifier)
	d.registerPayrollCommands(svcs.Payroll, notifier)
	d.registerAuditCommands(svcs.Audit)
	d.registerUserCommands(svcs.Users)
	return d
}

// Dispatch runs one command. Admin-gated commands are rejected before the
// handler sees the arguments.
func (d *Dispatcher) Dispatch(ctx context.Context, command string, args json.RawMessage) (any, error) {
	handler, ok := d.handlers[command]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	actor := ActorFrom(ctx)
	if d.adminOnly[command] && !actor.IsAdmin() {
		return nil, fmt.Errorf("command %s requires admin access", command)
	}

	return handler(ctx, actor, args)
}

// Commands returns the registered command names; the swagger doc generator
// and tests use it.
func (d *Dispatcher) Commands() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	return names
}

func (d *Dispatcher) register(name string, admin bool, handler handlerFunc) {
	d.handlers[name] = handler
	if admin {
		d.adminOnly[name] = true
	}
}

func decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("invalid arguments: %w", err)
	}
	return v, nil
}

type idArgs struct {
	ID int64 `json:"id"`
}

type statusArgs struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// --- Customers ---

func (d *Dispatcher) registerCustomerCommands(svc service.CustomerService, notifier Notifier) {
	d.register("get_customers", false, func(ctx context.Context, _ service.Actor, _ json.RawMessage) (any, error) {
		return svc.ListCustomers(ctx)
	})
	d.register("create_customer", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.SaveCustomerRequest](raw)
		if err != nil {
			return nil, err
		}
		id, err := svc.CreateCustomer(ctx, actor, req)
		if err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleCustomers, "created", id)
		return id, nil
	})
	d.register("update_customer", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.SaveCustomerRequest](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.UpdateCustomer(ctx, actor, req); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleCustomers, "updated", req.ID)
		return nil, nil
	})
	d.register("delete_customer", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[idArgs](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.DeleteCustomer(ctx, actor, args.ID); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleCustomers, "deleted", args.ID)
		return nil, nil
	})
}

// --- Products ---

func (d *Dispatcher) registerProductCommands(svc service.ProductService, notifier Notifier) {
	d.register("get_products", false, func(ctx context.Context, _ service.Actor, _ json.RawMessage) (any, error) {
		return svc.ListProducts(ctx)
	})
	d.register("create_product", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.SaveProductRequest](raw)
		if err != nil {
			return nil, err
		}
		id, err := svc.CreateProduct(ctx, actor, req)
		if err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleProducts, "created", id)
		return id, nil
	})
	d.register("update_product", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.SaveProductRequest](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.UpdateProduct(ctx, actor, req); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleProducts, "updated", req.ID)
		return nil, nil
	})
	d.register("delete_product", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[idArgs](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.DeleteProduct(ctx, actor, args.ID); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleProducts, "deleted", args.ID)
		return nil, nil
	})
}

// --- Invoices ---

func (d *Dispatcher) registerInvoiceCommands(svc service.InvoiceService, export service.ExportService, notifier Notifier) {
	d.register("get_invoices", false, func(ctx context.Context, _ service.Actor, raw json.RawMessage) (any, error) {
		filter, err := decode[service.InvoiceListFilter](raw)
		if err != nil {
			return nil, err
		}
		return svc.ListInvoices(ctx, filter)
	})
	d.register("get_invoice_detail", false, func(ctx context.Context, _ service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[idArgs](raw)
		if err != nil {
			return nil, err
		}
		return svc.GetInvoiceDetail(ctx, args.ID)
	})
	d.register("create_invoice", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.CreateInvoiceRequest](raw)
		if err != nil {
			return nil, err
		}
		id, err := svc.CreateInvoice(ctx, actor, req)
		if err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleInvoices, "created", id)
		return id, nil
	})
	d.register("update_invoice_status", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[statusArgs](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.UpdateStatus(ctx, actor, args.ID, args.Status); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleInvoices, "updated", args.ID)
		return nil, nil
	})
	d.register("delete_invoice", true, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[idArgs](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.DeleteInvoice(ctx, actor, args.ID); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleInvoices, "deleted", args.ID)
		return nil, nil
	})
	d.register("export_invoice_pdf", false, func(ctx context.Context, _ service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.ExportInvoiceRequest](raw)
		if err != nil {
			return nil, err
		}
		return export.ExportInvoicePDF(ctx, req)
	})
}

// --- Dashboard ---

func (d *Dispatcher) registerDashboardCommands(svc service.DashboardService) {
	d.register("get_dashboard_stats", false, func(ctx context.Context, _ service.Actor, _ json.RawMessage) (any, error) {
		return svc.GetStats(ctx)
	})
}

// --- Settings ---

func (d *Dispatcher) registerSettingsCommands(svc service.SettingsService) {
	d.register("get_settings", false, func(ctx context.Context, _ service.Actor, _ json.RawMessage) (any, error) {
		return svc.GetSettings(ctx)
	})
	d.register("update_settings", true, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.SettingsPayload](raw)
		if err != nil {
			return nil, err
		}
		return svc.UpdateSettings(ctx, actor, req)
	})
}

// --- Custom templates ---

func (d *Dispatcher) registerTemplateCommands(svc service.TemplateService, notifier Notifier) {
	d.register("get_custom_templates", false, func(ctx context.Context, _ service.Actor, _ json.RawMessage) (any, error) {
		return svc.ListTemplates(ctx)
	})
	d.register("get_custom_template", false, func(ctx context.Context, _ service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[idArgs](raw)
		if err != nil {
			return nil, err
		}
		return svc.GetTemplate(ctx, args.ID)
	})
	d.register("create_custom_template", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.SaveTemplateRequest](raw)
		if err != nil {
			return nil, err
		}
		id, err := svc.CreateTemplate(ctx, actor, req)
		if err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleTemplates, "created", id)
		return id, nil
	})
	d.register("update_custom_template", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.SaveTemplateRequest](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.UpdateTemplate(ctx, actor, req); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleTemplates, "updated", req.ID)
		return nil, nil
	})
	d.register("delete_custom_template", false, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[idArgs](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.DeleteTemplate(ctx, actor, args.ID); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleTemplates, "deleted", args.ID)
		return nil, nil
	})
}

// --- Employees ---

func (d *Dispatcher) registerEmployeeCommands(svc service.EmployeeService, notifier Notifier) {
	d.register("get_employees", false, func(ctx context.Context, _ service.Actor, _ json.RawMessage) (any, error) {
		return svc.ListEmployees(ctx)
	})
	d.register("create_employee", true, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.SaveEmployeeRequest](raw)
		if err != nil {
			return nil, err
		}
		id, err := svc.CreateEmployee(ctx, actor, req)
		if err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleEmployees, "created", id)
		return id, nil
	})
	d.register("update_employee", true, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.SaveEmployeeRequest](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.UpdateEmployee(ctx, actor, req); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleEmployees, "updated", req.ID)
		return nil, nil
	})
	d.register("delete_employee", true, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[idArgs](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.DeleteEmployee(ctx, actor, args.ID); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModuleEmployees, "deleted", args.ID)
		return nil, nil
	})
}

// --- Payroll ---

func (d *Dispatcher) registerPayrollCommands(svc service.PayrollService, notifier Notifier) {
	d.register("get_payroll_records", false, func(ctx context.Context, _ service.Actor, _ json.RawMessage) (any, error) {
		return svc.ListRecords(ctx)
	})
	d.register("create_payroll_record", true, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.CreatePayrollRequest](raw)
		if err != nil {
			return nil, err
		}
		id, err := svc.CreateRecord(ctx, actor, req)
		if err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModulePayroll, "created", id)
		return id, nil
	})
	d.register("update_payroll_status", true, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[statusArgs](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.UpdateStatus(ctx, actor, args.ID, args.Status); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModulePayroll, "updated", args.ID)
		return nil, nil
	})
	d.register("delete_payroll_record", true, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[idArgs](raw)
		if err != nil {
			return nil, err
		}
		if err := svc.DeleteRecord(ctx, actor, args.ID); err != nil {
			return nil, err
		}
		notifier.BroadcastEvent(model.ModulePayroll, "deleted", args.ID)
		return nil, nil
	})
}

// --- Audit ---

func (d *Dispatcher) registerAuditCommands(svc service.AuditService) {
	d.register("get_audit_logs", true, func(ctx context.Context, _ service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
		}](raw)
		if err != nil {
			return nil, err
		}
		return svc.List(ctx, args.Page, args.Limit)
	})
}

// --- Users ---

func (d *Dispatcher) registerUserCommands(svc service.UserService) {
	d.register("get_users", true, func(ctx context.Context, _ service.Actor, _ json.RawMessage) (any, error) {
		return svc.ListUsers(ctx)
	})
	d.register("create_user", true, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		req, err := decode[service.CreateUserRequest](raw)
		if err != nil {
			return nil, err
		}
		return svc.CreateUser(ctx, actor, req)
	})
	d.register("delete_user", true, func(ctx context.Context, actor service.Actor, raw json.RawMessage) (any, error) {
		args, err := decode[idArgs](raw)
		if err != nil {
			return nil, err
		}
		return nil, svc.DeleteUser(ctx, actor, args.ID)
	})
}
