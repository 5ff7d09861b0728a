package command

import (
	"context"
	"encoding/json"
	"testing"

	"billdesk/internal/bridge"
	"billdesk/internal/model"
	"billdesk/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	events []string
}

func (n *stubNotifier) BroadcastEvent(resource, action string, id int64) {
	n.events = append(n.events, resource+"/"+action)
}

type stubCustomerService struct {
	created []service.SaveCustomerRequest
	deleted []int64
}

func (s *stubCustomerService) ListCustomers(_ context.Context) ([]service.CustomerResponse, error) {
	return []service.CustomerResponse{{ID: 1, Name: "Acme Traders"}}, nil
}
func (s *stubCustomerService) CreateCustomer(_ context.Context, _ service.Actor, req service.SaveCustomerRequest) (int64, error) {
	s.created = append(s.created, req)
	return 41, nil
}
func (s *stubCustomerService) UpdateCustomer(_ context.Context, _ service.Actor, _ service.SaveCustomerRequest) error {
	return nil
}
func (s *stubCustomerService) DeleteCustomer(_ context.Context, _ service.Actor, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubInvoiceService struct {
	deleted []int64
}

func (s *stubInvoiceService) CreateInvoice(_ context.Context, _ service.Actor, _ service.CreateInvoiceRequest) (int64, error) {
	return 1, nil
}
func (s *stubInvoiceService) ListInvoices(_ context.Context, _ service.InvoiceListFilter) ([]service.InvoiceResponse, error) {
	return nil, nil
}
func (s *stubInvoiceService) GetInvoiceDetail(_ context.Context, _ int64) (service.InvoiceResponse, error) {
	return service.InvoiceResponse{}, nil
}
func (s *stubInvoiceService) UpdateStatus(_ context.Context, _ service.Actor, _ int64, _ string) error {
	return nil
}
func (s *stubInvoiceService) DeleteInvoice(_ context.Context, _ service.Actor, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func newTestDispatcher() (*Dispatcher, *stubCustomerService, *stubInvoiceService, *stubNotifier) {
	customers := &stubCustomerService{}
	invoices := &stubInvoiceService{}
	notifier := &stubNotifier{}
	d := NewDispatcher(Services{Customers: customers, Invoices: invoices}, notifier)
	return d, customers, invoices, notifier
}

func TestDispatchUnknownCommand(t *testing.T) {
	d, _, _, _ := newTestDispatcher()

	_, err := d.Dispatch(context.Background(), "reticulate_splines", nil)
	require.ErrorIs(t, err, ErrUnknownCommand)
}

func TestDispatchDecodesArgsAndBroadcasts(t *testing.T) {
	d, customers, _, notifier := newTestDispatcher()

	args := json.RawMessage(`{"name":"New Shop","phone":"555-0199"}`)
	result, err := d.Dispatch(context.Background(), "create_customer", args)
	require.NoError(t, err)
	assert.Equal(t, int64(41), result)

	require.Len(t, customers.created, 1)
	assert.Equal(t, "New Shop", customers.created[0].Name)
	assert.Equal(t, []string{model.ModuleCustomers + "/created"}, notifier.events)
}

func TestDispatchRejectsBadArgs(t *testing.T) {
	d, _, _, _ := newTestDispatcher()

	_, err := d.Dispatch(context.Background(), "create_customer", json.RawMessage(`{"name":12}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
}

func TestAdminGate(t *testing.T) {
	d, _, invoices, notifier := newTestDispatcher()
	args := json.RawMessage(`{"id":9}`)

	userCtx := WithActor(context.Background(), service.Actor{UserID: 2, Username: "clerk", Role: model.RoleUser})
	_, err := d.Dispatch(userCtx, "delete_invoice", args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires admin access")
	assert.Empty(t, invoices.deleted, "gated handler must not run")
	assert.Empty(t, notifier.events)

	adminCtx := WithActor(context.Background(), service.Actor{UserID: 1, Username: "admin", Role: model.RoleAdmin})
	_, err = d.Dispatch(adminCtx, "delete_invoice", args)
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, invoices.deleted)
}

func TestLocalInvokerRoundTrip(t *testing.T) {
	d, _, _, _ := newTestDispatcher()
	client := bridge.NewClient(bridge.NewLocalInvoker(d))

	got, err := client.GetCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Traders", got[0].Name)
}
