package commands_test

import (
	"context"
	"errors"
	"testing"

	"logix/internal/core/application/usecases/commands"
	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIntakeCommand(t *testing.T, orderType order.OrderType, source order.OrderSource, payload order.Payload) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		orderType,
		source,
		[]order.Item{{SKU: "SKU-1", Quantity: 2}},
		"12 Main St",
		testGeoPoint(t, 40.0, -74.0),
		kernel.TimeWindow{},
		payload,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd := newIntakeCommand(t, order.OrderTypeEcommerceDirect, order.OrderSourceShopify, testEcommercePayload())

	var added *order.Order
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(cmd.OrderID()))
	assert.Equal(t, order.InitialStatus(order.OrderTypeEcommerceDirect), added.Status())
	assert.Equal(t, order.PriorityNormal, added.Priority())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DerivesPriority(t *testing.T) {
	tests := []struct {
		name      string
		orderType order.OrderType
		source    order.OrderSource
		payload   order.Payload
		want      order.Priority
	}{
		{
			name:      "vip customers are promoted to high",
			orderType: order.OrderTypeEcommerceDirect,
			source:    order.OrderSourceShopify,
			payload: order.EcommercePayload{
				PlatformOrderID: "SHP-1", PlatformName: "shopify",
				CustomerEmail: "vip@example.com", CustomerSegment: "VIP",
			},
			want: order.PriorityHigh,
		},
		{
			name:      "urgent delivery terms are promoted to urgent",
			orderType: order.OrderTypeRetailPurchaseOrder,
			source:    order.OrderSourceVendorPortal,
			payload: order.RetailPayload{
				PONumber: "PO-1", VendorID: "V-1", VendorName: "Acme",
				PaymentTerms: "Net 30", DeliveryTerms: "URGENT - dock 4",
			},
			want: order.PriorityUrgent,
		},
		{
			name:      "expedited delivery terms are promoted to high",
			orderType: order.OrderTypeRetailPurchaseOrder,
			source:    order.OrderSourceVendorPortal,
			payload: order.RetailPayload{
				PONumber: "PO-2", VendorID: "V-1", VendorName: "Acme",
				PaymentTerms: "Net 30", DeliveryTerms: "expedited by truck",
			},
			want: order.PriorityHigh,
		},
		{
			name:      "food orders always start high",
			orderType: order.OrderTypeFoodDeliveryCustomer,
			source:    order.OrderSourceUberEats,
			payload: order.FoodDeliveryPayload{
				RestaurantID: "R-1", RestaurantName: "Pho 88",
				CustomerPhone: "+15550100", PrepTimeMinutes: 20,
			},
			want: order.PriorityHigh,
		},
		{
			name:      "tight 3pl sla is promoted to urgent",
			orderType: order.OrderTypeThirdPartyFulfillment,
			source:    order.OrderSourceClientPortal,
			payload: order.ThirdPartyPayload{
				ClientID: "C-1", ClientName: "Northwind", ServiceType: "fulfillment",
				BillingModel: "per_order", FulfillmentCenter: "FC-EAST",
				SLADeliveryMinutes: 3 * 60,
			},
			want: order.PriorityUrgent,
		},
		{
			name:      "day-scale 3pl sla is promoted to high",
			orderType: order.OrderTypeThirdPartyFulfillment,
			source:    order.OrderSourceClientPortal,
			payload: order.ThirdPartyPayload{
				ClientID: "C-1", ClientName: "Northwind", ServiceType: "fulfillment",
				BillingModel: "per_order", FulfillmentCenter: "FC-EAST",
				SLADeliveryMinutes: 12 * 60,
			},
			want: order.PriorityHigh,
		},
		{
			name:      "loose 3pl sla stays normal",
			orderType: order.OrderTypeThirdPartyStorage,
			source:    order.OrderSourceWMSIntegration,
			payload: order.ThirdPartyPayload{
				ClientID: "C-1", ClientName: "Northwind", ServiceType: "storage",
				BillingModel: "storage_based", FulfillmentCenter: "FC-EAST",
				SLADeliveryMinutes: 72 * 60,
			},
			want: order.PriorityNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cmd := newIntakeCommand(t, tt.orderType, tt.source, tt.payload)

			var added *order.Order
			repo := new(MockOrderRepository)
			repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
				Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
				Return(nil).Once()

			uow := new(MockOrderUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			uow.On("Commit", ctx).Return(nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewCreateOrderCommandHandler(factory)
			require.NoError(t, handler.Handle(ctx, cmd))
			require.NotNil(t, added)
			assert.Equal(t, tt.want, added.Priority())
		})
	}
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	factory := new(MockOrderUoWFactory)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd := newIntakeCommand(t, order.OrderTypeEcommerceDirect, order.OrderSourceShopify, testEcommercePayload())

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(errors.New("connection refused")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := context.Background()
	cmd := newIntakeCommand(t, order.OrderTypeEcommerceDirect, order.OrderSourceShopify, testEcommercePayload())

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("duplicate key")).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
