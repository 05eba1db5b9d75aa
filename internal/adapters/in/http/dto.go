package http

import (
	"encoding/json"
	"fmt"
	"time"

	"logix/internal/core/application/usecases/commands"
	"logix/internal/core/application/usecases/queries"
	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"
	"logix/internal/core/domain/model/route"
	"logix/internal/pkg/errs"
)

// Error is the wire shape of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type geoPointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type itemDTO struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// createOrderRequest is the intake body. The payload member is decoded a
// second time once the order type is known, since its shape depends on the
// industry category.
type createOrderRequest struct {
	OrderType        string          `json:"order_type"`
	Source           string          `json:"source"`
	Items            []itemDTO       `json:"items"`
	DeliveryAddress  string          `json:"delivery_address"`
	DeliveryLocation geoPointDTO     `json:"delivery_location"`
	WindowStart      *time.Time      `json:"window_start,omitempty"`
	WindowEnd        *time.Time      `json:"window_end,omitempty"`
	Payload          json.RawMessage `json:"payload"`
}

type orderCreatedResponse struct {
	ID string `json:"id"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

type optimizeRouteRequest struct {
	WarehouseID string   `json:"warehouse_id"`
	OrderIDs    []string `json:"order_ids"`
}

type routeStopResponse struct {
	OrderID  string      `json:"order_id"`
	Address  string      `json:"address"`
	Location geoPointDTO `json:"location"`
}

type routeResultResponse struct {
	Stops                []routeStopResponse `json:"stops"`
	TotalDistanceKm      float64             `json:"total_distance_km"`
	TotalDurationSeconds int64               `json:"total_duration_seconds"`
	Optimized            bool                `json:"optimized"`
}

type automationDecisionResponse struct {
	OrderID          string   `json:"order_id"`
	Outcome          string   `json:"outcome"`
	Stage            string   `json:"stage"`
	FailureReason    string   `json:"failure_reason,omitempty"`
	WarehouseID      *string  `json:"warehouse_id,omitempty"`
	WarehouseReason  string   `json:"warehouse_reason,omitempty"`
	DriverID         *string  `json:"driver_id,omitempty"`
	DriverReason     string   `json:"driver_reason,omitempty"`
	EstimateSeconds  int64    `json:"fulfillment_estimate_seconds"`
	ValidationErrors []string `json:"validation_errors,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
	AlreadyProcessed bool     `json:"already_processed"`
}

type manualHandlingOrderResponse struct {
	ID              string    `json:"id"`
	OrderType       string    `json:"order_type"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	DeliveryAddress string    `json:"delivery_address"`
	FlaggedAt       time.Time `json:"flagged_at"`
}

type unfulfilledOrderResponse struct {
	ID              string  `json:"id"`
	OrderType       string  `json:"order_type"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	DeliveryAddress string  `json:"delivery_address"`
	WarehouseID     *string `json:"warehouse_id,omitempty"`
	DriverID        *string `json:"driver_id,omitempty"`
}

// Payload bodies per industry category.

type ecommercePayloadDTO struct {
	PlatformOrderID string `json:"platform_order_id"`
	PlatformName    string `json:"platform_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerSegment string `json:"customer_segment"`
	IsSubscription  bool   `json:"is_subscription"`
	SubscriptionID  string `json:"subscription_id"`
}

type retailPayloadDTO struct {
	PONumber                 string     `json:"po_number"`
	VendorID                 string     `json:"vendor_id"`
	VendorName               string     `json:"vendor_name"`
	PaymentTerms             string     `json:"payment_terms"`
	DeliveryTerms            string     `json:"delivery_terms"`
	ComplianceCertifications []string   `json:"compliance_certifications"`
	Hazmat                   bool       `json:"hazmat"`
	HazmatClassification     string     `json:"hazmat_classification"`
	InspectionRequired       bool       `json:"inspection_required"`
	QualityStandards         []string   `json:"quality_standards"`
	AppointmentRequired      bool       `json:"appointment_required"`
	AppointmentWindowStart   *time.Time `json:"appointment_window_start,omitempty"`
	AppointmentWindowEnd     *time.Time `json:"appointment_window_end,omitempty"`
}

type foodDeliveryPayloadDTO struct {
	RestaurantID           string     `json:"restaurant_id"`
	RestaurantName         string     `json:"restaurant_name"`
	CustomerPhone          string     `json:"customer_phone"`
	PrepTimeMinutes        int        `json:"prep_time_minutes"`
	TravelEstimateMinutes  int        `json:"travel_estimate_minutes"`
	TemperatureRequirement string     `json:"temperature_requirement"`
	AllergenInfo           []string   `json:"allergen_info"`
	ContactlessDelivery    bool       `json:"contactless_delivery"`
	DeliveryWindowStart    *time.Time `json:"delivery_window_start,omitempty"`
	DeliveryWindowEnd      *time.Time `json:"delivery_window_end,omitempty"`
}

type manufacturingPayloadDTO struct {
	ProductionOrderID    string    `json:"production_order_id"`
	ProductionStart      time.Time `json:"production_start"`
	ProductionEnd        time.Time `json:"production_end"`
	ProductionLine       string    `json:"production_line"`
	BatchNumber          string    `json:"batch_number"`
	QualityControlPoints []string  `json:"quality_control_points"`
	TraceabilityRequired bool      `json:"traceability_required"`
}

type thirdPartyPayloadDTO struct {
	ClientID                string `json:"client_id"`
	ClientName              string `json:"client_name"`
	ServiceType             string `json:"service_type"`
	ServiceLevel            string `json:"service_level"`
	BillingModel            string `json:"billing_model"`
	FulfillmentCenter       string `json:"fulfillment_center"`
	SLADeliveryMinutes      int    `json:"sla_delivery_minutes"`
	SpecialHandlingRequired bool   `json:"special_handling_required"`
}

// windowFromBounds builds a time window from optional bounds. Both absent
// means no window; exactly one present is a malformed request.
func windowFromBounds(start, end *time.Time) (kernel.TimeWindow, error) {
	if start == nil && end == nil {
		return kernel.TimeWindow{}, nil
	}
	if start == nil || end == nil {
		return kernel.TimeWindow{}, errs.NewValueIsRequiredError("window start and end")
	}
	return kernel.NewTimeWindow(*start, *end)
}

// toPayload decodes the raw payload body into the variant the order type
// requires.
func toPayload(orderType order.OrderType, raw json.RawMessage) (order.Payload, error) {
	if len(raw) == 0 {
		return nil, errs.NewValueIsRequiredError("payload")
	}

	switch orderType.Category() {
	case order.IndustryEcommerce:
		var dto ecommercePayloadDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, fmt.Errorf("decode ecommerce payload: %w", err)
		}
		return order.EcommercePayload{
			PlatformOrderID: dto.PlatformOrderID,
			PlatformName:    dto.PlatformName,
			CustomerEmail:   dto.CustomerEmail,
			CustomerPhone:   dto.CustomerPhone,
			CustomerSegment: dto.CustomerSegment,
			IsSubscription:  dto.IsSubscription,
			SubscriptionID:  dto.SubscriptionID,
		}, nil

	case order.IndustryRetail:
		var dto retailPayloadDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, fmt.Errorf("decode retail payload: %w", err)
		}
		window, err := windowFromBounds(dto.AppointmentWindowStart, dto.AppointmentWindowEnd)
		if err != nil {
			return nil, err
		}
		return order.RetailPayload{
			PONumber:                 dto.PONumber,
			VendorID:                 dto.VendorID,
			VendorName:               dto.VendorName,
			PaymentTerms:             dto.PaymentTerms,
			DeliveryTerms:            dto.DeliveryTerms,
			ComplianceCertifications: dto.ComplianceCertifications,
			Hazmat:                   dto.Hazmat,
			HazmatClassification:     dto.HazmatClassification,
			InspectionRequired:       dto.InspectionRequired,
			QualityStandards:         dto.QualityStandards,
			AppointmentRequired:      dto.AppointmentRequired,
			AppointmentWindow:        window,
		}, nil

	case order.IndustryFoodDelivery:
		var dto foodDeliveryPayloadDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, fmt.Errorf("decode food delivery payload: %w", err)
		}
		window, err := windowFromBounds(dto.DeliveryWindowStart, dto.DeliveryWindowEnd)
		if err != nil {
			return nil, err
		}
		return order.FoodDeliveryPayload{
			RestaurantID:           dto.RestaurantID,
			RestaurantName:         dto.RestaurantName,
			CustomerPhone:          dto.CustomerPhone,
			PrepTimeMinutes:        dto.PrepTimeMinutes,
			TravelEstimateMinutes:  dto.TravelEstimateMinutes,
			TemperatureRequirement: order.TemperatureRequirement(dto.TemperatureRequirement),
			AllergenInfo:           dto.AllergenInfo,
			ContactlessDelivery:    dto.ContactlessDelivery,
			DeliveryWindow:         window,
		}, nil

	case order.IndustryManufacturing:
		var dto manufacturingPayloadDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, fmt.Errorf("decode manufacturing payload: %w", err)
		}
		return order.ManufacturingPayload{
			ProductionOrderID:    dto.ProductionOrderID,
			ProductionStart:      dto.ProductionStart,
			ProductionEnd:        dto.ProductionEnd,
			ProductionLine:       dto.ProductionLine,
			BatchNumber:          dto.BatchNumber,
			QualityControlPoints: dto.QualityControlPoints,
			TraceabilityRequired: dto.TraceabilityRequired,
		}, nil

	case order.IndustryThirdPartyLogistics:
		var dto thirdPartyPayloadDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, fmt.Errorf("decode third party logistics payload: %w", err)
		}
		return order.ThirdPartyPayload{
			ClientID:                dto.ClientID,
			ClientName:              dto.ClientName,
			ServiceType:             dto.ServiceType,
			ServiceLevel:            dto.ServiceLevel,
			BillingModel:            dto.BillingModel,
			FulfillmentCenter:       dto.FulfillmentCenter,
			SLADeliveryMinutes:      dto.SLADeliveryMinutes,
			SpecialHandlingRequired: dto.SpecialHandlingRequired,
		}, nil
	}

	return nil, errs.NewValueIsInvalidError("order_type")
}

func toItems(dtos []itemDTO) []order.Item {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, order.Item{SKU: dto.SKU, Quantity: dto.Quantity})
	}
	return items
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toDecisionResponse(decision commands.AutomationDecision) automationDecisionResponse {
	return automationDecisionResponse{
		OrderID:          decision.OrderID.String(),
		Outcome:          decision.Outcome.String(),
		Stage:            decision.Stage.String(),
		FailureReason:    decision.FailureReason,
		WarehouseID:      uuidString(decision.WarehouseID),
		WarehouseReason:  decision.WarehouseReason,
		DriverID:         uuidString(decision.DriverID),
		DriverReason:     decision.DriverReason,
		EstimateSeconds:  int64(decision.FulfillmentEstimate / time.Second),
		ValidationErrors: decision.ValidationErrors,
		Warnings:         decision.Warnings,
		AlreadyProcessed: decision.AlreadyProcessed,
	}
}

func toRouteResultResponse(res route.Result) routeResultResponse {
	stops := make([]routeStopResponse, 0, len(res.Stops))
	for _, s := range res.Stops {
		stops = append(stops, routeStopResponse{
			OrderID:  s.OrderID.String(),
			Address:  s.Address,
			Location: geoPointDTO{Lat: s.Location.Lat(), Lon: s.Location.Lon()},
		})
	}

	return routeResultResponse{
		Stops:                stops,
		TotalDistanceKm:      res.TotalDistanceKm,
		TotalDurationSeconds: int64(res.TotalDuration / time.Second),
		Optimized:            res.Optimized,
	}
}

func toManualHandlingResponse(rows []queries.GetManualHandlingOrdersQueryResponse) []manualHandlingOrderResponse {
	out := make([]manualHandlingOrderResponse, len(rows))
	for i, row := range rows {
		out[i] = manualHandlingOrderResponse{
			ID:              row.ID.String(),
			OrderType:       row.OrderType.String(),
			Status:          row.Status.String(),
			Priority:        row.Priority.String(),
			DeliveryAddress: row.DeliveryAddress,
			FlaggedAt:       row.FlaggedAt,
		}
	}
	return out
}

func toUnfulfilledResponse(rows []queries.GetUnfulfilledOrdersQueryResponse) []unfulfilledOrderResponse {
	out := make([]unfulfilledOrderResponse, len(rows))
	for i, row := range rows {
		out[i] = unfulfilledOrderResponse{
			ID:              row.ID.String(),
			OrderType:       row.OrderType.String(),
			Status:          row.Status.String(),
			Priority:        row.Priority.String(),
			DeliveryAddress: row.DeliveryAddress,
			WarehouseID:     uuidString(row.WarehouseID),
			DriverID:        uuidString(row.DriverID),
		}
	}
	return out
}
