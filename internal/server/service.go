package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sugarloafbakes/orderpipe/constants"
	ordersv1 "github.com/sugarloafbakes/orderpipe/gen/orders/v1"
	"github.com/sugarloafbakes/orderpipe/internal/common"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
	"github.com/sugarloafbakes/orderpipe/internal/export"
	"github.com/sugarloafbakes/orderpipe/internal/pipeline"
	"github.com/sugarloafbakes/orderpipe/internal/repository"
)

// OrdersService is the gRPC surface over the pipeline, inbox and export
// layers.
type OrdersService struct {
	ordersv1.UnimplementedOrdersServiceServer
	processor *pipeline.Processor
	webhooks  repository.WebhookRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewOrdersService(
	processor *pipeline.Processor,
	webhooks repository.WebhookRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *OrdersService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrdersService{
		processor: processor,
		webhooks:  webhooks,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *OrdersService) IngestWebhook(ctx context.Context, req *ordersv1.IngestWebhookRequest) (*ordersv1.IngestWebhookResponse, error) {
	shop := strings.TrimSpace(req.GetShop())
	if shop == "" {
		return nil, common.InvalidArgumentError("shop is required")
	}
	if len(req.GetPayload()) == 0 {
		return nil, common.InvalidArgumentError("payload is required")
	}
	if !json.Valid(req.GetPayload()) {
		return nil, common.InvalidArgumentError("payload must be valid JSON")
	}

	ev, err := s.webhooks.Insert(ctx, shop, req.GetPayload(), time.Now().UTC())
	if err != nil {
		s.logger.Error("server.ingest.failed", "shop", shop, "error", err)
		return nil, common.InternalError("failed to store webhook")
	}
	return &ordersv1.IngestWebhookResponse{WebhookId: ev.ID.String()}, nil
}

func (s *OrdersService) ProcessWebhook(ctx context.Context, req *ordersv1.ProcessWebhookRequest) (*ordersv1.ProcessWebhookResponse, error) {
	shop := strings.TrimSpace(req.GetShop())
	if shop == "" {
		return nil, common.InvalidArgumentError("shop is required")
	}
	id, err := uuid.Parse(strings.TrimSpace(req.GetWebhookId()))
	if err != nil {
		return nil, common.InvalidArgumentError("webhook_id must be a UUID")
	}
	method, err := parseMethod(req.GetMethod())
	if err != nil {
		return nil, err
	}

	ctx = common.WithRequestID(ctx, uuid.NewString())
	res, err := s.processor.Process(ctx, shop, id, method)
	if err != nil {
		s.logger.Error("server.process.failed", "shop", shop, "webhook_id", id, "error", err)
		return nil, common.InternalError(err.Error())
	}

	out := &ordersv1.ProcessWebhookResponse{
		WebhookId:        res.WebhookID.String(),
		OrdersCreated:    int32(res.OrdersCreated),
		Method:           string(res.Method),
		AiUsed:           res.AIUsed,
		Corrections:      res.Corrections,
		ValidationIssues: res.ValidationIssues,
		ProcessingMs:     res.ProcessingTime.Milliseconds(),
		EstimatedCostUsd: res.EstimatedCostUSD,
	}
	for _, so := range res.Orders {
		out.Orders = append(out.Orders, toProtoOrder(so))
	}
	return out, nil
}

func (s *OrdersService) ProcessBatch(ctx context.Context, req *ordersv1.ProcessBatchRequest) (*ordersv1.ProcessBatchResponse, error) {
	method, err := parseMethod(req.GetMethod())
	if err != nil {
		return nil, err
	}

	ctx = common.WithRequestID(ctx, uuid.NewString())
	res, err := s.processor.ProcessBatch(ctx, strings.TrimSpace(req.GetShop()), int(req.GetLimit()), method)
	if err != nil {
		s.logger.Error("server.batch.failed", "shop", req.GetShop(), "error", err)
		return nil, common.InternalError(err.Error())
	}

	perShop := make(map[string]*ordersv1.ShopBatch, len(res.PerShop))
	for shop, sb := range res.PerShop {
		perShop[shop] = &ordersv1.ShopBatch{
			Processed:     int32(sb.Processed),
			Errors:        int32(sb.Failed),
			OrdersCreated: int32(sb.OrdersCreated),
		}
	}
	return &ordersv1.ProcessBatchResponse{
		TotalProcessed: int32(res.Processed),
		TotalErrors:    int32(res.Failed),
		Skipped:        int32(res.Skipped),
		PerShop:        perShop,
	}, nil
}

func (s *OrdersService) RetryWebhook(ctx context.Context, req *ordersv1.RetryWebhookRequest) (*ordersv1.RetryWebhookResponse, error) {
	shop := strings.TrimSpace(req.GetShop())
	if shop == "" {
		return nil, common.InvalidArgumentError("shop is required")
	}
	id, err := uuid.Parse(strings.TrimSpace(req.GetWebhookId()))
	if err != nil {
		return nil, common.InvalidArgumentError("webhook_id must be a UUID")
	}

	reset, err := s.processor.Retry(ctx, shop, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotPending) {
			return nil, common.FailedPreconditionError("webhook is not in an error state")
		}
		s.logger.Error("server.retry.failed", "shop", shop, "webhook_id", id, "error", err)
		return nil, common.InternalError("retry failed")
	}
	return &ordersv1.RetryWebhookResponse{Reset_: reset}, nil
}

func (s *OrdersService) GetStats(ctx context.Context, _ *ordersv1.GetStatsRequest) (*ordersv1.GetStatsResponse, error) {
	stats, err := s.processor.Stats(ctx)
	if err != nil {
		s.logger.Error("server.stats.failed", "error", err)
		return nil, common.InternalError("stats query failed")
	}

	perShop := make(map[string]*ordersv1.ShopStats, len(stats.PerShop))
	for shop, st := range stats.PerShop {
		perShop[shop] = toProtoStats(st)
	}
	return &ordersv1.GetStatsResponse{
		PerShop: perShop,
		Total:   toProtoStats(stats.Total),
	}, nil
}

func (s *OrdersService) ExportProductionReport(ctx context.Context, req *ordersv1.ExportProductionReportRequest) (*ordersv1.ExportProductionReportResponse, error) {
	shop := strings.TrimSpace(req.GetShop())
	if shop == "" {
		return nil, common.InvalidArgumentError("shop is required")
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.exporter.ProductionReportXLSX(ctx, shop, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("server.export.failed", "shop", shop, "error", err)
		return nil, common.InternalError(err.Error())
	}
	return &ordersv1.ExportProductionReportResponse{Xlsx: xlsx}, nil
}

func parseMethod(raw string) (constants.ExtractionMethod, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	switch m := constants.ExtractionMethod(strings.ToLower(raw)); m {
	case constants.MethodDeterministic, constants.MethodAI, constants.MethodHybrid:
		return m, nil
	default:
		return "", common.InvalidArgumentErrorf("unknown extraction method %q", raw)
	}
}

func toProtoStats(st entity.ShopStats) *ordersv1.ShopStats {
	return &ordersv1.ShopStats{
		Pending:   int32(st.Pending),
		Processed: int32(st.Processed),
		Errors:    int32(st.Errors),
	}
}

func toProtoOrder(so entity.SplitOrder) *ordersv1.Order {
	out := &ordersv1.Order{
		Shop:              so.Shop,
		OrderNumber:       so.OrderNumber,
		CustomerName:      so.CustomerName,
		CustomerEmail:     so.CustomerEmail,
		CustomerPhone:     so.CustomerPhone,
		OrderDate:         so.OrderDate,
		DeliveryDate:      so.DeliveryDate,
		DeliveryTime:      so.DeliveryTime,
		DeliveryMethod:    so.DeliveryMethod,
		TotalPrice:        so.TotalPrice.StringFixed(2),
		Notes:             so.Notes,
		IsSplit:           so.IsSplit,
		ParentOrderNumber: so.ParentOrderNumber,
	}
	for _, it := range so.Items {
		out.Items = append(out.Items, &ordersv1.OrderItem{
			Kind:        string(it.Kind),
			Title:       it.Title,
			Variant:     it.Variant,
			Quantity:    int32(it.Quantity),
			Price:       it.Price.StringFixed(2),
			Annotations: it.Annotations,
			Properties:  it.Properties,
		})
	}
	return out
}
