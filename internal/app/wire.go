//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"freightmarket/internal/gateway/kafka/events"
	"freightmarket/internal/handlers/rest/enquiry_post"
	"freightmarket/internal/handlers/rest/negotiation_accept_post"
	"freightmarket/internal/handlers/rest/negotiation_post"
	"freightmarket/internal/handlers/rest/order_get"
	"freightmarket/internal/handlers/rest/order_status_put"
	"freightmarket/internal/handlers/rest/order_verify_post"
	"freightmarket/internal/handlers/rest/quotation_accept_post"
	"freightmarket/internal/handlers/rest/quotation_get"
	"freightmarket/internal/handlers/rest/quotation_post"
	"freightmarket/internal/handlers/rest/quotation_reject_post"
	"freightmarket/internal/handlers/rest/request_quotations_get"
	"freightmarket/internal/handlers/tasks/quotation_expiry"
	"freightmarket/internal/pkg/config"
	"freightmarket/internal/pkg/factory/delivery_otp"
	"freightmarket/internal/pkg/factory/order_number"

	negotiationsRepo "freightmarket/internal/repository/negotiations"
	ordersRepo "freightmarket/internal/repository/orders"
	quotationsRepo "freightmarket/internal/repository/quotations"
	requestsRepo "freightmarket/internal/repository/requests"
	routesRepo "freightmarket/internal/repository/routes"
	trucksRepo "freightmarket/internal/repository/trucks"

	negotiationService "freightmarket/internal/service/negotiation"
	orderService "freightmarket/internal/service/order"
	quotationService "freightmarket/internal/service/quotation"
	routematchService "freightmarket/internal/service/routematch"

	"freightmarket/pkg/background"
	"freightmarket/pkg/logger"
	"freightmarket/pkg/querier"
	"freightmarket/pkg/tx"
)

type (
	ExpiryInterval time.Duration
)

type Application struct {
	ServiceRouteMatch  ServiceRouteMatch
	ServiceQuotation   ServiceQuotation
	ServiceNegotiation ServiceNegotiation
	ServiceOrder       ServiceOrder
	BackgroundWorkers  *background.Worker
}

type ServiceRouteMatch interface {
	enquiry_post.Service
}

type ServiceQuotation interface {
	quotation_post.Service
	quotation_get.Service
	quotation_accept_post.Service
	quotation_reject_post.Service
	request_quotations_get.Service
}

type ServiceNegotiation interface {
	negotiation_post.Service
	negotiation_accept_post.Service
	quotation_get.NegotiationService
}

type ServiceOrder interface {
	order_status_put.Service
	order_verify_post.Service
	order_get.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideExpiryInterval,
		provideEventGateway,

		provideRequestsRepository,
		provideQuotationsRepository,
		provideNegotiationsRepository,
		provideOrdersRepository,
		provideTrucksRepository,
		provideRoutesRepository,

		order_number.New,
		delivery_otp.New,

		provideServiceRouteMatch,
		provideServiceQuotation,
		provideServiceNegotiation,
		provideServiceOrder,

		provideQuotationExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRouteMatch), new(*routematchService.RouteMatch)),
		wire.Bind(new(ServiceQuotation), new(*quotationService.Quotation)),
		wire.Bind(new(ServiceNegotiation), new(*negotiationService.Negotiation)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),

		wire.Bind(new(routematchService.RouteRepository), new(*routesRepo.Repository)),
		wire.Bind(new(routematchService.RequestRepository), new(*requestsRepo.Repository)),
		wire.Bind(new(quotationService.Repository), new(*quotationsRepo.Repository)),
		wire.Bind(new(quotationService.RequestRepository), new(*requestsRepo.Repository)),
		wire.Bind(new(quotationService.OrderCreator), new(*orderService.Order)),
		wire.Bind(new(quotationService.EventPublisher), new(*events.Gateway)),
		wire.Bind(new(negotiationService.Repository), new(*negotiationsRepo.Repository)),
		wire.Bind(new(negotiationService.QuotationRepository), new(*quotationsRepo.Repository)),
		wire.Bind(new(negotiationService.QuotationAcceptor), new(*quotationService.Quotation)),
		wire.Bind(new(negotiationService.EventPublisher), new(*events.Gateway)),
		wire.Bind(new(orderService.Repository), new(*ordersRepo.Repository)),
		wire.Bind(new(orderService.RequestRepository), new(*requestsRepo.Repository)),
		wire.Bind(new(orderService.TruckRepository), new(*trucksRepo.Repository)),
		wire.Bind(new(orderService.NumberFactory), new(*order_number.OrderNumberFactory)),
		wire.Bind(new(orderService.OTPFactory), new(*delivery_otp.OTPFactory)),
		wire.Bind(new(orderService.EventPublisher), new(*events.Gateway)),

		wire.Bind(new(routematchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(quotationService.TxManager), new(*tx.Manager)),
		wire.Bind(new(negotiationService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(quotation_expiry.Service), new(*quotationService.Quotation)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideEventGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *events.Gateway {
	return events.New(log, producer, cfg.Kafka.QuotationTopic, cfg.Kafka.OrderTopic)
}

func provideRequestsRepository(querier *querier.Querier) *requestsRepo.Repository {
	return requestsRepo.New(querier)
}

func provideQuotationsRepository(querier *querier.Querier) *quotationsRepo.Repository {
	return quotationsRepo.New(querier)
}

func provideNegotiationsRepository(querier *querier.Querier) *negotiationsRepo.Repository {
	return negotiationsRepo.New(querier)
}

func provideOrdersRepository(querier *querier.Querier) *ordersRepo.Repository {
	return ordersRepo.New(querier)
}

func provideTrucksRepository(querier *querier.Querier) *trucksRepo.Repository {
	return trucksRepo.New(querier)
}

func provideRoutesRepository(querier *querier.Querier) *routesRepo.Repository {
	return routesRepo.New(querier)
}

func provideServiceRouteMatch(
	routes routematchService.RouteRepository,
	requests routematchService.RequestRepository,
	txManager routematchService.TxManager,
) *routematchService.RouteMatch {
	return routematchService.New(routes, requests, txManager)
}

func provideServiceQuotation(
	repository quotationService.Repository,
	requests quotationService.RequestRepository,
	orders quotationService.OrderCreator,
	events quotationService.EventPublisher,
	txManager quotationService.TxManager,
) *quotationService.Quotation {
	return quotationService.New(repository, requests, orders, events, txManager)
}

func provideServiceNegotiation(
	repository negotiationService.Repository,
	quotations negotiationService.QuotationRepository,
	acceptor negotiationService.QuotationAcceptor,
	events negotiationService.EventPublisher,
	txManager negotiationService.TxManager,
) *negotiationService.Negotiation {
	return negotiationService.New(repository, quotations, acceptor, events, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	requests orderService.RequestRepository,
	trucks orderService.TruckRepository,
	numbers orderService.NumberFactory,
	otps orderService.OTPFactory,
	events orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, requests, trucks, numbers, otps, events, txManager)
}

func provideExpiryInterval(cfg *config.Config) ExpiryInterval {
	return ExpiryInterval(cfg.Tasks.QuotationExpiryInterval)
}

func provideQuotationExpiryTask(
	log logger.Logger,
	quotationService quotation_expiry.Service,
	interval ExpiryInterval,
) *quotation_expiry.QuotationExpiry {
	return quotation_expiry.NewQuotationExpiry(log, quotationService, time.Duration(interval))
}

func provideTaskList(
	quotationExpiryTask *quotation_expiry.QuotationExpiry,
) []background.Task {
	return []background.Task{
		quotationExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
