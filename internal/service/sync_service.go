// Package service 同步数据层的对外契约：批量加载、变更消费、类型化变更网关与月度账单聚合
//
// 集合由本层独占：批量加载做初始填充，变更消费者做权威更新，
// 网关仅对工单应用乐观补丁；任何本地乐观写在被变更事件确认或覆盖前都是临时的
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"fieldops-sync/internal/config"
	"fieldops-sync/internal/consumer"
	"fieldops-sync/internal/domain"
	"fieldops-sync/internal/mapper"
	"fieldops-sync/internal/repository"
	"fieldops-sync/internal/store"
)

// SyncService 同步数据层服务
type SyncService struct {
	repo    repository.TableRepository
	store   *store.Store
	changes *consumer.ChangeConsumer
	logger  *zap.Logger
	taxRate float64

	cbMu           sync.Mutex
	orderCallbacks []func(domain.Order)
}

// NewSyncService 创建同步服务并注册全部表绑定
func NewSyncService(
	cfg *config.Config,
	repo repository.TableRepository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *SyncService {
	s := &SyncService{
		repo:    repo,
		store:   store.NewStore(),
		logger:  logger,
		taxRate: cfg.Billing.TaxRate,
	}
	s.changes = consumer.NewChangeConsumer(
		redisClient,
		cfg.ChangeFeed.ChannelPrefix,
		cfg.ChangeFeed.Schema,
		s.bindings(),
		logger,
	)
	return s
}

// bindings 表 -> 映射器/集合 的绑定注册表
// 工单绑定额外挂接新工单回调（按ID恰好一次）
func (s *SyncService) bindings() []consumer.Binding {
	return []consumer.Binding{
		consumer.Bind(repository.TableClients, mapper.ClientMapper{}, s.store.Clients, nil),
		consumer.Bind(repository.TableOrders, mapper.OrderMapper{}, s.store.Orders, s.notifyNewOrder),
		consumer.Bind(repository.TableTechnicians, mapper.TechnicianMapper{}, s.store.Technicians, nil),
		consumer.Bind(repository.TableInventory, mapper.InventoryMapper{}, s.store.Inventory, nil),
		consumer.Bind(repository.TableQuotes, mapper.QuoteMapper{}, s.store.Quotes, nil),
		consumer.Bind(repository.TableContracts, mapper.ContractMapper{}, s.store.Contracts, nil),
		consumer.Bind(repository.TableProjects, mapper.ProjectMapper{}, s.store.Projects, nil),
		consumer.Bind(repository.TableProjectActivities, mapper.ProjectActivityMapper{}, s.store.ProjectActivities, nil),
		consumer.Bind(repository.TableProductsServices, mapper.ProductServiceMapper{}, s.store.ProductsServices, nil),
		consumer.Bind(repository.TableInvoices, mapper.InvoiceMapper{}, s.store.Invoices, nil),
		consumer.Bind(repository.TableAppointments, mapper.AppointmentMapper{}, s.store.Appointments, nil),
		consumer.Bind(repository.TableConversations, mapper.ConversationMapper{}, s.store.Conversations, nil),
		consumer.Bind(repository.TableMessages, mapper.MessageMapper{}, s.store.Messages, nil),
	}
}

// Start 执行初始批量加载并启动变更订阅
func (s *SyncService) Start(ctx context.Context) error {
	s.LoadAll(ctx)

	if err := s.changes.Start(ctx); err != nil {
		return fmt.Errorf("failed to start change consumer: %w", err)
	}
	return nil
}

// Stop 停止变更订阅
func (s *SyncService) Stop() {
	if s.changes != nil {
		s.changes.Stop()
	}
}

// RegisterOnNewOrder 注册新工单观察回调
// 回调在变更消费者实际追加新工单时同步调用，按工单ID恰好一次
func (s *SyncService) RegisterOnNewOrder(cb func(domain.Order)) {
	s.cbMu.Lock()
	defer s.cbMu.Unlock()
	s.orderCallbacks = append(s.orderCallbacks, cb)
}

func (s *SyncService) notifyNewOrder(order domain.Order) {
	s.cbMu.Lock()
	callbacks := make([]func(domain.Order), len(s.orderCallbacks))
	copy(callbacks, s.orderCallbacks)
	s.cbMu.Unlock()

	for _, cb := range callbacks {
		cb(order)
	}
}
