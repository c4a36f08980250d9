package notifier

import (
	"encoding/json"

	"go.uber.org/zap"

	"fieldops-sync/internal/domain"
)

// Publisher MQTT发布的最小接口（common/mqtt.Client 实现）
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// OrderNotifier 新工单MQTT通知器
// 通过 RegisterOnNewOrder 挂接到变更消费者，向移动端推送主题发布新工单摘要
type OrderNotifier struct {
	client Publisher
	topic  string
	qos    byte
	logger *zap.Logger
}

// NewOrderNotifier 创建通知器
func NewOrderNotifier(client Publisher, topic string, qos byte, logger *zap.Logger) *OrderNotifier {
	return &OrderNotifier{
		client: client,
		topic:  topic,
		qos:    qos,
		logger: logger,
	}
}

// orderNotification 推送载荷（摘要字段）
type orderNotification struct {
	OrderID       string `json:"order_id"`
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name"`
	ServiceType   string `json:"service_type"`
	Priority      string `json:"priority"`
	ScheduledDate string `json:"scheduled_date"`
}

// NotifyNewOrder 发布新工单通知（失败仅记录，不影响同步层）
func (n *OrderNotifier) NotifyNewOrder(order domain.Order) {
	payload, err := json.Marshal(orderNotification{
		OrderID:       order.ID,
		ClientID:      order.ClientID,
		ClientName:    order.ClientName,
		ServiceType:   order.ServiceType,
		Priority:      order.Priority,
		ScheduledDate: order.ScheduledDate,
	})
	if err != nil {
		n.logger.Error("Failed to marshal order notification",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return
	}

	if err := n.client.Publish(n.topic, n.qos, false, payload); err != nil {
		n.logger.Error("Failed to publish order notification",
			zap.String("order_id", order.ID),
			zap.String("topic", n.topic),
			zap.Error(err),
		)
		return
	}

	n.logger.Debug("Published new order notification",
		zap.String("order_id", order.ID),
		zap.String("topic", n.topic),
	)
}
