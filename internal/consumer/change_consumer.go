package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ChangeConsumer 变更消费者：每个实体表一条长驻订阅
// 通道格式 <prefix>:<schema>:<table>，载荷为 ChangeEvent JSON
// 同一订阅内事件按到达顺序应用；跨表无顺序保证
// 订阅断开后由监督循环按指数退避重建
type ChangeConsumer struct {
	redisClient *redis.Client
	bindings    []Binding
	prefix      string
	schema      string
	logger      *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewChangeConsumer 创建变更消费者
func NewChangeConsumer(
	redisClient *redis.Client,
	prefix string,
	schema string,
	bindings []Binding,
	logger *zap.Logger,
) *ChangeConsumer {
	return &ChangeConsumer{
		redisClient: redisClient,
		bindings:    bindings,
		prefix:      prefix,
		schema:      schema,
		logger:      logger,
	}
}

// Start 为每个绑定启动一条订阅goroutine
func (c *ChangeConsumer) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	for _, b := range c.bindings {
		c.wg.Add(1)
		go c.run(runCtx, b)
	}

	c.logger.Info("Change consumer started",
		zap.Int("subscription_count", len(c.bindings)),
		zap.String("channel_prefix", c.prefix),
	)
	return nil
}

// Stop 取消全部订阅并等待goroutine退出
func (c *ChangeConsumer) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	c.logger.Info("Change consumer stopped")
}

// run 单表订阅的监督循环（带指数退避）
func (c *ChangeConsumer) run(ctx context.Context, b Binding) {
	defer c.wg.Done()

	channel := fmt.Sprintf("%s:%s:%s", c.prefix, c.schema, b.Table())
	backoffDuration := time.Second
	maxBackoff := 30 * time.Second

	for {
		if ctx.Err() != nil {
			return
		}

		subscribed, err := c.consume(ctx, channel, b)
		if ctx.Err() != nil {
			return
		}
		if subscribed {
			// 成功建立过订阅，重置退避时间
			backoffDuration = time.Second
		}
		if err != nil {
			c.logger.Error("Subscription failed, will resubscribe",
				zap.String("table", b.Table()),
				zap.String("channel", channel),
				zap.Duration("backoff", backoffDuration),
				zap.Error(err),
			)

			select {
			case <-ctx.Done():
				return
			case <-time.After(backoffDuration):
				backoffDuration *= 2
				if backoffDuration > maxBackoff {
					backoffDuration = maxBackoff
				}
			}
		}
	}
}

// consume 建立订阅并应用事件直到出错或取消
// 返回是否成功建立过订阅（供监督循环重置退避）
func (c *ChangeConsumer) consume(ctx context.Context, channel string, b Binding) (bool, error) {
	pubsub := c.redisClient.Subscribe(ctx, channel)
	defer pubsub.Close()

	// 等待订阅确认
	if _, err := pubsub.Receive(ctx); err != nil {
		return false, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	c.logger.Debug("Subscribed to change channel",
		zap.String("channel", channel),
	)

	msgCh := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return true, nil
		case msg, ok := <-msgCh:
			if !ok {
				return true, fmt.Errorf("subscription to %s closed", channel)
			}
			c.apply(b, msg.Payload)
		}
	}
}

// apply 解码并应用单个事件；畸形载荷记录后跳过
func (c *ChangeConsumer) apply(b Binding, payload string) {
	var ev ChangeEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		c.logger.Error("Failed to decode change event",
			zap.String("table", b.Table()),
			zap.Error(err),
		)
		return
	}

	b.Apply(ev)

	c.logger.Debug("Applied change event",
		zap.String("table", b.Table()),
		zap.String("event", ev.Event),
		zap.String("row_id", ev.RowID()),
	)
}
