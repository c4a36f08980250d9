package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"fieldops-sync/common/database"
	logpkg "fieldops-sync/common/logger"
	commonmqtt "fieldops-sync/common/mqtt"
	commonredis "fieldops-sync/common/redis"
	"fieldops-sync/internal/config"
	"fieldops-sync/internal/notifier"
	"fieldops-sync/internal/repository"
	"fieldops-sync/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	log, err := logpkg.NewLogger(cfg.Log.Level, cfg.Log.Format, "fieldops-sync")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting fieldops-sync service")

	// 连接PostgreSQL
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	// 连接Redis（变更订阅传输）
	redisClient := commonredis.NewRedisClient(&cfg.Redis)
	defer commonredis.Close(redisClient)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := commonredis.Ping(ctx, redisClient); err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}

	// 创建同步服务
	repo := repository.NewPostgresTableRepository(db)
	svc := service.NewSyncService(cfg, repo, redisClient, log)

	// 可选：MQTT新工单通知
	if cfg.MQTT.Enabled {
		mqttClient, err := commonmqtt.NewClient(&commonmqtt.Config{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
			QoS:      cfg.MQTT.QoS,
		})
		if err != nil {
			log.Error("Failed to connect MQTT, order notifications disabled", zap.Error(err))
		} else {
			defer mqttClient.Disconnect()
			orderNotifier := notifier.NewOrderNotifier(mqttClient, cfg.MQTT.Topic, cfg.MQTT.QoS, log)
			svc.RegisterOnNewOrder(orderNotifier.NotifyNewOrder)
			log.Info("MQTT order notifier registered", zap.String("topic", cfg.MQTT.Topic))
		}
	}

	// 启动服务（批量加载 + 变更订阅）
	if err := svc.Start(ctx); err != nil {
		log.Fatal("Failed to start sync service", zap.Error(err))
	}

	// 监听系统信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	cancel()

	svc.Stop()
	log.Info("Service stopped")
}
