package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"customer-matrix/config"
	"customer-matrix/internal/api/handler"
	"customer-matrix/internal/api/router"
	"customer-matrix/internal/model"
	"customer-matrix/internal/repository"
	"customer-matrix/internal/repository/mongostore"
	"customer-matrix/internal/service"
	"customer-matrix/pkg/database"
	applogger "customer-matrix/pkg/logger"
	"customer-matrix/pkg/metrics"
	"customer-matrix/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("MATRIX_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接存储
	repo, store, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("存储初始化失败", zap.Error(err))
	}

	// 4. 连接 Redis（仅在开启限流时需要；连接失败时降级为不限流）
	var rdb *redis.Client
	if cfg.Server.RateLimit.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，速率限制将不生效", zap.Error(err))
			rdb = nil
		}
	}

	// 5. 指标
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// 6. 依赖注入: Repository → Service → Handler
	svc := service.NewService(repo, logger)
	h := handler.NewHandler(svc)

	// 7. 初始化路由
	engine := router.Setup(cfg, h, rdb, m, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭存储连接
	if err := store.Close(); err != nil {
		logger.Error("关闭存储连接失败", zap.Error(err))
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}

// closerFunc 将关闭函数适配为 io.Closer
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openStore 按配置的驱动建立连接、准备表结构并返回 Repository
func openStore(cfg *config.Config, logger *zap.Logger) (*repository.Repository, io.Closer, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		client, db, err := database.NewMongo(context.Background(), &cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("创建索引失败: %w", err)
		}
		closer := closerFunc(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return client.Disconnect(ctx)
		})
		return mongostore.NewRepository(db), closer, nil

	default:
		db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
		}

		if cfg.Database.Driver == config.DriverPostgres {
			err = database.RunMigrations(sqlDB, logger)
		} else {
			err = database.AutoMigrate(db, logger, model.All()...)
		}
		if err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return repository.NewRepository(db), sqlDB, nil
	}
}
