package command

import (
	"context"
	"fmt"

	"github.com/Marcelofury/SmartQueue/internal/api"
	businessHandler "github.com/Marcelofury/SmartQueue/internal/api/handler/business"
	queueHandler "github.com/Marcelofury/SmartQueue/internal/api/handler/queue"
	ussdHandler "github.com/Marcelofury/SmartQueue/internal/api/handler/ussd"
	"github.com/Marcelofury/SmartQueue/internal/config"
	"github.com/Marcelofury/SmartQueue/internal/constant"
	"github.com/Marcelofury/SmartQueue/internal/infra"
	"github.com/Marcelofury/SmartQueue/internal/lock"
	"github.com/Marcelofury/SmartQueue/internal/provider"
	"github.com/Marcelofury/SmartQueue/internal/repository"
	businessService "github.com/Marcelofury/SmartQueue/internal/service/business"
	eventService "github.com/Marcelofury/SmartQueue/internal/service/events"
	notificationService "github.com/Marcelofury/SmartQueue/internal/service/notification"
	queueService "github.com/Marcelofury/SmartQueue/internal/service/queue"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run SmartQueue server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd Server) main(cfg *config.Config, ctx context.Context) {
	db, err := infra.NewPostgresClient(ctx, cfg.Database.Postgres)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to postgresql"))
		return
	}

	// the serialization point for count-then-insert and reconcile sequences:
	// in-process for a single instance, redis when several share the store
	var locker lock.Locker
	if cfg.Lock.Mode == config.LockRedis {
		redisClient, err := infra.NewRedisClient(ctx, cfg.Database.Redis, cmd.Logger)
		if err != nil {
			cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to redis"))
			return
		}
		defer func() {
			if err = redisClient.Close(); err != nil {
				cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to close redis"))
			}
		}()
		locker = lock.NewRedisLocker(redisClient, cmd.Logger)
	} else {
		locker = lock.NewKeyedMutex()
	}

	kafkaWriter := infra.NewKafkaWriter(cfg.Kafka, constant.TopicQueueEvents)

	// create repositories
	businessRepository := repository.NewBusinessRepository(db.GetDb())
	queueRepository := repository.NewQueueRepository(db.GetDb())
	dlqRepository := repository.NewDlqRepository(db.GetDb())

	// create services
	smsProvider := provider.New(cfg.SMS, cmd.Logger)
	notifier := notificationService.NewNotificationService(smsProvider, cmd.Logger)

	events := eventService.NewEventService(dlqRepository, cmd.Logger, kafkaWriter)
	for i := 0; i < constant.KafkaWriteWorkers; i++ {
		go events.ProduceMessages(i)
	}
	cmd.Logger.WithContext(ctx).Infof("started %d kafka producer workers", constant.KafkaWriteWorkers)

	queueServiceInstance := queueService.NewQueueService(
		businessRepository,
		queueRepository,
		notifier,
		events,
		locker,
		cmd.Logger,
	)
	businessServiceInstance := businessService.NewBusinessService(businessRepository)

	// create handlers
	queueHandlerInstance := queueHandler.New(queueServiceInstance)
	businessHandlerInstance := businessHandler.New(businessServiceInstance)
	ussdHandlerInstance := ussdHandler.New(queueServiceInstance, businessServiceInstance)

	server := api.New(cfg.AppEnv)
	server.SetupAPIRoutes(
		queueHandlerInstance,
		businessHandlerInstance,
		ussdHandlerInstance,
	)

	defer events.Close()

	// run the server
	if err := server.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
		cmd.Logger.Fatal(err)
	}
}
