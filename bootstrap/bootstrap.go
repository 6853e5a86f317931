package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TxVisualizer/internal/application/service"
	"TxVisualizer/internal/domain"
	"TxVisualizer/internal/platform/config"
	"TxVisualizer/internal/platform/logging"
	"TxVisualizer/internal/platform/messaging"
	"TxVisualizer/internal/platform/messaging/inmemory"
	"TxVisualizer/internal/platform/messaging/zeromq/publisher"
	"TxVisualizer/internal/platform/presenter"
	"TxVisualizer/internal/platform/server"
	"TxVisualizer/internal/platform/server/handler/scenario"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

type Options struct {
	// Scenario, when set, runs that scenario once on the console and exits
	// instead of serving HTTP.
	Scenario string
	Amounts  []string
}

func BuildContainer() (*dig.Container, error) {
	container := dig.New()
	serviceConstructors := []interface{}{
		config.LoadConfig,
		logging.New,
		engineConfig,
		scenarioRegistry,
		inmemory.NewEventBus,
		zmqPublisher,
		eventPublisher,
		domain.NewTransferEngine,
		domain.NewBatchCoordinator,
		service.NewRunScenarioService,
		service.NewGetAccountsService,
		service.NewListScenariosService,
		scenario.NewScenarioHandler,
		server.NewServer,
		consolePresenter,
	}
	for _, constructor := range serviceConstructors {
		if err := container.Provide(constructor); err != nil {
			return nil, err
		}
	}
	return container, nil
}

func Run(opts Options) (bool, error) {
	container, err := BuildContainer()
	if err != nil {
		return false, err
	}
	if opts.Scenario != "" {
		err = container.Invoke(func(bus *inmemory.EventBus, console *presenter.Console,
			runner *service.RunScenarioService, logger *zap.Logger) error {
			return runOnce(bus, console, runner, logger, opts)
		})
	} else {
		err = container.Invoke(serve)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func runOnce(bus *inmemory.EventBus, console *presenter.Console, runner *service.RunScenarioService,
	logger *zap.Logger, opts Options) error {
	done := make(chan struct{})
	go console.Consume(bus.Subscribe(), done)

	result, err := runner.Execute(context.Background(), service.RunScenarioCommand{
		Scenario: opts.Scenario,
		Amounts:  opts.Amounts,
	})
	bus.Close()
	<-done
	if err != nil {
		return err
	}
	for _, a := range result.Accounts {
		logger.Info("balance",
			zap.String("account", a.Name),
			zap.Int("priority", a.Priority),
			zap.Stringer("balance", a.Balance))
	}
	return nil
}

func serve(s *server.Server, bus *inmemory.EventBus, console *presenter.Console,
	zmq *publisher.ZeroMQEventPublisher, cfg config.Config, logger *zap.Logger) error {
	done := make(chan struct{})
	go console.Consume(bus.Subscribe(), done)
	if zmq != nil {
		if err := zmq.Listen(cfg.EventsPort); err != nil {
			return err
		}
		defer zmq.Close()
	}

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			logger.Warn("shutting down server", zap.Error(err))
		}
	}()

	err := s.Run()
	bus.Close()
	<-done
	return err
}

func engineConfig(cfg config.Config) domain.EngineConfig {
	return cfg.EngineConfig()
}

func scenarioRegistry(cfg config.Config) (*domain.ScenarioRegistry, error) {
	scenarios, err := domain.DefaultScenarios(cfg.DefaultAmount)
	if err != nil {
		return nil, err
	}
	return domain.NewScenarioRegistry(scenarios...), nil
}

// zmqPublisher is nil when EVENTS_PORT is not set.
func zmqPublisher(cfg config.Config, logger *zap.Logger) *publisher.ZeroMQEventPublisher {
	if cfg.EventsPort <= 0 {
		return nil
	}
	return publisher.NewZeroMQEventPublisher(logger)
}

func eventPublisher(bus *inmemory.EventBus, zmq *publisher.ZeroMQEventPublisher) domain.EventPublisher {
	if zmq == nil {
		return messaging.NewFanOutPublisher(bus)
	}
	return messaging.NewFanOutPublisher(bus, zmq)
}

func consolePresenter() *presenter.Console {
	return presenter.NewConsole(os.Stdout)
}
