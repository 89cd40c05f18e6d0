package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/taskreports/task-api/internal/api"
	"github.com/taskreports/task-api/internal/config"
	"github.com/taskreports/task-api/internal/infrastructure/client"
	"github.com/taskreports/task-api/internal/repository"
	"github.com/taskreports/task-api/internal/usecase"
	"github.com/taskreports/task-api/internal/worker"
)

func main() {
	var wg sync.WaitGroup

	cfg := config.Load()

	// Выбираем хранилище
	var taskRepo repository.ITaskRepository

	switch cfg.StoreDriver {
	case config.StorePostgres:
		// Запускаем миграции
		if err := runMigrations(cfg.Postgres.URL()); err != nil {
			log.Fatal("Ошибка миграций:", err)
		}

		pg, err := client.NewPostgresClient(cfg.Postgres)
		if err != nil {
			log.Fatal("Ошибка подключения к БД:", err)
		}
		defer pg.Close()
		fmt.Println("Подключение к Postgres установлено")

		taskRepo = repository.NewPostgresTaskRepository(pg.Pool)

	case config.StoreMongo:
		mongo, err := client.NewMongoClient(cfg.MongoURL, cfg.MongoDB)
		if err != nil {
			log.Fatal("Ошибка подключения к MongoDB:", err)
		}
		defer mongo.Close()
		fmt.Println("Подключение к MongoDB установлено")

		taskRepo = repository.NewMongoTaskRepository(mongo.Database())

	default:
		log.Fatalf("Неизвестный STORE_DRIVER: %s", cfg.StoreDriver)
	}

	// Подключаемся к RabbitMQ, если он сконфигурирован
	var events usecase.EventPublisher = usecase.NopPublisher{}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := client.NewRabbitMQClient(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal("Ошибка подключения к RabbitMQ:", err)
		}
		defer rabbitMQ.Close()
		fmt.Println("Подключение к RabbitMQ установлено")

		events = rabbitMQ

		// Запускаем воркер событий
		eventWorker := worker.NewEventWorker(cfg.RabbitMQURL, rabbitMQ.GetQueueName())
		wg.Add(1)
		go func() {
			defer wg.Done()
			eventWorker.Start(workerCtx)
		}()
	}

	// Инициализируем сервисы
	taskService := usecase.NewTaskService(taskRepo, events)
	reportService := usecase.NewReportService(taskRepo)

	router := api.NewRouter(taskService, reportService)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		fmt.Printf("Запуск HTTP сервера на порту %s...\n", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	fmt.Println("Сервис готов к работе!")
	fmt.Printf(" API: http://localhost:%s/tasks\n", cfg.HTTPPort)
	fmt.Println("Для остановки нажмите Ctrl+C")

	waitForShutdown(server, workerCancel)
	wg.Wait()
	fmt.Println("Приложение завершено корректно")
}

func waitForShutdown(server *http.Server, workerCancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan

	fmt.Println("Завершение работы...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ошибка остановки HTTP сервера: %v", err)
	}

	workerCancel()
}

func runMigrations(dbURL string) error {
	m, err := migrate.New("file://migrations", dbURL)
	if err != nil {
		return fmt.Errorf("ошибка создания мигратора: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("ошибка выполнения миграций: %w", err)
	}

	fmt.Println("Миграции выполнены успешно")
	return nil
}
