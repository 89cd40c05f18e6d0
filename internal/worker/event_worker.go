package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/taskreports/task-api/internal/entity"
)

// EventWorker слушает очередь task_events и логирует события
// жизненного цикла задач. Точка подключения внешних потребителей.
type EventWorker struct {
	amqpURL   string
	queueName string
}

func NewEventWorker(amqpURL, queueName string) *EventWorker {
	return &EventWorker{
		amqpURL:   amqpURL,
		queueName: queueName,
	}
}

func (w *EventWorker) Start(ctx context.Context) {
	// Создаем отдельное соединение и канал для consumer'а
	conn, err := amqp.Dial(w.amqpURL)
	if err != nil {
		log.Printf("Ошибка подключения к RabbitMQ для воркера: %v", err)
		return
	}
	defer conn.Close()

	channel, err := conn.Channel()
	if err != nil {
		log.Printf("Ошибка создания канала для воркера: %v", err)
		return
	}
	defer channel.Close()

	// Убеждаемся, что очередь существует
	_, err = channel.QueueDeclare(
		w.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		log.Printf("Ошибка объявления очереди: %v", err)
		return
	}

	msgs, err := channel.Consume(
		w.queueName,    // queue
		"event_worker", // consumer tag
		false,          // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	if err != nil {
		log.Printf("Ошибка создания consumer: %v", err)
		return
	}

	fmt.Println("Event Worker запущен. Ожидаем сообщения...")

	for {
		select {
		case <-ctx.Done():
			fmt.Println("Event Worker остановлен")
			return
		case msg, ok := <-msgs:
			if !ok {
				fmt.Println("Канал сообщений закрыт")
				return
			}
			w.processMessage(msg)
		}
	}
}

func (w *EventWorker) processMessage(msg amqp.Delivery) {
	var event entity.TaskEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("Ошибка парсинга события: %v", err)
		msg.Nack(false, false) // Не возвращаем в очередь
		return
	}

	log.Printf("Событие %s: задача ID=%s, статус=%s, исполнитель=%s",
		event.Action, event.TaskID, event.Status, event.AssignedMember)
	msg.Ack(false)
}
