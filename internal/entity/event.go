package entity

import "time"

type EventAction string

const (
	EventTaskCreated       EventAction = "task.created"
	EventTaskStatusChanged EventAction = "task.status_changed"
)

// TaskEvent - уведомление о жизненном цикле задачи, уходит в очередь
type TaskEvent struct {
	EventID        string      `json:"event_id"`
	Action         EventAction `json:"action"`
	TaskID         string      `json:"task_id"`
	Status         TaskStatus  `json:"status"`
	AssignedMember string      `json:"assigned_member"`
	Timestamp      time.Time   `json:"timestamp"`
}
