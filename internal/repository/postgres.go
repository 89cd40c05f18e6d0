package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskreports/task-api/internal/entity"
)

type PostgresTaskRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTaskRepository(db *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{
		db: db,
	}
}

const taskColumns = `id::text, title, description, due_date, priority, assigned_member, status, created_at, completed_at`

func (r *PostgresTaskRepository) Create(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error) {

	// id и created_at назначает база
	query := `
	INSERT INTO tasks (title, description, due_date, priority, assigned_member, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + taskColumns

	var createdTask entity.Task
	err := r.db.QueryRow(ctx, query,
		req.Title,
		req.Description,
		req.DueDate,
		req.Priority,
		req.AssignedMember,
		req.Status,
	).Scan(
		&createdTask.ID,
		&createdTask.Title,
		&createdTask.Description,
		&createdTask.DueDate,
		&createdTask.Priority,
		&createdTask.AssignedMember,
		&createdTask.Status,
		&createdTask.CreatedAt,
		&createdTask.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	return &createdTask, nil
}

func (r *PostgresTaskRepository) GetById(ctx context.Context, id string) (*entity.Task, error) {

	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE id = $1::uuid
	`
	var task entity.Task

	err := r.db.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.Priority,
		&task.AssignedMember,
		&task.Status,
		&task.CreatedAt,
		&task.CompletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

// Update - полная перезапись изменяемых полей, created_at не трогаем
func (r *PostgresTaskRepository) Update(ctx context.Context, task *entity.Task) (*entity.Task, error) {

	query := `
	UPDATE tasks
	SET title = $1, description = $2, due_date = $3, priority = $4,
	    assigned_member = $5, status = $6, completed_at = $7
	WHERE id = $8::uuid
	RETURNING ` + taskColumns

	var updated entity.Task
	err := r.db.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.DueDate,
		task.Priority,
		task.AssignedMember,
		task.Status,
		task.CompletedAt,
		task.ID,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Description,
		&updated.DueDate,
		&updated.Priority,
		&updated.AssignedMember,
		&updated.Status,
		&updated.CreatedAt,
		&updated.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// List - список задач с фильтрацией
func (r *PostgresTaskRepository) List(ctx context.Context, filter TaskFilter) ([]entity.Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	`
	args := []interface{}{}
	where := ""
	argIndex := 1

	addCond := func(cond string, value interface{}) {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += cond + " $" + strconv.Itoa(argIndex)
		args = append(args, value)
		argIndex++
	}

	if filter.Status != "" {
		addCond("status =", filter.Status)
	}
	if filter.AssignedMember != "" {
		addCond("assigned_member =", filter.AssignedMember)
	}
	// обе границы включительно
	if filter.CompletedFrom != nil && filter.CompletedTo != nil {
		addCond("completed_at >=", *filter.CompletedFrom)
		addCond("completed_at <=", *filter.CompletedTo)
	}

	query += where + " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []entity.Task{}
	for rows.Next() {
		var task entity.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.DueDate,
			&task.Priority,
			&task.AssignedMember,
			&task.Status,
			&task.CreatedAt,
			&task.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
