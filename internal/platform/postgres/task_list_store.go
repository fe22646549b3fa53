package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// PostgresTaskListStore implements the store.TaskListStore interface
// using a PostgreSQL database as the storage backend. Reads eagerly load
// the member tasks of each list through the task store.
type PostgresTaskListStore struct {
	db     store.DBTX
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewPostgresTaskListStore creates a new PostgreSQL implementation of the
// TaskListStore interface. The task store is used to eagerly load member
// tasks on reads; both must share the same database handle.
// If logger is nil, a default logger will be used.
func NewPostgresTaskListStore(
	db store.DBTX,
	tasks store.TaskStore,
	logger *slog.Logger,
) *PostgresTaskListStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if tasks == nil {
		panic("task store cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskListStore{
		db:     db,
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_list_store")),
	}
}

// Ensure PostgresTaskListStore implements store.TaskListStore interface
var _ store.TaskListStore = (*PostgresTaskListStore)(nil)

// scanTaskList reads one task list row. user_id is nullable in the schema.
func scanTaskList(row interface{ Scan(dest ...any) error }) (*domain.TaskList, error) {
	var list domain.TaskList
	var userID uuid.NullUUID

	err := row.Scan(
		&list.ID,
		&list.Name,
		&userID,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		list.UserID = &userID.UUID
	}

	return &list, nil
}

// Create implements store.TaskListStore.Create
// Returns store.ErrInvalidEntity when the referenced owner is absent.
func (s *PostgresTaskListStore) Create(ctx context.Context, list *domain.TaskList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := list.Validate(); err != nil {
		log.Warn("task list validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_list_id", list.ID.String()))
		return err
	}

	query := `
		INSERT INTO task_lists (id, name, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		list.ID,
		list.Name,
		nullableUUID(list.UserID),
		list.CreatedAt,
		list.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create task list",
			slog.String("error", err.Error()),
			slog.String("task_list_id", list.ID.String()))
		return classifyError("task_list", "create", err)
	}

	log.Info("task list created successfully",
		slog.String("task_list_id", list.ID.String()),
		slog.String("name", list.Name))
	return nil
}

// GetByID implements store.TaskListStore.GetByID
// The returned list carries its member tasks, eagerly loaded.
// Returns store.ErrTaskListNotFound if the task list does not exist.
func (s *PostgresTaskListStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.TaskList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, user_id, created_at, updated_at
		FROM task_lists
		WHERE id = $1
	`

	list, err := scanTaskList(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task list not found", slog.String("task_list_id", id.String()))
			return nil, store.ErrTaskListNotFound
		}
		log.Error("failed to get task list by ID",
			slog.String("error", err.Error()),
			slog.String("task_list_id", id.String()))
		return nil, classifyError("task_list", "get", err)
	}

	tasks, err := s.tasks.ListByTaskList(ctx, id)
	if err != nil {
		return nil, err
	}
	list.Tasks = tasks

	return list, nil
}

// Update implements store.TaskListStore.Update
// Returns store.ErrTaskListNotFound if the task list does not exist.
func (s *PostgresTaskListStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch store.TaskListPatch,
) (*domain.TaskList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsEmpty() {
		// Nothing to write; an empty patch is a read.
		return s.GetByID(ctx, id)
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, domain.ErrEmptyTaskListName
	}

	setClauses := make([]string, 0, 3)
	args := make([]any, 0, 4)

	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		addSet("name", strings.TrimSpace(*patch.Name))
	}
	if patch.UserID != nil {
		addSet("user_id", nullableUUID(patch.UserID))
	}
	addSet("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE task_lists SET %s WHERE id = $%d RETURNING id, name, user_id, created_at, updated_at`,
		strings.Join(setClauses, ", "),
		len(args),
	)

	list, err := scanTaskList(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task list not found for update",
				slog.String("task_list_id", id.String()))
			return nil, store.ErrTaskListNotFound
		}
		log.Error("failed to update task list",
			slog.String("error", err.Error()),
			slog.String("task_list_id", id.String()))
		return nil, classifyError("task_list", "update", err)
	}

	log.Info("task list updated successfully",
		slog.String("task_list_id", id.String()))
	return list, nil
}

// Delete implements store.TaskListStore.Delete
// Member tasks are removed with the list by the schema's ON DELETE CASCADE.
// Returns store.ErrTaskListNotFound if the task list does not exist.
func (s *PostgresTaskListStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM task_lists WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task list",
			slog.String("error", err.Error()),
			slog.String("task_list_id", id.String()))
		return classifyError("task_list", "delete", err)
	}

	if err := checkRowsAffected(result, store.ErrTaskListNotFound); err != nil {
		log.Debug("task list not found for delete",
			slog.String("task_list_id", id.String()))
		return err
	}

	log.Info("task list deleted successfully",
		slog.String("task_list_id", id.String()))
	return nil
}

// ListAll implements store.TaskListStore.ListAll
// Member tasks are eagerly loaded list by list. This is a full-table,
// full-fanout read.
func (s *PostgresTaskListStore) ListAll(ctx context.Context) ([]*domain.TaskList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, user_id, created_at, updated_at
		FROM task_lists
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query task lists", slog.String("error", err.Error()))
		return nil, classifyError("task_list", "list", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	lists := []*domain.TaskList{}
	for rows.Next() {
		list, err := scanTaskList(rows)
		if err != nil {
			log.Error("failed to scan task list row", slog.String("error", err.Error()))
			return nil, err
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	for _, list := range lists {
		tasks, err := s.tasks.ListByTaskList(ctx, list.ID)
		if err != nil {
			return nil, err
		}
		list.Tasks = tasks
	}

	return lists, nil
}

// WithTx implements store.TaskListStore.WithTx
func (s *PostgresTaskListStore) WithTx(tx *sql.Tx) store.TaskListStore {
	return &PostgresTaskListStore{
		db:     tx,
		tasks:  s.tasks.WithTx(tx),
		logger: s.logger,
	}
}
