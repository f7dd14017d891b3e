package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Import task states.
const (
	TaskRunning   = "running"
	TaskDone      = "done"
	TaskError     = "error"
	TaskCancelled = "cancelled"
)

type ImportResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type ImportTask struct {
	ID        string        `json:"id"`
	FeedURL   string        `json:"feedUrl"`
	Status    string        `json:"status"` // "running", "done", "error", "cancelled"
	Total     int           `json:"total"`
	Current   int           `json:"current"`
	Item      string        `json:"item,omitempty"`
	Result    *ImportResult `json:"result,omitempty"`
	Error     string        `json:"error,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ImportTaskService tracks at most one import per user.
type ImportTaskService interface {
	// Start registers a new task for userID, cancelling a running one.
	Start(userID int64, feedURL string, total int) (string, context.Context)
	Update(userID int64, taskID string, current int, item string)
	Complete(userID int64, taskID string, result ImportResult)
	Fail(userID int64, taskID string, err error)
	Get(userID int64) *ImportTask
	Cancel(userID int64) bool
}

type userTask struct {
	task   *ImportTask
	cancel context.CancelFunc
}

type importTaskManager struct {
	mu    sync.RWMutex
	tasks map[int64]*userTask
}

func NewImportTaskService() ImportTaskService {
	return &importTaskManager{tasks: make(map[int64]*userTask)}
}

func (m *importTaskManager) Start(userID int64, feedURL string, total int) (string, context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing := m.tasks[userID]; existing != nil && existing.cancel != nil {
		existing.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.New().String()
	m.tasks[userID] = &userTask{
		task: &ImportTask{
			ID:        id,
			FeedURL:   feedURL,
			Status:    TaskRunning,
			Total:     total,
			CreatedAt: time.Now(),
		},
		cancel: cancel,
	}
	return id, ctx
}

// running returns the user's task if it is taskID and still running.
func (m *importTaskManager) running(userID int64, taskID string) *userTask {
	ut := m.tasks[userID]
	if ut == nil || ut.task.ID != taskID || ut.task.Status != TaskRunning {
		return nil
	}
	return ut
}

func (m *importTaskManager) Update(userID int64, taskID string, current int, item string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ut := m.running(userID, taskID); ut != nil {
		ut.task.Current = current
		ut.task.Item = item
	}
}

func (m *importTaskManager) Complete(userID int64, taskID string, result ImportResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ut := m.running(userID, taskID); ut != nil {
		ut.task.Status = TaskDone
		ut.task.Result = &result
		ut.task.Item = ""
		ut.cancel()
		ut.cancel = nil
	}
}

func (m *importTaskManager) Fail(userID int64, taskID string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ut := m.running(userID, taskID); ut != nil {
		ut.task.Status = TaskError
		ut.task.Error = err.Error()
		ut.task.Item = ""
		ut.cancel()
		ut.cancel = nil
	}
}

func (m *importTaskManager) Get(userID int64) *ImportTask {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ut := m.tasks[userID]
	if ut == nil {
		return nil
	}

	// Return a copy
	task := *ut.task
	if ut.task.Result != nil {
		result := *ut.task.Result
		task.Result = &result
	}
	return &task
}

func (m *importTaskManager) Cancel(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	ut := m.tasks[userID]
	if ut == nil || ut.task.Status != TaskRunning {
		return false
	}

	if ut.cancel != nil {
		ut.cancel()
		ut.cancel = nil
	}

	ut.task.Status = TaskCancelled
	ut.task.Item = ""
	return true
}
