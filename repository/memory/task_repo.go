package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
)

type taskRepository struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
	order map[string]int
	seq   int
}

// NewTaskRepository returns an in-memory implementation of TaskRepository.
// Mutations are serialized per store; reads operate on copies.
func NewTaskRepository() repository.TaskRepository {
	return &taskRepository{
		tasks: make(map[string]domain.Task),
		order: make(map[string]int),
	}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(&task), nil
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []domain.Task
	for _, task := range r.tasks {
		if filter.UserID != "" && task.UserID != filter.UserID {
			continue
		}
		if filter.Lane != "" && task.Lane() != filter.Lane {
			continue
		}
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		tasks = append(tasks, *cloneTask(&task))
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return r.order[tasks[i].ID] < r.order[tasks[j].ID]
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(tasks) {
			return nil, nil
		}
		tasks = tasks[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(tasks) {
		tasks = tasks[:filter.Limit]
	}
	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	r.seq++
	r.order[task.ID] = r.seq
	r.tasks[task.ID] = *cloneTask(task)
	return cloneTask(task), nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.tasks[task.ID]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.CreatedAt = current.CreatedAt
	task.UpdatedAt = time.Now().UTC()
	r.tasks[task.ID] = *cloneTask(task)
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	delete(r.order, id)
	return nil
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	out := *t
	out.Tags = append([]string(nil), t.Tags...)
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	if t.Post != nil {
		post := *t.Post
		post.Hashtags = append([]string(nil), t.Post.Hashtags...)
		post.MediaURLs = append([]string(nil), t.Post.MediaURLs...)
		if t.Post.ScheduledTime != nil {
			at := *t.Post.ScheduledTime
			post.ScheduledTime = &at
		}
		out.Post = &post
	}
	if t.Listing != nil {
		listing := *t.Listing
		listing.Images = append([]string(nil), t.Listing.Images...)
		out.Listing = &listing
	}
	return &out
}
