package cluster

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
	"github.com/junohq/backend/usecase/privacy"
)

// UseCase builds privacy-filtered cluster views and owns cluster membership
// commands. Views are read-only; every disclosed item passes the policy
// engine first.
type UseCase struct {
	clusters  repository.ClusterRepository
	users     repository.UserRepository
	tasks     repository.TaskRepository
	events    repository.CalendarEventRepository
	log       repository.UpdateLog
	policy    privacy.Engine
	logger    *zap.Logger
	updateCap int
}

func New(
	clusters repository.ClusterRepository,
	users repository.UserRepository,
	tasks repository.TaskRepository,
	events repository.CalendarEventRepository,
	log repository.UpdateLog,
	logger *zap.Logger,
	updateCap int,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if updateCap <= 0 {
		updateCap = 50
	}
	return &UseCase{
		clusters:  clusters,
		users:     users,
		tasks:     tasks,
		events:    events,
		log:       log,
		policy:    privacy.New(),
		logger:    logger,
		updateCap: updateCap,
	}
}

// CreateCluster registers a sharing group keyed by a last name.
func (uc *UseCase) CreateCluster(ctx context.Context, name, lastName string) (*domain.Cluster, error) {
	if name == "" || lastName == "" {
		return nil, domain.ErrInvalidPayload
	}
	cluster := &domain.Cluster{
		ID:       uuid.NewString(),
		Name:     name,
		LastName: lastName,
	}
	if err := uc.clusters.Save(ctx, cluster); err != nil {
		return nil, err
	}
	return cluster, nil
}

// Join adds a user to a cluster. The user's last name must match the
// cluster's membership key.
func (uc *UseCase) Join(ctx context.Context, clusterID, userID string) error {
	cluster, err := uc.clusters.GetByID(ctx, clusterID)
	if err != nil {
		return err
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.LastName != cluster.LastName {
		return domain.NewError(domain.ErrCodeConflict, "last name does not match cluster")
	}

	for _, id := range cluster.MemberIDs {
		if id == userID {
			return nil
		}
	}
	cluster.MemberIDs = append(cluster.MemberIDs, userID)
	if err := uc.clusters.Save(ctx, cluster); err != nil {
		return err
	}

	if !user.MemberOf(clusterID) {
		user.Clusters = append(user.Clusters, clusterID)
		if err := uc.users.Upsert(ctx, user); err != nil {
			return err
		}
	}

	uc.append(ctx, clusterID, fmt.Sprintf("%s %s joined the cluster", user.FirstName, user.LastName))
	return nil
}

// ShareTask publishes a member's task on the cluster's shared list.
func (uc *UseCase) ShareTask(ctx context.Context, clusterID, taskID string) error {
	cluster, err := uc.clusters.GetByID(ctx, clusterID)
	if err != nil {
		return err
	}
	task, err := uc.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	member := false
	for _, id := range cluster.MemberIDs {
		if id == task.UserID {
			member = true
			break
		}
	}
	if !member {
		return domain.NewError(domain.ErrCodeConflict, "task owner is not a cluster member")
	}

	for _, id := range cluster.SharedTasks {
		if id == taskID {
			return nil
		}
	}
	cluster.SharedTasks = append(cluster.SharedTasks, taskID)
	if err := uc.clusters.Save(ctx, cluster); err != nil {
		return err
	}

	uc.append(ctx, clusterID, fmt.Sprintf("New shared task: %q added", task.Title))
	return nil
}

// View merges the cluster's shared state into a bounded, ordered read model.
// Members whose last name no longer matches are excluded and reported as a
// stale-membership warning rather than failing the view.
func (uc *UseCase) View(ctx context.Context, clusterID, viewerID string) (*domain.ClusterView, error) {
	cluster, err := uc.clusters.GetByID(ctx, clusterID)
	if err != nil {
		return nil, err
	}

	viewer, err := uc.users.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if !viewer.MemberOf(clusterID) {
		return nil, domain.ErrClusterNotFound
	}

	view := &domain.ClusterView{
		ClusterID: cluster.ID,
		Name:      cluster.Name,
		LastName:  cluster.LastName,
	}

	owners := make(map[string]*domain.User, len(cluster.MemberIDs))
	for _, memberID := range cluster.MemberIDs {
		member, err := uc.users.GetByID(ctx, memberID)
		if err != nil {
			uc.logger.Warn("cluster member lookup failed",
				zap.String("cluster_id", clusterID),
				zap.String("user_id", memberID),
				zap.Error(err))
			continue
		}
		if member.LastName != cluster.LastName {
			view.Warnings = append(view.Warnings,
				fmt.Sprintf("stale membership: %s %s no longer matches %q", member.FirstName, member.LastName, cluster.LastName))
			continue
		}
		owners[member.ID] = member
		view.Members = append(view.Members, uc.memberView(ctx, member, clusterID))
	}

	for _, taskID := range cluster.SharedTasks {
		task, err := uc.tasks.GetByID(ctx, taskID)
		if err != nil {
			continue
		}
		owner, ok := owners[task.UserID]
		if !ok {
			continue
		}
		if !uc.policy.CanDisclose(owner.Privacy, owner.Clusters, privacy.FieldTasks, clusterID) {
			continue
		}
		view.SharedTasks = append(view.SharedTasks, *task)
	}

	if uc.log != nil {
		updates, err := uc.log.Recent(ctx, clusterID, uc.updateCap)
		if err != nil {
			uc.logger.Warn("update log read failed", zap.String("cluster_id", clusterID), zap.Error(err))
		} else {
			view.RecentUpdates = updates
		}
	}

	return view, nil
}

func (uc *UseCase) memberView(ctx context.Context, member *domain.User, clusterID string) domain.MemberView {
	mv := domain.MemberView{
		UserID:         member.ID,
		FirstName:      member.FirstName,
		AgentName:      member.AgentName,
		ActivityShared: uc.policy.CanDisclose(member.Privacy, member.Clusters, privacy.FieldActivity, clusterID),
		AllowsMessages: uc.policy.CanDisclose(member.Privacy, member.Clusters, privacy.FieldMessages, clusterID),
		AllowsInsights: uc.policy.CanDisclose(member.Privacy, member.Clusters, privacy.FieldInsights, clusterID),
	}

	if uc.policy.CanDisclose(member.Privacy, member.Clusters, privacy.FieldTasks, clusterID) {
		tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: member.ID})
		if err != nil {
			uc.logger.Warn("member task list failed", zap.String("user_id", member.ID), zap.Error(err))
		} else {
			mv.Tasks = tasks
		}
	}

	if uc.events != nil && uc.policy.CanDisclose(member.Privacy, member.Clusters, privacy.FieldCalendar, clusterID) {
		events, err := uc.events.ListByUser(ctx, member.ID)
		if err != nil {
			uc.logger.Warn("member calendar list failed", zap.String("user_id", member.ID), zap.Error(err))
		} else {
			mv.Events = events
		}
	}

	return mv
}

func (uc *UseCase) append(ctx context.Context, clusterID, message string) {
	if uc.log == nil {
		return
	}
	if err := uc.log.Append(ctx, clusterID, domain.ClusterUpdate{Message: message}); err != nil {
		uc.logger.Warn("update log append failed", zap.String("cluster_id", clusterID), zap.Error(err))
	}
}
