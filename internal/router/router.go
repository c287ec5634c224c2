package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/junohq/backend/api/handler"
)

type Handlers struct {
	User       *apiHandler.UserHandler
	Task       *apiHandler.TaskHandler
	Suggestion *apiHandler.SuggestionHandler
	Cluster    *apiHandler.ClusterHandler
	Insight    *apiHandler.InsightHandler
	Calendar   *apiHandler.CalendarHandler
	Health     *apiHandler.HealthHandler
}

type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, requireUser Middleware) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Account
	r.POST("/api/v1/users", handlers.User.CreateUser)
	r.GET("/api/v1/users/me", requireUser(handlers.User.GetUser))
	r.PUT("/api/v1/users/me", requireUser(handlers.User.Rename))
	r.PUT("/api/v1/users/me/personality", requireUser(handlers.User.SetPersonality))
	r.PUT("/api/v1/users/me/privacy", requireUser(handlers.User.UpdatePrivacy))

	// Task board
	r.GET("/api/v1/lanes/{lane}/tasks", requireUser(handlers.Task.ListLane))
	r.POST("/api/v1/tasks", requireUser(handlers.Task.CreateTask))
	r.GET("/api/v1/tasks/{id}", requireUser(handlers.Task.GetTask))
	r.PATCH("/api/v1/tasks/{id}", requireUser(handlers.Task.UpdateTask))
	r.PUT("/api/v1/tasks/{id}/completed", requireUser(handlers.Task.SetCompleted))
	r.POST("/api/v1/tasks/{id}/toggle", requireUser(handlers.Task.ToggleCompletion))
	r.DELETE("/api/v1/tasks/{id}", requireUser(handlers.Task.DeleteTask))

	// Suggestions
	r.POST("/api/v1/suggestions/generate", requireUser(handlers.Suggestion.Generate))
	r.GET("/api/v1/suggestions", requireUser(handlers.Suggestion.Pending))
	r.POST("/api/v1/suggestions/{id}/accept", requireUser(handlers.Suggestion.Accept))
	r.POST("/api/v1/suggestions/{id}/snooze", requireUser(handlers.Suggestion.Snooze))
	r.POST("/api/v1/suggestions/{id}/delegate", requireUser(handlers.Suggestion.Delegate))

	// Clusters
	r.POST("/api/v1/clusters", requireUser(handlers.Cluster.CreateCluster))
	r.GET("/api/v1/clusters/{id}", requireUser(handlers.Cluster.View))
	r.POST("/api/v1/clusters/{id}/join", requireUser(handlers.Cluster.Join))
	r.POST("/api/v1/clusters/{id}/tasks", requireUser(handlers.Cluster.ShareTask))

	// Insights
	r.POST("/api/v1/insights/compose", handlers.Insight.Compose)
	r.POST("/api/v1/insights/build", handlers.Insight.BuildInsights)

	// Calendar
	r.POST("/api/v1/events", requireUser(handlers.Calendar.AddEvent))
	r.GET("/api/v1/events", requireUser(handlers.Calendar.ListEvents))
	r.DELETE("/api/v1/events/{id}", requireUser(handlers.Calendar.RemoveEvent))

	return r
}
