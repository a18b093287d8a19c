package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/raghulkannan/portfolio-api/config"
	"github.com/raghulkannan/portfolio-api/internal/auth"
	authhttp "github.com/raghulkannan/portfolio-api/internal/auth/http"
	contacthttp "github.com/raghulkannan/portfolio-api/internal/contacts/http"
	contactrepo "github.com/raghulkannan/portfolio-api/internal/contacts/repository"
	contactsvc "github.com/raghulkannan/portfolio-api/internal/contacts/service"
	"github.com/raghulkannan/portfolio-api/internal/httpapi"
	"github.com/raghulkannan/portfolio-api/internal/mailer"
	projecthttp "github.com/raghulkannan/portfolio-api/internal/projects/http"
	projectrepo "github.com/raghulkannan/portfolio-api/internal/projects/repository"
	projectsvc "github.com/raghulkannan/portfolio-api/internal/projects/service"
	"github.com/raghulkannan/portfolio-api/internal/uploads"
	uploadhttp "github.com/raghulkannan/portfolio-api/internal/uploads/http"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	DB          *pgxpool.Pool
	Redis       *redis.Client
	Tokens      *auth.Tokens
	Mailer      mailer.Mailer
	Store       *uploads.Store

	// Projects exposes the uncached repository so the caller can hand
	// it to the orphan-image sweeper. Sweeps must see committed rows,
	// never a stale cached listing.
	Projects projectrepo.Repository
}

// BuildRouter assembles repositories, services and routes. Every
// mutating route sits behind the shared RequireAdmin interceptor;
// listing and the contact form stay public.
func BuildRouter(dep *RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	base := projectrepo.NewPostgresRepo(dep.DB)
	var projects projectrepo.Repository = base
	if dep.Redis != nil {
		projects = projectrepo.NewCachedRepo(base, dep.Redis, dep.Config.Redis.TTL)
	}
	dep.Projects = base

	projectHandler := projecthttp.NewHandler(projectsvc.NewProjectService(projects, dep.Store))
	contactHandler := contacthttp.NewHandler(
		contactsvc.NewContactService(contactrepo.NewPostgresRepo(dep.DB), dep.Mailer),
		dep.Config.IsDevelopment(),
	)
	uploadHandler := uploadhttp.NewHandler(dep.Store)
	authHandler := authhttp.NewHandler(dep.Tokens)

	// Uploaded images are served straight off disk.
	r.Static("/uploads", dep.Store.Dir())

	api := r.Group("/api")
	projectHandler.RegisterPublic(api)
	contactHandler.RegisterPublic(api)
	uploadHandler.RegisterPublic(api)

	admin := api.Group("/admin")
	authHandler.Register(admin)

	guarded := admin.Group("", auth.RequireAdmin(dep.Tokens))
	projectHandler.RegisterAdmin(guarded)
	contactHandler.RegisterAdmin(guarded)
	uploadHandler.RegisterAdmin(guarded)

	return r
}
