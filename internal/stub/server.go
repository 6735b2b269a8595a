package stub

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

type Server struct {
	repos    *Repos
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewServer(db *gorm.DB) *Server {
	return &Server{
		repos: NewRepos(db),
		hub:   NewHub(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router builds the stub's HTTP surface: the endpoints the SDK consumes,
// with the same auth and error-shape conventions as the real platform.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	r.POST("/auth/login", s.login)

	auth := r.Group("/")
	auth.Use(authMiddleware())
	{
		forms := auth.Group("/forms")
		{
			forms.GET("", s.listForms)
			forms.POST("", s.createForm)
			forms.GET("/users/search", s.searchUsers)
			forms.GET("/:id", s.getForm)
			forms.PUT("/:id", s.updateForm)
			forms.POST("/:id/publish", s.publishForm)
			forms.DELETE("/:id", s.deleteForm)
			forms.POST("/:id/submit", s.submitForm)
			forms.GET("/:id/submissions", s.listSubmissions)
		}

		events := auth.Group("/events")
		{
			events.GET("", s.listEvents)
			events.GET("/:id", s.getEvent)
			events.POST("/:id/register", s.registerForEvent)
		}

		polls := auth.Group("/polls")
		{
			polls.GET("", s.listPolls)
			polls.GET("/:id", s.getPoll)
			polls.POST("/:id/vote", s.vote)
			polls.GET("/:id/results", s.pollResults)
		}

		posts := auth.Group("/feed")
		{
			posts.GET("", s.listPosts)
			posts.POST("", s.createPost)
			posts.POST("/:id/comments", s.createComment)
			posts.POST("/:id/like", s.likePost)
		}

		auth.GET("/ws/polls/:id", s.watchPoll)
	}

	return r
}
