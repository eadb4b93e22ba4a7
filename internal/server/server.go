package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"quizprize-game/internal/bank"
	"quizprize-game/internal/config"
	"quizprize-game/internal/hub"
	"quizprize-game/internal/models"
	"quizprize-game/internal/repository"
	"quizprize-game/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/gorilla/websocket"
)

const playerCookieName = "quizprize_player"

type Server struct {
	config      *config.Config
	hub         *hub.Hub
	gameService *services.GameService
	router      *gin.Engine
	upgrader    websocket.Upgrader
	cookies     *sessions.CookieStore
}

func NewServer(cfg *config.Config) *Server {
	gameHub := hub.NewHub()

	// Use PostgreSQL if DATABASE_URL is provided, otherwise in-memory
	var repo repository.Repository
	var err error

	if cfg.DatabaseURL != "" {
		log.Printf("Using PostgreSQL points ledger")
		repo, err = repository.NewPostgresRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
	} else {
		log.Printf("Using in-memory points ledger (development mode)")
		repo = repository.NewInMemoryRepository()
	}

	questionBank := bank.New()
	gameService := services.NewGameService(gameHub, repo, questionBank, cfg.Settings)

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true // Allow all origins for development
		},
	}

	router := gin.Default()

	server := &Server{
		config:      cfg,
		hub:         gameHub,
		gameService: gameService,
		router:      router,
		upgrader:    upgrader,
		cookies:     sessions.NewCookieStore([]byte(cfg.CookieSecret)),
	}

	server.setupRoutes()
	return server
}

// Router exposes the gin engine for HTTP-level tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api/v1")
	{
		api.GET("/questions/batch", s.getBatch)
		api.POST("/sessions", s.startSession)
		api.GET("/sessions/:id", s.getSession)
		api.POST("/sessions/:id/answer", s.submitAnswer)
		api.POST("/sessions/:id/skip", s.skipPause)
		api.POST("/sessions/:id/exit", s.exitSession)
		api.GET("/players/:id/points", s.getPoints)
	}

	s.router.GET("/ws", s.handleWebSocket)
}

// getBatch implements the batch fetch contract: category + count in,
// 0..count questions out. An empty array signals pool exhaustion or an
// unknown category and is not an error.
func (s *Server) getBatch(c *gin.Context) {
	category := c.Query("category")
	count, err := strconv.Atoi(c.DefaultQuery("count", "5"))
	if err != nil || count <= 0 {
		c.JSON(400, gin.H{"error": "count must be a positive integer"})
		return
	}

	batch := s.gameService.Source().GetBatch(category, count)
	if batch == nil {
		batch = []models.Question{}
	}
	c.JSON(200, gin.H{"questions": batch, "count": len(batch)})
}

func (s *Server) startSession(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
		Username string `json:"username" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	playerID := s.resolvePlayer(c)

	snap, err := s.gameService.StartSession(req.Category, playerID, req.Username)
	if err == services.ErrUnknownCategory {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err == services.ErrContentUnavailable {
		c.JSON(503, gin.H{"error": err.Error(), "retry": true})
		return
	}

	c.JSON(201, snap)
}

func (s *Server) getSession(c *gin.Context) {
	snap, err := s.gameService.Snapshot(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, snap)
}

func (s *Server) submitAnswer(c *gin.Context) {
	var req struct {
		Answer string `json:"answer"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	snap, err := s.gameService.SubmitAnswer(c.Param("id"), req.Answer)
	if err == services.ErrSessionNotFound {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	if err == services.ErrSessionOver {
		c.JSON(409, gin.H{"error": err.Error(), "session": snap})
		return
	}
	if err == services.ErrContentUnavailable {
		c.JSON(503, gin.H{"error": err.Error(), "retry": true, "session": snap})
		return
	}

	c.JSON(200, snap)
}

func (s *Server) skipPause(c *gin.Context) {
	snap, err := s.gameService.SkipPause(c.Param("id"))
	if err == services.ErrSessionOver {
		c.JSON(409, gin.H{"error": err.Error(), "session": snap})
		return
	}
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, snap)
}

func (s *Server) exitSession(c *gin.Context) {
	snap, err := s.gameService.EndSession(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, snap)
}

func (s *Server) getPoints(c *gin.Context) {
	total, err := s.gameService.Repository().TotalPoints(c.Param("id"))
	if err != nil {
		log.Printf("Failed to read points for player %s: %v", c.Param("id"), err)
		c.JSON(500, gin.H{"error": "failed to read points"})
		return
	}
	c.JSON(200, gin.H{"player_id": c.Param("id"), "points": total})
}

// resolvePlayer binds the browser to a stable player id via the cookie
// store; a missing or broken cookie mints a fresh identity.
func (s *Server) resolvePlayer(c *gin.Context) string {
	session, _ := s.cookies.Get(c.Request, playerCookieName)
	if id, ok := session.Values["player_id"].(string); ok && id != "" {
		return id
	}
	id := uuid.New().String()
	session.Values["player_id"] = id
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("Failed to save player cookie: %v", err)
	}
	return id
}

func (s *Server) handleWebSocket(c *gin.Context) {
	sessionID := c.Query("session_id")
	sessionHub := s.hub.GetSessionHub(sessionID)
	if sessionHub == nil {
		c.JSON(404, gin.H{"error": "session not found"})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &hub.WebSocketClient{
		ID:        generateClientID(),
		SessionID: sessionID,
		Send:      make(chan []byte, 256),
		Hub:       sessionHub,
	}
	sessionHub.Register(client)

	go s.handleClientReads(conn, client)
	go s.handleClientWrites(conn, client)
}

func (s *Server) handleClientReads(conn *websocket.Conn, client *hub.WebSocketClient) {
	defer func() {
		client.Hub.Unregister(client)
		conn.Close()
	}()

	// Spectators only listen; reads just detect disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) handleClientWrites(conn *websocket.Conn, client *hub.WebSocketClient) {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Server) Start() error {
	return s.router.Run(":" + s.config.Port)
}

func generateClientID() string {
	return "client_" + uuid.New().String()
}
