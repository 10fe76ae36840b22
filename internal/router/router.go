package routes

import (
	"net/http"

	_ "github.com/oggyb/messages-api/internal/docs" // swagger docs
	"github.com/oggyb/messages-api/internal/handler"
	swaggerHandler "github.com/swaggo/http-swagger"
)

// AppDeps is built once at startup and shared read-only by every request.
type AppDeps struct {
	Home      HomeHandler
	Message   MessageHandler
	Timestamp TimestampHandler
}

type HomeHandler interface {
	Health(w http.ResponseWriter, r *http.Request) error
	NotFound(w http.ResponseWriter, r *http.Request) error
}

type MessageHandler interface {
	ListMessages(w http.ResponseWriter, r *http.Request) error
}

type TimestampHandler interface {
	WriteTimestamp(w http.ResponseWriter, r *http.Request) error
	ReadTimestamp(w http.ResponseWriter, r *http.Request) error
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /health", handler.Wrap(d.Home.Health))

	mux.HandleFunc("GET /messages", handler.Wrap(d.Message.ListMessages))

	mux.HandleFunc("POST /timestamp", handler.Wrap(d.Timestamp.WriteTimestamp))
	mux.HandleFunc("GET /timestamp", handler.Wrap(d.Timestamp.ReadTimestamp))

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", handler.Wrap(d.Home.NotFound))
}
