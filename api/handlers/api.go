package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/brigadapm/ocorrencias-api/api"
	"github.com/brigadapm/ocorrencias-api/config"
	"github.com/brigadapm/ocorrencias-api/databases"
	"github.com/brigadapm/ocorrencias-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareAuth{Config: &a.Config}
	m.SetupGoGuardian()

	r := mux.NewRouter()
	r.Use(api.TimeoutMiddleware(api.QueryTimeout))

	reportDB := databases.NewReportDatabase(a.dbHelper)
	rep := Report{DB: reportDB, CDB: databases.NewCounterDatabase(a.dbHelper)}
	ren := Render{DB: reportDB}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", http.HandlerFunc(m.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/reports", api.Middleware(http.HandlerFunc(rep.ReportsHandler))).Methods("GET")
	apiCreate.Handle("/report", api.Middleware(http.HandlerFunc(rep.CreateReportHandler))).Methods("POST")
	apiCreate.Handle("/report/{report_id}", api.Middleware(http.HandlerFunc(rep.ReportByIDHandler))).Methods("GET")
	apiCreate.Handle("/report/{report_id}", api.Middleware(http.HandlerFunc(rep.UpdateReportHandler))).Methods("PUT")
	apiCreate.Handle("/report/{report_id}", api.Middleware(http.HandlerFunc(rep.DeleteReportHandler))).Methods("DELETE")

	apiCreate.Handle("/report/{report_id}/release", api.Middleware(http.HandlerFunc(ren.ReleaseHandler))).Methods("GET")
	apiCreate.Handle("/report/{report_id}/cartoriais", api.Middleware(http.HandlerFunc(ren.CartoriaisHandler))).Methods("GET")
	apiCreate.Handle("/render/rpi", api.Middleware(http.HandlerFunc(ren.RPIHandler))).Methods("GET")
	apiCreate.Handle("/render/rpi/document", api.Middleware(http.HandlerFunc(ren.RPIDocumentHandler))).Methods("GET")
	apiCreate.Handle("/render/semanal", api.Middleware(http.HandlerFunc(ren.SemanalHandler))).Methods("GET")
	apiCreate.Handle("/render/semanal/document", api.Middleware(http.HandlerFunc(ren.SemanalDocumentHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("ocorrencias-api has connected to the database")

	// initialize api router
	a.Router = a.New()
	return nil
}

// DatabaseHelper exposes the connected db handle so main can wire the
// background scheduler against the same connection.
func (a *App) DatabaseHelper() databases.DatabaseHelper {
	return a.dbHelper
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
