package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/brigadapm/ocorrencias-api/api/handlers"
	"github.com/brigadapm/ocorrencias-api/api/scheduler"
	"github.com/brigadapm/ocorrencias-api/config"
	"github.com/brigadapm/ocorrencias-api/databases"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	s := scheduler.NewScheduler(databases.NewReportDatabase(a.DatabaseHelper()))
	s.Start()
	defer s.Stop()

	zap.S().Infow("ocorrencias-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
