package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/brigadapm/ocorrencias-api/api"
	"github.com/brigadapm/ocorrencias-api/config"
	"github.com/brigadapm/ocorrencias-api/databases"
	"github.com/brigadapm/ocorrencias-api/models"
	"github.com/brigadapm/ocorrencias-api/ocorrencia"
)

// Render handles the formatted output endpoints: the WhatsApp release,
// the 24h digest, the weekly summary and the cartorial tables.
type Render struct {
	DB databases.ReportDatabase
}

// TextResponse wraps a rendered plain-text artifact.
type TextResponse struct {
	Text string `json:"text"`
}

// DocumentResponse wraps a rendered document as structured blocks for
// the docx encoder on the client side.
type DocumentResponse struct {
	Blocks []models.Block `json:"blocks"`
}

// ReleaseHandler renders the WhatsApp release for a stored report. The
// preliminar query parameter toggles the in-progress markers.
func (re Render) ReleaseHandler(w http.ResponseWriter, r *http.Request) {
	rep := Report{DB: re.DB}
	report, ok := rep.findByPathID(w, r)
	if !ok {
		return
	}

	preliminar := r.URL.Query().Get("preliminar") == "true"
	text := ocorrencia.Release(report.Input(), preliminar, time.Now())

	writeJSON(w, TextResponse{Text: text})
}

// CartoriaisHandler renders one identity table per envolvido of the
// report.
func (re Render) CartoriaisHandler(w http.ResponseWriter, r *http.Request) {
	rep := Report{DB: re.DB}
	report, ok := rep.findByPathID(w, r)
	if !ok {
		return
	}

	writeJSON(w, DocumentResponse{Blocks: ocorrencia.Cartoriais(*report)})
}

// RPIHandler renders the 24h digest as plain text.
func (re Render) RPIHandler(w http.ResponseWriter, r *http.Request) {
	reports, ok := re.allReports(w, r)
	if !ok {
		return
	}
	writeJSON(w, TextResponse{Text: ocorrencia.RPI(reports, time.Now())})
}

// RPIDocumentHandler renders the 24h digest as document blocks.
func (re Render) RPIDocumentHandler(w http.ResponseWriter, r *http.Request) {
	reports, ok := re.allReports(w, r)
	if !ok {
		return
	}
	writeJSON(w, DocumentResponse{Blocks: ocorrencia.RPIDocument(reports, time.Now())})
}

// SemanalHandler renders the weekly summary as plain text.
func (re Render) SemanalHandler(w http.ResponseWriter, r *http.Request) {
	reports, ok := re.allReports(w, r)
	if !ok {
		return
	}
	writeJSON(w, TextResponse{Text: ocorrencia.Semanal(reports, time.Now())})
}

// SemanalDocumentHandler renders the weekly summary as document blocks.
func (re Render) SemanalDocumentHandler(w http.ResponseWriter, r *http.Request) {
	reports, ok := re.allReports(w, r)
	if !ok {
		return
	}
	writeJSON(w, DocumentResponse{Blocks: ocorrencia.SemanalDocument(reports, time.Now())})
}

// allReports sweeps the retention window and loads the whole
// collection, the digests always work over the full current state.
func (re Render) allReports(w http.ResponseWriter, r *http.Request) ([]models.Report, bool) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	sweepExpired(ctx, re.DB, time.Now())

	reports, err := re.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get reports", http.StatusNotFound, w, err)
		return nil, false
	}
	return reports, true
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	b, err := json.Marshal(body)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
