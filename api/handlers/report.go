package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/brigadapm/ocorrencias-api/api"
	"github.com/brigadapm/ocorrencias-api/config"
	"github.com/brigadapm/ocorrencias-api/databases"
	"github.com/brigadapm/ocorrencias-api/models"
	"github.com/brigadapm/ocorrencias-api/ocorrencia"
)

var validate = validator.New()

var errInvalidCidade = errors.New("cidade is not covered by the selected unidade")

// Report handles report-related requests
type Report struct {
	DB  databases.ReportDatabase
	CDB databases.CounterDatabase
}

// ReportsHandler returns all stored reports. Every list read also runs
// the retention sweep so expired occurrences never reach a client.
func (re Report) ReportsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	sweepExpired(ctx, re.DB, time.Now())

	// creation order, ids are monotonically increasing
	dbResp, err := re.DB.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		config.ErrorStatus("failed to get reports", http.StatusNotFound, w, err)
		return
	}
	if dbResp == nil {
		dbResp = []models.Report{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateReportHandler creates a new report
func (re Report) CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeReportInput(w, r)
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := re.CDB.Next(ctx, databases.ReportCounter)
	if err != nil {
		config.ErrorStatus("failed to allocate report id", http.StatusInternalServerError, w, err)
		return
	}

	report := in.ToReport(id, time.Now())
	if err := re.DB.InsertOne(ctx, report); err != nil {
		config.ErrorStatus("failed to insert report", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// ReportByIDHandler returns a report by ID
func (re Report) ReportByIDHandler(w http.ResponseWriter, r *http.Request) {
	report, ok := re.findByPathID(w, r)
	if !ok {
		return
	}

	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateReportHandler replaces every editable field of a report. The id
// and creation time are immutable.
func (re Report) UpdateReportHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	in, ok := decodeReportInput(w, r)
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	update := bson.M{"$set": bson.M{
		"fato":             in.Fato,
		"fatoComplementar": in.FatoComplementar,
		"unidade":          in.Unidade,
		"cidade":           in.Cidade,
		"dataHora":         in.DataHora,
		"localRua":         in.LocalRua,
		"localNumero":      in.LocalNumero,
		"localBairro":      in.LocalBairro,
		"envolvidos":       in.Envolvidos,
		"oficial":          in.Oficial,
		"material":         in.Material,
		"resumo":           in.Resumo,
		"motivacao":        in.Motivacao,
	}}

	matched, err := re.DB.ReplaceFields(ctx, bson.M{"_id": id}, update)
	if err != nil {
		config.ErrorStatus("failed to update report", http.StatusInternalServerError, w, err)
		return
	}
	if matched == 0 {
		config.ErrorStatus("report not found", http.StatusNotFound, w, mongo.ErrNoDocuments)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Report updated successfully"}`))
}

// DeleteReportHandler deletes a report by ID
func (re Report) DeleteReportHandler(w http.ResponseWriter, r *http.Request) {
	report, ok := re.findByPathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := re.DB.DeleteOne(ctx, bson.M{"_id": report.ID}); err != nil {
		config.ErrorStatus("failed to delete report", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Report deleted successfully"}`))
}

// findByPathID loads the report referenced by the {report_id} path
// variable, writing the error response itself when the id is malformed
// or unknown.
func (re Report) findByPathID(w http.ResponseWriter, r *http.Request) (*models.Report, bool) {
	id, ok := pathID(w, r)
	if !ok {
		return nil, false
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	report, err := re.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("report not found", http.StatusNotFound, w, err)
			return nil, false
		}
		config.ErrorStatus("failed to get report", http.StatusInternalServerError, w, err)
		return nil, false
	}
	return report, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["report_id"])
	if err != nil {
		config.ErrorStatus("failed to parse report id", http.StatusBadRequest, w, err)
		return 0, false
	}
	return id, true
}

// decodeReportInput parses, validates and normalizes a report payload.
// The unidade/cidade pairing is checked against the coverage table, the
// client dropdowns are not trusted.
func decodeReportInput(w http.ResponseWriter, r *http.Request) (models.ReportInput, bool) {
	var in models.ReportInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return in, false
	}

	if err := validate.Struct(in); err != nil {
		config.ErrorStatus("failed to validate report", http.StatusBadRequest, w, err)
		return in, false
	}

	if !ocorrencia.CidadePertenceUnidade(in.Unidade, in.Cidade) {
		config.ErrorStatus("cidade does not belong to unidade", http.StatusBadRequest, w,
			errInvalidCidade)
		return in, false
	}

	in.Normalize()
	for i := range in.Envolvidos {
		if in.Envolvidos[i].DocumentoTipo == models.DocumentoCPF {
			in.Envolvidos[i].DocumentoNumero = ocorrencia.MaskCPF(in.Envolvidos[i].DocumentoNumero)
		}
	}
	return in, true
}

// sweepExpired runs the retention purge before a read. Failures are
// logged and swallowed, a broken sweep must never block a read.
func sweepExpired(ctx context.Context, db databases.ReportDatabase, now time.Time) {
	deleted, err := db.PurgeExpired(ctx, now)
	if err != nil {
		zap.S().With(err).Error("retention sweep failed")
		return
	}
	if deleted > 0 {
		zap.S().Infow("retention sweep removed expired reports", "deleted", deleted)
	}
}
