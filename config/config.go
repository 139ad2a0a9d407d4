package config

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brigadapm/ocorrencias-api/models"
)

// Config holds the project config values
type Config struct {
	URL                  string
	DatabaseName         string
	BaseURL              string
	Port                 string
	Environment          string
	OperatorPasswordHash string
}

// New sets up all config related services
func New() *Config {
	// missing .env is fine, the container sets real env vars directly
	_ = godotenv.Load()

	environment := os.Getenv("ENVIRONMENT")

	logger, err := setLogger(environment)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:                  os.Getenv("DB_URI"),
		DatabaseName:         os.Getenv("DB_NAME"),
		BaseURL:              os.Getenv("BASE_URL"),
		Port:                 os.Getenv("PORT"),
		Environment:          environment,
		OperatorPasswordHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
	}
}

// setLogger builds the zap logger for the given environment: human
// readable output for development, sampled json for production and the
// example logger everywhere else.
func setLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)

	errMessage := "<nil>"
	if err != nil {
		errMessage = err.Error()
	}
	body := models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: errMessage},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(body)
	w.Write(b)
}
