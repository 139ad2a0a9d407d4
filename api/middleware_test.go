package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/brigadapm/ocorrencias-api/config"
)

func TestValidateOperator(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	assert.NoError(t, err)

	m := MiddlewareAuth{Config: &config.Config{OperatorPasswordHash: string(hash)}}

	req, _ := http.NewRequest("GET", "/api/v1/reports", nil)

	info, err := m.ValidateOperator(context.Background(), req, "operador", "segredo")
	assert.NoError(t, err)
	assert.Equal(t, "operador", info.UserName())

	_, err = m.ValidateOperator(context.Background(), req, "operador", "errado")
	assert.EqualError(t, err, "failed to compare password")
}

func TestValidateOperatorMissingHash(t *testing.T) {
	m := MiddlewareAuth{Config: &config.Config{}}

	req, _ := http.NewRequest("GET", "/api/v1/reports", nil)

	_, err := m.ValidateOperator(context.Background(), req, "operador", "segredo")
	assert.Error(t, err)
}
