package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/carlosftapiap/arcsapp-sub001/internal/logging"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCloser struct {
	name  string
	order *[]string
	err   error
}

func (c recordingCloser) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func TestNewApp_DBOpenError(t *testing.T) {
	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driver)
		return nil, errors.New("bad dsn")
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestClose_ReverseOrder(t *testing.T) {
	var order []string
	app := &App{logger: logging.Nop{}}
	app.closers = append(app.closers,
		recordingCloser{name: "db", order: &order},
		recordingCloser{name: "cache", order: &order, err: errors.New("busy")},
		recordingCloser{name: "locks", order: &order},
	)

	app.close(context.Background())

	assert.Equal(t, []string{"locks", "cache", "db"}, order)
	assert.Empty(t, app.closers)
}
