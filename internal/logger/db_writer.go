package logger

import (
	"context"
	"fmt"
	"time"

	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/config"
	"go-citizen/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level     zapcore.Level
	Message   string
	IpAddress string
	Caller    string // Function name
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	db      *mongo.Database
	logChan chan LogEntry
	appId   string
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(mongodb *database.MongodbDB, cfg *config.Config) *DBLogWriter {
	writer := &DBLogWriter{
		db:      mongodb.DB,
		logChan: make(chan LogEntry, 1000),
		appId:   cfg.AppId, // Fixed ApplicationId
	}

	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap hook
func (w *DBLogWriter) AddLog(entry LogEntry) {
	select {
	case w.logChan <- entry:
	default:
		// Channel full: drop instead of blocking the request path
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

func (w *DBLogWriter) processLogs() {
	for entry := range w.logChan {
		// Insert errors are ignored to keep the app running
		w.db.Collection("logs").InsertOne(context.Background(), w.record(entry))
	}
}

func (w *DBLogWriter) record(entry LogEntry) common_models.Log {
	return common_models.Log{
		AppId:        w.appId,
		Message:      entry.Message,
		Level:        entry.Level.CapitalString(),
		Caller:       entry.Caller,
		IpAddress:    entry.IpAddress,
		CreatedOnUtc: time.Now().UTC(),
	}
}
