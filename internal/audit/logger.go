package audit

import (
	"encoding/json"
	"time"

	"github.com/studio316/booking-api/internal/models"
)

// Sink receives finished audit entries. The in-memory store implements it.
type Sink interface {
	AppendAudit(entry models.AuditLog)
}

type Logger struct {
	sink Sink
}

func New(sink Sink) *Logger {
	return &Logger{sink: sink}
}

func (l *Logger) Log(
	userID *string,
	action string,
	entity string,
	entityID *string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	l.sink.AppendAudit(models.AuditLog{
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	})

	return nil
}
