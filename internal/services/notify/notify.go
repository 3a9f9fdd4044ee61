package notify

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jthornberg/stageboard/internal/domain"
)

// Level mirrors toast severity without depending on the UI layer.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// Event is a classified operation outcome ready for display.
type Event struct {
	Level   Level
	Message string
}

// Notifier turns operation outcomes into display events and logs them.
type Notifier struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Outcome classifies the result of a task operation. A nil error yields a
// success event with the given message; validation failures surface as
// warnings, missing records and everything else as errors.
func (n *Notifier) Outcome(op, success string, err error) Event {
	if err == nil {
		n.logger.Debug("operation succeeded", "op", op)
		return Event{Level: LevelSuccess, Message: success}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		n.logger.Debug("operation rejected", "op", op, "field", ve.Field, "reason", ve.Reason)
		return Event{Level: LevelWarning, Message: ve.Reason}
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		n.logger.Warn("operation target missing", "op", op, "kind", nf.Kind, "id", nf.ID)
		return Event{Level: LevelError, Message: fmt.Sprintf("%s not found", nf.Kind)}
	}

	n.logger.Error("operation failed", "op", op, "error", err)
	return Event{Level: LevelError, Message: err.Error()}
}

// StageToggled reports a stage completion toggle. Only marking a stage
// complete is worth a toast; unmarking stays quiet.
func (n *Notifier) StageToggled(stage domain.Stage, marked bool) (Event, bool) {
	if !marked {
		n.logger.Debug("stage unmarked", "stage", stage)
		return Event{}, false
	}
	n.logger.Info("stage completed", "stage", stage)
	return Event{Level: LevelSuccess, Message: fmt.Sprintf("%s marked as completed", stage)}, true
}

// PersistFailed reports a background save that did not stick. The in-memory
// state is already updated, so the user only needs to know the disk copy is
// stale.
func (n *Notifier) PersistFailed(op string, err error) Event {
	n.logger.Error("persist failed", "op", op, "error", err)
	return Event{Level: LevelError, Message: fmt.Sprintf("failed to save %s: %v", op, err)}
}
