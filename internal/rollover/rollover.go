// Package rollover notifies connected clients when the calendar day
// changes, so the image of the day and the "today" highlight refresh
// without user input.
package rollover

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dukerupert/orchard/internal/model"
	ws "github.com/dukerupert/orchard/internal/websocket"
)

// Notifier broadcasts a day_changed message at local midnight.
type Notifier struct {
	cron   *cron.Cron
	hub    *ws.Hub
	loc    *time.Location
	logger *slog.Logger
}

// NewNotifier creates a Notifier scheduled in the given location.
func NewNotifier(hub *ws.Hub, loc *time.Location, logger *slog.Logger) (*Notifier, error) {
	n := &Notifier{
		cron:   cron.New(cron.WithLocation(loc)),
		hub:    hub,
		loc:    loc,
		logger: logger,
	}

	if _, err := n.cron.AddFunc("0 0 * * *", n.notify); err != nil {
		return nil, err
	}
	return n, nil
}

// Start begins the schedule.
func (n *Notifier) Start() {
	n.cron.Start()
	n.logger.Info("day rollover notifier started", "timezone", n.loc.String())
}

// Stop halts the schedule and waits for a running notify to finish.
func (n *Notifier) Stop() {
	<-n.cron.Stop().Done()
}

func (n *Notifier) notify() {
	today := time.Now().In(n.loc).Format(model.DateLayout)
	n.logger.Info("day changed", "date", today)
	n.hub.Broadcast(ws.NewMessage("day", "changed", "", map[string]any{"date": today}))
}
