package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
	"video-analyzer/core"

	"github.com/nats-io/nats.go"
)

const flushTimeout = 5 * time.Second

type NatsPublisher struct {
	subj string
	conn *nats.Conn
	log  *slog.Logger
}

func NewNatsPublisher(address, subj string, log *slog.Logger) (*NatsPublisher, error) {
	if subj == "" {
		return nil, fmt.Errorf("empty subject specified")
	}
	nc, err := nats.Connect(address,
		nats.Name("video-analyzer"),
		nats.MaxReconnects(10),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Warn("disconnected from NATS", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("reconnected to NATS", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Debug("connection to NATS closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed connect to broker: %w", err)
	}
	log.Debug("connected to broker as publisher", "address", address, "subject", subj, "url", nc.ConnectedUrl())
	return &NatsPublisher{
		subj: subj,
		conn: nc,
		log:  log,
	}, nil
}

func (np *NatsPublisher) Close() {
	np.conn.Close()
}

func (np *NatsPublisher) Publish(ctx context.Context, report core.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := np.conn.Publish(np.subj, data); err != nil {
		return fmt.Errorf("failed to publish report: %w", err)
	}
	flushCtx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()
	if err := np.conn.FlushWithContext(flushCtx); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	np.log.Debug("report published successfully", "subject", np.subj, "report_id", report.ID)
	return nil
}

// Nop drops reports; used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, core.Report) error {
	return nil
}

func (Nop) Close() {}
