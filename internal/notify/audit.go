// Package notify contains the background consumer that listens for submitted
// bookings on the in-process bus and appends a structured line per order to
// an audit log file.
package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/toolshedapp/toolshed/internal/model"
	"github.com/toolshedapp/toolshed/internal/store"
)

const auditFileName = "bookings.log"

// StartBookingAudit subscribes to the booking-submitted topic and appends
// each order to <dir>/bookings.log in a single-line, human-friendly format.
// Failures to write are logged and do not affect the submission itself.
func StartBookingAudit(n *store.Notifier, dir string) error {
	return n.Subscribe(store.TopicBookingSubmitted, func(b model.Booking) {
		if err := appendAuditLine(dir, b); err != nil {
			zap.S().Warnw("booking audit write failed", "booking_id", b.ID, "error", err)
		}
	})
}

func appendAuditLine(dir string, b model.Booking) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	fpath := filepath.Join(dir, auditFileName)
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	items := make([]string, 0, len(b.Lines))
	for _, l := range b.Lines {
		items = append(items, fmt.Sprintf("%s x%dd", l.Name, l.Days))
	}
	line := fmt.Sprintf("[%s] Booking submitted | booking_id=%s | status=%s | total=%.2f | items=[%s]\n",
		b.CreatedAt.Format(time.RFC3339), b.ID, b.Status, b.Total, strings.Join(items, ", "))

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}
