// Package notifier tells staff about new leads over chat channels.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"returnfilers/internal/models"
)

var ErrNotConfigured = errors.New("notifier not configured")

// LeadNotifier delivers a new-lead alert
type LeadNotifier interface {
	NotifyLead(ctx context.Context, lead *models.Lead) error
}

// Multi fans a lead out to every notifier and joins their errors
type Multi []LeadNotifier

func (m Multi) NotifyLead(ctx context.Context, lead *models.Lead) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyLead(ctx, lead); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FormatLead renders a lead as a short Markdown message
func FormatLead(lead *models.Lead) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*New %s request*\n\n", lead.Kind)
	writeLine(&b, "Name", lead.Name)
	writeLine(&b, "Email", lead.Email)
	writeLine(&b, "Phone", lead.Phone)
	writeLine(&b, "Service", lead.Service)
	if lead.PreferredDate != nil {
		writeLine(&b, "Preferred date", lead.PreferredDate.Format("2006-01-02 15:04"))
	}
	writeLine(&b, "Page", lead.SourcePath)
	if msg := strings.TrimSpace(lead.Message); msg != "" {
		if len(msg) > 500 {
			msg = msg[:500] + "..."
		}
		fmt.Fprintf(&b, "\n%s\n", msg)
	}
	writeLine(&b, "ID", lead.ID)

	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "*%s:* %s\n", label, value)
}
