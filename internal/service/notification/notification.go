package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"freight/internal/entities"
	"freight/internal/service/shipment"
)

type Notification struct {
	shipmentService ShipmentService
	mailer          Mailer
}

func New(shipmentService ShipmentService, mailer Mailer) *Notification {
	return &Notification{
		shipmentService: shipmentService,
		mailer:          mailer,
	}
}

// DeliverShipmentEvent одно письмо на каждого участника заказа. Ошибки отдельных
// писем объединяются, успешно отправленные письма не повторяются вызывающим.
func (n *Notification) DeliverShipmentEvent(ctx context.Context, event entities.ShipmentEvent) (int, error) {
	notice, err := n.shipmentService.ShipmentNotice(ctx, event.ShipmentID)
	if err != nil {
		if errors.Is(err, shipment.ErrShipmentNotFound) {
			return 0, ErrShipmentGone
		}
		return 0, fmt.Errorf("load shipment notice: %w", err)
	}

	if len(notice.Recipients) == 0 {
		return 0, ErrNoRecipients
	}

	var (
		sent int
		errs []error
	)
	for _, recipient := range notice.Recipients {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		err := n.mailer.Send(ctx, composeMail(*notice, recipient, event))
		if err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", recipient.Email, err))
			continue
		}
		sent++
	}

	if len(errs) > 0 {
		return sent, fmt.Errorf("deliver shipment notice: %w", errors.Join(errs...))
	}
	return sent, nil
}

func composeMail(notice entities.ShipmentNotice, recipient entities.User, event entities.ShipmentEvent) entities.Mail {
	reference := notice.Shipment.ID.String()
	if notice.Shipment.ShipmentNumber != nil {
		reference = *notice.Shipment.ShipmentNumber
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hello %s,\n\n", recipient.Name)
	fmt.Fprintf(&text, "Shipment %s of order %s (%s -> %s) is now %s.\n",
		reference, notice.OrderCode, notice.FromPort, notice.ToPort, statusTitle(event.Status))
	if notice.Shipment.DepartureDate != nil {
		fmt.Fprintf(&text, "Departure: %s\n", notice.Shipment.DepartureDate.Format("2006-01-02"))
	}
	if notice.Shipment.ArrivalDate != nil {
		fmt.Fprintf(&text, "Arrival: %s\n", notice.Shipment.ArrivalDate.Format("2006-01-02"))
	}
	if notice.Shipment.TrackingLink != nil {
		fmt.Fprintf(&text, "Tracking: %s\n", *notice.Shipment.TrackingLink)
	}

	return entities.Mail{
		To:      recipient.Email,
		ToName:  recipient.Name,
		Subject: fmt.Sprintf("Order %s: shipment %s", notice.OrderCode, statusTitle(event.Status)),
		Text:    text.String(),
		Tag:     event.Kind.String(),
	}
}

// statusTitle "ArrivedAtDestinationPort" -> "arrived at destination port".
func statusTitle(status entities.ShipmentStatus) string {
	var b strings.Builder
	for i, r := range status.String() {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte(' ')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
