package notification

import "errors"

var (
	// ErrShipmentGone отправка удалена до доставки уведомления, повтор бессмыслен.
	ErrShipmentGone = errors.New("shipment no longer exists")
	ErrNoRecipients = errors.New("shipment order has no recipients")
)
