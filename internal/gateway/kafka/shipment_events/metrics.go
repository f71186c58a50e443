package shipment_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultEnqueued  = "enqueued"
	resultDropped   = "dropped"
	resultDelivered = "delivered"
	resultFailed    = "failed"
)

var ShipmentEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shipment_events_total",
		Help: "Shipment notification events by publishing result",
	},
	[]string{"kind", "result"},
)
