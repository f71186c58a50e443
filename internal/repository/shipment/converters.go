package shipment

import (
	"freight/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:             s.ID,
		OrderID:        s.OrderID,
		OfferID:        s.OfferID,
		ShipmentNumber: s.ShipmentNumber,
		TrackingLink:   s.TrackingLink,
		DepartureDate:  s.DepartureDate,
		ArrivalDate:    s.ArrivalDate,
		Status:         entities.ShipmentStatus(s.Status),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func RecipientToDomain(r *RecipientDB) entities.User {
	return entities.User{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		Role:  entities.UserRole(r.Role),
	}
}
