package container

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"freight/internal/entities"
	"freight/internal/service/access"
)

type Container struct {
	repository         Repository
	shipmentService    ShipmentService
	txManager          TxManager
	unlinkCascadeItems bool
}

// New unlinkCascadeItems: при отвязке удалять позиции пары в той же транзакции.
func New(
	repository Repository,
	shipmentService ShipmentService,
	txManager TxManager,
	unlinkCascadeItems bool,
) *Container {
	return &Container{
		repository:         repository,
		shipmentService:    shipmentService,
		txManager:          txManager,
		unlinkCascadeItems: unlinkCascadeItems,
	}
}

func (c *Container) CreateContainer(ctx context.Context, container entities.Container) (*entities.Container, error) {
	container.Number = NormalizeNumber(container.Number)
	if err := validateContainer(container); err != nil {
		return nil, err
	}

	created, err := c.repository.Create(ctx, container)
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}
	return created, nil
}

func (c *Container) GetContainer(ctx context.Context, id uuid.UUID) (*entities.Container, error) {
	container, err := c.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get container: %w", err)
	}
	return container, nil
}

func (c *Container) ListContainers(ctx context.Context, filter entities.ContainerFilter) ([]entities.Container, error) {
	containers, err := c.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	return containers, nil
}

func (c *Container) UpdateContainer(
	ctx context.Context,
	id uuid.UUID,
	modify entities.ContainerModify,
) (*entities.Container, error) {
	if modify.Number != nil {
		modify.Number = pointer.To(NormalizeNumber(*modify.Number))
	}
	if err := validateContainerModify(modify); err != nil {
		return nil, err
	}

	container, err := c.repository.Update(ctx, id, modify)
	if err != nil {
		return nil, fmt.Errorf("update container: %w", err)
	}
	return container, nil
}

func (c *Container) DeleteContainer(ctx context.Context, caller entities.User, id uuid.UUID) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}

	if err := c.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete container: %w", err)
	}
	return nil
}

// Link связывает контейнер с видимой вызывающему отправкой. Начальные позиции
// проверяются до записи и добавляются в той же транзакции.
func (c *Container) Link(
	ctx context.Context,
	caller entities.User,
	containerID, shipmentID uuid.UUID,
	items []entities.ContainerItem,
) (*entities.ContainerLink, error) {
	for i := range items {
		if items[i].ShipmentID != uuid.Nil && items[i].ShipmentID != shipmentID {
			return nil, ErrItemShipmentMismatch
		}
		items[i].ContainerID = containerID
		items[i].ShipmentID = shipmentID
		if err := validateItem(items[i]); err != nil {
			return nil, err
		}
	}

	var link *entities.ContainerLink
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		if err := c.checkPair(ctx, caller, containerID, shipmentID); err != nil {
			return err
		}

		var err error
		link, err = c.repository.Link(ctx, containerID, shipmentID)
		if err != nil {
			return fmt.Errorf("link container: %w", err)
		}

		link.Items, err = c.repository.AddItems(ctx, items)
		if err != nil {
			return fmt.Errorf("add container items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return link, nil
}

// Unlink позиции пары сохраняются или удаляются в зависимости от настройки.
func (c *Container) Unlink(ctx context.Context, caller entities.User, containerID, shipmentID uuid.UUID) error {
	return c.txManager.Do(ctx, func(ctx context.Context) error {
		if err := c.checkPair(ctx, caller, containerID, shipmentID); err != nil {
			return err
		}

		if err := c.repository.Unlink(ctx, containerID, shipmentID); err != nil {
			return fmt.Errorf("unlink container: %w", err)
		}

		if c.unlinkCascadeItems {
			if _, err := c.repository.DeleteItemsOfPair(ctx, containerID, shipmentID); err != nil {
				return fmt.Errorf("delete unlinked items: %w", err)
			}
		}
		return nil
	})
}

func (c *Container) AddItem(
	ctx context.Context,
	caller entities.User,
	containerID uuid.UUID,
	item entities.ContainerItem,
) (*entities.ContainerItem, error) {
	if item.ShipmentID == uuid.Nil {
		return nil, ErrMissingRequiredFields
	}
	item.ContainerID = containerID
	if err := validateItem(item); err != nil {
		return nil, err
	}

	var created *entities.ContainerItem
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		if err := c.checkPair(ctx, caller, containerID, item.ShipmentID); err != nil {
			return err
		}

		linked, err := c.repository.IsLinked(ctx, containerID, item.ShipmentID)
		if err != nil {
			return fmt.Errorf("check container link: %w", err)
		}
		if !linked {
			return ErrNotLinked
		}

		items, err := c.repository.AddItems(ctx, []entities.ContainerItem{item})
		if err != nil {
			return fmt.Errorf("add container item: %w", err)
		}
		if len(items) != 1 {
			return fmt.Errorf("add container item: unexpected %d rows", len(items))
		}
		created = &items[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (c *Container) UpdateItem(
	ctx context.Context,
	caller entities.User,
	containerID, itemID uuid.UUID,
	modify entities.ContainerItemModify,
) (*entities.ContainerItem, error) {
	if err := validateItemModify(modify); err != nil {
		return nil, err
	}

	var updated *entities.ContainerItem
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.repository.GetItem(ctx, containerID, itemID, access.For(caller))
		if err != nil {
			return fmt.Errorf("get container item: %w", err)
		}
		if modify.ShipmentID != nil && *modify.ShipmentID != current.ShipmentID {
			return ErrItemShipmentMismatch
		}

		updated, err = c.repository.UpdateItem(ctx, itemID, modify)
		if err != nil {
			return fmt.Errorf("update container item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (c *Container) DeleteItem(ctx context.Context, caller entities.User, containerID, itemID uuid.UUID) error {
	return c.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := c.repository.GetItem(ctx, containerID, itemID, access.For(caller)); err != nil {
			return fmt.Errorf("get container item: %w", err)
		}

		if err := c.repository.DeleteItem(ctx, itemID); err != nil {
			return fmt.Errorf("delete container item: %w", err)
		}
		return nil
	})
}

// ListItems только позиции связанных пар с отправками в области видимости.
func (c *Container) ListItems(ctx context.Context, caller entities.User, containerID uuid.UUID) ([]entities.ContainerItem, error) {
	if _, err := c.repository.GetByID(ctx, containerID); err != nil {
		return nil, fmt.Errorf("get container: %w", err)
	}

	items, err := c.repository.ListItems(ctx, containerID, access.For(caller))
	if err != nil {
		return nil, fmt.Errorf("list container items: %w", err)
	}
	return items, nil
}

func (c *Container) ListShipments(
	ctx context.Context,
	caller entities.User,
	containerID uuid.UUID,
	filter entities.ShipmentFilter,
) ([]entities.Shipment, error) {
	if _, err := c.repository.GetByID(ctx, containerID); err != nil {
		return nil, fmt.Errorf("get container: %w", err)
	}

	filter.ContainerID = &containerID
	shipments, err := c.shipmentService.ListShipments(ctx, caller, filter)
	if err != nil {
		return nil, fmt.Errorf("list container shipments: %w", err)
	}
	return shipments, nil
}

// checkPair контейнер существует, отправка видна вызывающему.
func (c *Container) checkPair(ctx context.Context, caller entities.User, containerID, shipmentID uuid.UUID) error {
	if _, err := c.repository.GetByID(ctx, containerID); err != nil {
		return fmt.Errorf("get container: %w", err)
	}
	if _, err := c.shipmentService.GetShipment(ctx, caller, shipmentID); err != nil {
		return fmt.Errorf("get shipment: %w", err)
	}
	return nil
}
