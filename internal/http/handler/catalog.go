package handler

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
)

// CatalogService is the CRUD surface shared by the content kinds.
type CatalogService[T any] interface {
	Kind() string
	New() *T
	List(ctx context.Context, limit, offset int) (*service.ListResult[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, item *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// RegisterCatalog mounts /<kind> list, retrieve, create, update and delete routes on r.
// Writes go through admin.
func RegisterCatalog[T any](r fiber.Router, svc CatalogService[T], admin fiber.Handler) {
	base := "/" + svc.Kind()
	r.Get(base, ListItems(svc))
	r.Get(base+"/:id", GetItem(svc))
	r.Post(base, admin, CreateItem(svc))
	r.Put(base+"/:id", admin, UpdateItem(svc))
	r.Delete(base+"/:id", admin, DeleteItem(svc))
}

func notFoundMessage(kind string) string {
	return strings.TrimSuffix(kind, "s") + " not found"
}

// ListItems returns a page of items as {"data": [...], "total": n}.
func ListItems[T any](svc CatalogService[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pageParams(c)
		if !ok {
			return err
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err, notFoundMessage(svc.Kind()))
		}
		return c.JSON(res)
	}
}

func GetItem[T any](svc CatalogService[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		item, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, notFoundMessage(svc.Kind()))
		}
		return c.JSON(item)
	}
}

// CreateItem decodes the JSON body over the kind's defaults and stores it.
func CreateItem[T any](svc CatalogService[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item := svc.New()
		if err := c.BodyParser(item); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.Create(c.UserContext(), item)
		if err != nil {
			return writeServiceError(c, err, notFoundMessage(svc.Kind()))
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// UpdateItem replaces every editable field of an item.
func UpdateItem[T any](svc CatalogService[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		item := svc.New()
		if err := c.BodyParser(item); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.Update(c.UserContext(), id, item)
		if err != nil {
			return writeServiceError(c, err, notFoundMessage(svc.Kind()))
		}
		return c.JSON(out)
	}
}

func DeleteItem[T any](svc CatalogService[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, notFoundMessage(svc.Kind()))
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
