package handler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"shelterapi/internal/model"
	"shelterapi/internal/rescue"
	"shelterapi/internal/service"
)

// recordsResponse wraps a read result.
type recordsResponse struct {
	Data  []model.Record `json:"data"`
	Count int            `json:"count"`
}

type searchRequest struct {
	Filter     model.Filter     `bson:"filter"`
	Projection model.Projection `bson:"projection"`
	Limit      int64            `bson:"limit"`
}

type updateRequest struct {
	Filter model.Filter `bson:"filter"`
	Values model.Record `bson:"values"`
}

type deleteRequest struct {
	Filter model.Filter `bson:"filter"`
}

// decodeBody reads the body as relaxed extended JSON: integers stay int32/int64
// and {"$oid": ...} becomes an ObjectID, so values round-trip with stored types.
func decodeBody(c *fiber.Ctx, v any) error {
	return bson.UnmarshalExtJSON(c.Body(), false, v)
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc service.ShelterService) {
	app.Get("/health", HealthCheck(svc))
	app.Get("/healthz", LivenessProbe())

	app.Get("/animals", ListAnimals(svc))
	app.Post("/animals", CreateAnimal(svc))
	app.Post("/animals/search", SearchAnimals(svc))
	app.Patch("/animals", UpdateAnimals(svc))
	app.Delete("/animals", DeleteAnimals(svc))

	app.Get("/rescue-types", ListRescueTypes(svc))
	app.Get("/rescue-types/filter", RescueTypeFilter())

	app.Post("/exports", ExportAnimals(svc))
}

// HealthCheck pings the record store.
func HealthCheck(svc service.ShelterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := svc.Health(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListAnimals reads every record, or the records for ?rescue_type=, with optional
// ?limit= and ?fields=a,b projection.
func ListAnimals(svc service.ShelterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.ParseInt(c.Query("limit", "0"), 10, 64)
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		projection := model.ProjectionOf(splitFields(c.Query("fields"))...)

		var records []model.Record
		if label := c.Query("rescue_type"); label != "" {
			records, err = svc.FindByRescueType(c.UserContext(), label, projection, limit)
		} else {
			records, err = svc.List(c.UserContext(), projection, limit)
		}
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(recordsResponse{Data: records, Count: len(records)})
	}
}

// CreateAnimal inserts the JSON body as one record.
func CreateAnimal(svc service.ShelterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rec model.Record
		if len(c.Body()) > 0 {
			if err := decodeBody(c, &rec); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be a JSON object")
			}
		}

		ok, err := svc.Create(c.UserContext(), rec)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"acknowledged": ok})
	}
}

// SearchAnimals runs a generic read from {filter, projection, limit}.
func SearchAnimals(svc service.ShelterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req searchRequest
		if len(c.Body()) > 0 {
			if err := decodeBody(c, &req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid search body")
			}
		}
		if req.Limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		records, err := svc.Find(c.UserContext(), req.Filter, req.Projection, req.Limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(recordsResponse{Data: records, Count: len(records)})
	}
}

// UpdateAnimals sets {values} on every record matching {filter}.
// The filter must be present; an explicit {} updates every record.
func UpdateAnimals(svc service.ShelterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid update body")
		}
		if req.Filter == nil {
			return writeError(c, fiber.StatusBadRequest, "FILTER_REQUIRED", "filter is required")
		}

		n, err := svc.Update(c.UserContext(), req.Filter, req.Values)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"modified": n})
	}
}

// DeleteAnimals removes every record matching {filter}.
// The filter must be present; an explicit {} deletes every record.
func DeleteAnimals(svc service.ShelterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req deleteRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid delete body")
		}
		if req.Filter == nil {
			return writeError(c, fiber.StatusBadRequest, "FILTER_REQUIRED", "filter is required")
		}

		n, err := svc.Delete(c.UserContext(), req.Filter)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"deleted": n})
	}
}

// ListRescueTypes returns the rescue-type labels, in dashboard order, with their profiles.
func ListRescueTypes(svc service.ShelterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"labels": rescue.Labels(),
			"data":   svc.RescueProfiles(),
		})
	}
}

// RescueTypeFilter returns the filter built for ?label=.
func RescueTypeFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		label := c.Query("label")
		return c.JSON(fiber.Map{
			"label":  label,
			"filter": rescue.QueryForRescueType(label),
		})
	}
}

// ExportAnimals uploads the records for ?rescue_type= to object storage.
func ExportAnimals(svc service.ShelterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext(), c.Query("rescue_type"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
