// FILE: internal/controller/resource_controller.go
package controller

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/mapper"
	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/pkg/serverutils"
	"company-profile-be/internal/resource"
	"company-profile-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
	multipartDataKey = "data"
)

// IResourceController mounts one content type on the public and admin routers.
type IResourceController interface {
	Definition() *resource.Definition
	RegisterPublicRoutes(r fiber.Router)
	// RegisterAdminRoutes expects r to authenticate requests already.
	RegisterAdminRoutes(r fiber.Router)
}

type resourceController[M, C, U any] struct {
	service service.IResourceService[M]
	mapper  mapper.ResourceMapper[M, C, U]
	def     *resource.Definition
}

func NewResourceController[M, C, U any](svc service.IResourceService[M], m mapper.ResourceMapper[M, C, U]) IResourceController {
	return &resourceController[M, C, U]{
		service: svc,
		mapper:  m,
		def:     svc.Definition(),
	}
}

func (c *resourceController[M, C, U]) Definition() *resource.Definition {
	return c.def
}

func (c *resourceController[M, C, U]) RegisterPublicRoutes(r fiber.Router) {
	h := r.Group("/" + c.def.Path)
	if c.def.PublicRead {
		h.Get("", c.ListPublic)
		if c.def.HasSlug() {
			h.Get("/slug/:slug", c.publicLookup(c.bySlug))
		}
		h.Get("/:id", c.publicLookup(c.byID))
	}
	if c.def.PublicCreate {
		h.Post("", serverutils.ContactRateLimiter(), c.Create)
	}
}

func (c *resourceController[M, C, U]) RegisterAdminRoutes(r fiber.Router) {
	readers := append(append([]string(nil), c.def.WriteRoles...), c.def.DeleteRoles...)
	canRead := serverutils.RequireRoles(readers...)
	canWrite := serverutils.RequireRoles(c.def.WriteRoles...)

	h := r.Group("/" + c.def.Path)
	h.Get("", canRead, c.List)
	if c.def.HasSlug() {
		h.Get("/slug/:slug", canRead, c.adminLookup(c.bySlug))
	}
	h.Get("/:id", canRead, c.adminLookup(c.byID))
	h.Post("", canWrite, c.Create)
	h.Put("/:id", canWrite, c.Update)
	h.Delete("/:id", serverutils.RequireRoles(c.def.DeleteRoles...), c.Delete)
	if c.def.Status != nil {
		h.Patch("/:id/status", canWrite, c.UpdateStatus)
	}
	for name := range c.def.Actions {
		h.Patch("/:id/"+name, canWrite, c.runAction(name))
	}
}

func (c *resourceController[M, C, U]) List(ctx *fiber.Ctx) error {
	params := c.parseListParams(ctx, defaultPageLimit)

	total, rows, err := c.service.List(ctx.UserContext(), params)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.NewPaginatedResponse(fmt.Sprintf("Success get %s list", c.def.Path), rows, total, params.Page, params.Limit))
}

// ListPublic returns every visible record unless the caller asks for a page.
func (c *resourceController[M, C, U]) ListPublic(ctx *fiber.Ctx) error {
	params := c.parseListParams(ctx, 0)
	if params.Limit == 0 {
		params.Page = 1
	}

	total, rows, err := c.service.ListPublic(ctx.UserContext(), params)
	if err != nil {
		return err
	}

	limit := params.Limit
	if limit == 0 {
		limit = int(total)
	}
	return ctx.JSON(serverutils.NewPaginatedResponse(fmt.Sprintf("Success get %s list", c.def.Path), rows, total, params.Page, limit))
}

type lookup[M any] func(ctx *fiber.Ctx, public bool) (*M, error)

func (c *resourceController[M, C, U]) byID(ctx *fiber.Ctx, public bool) (*M, error) {
	id, err := c.parseID(ctx)
	if err != nil {
		return nil, err
	}
	return c.service.GetByID(ctx.UserContext(), id, public)
}

func (c *resourceController[M, C, U]) bySlug(ctx *fiber.Ctx, public bool) (*M, error) {
	return c.service.GetBySlug(ctx.UserContext(), ctx.Params("slug"), public)
}

func (c *resourceController[M, C, U]) publicLookup(find lookup[M]) fiber.Handler {
	return c.show(find, true)
}

func (c *resourceController[M, C, U]) adminLookup(find lookup[M]) fiber.Handler {
	return c.show(find, false)
}

func (c *resourceController[M, C, U]) show(find lookup[M], public bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		res, err := find(ctx, public)
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("Success get %s", c.def.Name), res))
	}
}

func (c *resourceController[M, C, U]) Create(ctx *fiber.Ctx) error {
	var req C
	uploads, err := c.parseBody(ctx, &req)
	if err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), c.mapper.FromCreate(&req), uploads)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse(fmt.Sprintf("%s created", c.def.Name), res))
}

func (c *resourceController[M, C, U]) Update(ctx *fiber.Ctx) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return err
	}

	var req U
	uploads, err := c.parseBody(ctx, &req)
	if err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), id, c.mapper.ToUpdates(&req), uploads)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("%s updated", c.def.Name), res))
}

func (c *resourceController[M, C, U]) Delete(ctx *fiber.Ctx) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any](fmt.Sprintf("%s deleted", c.def.Name), nil))
}

func (c *resourceController[M, C, U]) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.UserContext(), id, strings.TrimSpace(req.Status), serverutils.CurrentEmail(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fmt.Sprintf("%s status updated", c.def.Name), res))
}

func (c *resourceController[M, C, U]) runAction(name string) fiber.Handler {
	message := c.def.Actions[name].Message
	return func(ctx *fiber.Ctx) error {
		id, err := c.parseID(ctx)
		if err != nil {
			return err
		}

		res, err := c.service.RunAction(ctx.UserContext(), id, name)
		if err != nil {
			return err
		}

		return ctx.JSON(serverutils.SuccessResponse(message, res))
	}
}

// parseID treats anything but a positive integer as an unknown record.
func (c *resourceController[M, C, U]) parseID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.NotFound(c.def.Name)
	}
	return id, nil
}

// parseListParams reads page, limit, search and the declared filter keys.
// defaultLimit 0 leaves the list unpaginated when no limit is given.
// Malformed values fall back to defaults; a boolean filter is true only
// for the literal "true".
func (c *resourceController[M, C, U]) parseListParams(ctx *fiber.Ctx, defaultLimit int) dto.ListParams {
	params := dto.ListParams{
		Page:    ctx.QueryInt("page", 1),
		Limit:   ctx.QueryInt("limit", defaultLimit),
		Search:  strings.TrimSpace(ctx.Query("search")),
		Filters: map[string]interface{}{},
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 0 {
		params.Limit = defaultLimit
	}
	if params.Limit > maxPageLimit {
		params.Limit = maxPageLimit
	}
	if params.Limit == 0 && defaultLimit > 0 {
		params.Limit = defaultLimit
	}

	for key, kind := range c.def.Filters {
		raw := ctx.Query(key)
		if raw == "" {
			continue
		}
		switch kind {
		case resource.FilterBool:
			params.Filters[key] = raw == "true"
		case resource.FilterInt:
			// a non-numeric value drops the filter
			if n, err := strconv.Atoi(raw); err == nil {
				params.Filters[key] = n
			}
		default:
			params.Filters[key] = raw
		}
	}
	return params
}

// parseBody decodes a JSON body, or a multipart form whose "data" field holds
// the JSON document and whose file parts are uploads.
func (c *resourceController[M, C, U]) parseBody(ctx *fiber.Ctx, dst interface{}) (service.Uploads, error) {
	if !strings.HasPrefix(string(ctx.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		if len(ctx.Body()) == 0 {
			return nil, nil
		}
		if err := ctx.BodyParser(dst); err != nil {
			return nil, apperr.Validation("invalid request body", nil)
		}
		return nil, nil
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, apperr.Validation("invalid multipart form", nil)
	}
	if data := form.Value[multipartDataKey]; len(data) > 0 && strings.TrimSpace(data[0]) != "" {
		if err := json.Unmarshal([]byte(data[0]), dst); err != nil {
			return nil, apperr.InvalidField(multipartDataKey, "must be a JSON object")
		}
	}

	uploads := service.Uploads{}
	for field, files := range form.File {
		if len(files) > 0 {
			uploads[field] = files
		}
	}
	return uploads, nil
}
