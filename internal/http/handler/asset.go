package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
)

// ListAssets godoc
// @Summary List uploaded media
// @Tags assets
// @Security BearerAuth
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.Asset]
// @Failure 400 {object} errorPayload
// @Router /api/assets [get]
func ListAssets(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pageParams(c)
		if !ok {
			return err
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err, "asset not found")
		}
		return c.JSON(res)
	}
}

// UploadAsset godoc
// @Summary Upload a media file
// @Tags assets
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "media file"
// @Success 201 {object} model.Asset
// @Failure 400 {object} errorPayload
// @Router /api/assets [post]
func UploadAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		asset, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err, "asset not found")
		}
		return c.Status(fiber.StatusCreated).JSON(asset)
	}
}

// GetAsset godoc
// @Summary Get media metadata
// @Tags assets
// @Security BearerAuth
// @Produce json
// @Param id path string true "asset id"
// @Success 200 {object} model.Asset
// @Failure 404 {object} errorPayload
// @Router /api/assets/{id} [get]
func GetAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		asset, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "asset not found")
		}
		return c.JSON(asset)
	}
}

// GetAssetLink godoc
// @Summary Presign a short-lived download URL
// @Tags assets
// @Security BearerAuth
// @Produce json
// @Param id path string true "asset id"
// @Success 200 {object} service.AssetLink
// @Failure 404 {object} errorPayload
// @Router /api/assets/{id}/link [get]
func GetAssetLink(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		link, err := svc.Link(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "asset not found")
		}
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.JSON(link)
	}
}

// DeleteAsset godoc
// @Summary Delete media
// @Tags assets
// @Security BearerAuth
// @Param id path string true "asset id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/assets/{id} [delete]
func DeleteAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, "asset not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
