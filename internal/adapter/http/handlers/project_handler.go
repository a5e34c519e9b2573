package handlers

import (
	"errors"
	"io"
	"net/http"

	request "nelly_tech/internal/adapter/http/dto/request"
	response "nelly_tech/internal/adapter/http/dto/response"
	"nelly_tech/internal/usecase"
	"nelly_tech/internal/usecase/interfaces"
	"nelly_tech/pkg"

	"github.com/gin-gonic/gin"
)

// ImageFormField is the multipart field carrying a project image.
const ImageFormField = "image"

// multipart framing allowance on top of the image itself
const uploadOverhead = 1 << 20

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Nome e categoria são obrigatórios", http.StatusBadRequest)
	errMissingImage          = pkg.NewDomainErrorSimple("INVALID_IMAGE", "Selecione uma imagem", http.StatusBadRequest)
	errImageTooLarge         = pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "A imagem deve ter no máximo 5MB", http.StatusRequestEntityTooLarge)
)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// List godoc
// @Summary List portfolio projects, newest first
// @Tags projects
// @Security Bearer
// @Produce json
// @Success 200 {array} response.ProjectResponse
// @Router /admin/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respond(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

// Get godoc
// @Summary Show a project
// @Tags projects
// @Security Bearer
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} response.ProjectResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /admin/projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Security Bearer
// @Accept json
// @Produce json
// @Param payload body request.ProjectRequest true "Project"
// @Success 201 {object} response.ProjectResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /admin/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respond(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// Update godoc
// @Summary Update a project
// @Description An empty status or image_url keeps the current value.
// @Tags projects
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Param payload body request.ProjectRequest true "Project"
// @Success 200 {object} response.ProjectResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /admin/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respond(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// Delete godoc
// @Summary Delete a project
// @Tags projects
// @Security Bearer
// @Param id path string true "Project id"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /admin/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond(c, mapProjectError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage godoc
// @Summary Upload the project image
// @Tags projects
// @Security Bearer
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project id"
// @Param image formData file true "Image up to 5MB"
// @Success 200 {object} response.ProjectResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 413 {object} pkg.HTTPError
// @Router /admin/projects/{id}/image [post]
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, usecase.MaxImageSize+uploadOverhead)

	fh, err := c.FormFile(ImageFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(errImageTooLarge.HTTPStatus, errImageTooLarge.ToHTTPError())
			return
		}
		c.JSON(errMissingImage.HTTPStatus, errMissingImage.ToHTTPError())
		return
	}
	if fh.Size > usecase.MaxImageSize {
		c.JSON(errImageTooLarge.HTTPStatus, errImageTooLarge.ToHTTPError())
		return
	}

	f, err := fh.Open()
	if err != nil {
		respond(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxImageSize+1))
	if err != nil {
		respond(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}

	p, err := h.usecase.UploadImage(c.Request.Context(), c.Param("id"), fh.Filename, data)
	if err != nil {
		respond(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProjectInput):
		return errInvalidProjectPayload
	case errors.Is(err, usecase.ErrInvalidProjectStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Projeto não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusTransitionNotAllowed):
		return pkg.NewDomainError("STATUS_TRANSITION_NOT_ALLOWED", "Mudança de status não permitida", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrImageTooLarge):
		return errImageTooLarge
	case errors.Is(err, interfaces.ErrImageExceedsStorageLimit):
		return pkg.NewDomainError("IMAGE_TOO_LARGE_FOR_STORAGE", "A imagem é grande demais para o armazenamento configurado", err, http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrUnsupportedImage):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_IMAGE", "O arquivo enviado não é uma imagem", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
