package uploads

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Cyber-Creek/danbooru/internal/upload"
	"github.com/Cyber-Creek/danbooru/internal/user"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type (
	// UploaderDto identifies who a submission is being performed on
	// behalf of. The uploaders IP is taken from the request, not the
	// body.
	UploaderDto struct {
		ID            int64  `json:"id"`
		Name          string `json:"name"`
		CanUploadFree bool   `json:"can_upload_free"`
	}

	CreateUploadRequest struct {
		Uploader UploaderDto `json:"uploader"`

		// Async detaches the caller from the outcome: the submission is
		// queued for a pipeline worker and the request returns
		// immediately. Progress is observable via the list/get
		// endpoints.
		Async bool `json:"async"`

		Source     string `json:"source"`
		RefererURL string `json:"referer_url"`
		FileRef    string `json:"file_ref"`

		Rating    string `json:"rating"`
		TagString string `json:"tag_string"`
		ParentID  *int64 `json:"parent_id"`
		AsPending bool   `json:"as_pending"`

		IncludeArtistCommentary   bool   `json:"include_artist_commentary"`
		ArtistCommentaryTitle     string `json:"artist_commentary_title"`
		ArtistCommentaryDesc      string `json:"artist_commentary_desc"`
		TranslatedCommentaryTitle string `json:"translated_commentary_title"`
		TranslatedCommentaryDesc  string `json:"translated_commentary_desc"`

		AddCommentaryTag        bool `json:"add_commentary_tag"`
		AddCommentaryRequestTag bool `json:"add_commentary_request_tag"`
		AddCommentaryCheckTag   bool `json:"add_commentary_check_tag"`
		AddPartialCommentaryTag bool `json:"add_partial_commentary_tag"`
	}

	RetryUploadRequest struct {
		Uploader UploaderDto `json:"uploader"`
	}

	UploadStatusDto string

	UploadErrorDto struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}

	// UploadDto is the response used by endpoints that return upload
	// records (e.g., create, list, get, retry).
	UploadDto struct {
		Id         uuid.UUID       `json:"id"`
		Source     string          `json:"source"`
		RefererURL string          `json:"referer_url,omitempty"`
		Status     UploadStatusDto `json:"status"`
		Error      *UploadErrorDto `json:"error,omitempty"`

		MD5         string `json:"md5,omitempty"`
		FileExt     string `json:"file_ext,omitempty"`
		ImageWidth  int    `json:"image_width,omitempty"`
		ImageHeight int    `json:"image_height,omitempty"`
		FileSize    int64  `json:"file_size,omitempty"`

		Rating    string `json:"rating"`
		TagString string `json:"tag_string"`
		ParentID  *int64 `json:"parent_id,omitempty"`

		PostID   *int64   `json:"post_id,omitempty"`
		Warnings []string `json:"warnings,omitempty"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	Service interface {
		Start(ctx context.Context, uploader user.Uploader, submission upload.Submission) (*upload.Upload, error)
		Enqueue(uploader user.Uploader, submission upload.Submission) error
		Retry(ctx context.Context, uploader user.Uploader, id uuid.UUID) (*upload.Upload, error)
		GetUpload(id uuid.UUID) (*upload.Upload, error)
		AllUploads() ([]*upload.Upload, error)
	}

	// Controller is responsible for defining the routes for the upload
	// endpoints, translating between the transport DTOs and the
	// pipeline's own models.
	Controller struct {
		service Service
	}
)

const (
	PENDING    UploadStatusDto = "PENDING"
	PROCESSING UploadStatusDto = "PROCESSING"
	COMPLETED  UploadStatusDto = "COMPLETED"
	ERRORED    UploadStatusDto = "ERRORED"
)

func New(service Service) *Controller {
	return &Controller{service: service}
}

// SetRoutes accepts the Echo group for the upload endpoints and sets
// the routes on them.
func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.POST("/", controller.create)
	eg.GET("/", controller.list)
	eg.GET("/:id/", controller.get)
	eg.POST("/:id/retry/", controller.retry)
}

// create accepts a new submission, runs it through the pipeline and
// returns the resulting upload record. Structurally invalid
// submissions are rejected with a 400; pipeline failures are reported
// inside the returned record, not as HTTP errors. An async submission
// is queued for a worker instead and acknowledged with a 202.
func (controller *Controller) create(ec echo.Context) error {
	var request CreateUploadRequest
	if err := ec.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("JSON body illegal: %v", err))
	}

	uploader := request.Uploader.toModel(ec.RealIP())
	if request.Async {
		if err := controller.service.Enqueue(uploader, request.toSubmission()); err != nil {
			var validationErr *upload.ValidationError
			if errors.As(err, &validationErr) {
				return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
			}

			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		return ec.NoContent(http.StatusAccepted)
	}

	item, err := controller.service.Start(ec.Request().Context(), uploader, request.toSubmission())
	if err != nil {
		var validationErr *upload.ValidationError
		if errors.As(err, &validationErr) {
			return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
		}

		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return ec.JSON(http.StatusCreated, NewDto(item))
}

// list returns all the uploads - represented as DTOs - from the
// underlying store.
func (controller *Controller) list(ec echo.Context) error {
	items, err := controller.service.AllUploads()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	dtos := make([]*UploadDto, len(items))
	for k, v := range items {
		dtos[k] = NewDto(v)
	}

	return ec.JSON(http.StatusOK, dtos)
}

// get uses the 'id' path param from the context and retrieves the
// upload from the underlying store.
func (controller *Controller) get(ec echo.Context) error {
	id, err := uuid.Parse(ec.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Upload ID is not a valid UUID")
	}

	item, err := controller.service.GetUpload(id)
	if err != nil {
		if errors.Is(err, upload.ErrUploadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}

		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return ec.JSON(http.StatusOK, NewDto(item))
}

// retry re-enters the pipeline for an errored upload identified by the
// 'id' path param.
func (controller *Controller) retry(ec echo.Context) error {
	id, err := uuid.Parse(ec.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Upload ID is not a valid UUID")
	}

	var request RetryUploadRequest
	if err := ec.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("JSON body illegal: %v", err))
	}

	uploader := request.Uploader.toModel(ec.RealIP())
	item, err := controller.service.Retry(ec.Request().Context(), uploader, id)
	if err != nil {
		if errors.Is(err, upload.ErrUploadNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}

		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return ec.JSON(http.StatusOK, NewDto(item))
}

func (request *CreateUploadRequest) toSubmission() upload.Submission {
	return upload.Submission{
		Source:     request.Source,
		RefererURL: request.RefererURL,
		FileRef:    request.FileRef,

		Rating:    request.Rating,
		TagString: request.TagString,
		ParentID:  request.ParentID,
		AsPending: request.AsPending,

		IncludeArtistCommentary:   request.IncludeArtistCommentary,
		ArtistCommentaryTitle:     request.ArtistCommentaryTitle,
		ArtistCommentaryDesc:      request.ArtistCommentaryDesc,
		TranslatedCommentaryTitle: request.TranslatedCommentaryTitle,
		TranslatedCommentaryDesc:  request.TranslatedCommentaryDesc,

		AddCommentaryTag:        request.AddCommentaryTag,
		AddCommentaryRequestTag: request.AddCommentaryRequestTag,
		AddCommentaryCheckTag:   request.AddCommentaryCheckTag,
		AddPartialCommentaryTag: request.AddPartialCommentaryTag,
	}
}

func (dto *UploaderDto) toModel(ipAddr string) user.Uploader {
	return user.Uploader{
		ID:            dto.ID,
		Name:          dto.Name,
		IPAddr:        ipAddr,
		CanUploadFree: dto.CanUploadFree,
	}
}

// NewDto creates an UploadDto using the Upload model.
func NewDto(item *upload.Upload) *UploadDto {
	var errDto *UploadErrorDto = nil
	if item.Status.Err != nil {
		errDto = &UploadErrorDto{
			Kind:    string(item.Status.Err.Kind),
			Message: item.Status.Err.Message,
		}
	}

	return &UploadDto{
		Id:         item.ID,
		Source:     item.Source,
		RefererURL: item.RefererURL,
		Status:     StatusModelToDto(item.Status.Code),
		Error:      errDto,

		MD5:         item.MD5,
		FileExt:     item.FileExt,
		ImageWidth:  item.ImageWidth,
		ImageHeight: item.ImageHeight,
		FileSize:    item.FileSize,

		Rating:    item.Rating,
		TagString: item.TagString,
		ParentID:  item.ParentID,

		PostID:   item.PostID,
		Warnings: item.Warnings,

		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func StatusModelToDto(code upload.StatusCode) UploadStatusDto {
	switch code {
	case upload.StatusPending:
		return PENDING
	case upload.StatusProcessing:
		return PROCESSING
	case upload.StatusCompleted:
		return COMPLETED
	case upload.StatusErrored:
		return ERRORED
	}

	panic(fmt.Sprintf("upload status %s is not recognized by API layer, DTO cannot be created. Please report this error.", code))
}
