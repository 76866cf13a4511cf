package handlers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"autovid/internal/render"
	"autovid/models"
	"autovid/utils"
)

// CompletionPayload defines the multipart form fields for a render request.
// The optional background media file travels separately as "file".
type CompletionPayload struct {
	Message     string `form:"message" validate:"required"`
	VideoFormat string `form:"videoFormat"`
	VoiceChoice string `form:"voiceChoice"`
	VideoStyle  string `form:"videoStyle" validate:"required"`
	ScriptType  string `form:"scriptType" validate:"required"`
}

var validate = validator.New()

// CreateCompletion accepts a prompt (or user script), runs the render
// pipeline, and answers with either the composed video inline or a JSON
// descriptor of the produced artifacts.
// POST /chat/completions
func (h *ApplicationHandler) CreateCompletion(c *fiber.Ctx) error {
	payload := CompletionPayload{
		Message:     utils.SanitizeInput(c.FormValue("message")),
		VideoFormat: c.FormValue("videoFormat", "16:9"),
		VoiceChoice: c.FormValue("voiceChoice", "en_us_001"),
		VideoStyle:  c.FormValue("videoStyle"),
		ScriptType:  c.FormValue("scriptType"),
	}

	if err := validate.Struct(payload); err != nil {
		errs := utils.FormatValidationErrors(err)
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(errs, ", "))
	}

	jobID := uuid.NewString()

	// The identity provider upstream authenticates the caller and forwards
	// its id; an empty value is an anonymous render.
	userID := c.Get("X-User-Id")

	inputMedia := ""
	uploadedName := ""
	if file, err := c.FormFile("file"); err == nil && file != nil {
		dir, err := h.Layout.JobUploadDir(jobID)
		if err != nil {
			h.Logger.WithError(err).Error("failed to create job upload dir")
			return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not stage uploaded file")
		}
		inputMedia = filepath.Join(dir, filepath.Base(file.Filename))
		if err := c.SaveFile(file, inputMedia); err != nil {
			h.Logger.WithError(err).Error("failed to save uploaded file")
			return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not save uploaded file")
		}
		uploadedName = file.Filename
	}

	req := render.Request{
		JobID:       jobID,
		Message:     payload.Message,
		AspectRatio: payload.VideoFormat,
		VoiceChoice: payload.VoiceChoice,
		Style:       models.VideoStyle(payload.VideoStyle),
		ScriptType:  models.ScriptType(payload.ScriptType),
		InputMedia:  inputMedia,
	}

	result, err := h.Renderer.Render(c.Context(), req)

	h.saveHistory(userID, payload, uploadedName, result)

	if err != nil {
		var stageErr *render.StageError
		stage := "unknown"
		if errors.As(err, &stageErr) {
			stage = string(stageErr.Stage)
		}
		h.Logger.WithError(err).WithFields(map[string]interface{}{
			"job":   jobID,
			"stage": stage,
		}).Error("render failed")

		status := fiber.StatusInternalServerError
		if errors.Is(err, render.ErrInvalidRequest) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"status":  "error",
			"stage":   stage,
			"message": err.Error(),
		})
	}

	if result.OutputFile != "" {
		c.Set(fiber.HeaderContentType, "video/mp4")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf("inline; filename=%q", filepath.Base(result.OutputFile)))
		return c.SendFile(result.OutputFile)
	}

	// Flat descriptor, not the wrapped success envelope: clients read these
	// fields at the top level.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"response":   result.ScriptText,
		"audioUrl":   result.AudioURL,
		"srtUrl":     result.SubtitleURL,
		"videoStyle": payload.VideoStyle,
	})
}

// saveHistory records the attempt for the caller's chat history. Best effort:
// a persistence failure never fails the render response.
func (h *ApplicationHandler) saveHistory(userID string, payload CompletionPayload, fileName string, result *render.Result) {
	if h.History == nil {
		return
	}

	videoURL := ""
	if result != nil {
		videoURL = result.VideoURL
	}
	rec := models.ChatRecord{
		UserID:      userID,
		UserMessage: payload.Message,
		AspectRatio: payload.VideoFormat,
		VoiceChoice: payload.VoiceChoice,
		FileName:    fileName,
		VideoStyle:  payload.VideoStyle,
		ScriptType:  payload.ScriptType,
		VideoURL:    videoURL,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.History.SaveChatRecord(rec); err != nil {
		h.Logger.WithError(err).Warn("failed to save chat record")
	}
}
