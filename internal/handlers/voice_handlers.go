package handlers

import (
	"bytes"
	"encoding/base64"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/parser"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/services"
	"github.com/kranthi-826-ai/Inventory-Agent/pkg/logger"
)

// VoiceHandlers is the voice command entry point: text or audio in, parsed
// and executed command out.
type VoiceHandlers struct {
	commands services.CommandService
	speech   services.SpeechToText
	audio    services.AudioStore
	log      *logger.Logger
}

func NewVoiceHandlers(commands services.CommandService, speech services.SpeechToText, audio services.AudioStore, log *logger.Logger) *VoiceHandlers {
	return &VoiceHandlers{commands: commands, speech: speech, audio: audio, log: log}
}

// VoiceCommandRequest carries either direct text or a base64-encoded audio
// clip. Text wins when both are present.
type VoiceCommandRequest struct {
	Text     string `json:"text"`
	Audio    string `json:"audio"`
	Filename string `json:"filename"`
}

// HandleVoiceCommand runs the full pipeline: transcribe (if audio), parse,
// execute. The envelope status mirrors the command outcome so clients can
// treat domain failures uniformly with parse failures.
func (h *VoiceHandlers) HandleVoiceCommand(c echo.Context) error {
	var req VoiceCommandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request format"))
	}

	ctx := c.Request().Context()

	var text string
	switch {
	case req.Text != "":
		text = h.speech.ProcessText(req.Text)
	case req.Audio != "":
		clip, err := base64.StdEncoding.DecodeString(req.Audio)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid audio encoding"))
		}
		h.archiveClip(c, clip)
		text, err = h.speech.Transcribe(ctx, clip, req.Filename)
		if err != nil {
			h.log.Error().Err(err).Msg("transcription failed")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse("Speech recognition failed"))
		}
	default:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse("No text or audio provided"))
	}

	cmd := parser.Parse(text)
	if cmd == nil {
		return c.JSON(http.StatusBadRequest, &models.APIResponse{
			Status:  models.StatusError,
			Message: "Could not parse command: " + text,
			Data:    echo.Map{"recognized_text": text},
		})
	}

	result := h.commands.Execute(ctx, cmd)

	status := models.StatusSuccess
	if !result.Success {
		status = models.StatusError
	}
	return c.JSON(http.StatusOK, &models.APIResponse{
		Status:  status,
		Message: result.Message,
		Data: echo.Map{
			"recognized_text": text,
			"parsed_command":  cmd,
			"result":          result.Data,
		},
	})
}

// archiveClip stores the raw audio for later replay. Best effort: archive
// failures must not block command processing.
func (h *VoiceHandlers) archiveClip(c echo.Context, clip []byte) {
	objectName := uuid.New().String() + ".wav"
	if err := h.audio.Save(c.Request().Context(), objectName, bytes.NewReader(clip), int64(len(clip))); err != nil {
		h.log.Warn().Err(err).Str("object", objectName).Msg("audio archive failed")
		return
	}
	h.log.Debug().Str("object", objectName).Int("bytes", len(clip)).Msg("audio clip archived")
}
