package handlers

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"focuspeak/internal/config"
	"focuspeak/pkg/peaking"
)

type processFrameRequest struct {
	// Frame is a base64-encoded image, optionally wrapped in a data URI.
	Frame     string `json:"frame"`
	Threshold *int   `json:"threshold"`
	Color     string `json:"color"`
}

type processFrameResponse struct {
	Result string `json:"result"`
}

func RegisterFrameRoutes(app *fiber.App, cfg *config.Config) {
	h := &frameHandler{cfg: cfg}
	app.Post("/api/process_frame", h.processFrame)
}

type frameHandler struct {
	cfg *config.Config
}

func (h *frameHandler) processFrame(c *fiber.Ctx) error {
	var req processFrameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if req.Frame == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing frame"})
	}

	params, err := h.cfg.PeakingParams()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Threshold != nil {
		params.Threshold = *req.Threshold
	}
	if req.Color != "" {
		color, err := peaking.ParseHexColor(req.Color)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		params.Color = color
	}
	if err := params.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	raw, err := decodeDataURI(req.Frame)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	frame, err := peaking.DecodeFrame(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer frame.Close()

	result, err := peaking.Apply(frame, params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer result.Close()

	jpeg, err := result.EncodeJPEG()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(processFrameResponse{
		Result: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpeg),
	})
}

// decodeDataURI strips an optional "data:image/...;base64," prefix and decodes
// the remainder.
func decodeDataURI(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		i := strings.IndexByte(s, ',')
		if i < 0 {
			return nil, fmt.Errorf("%w: malformed data URI", peaking.ErrDecodeFailure)
		}
		s = s[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 payload", peaking.ErrDecodeFailure)
	}
	return raw, nil
}
