package handlers

import (
	"errors"
	"net/http"

	"pi_alarm_clock/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusArmed   = "armed"
	statusCleared = "cleared"

	errClearAlarm      = "failed to clear alarm"
	errSubmitInput     = "failed to score input"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include the current snapshot.
func (h *Handler) respondWithStatusAndSnapshot(c *gin.Context, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	resp["snapshot"] = h.services.AlarmClock.Snapshot(ctx)
	c.JSON(http.StatusOK, resp)
}

// Request DTO for arming the alarm.
type setAlarmRequest struct {
	Hour   *int `json:"hour" binding:"required"`   // 0-23
	Minute *int `json:"minute" binding:"required"` // 0-59
}

// SetAlarmRequest is an exported model for Swagger docs of the setAlarm payload.
type SetAlarmRequest struct {
	// Hour of the wake-up time (0-23)
	Hour int `json:"hour" example:"7"`
	// Minute of the wake-up time (0-59)
	Minute int `json:"minute" example:"15"`
}

// Request DTO for digit entry.
type inputRequest struct {
	Text string `json:"text"` // raw field content, re-scored in full on every call
}

// InputRequest is an exported model for Swagger docs of the submitInput payload.
type InputRequest struct {
	// Raw input field content, e.g. "3.14159"
	Text string `json:"text" example:"3.14159"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Set alarm
// @Description  Arms the alarm for the given wall-clock time. The dismissal challenge length is the numeric HHMM of that time (07:15 requires 715 digits of pi).
// @Tags         alarm
// @Accept       json
// @Produce      json
// @Param        body  body   SetAlarmRequest  true  "Wake-up time"
// @Success      200   {object}  map[string]interface{}  "status, snapshot"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/alarm [post]
// @Security     BearerAuth
func (h *Handler) setAlarm(c *gin.Context) {
	var req setAlarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	params := service.AlarmParams{
		Hour:   *req.Hour,
		Minute: *req.Minute,
	}
	if err := h.services.AlarmClock.SetAlarm(ctx, params); err != nil {
		if h.log != nil {
			h.log.Errorw("alarm_set_failed", "err", err, "hour", params.Hour, "minute", params.Minute)
		}
		code := http.StatusBadRequest
		if errors.Is(err, service.ErrAlarmRinging) {
			code = http.StatusConflict
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndSnapshot(c, statusArmed, gin.H{})
}

// @Summary      Clear alarm
// @Description  Drops the alarm configuration from any state. Clearing a ringing alarm also stops escalation and silences audio.
// @Tags         alarm
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, snapshot"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alarm [delete]
// @Security     BearerAuth
func (h *Handler) clearAlarm(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.services.AlarmClock.ClearAlarm(ctx); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errClearAlarm, "alarm_clear_failed", err)
		return
	}
	h.respondWithStatusAndSnapshot(c, statusCleared, gin.H{})
}

// @Summary      Submit input
// @Description  Scores the full input field content against the pi digit sequence. While the alarm rings, a complete prefix dismisses it.
// @Tags         alarm
// @Accept       json
// @Produce      json
// @Param        body  body   InputRequest  true  "Input payload"
// @Success      200   {object}  map[string]interface{}  "score, snapshot"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/alarm/input [post]
// @Security     BearerAuth
func (h *Handler) submitInput(c *gin.Context) {
	var req inputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	score, err := h.services.AlarmClock.SubmitInput(ctx, req.Text)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSubmitInput, "alarm_input_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"score":    score,
		"snapshot": h.services.AlarmClock.Snapshot(ctx),
	})
}

// @Summary      Get clock state
// @Tags         alarm
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/alarm/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, h.services.AlarmClock.Snapshot(ctx))
}
