package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"billdesk/internal/command"
	"billdesk/internal/middleware"
	"billdesk/internal/service"
	"billdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// CommandHandler exposes the command dispatcher over HTTP. Every command is
// a POST with a JSON argument object, mirroring the in-process invoker.
type CommandHandler struct {
	dispatcher *command.Dispatcher
}

func NewCommandHandler(dispatcher *command.Dispatcher) *CommandHandler {
	return &CommandHandler{dispatcher: dispatcher}
}

func (h *CommandHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/command/:name", middleware.RequireAuth(), h.Execute)
}

// Execute runs one named command
// @Summary      Execute command
// @Description  Runs a named command with a JSON argument object and returns its result
// @Tags         commands
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        name     path      string  true  "Command name"
// @Param        payload  body      object  false "Command arguments"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/command/{name} [post]
func (h *CommandHandler) Execute(c *gin.Context) {
	name := c.Param("name")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Failed to read request body"))
		return
	}

	actor := service.Actor{
		UserID:   c.GetInt64("userID"),
		Username: c.GetString("username"),
		Role:     c.GetString("userRole"),
	}
	ctx := command.WithActor(c.Request.Context(), actor)

	result, err := h.dispatcher.Dispatch(ctx, name, body)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, command.ErrUnknownCommand):
			status = http.StatusNotFound
		case strings.Contains(err.Error(), "requires admin access"):
			status = http.StatusForbidden
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
