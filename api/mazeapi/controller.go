package mazeapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// formatText selects the ASCII drawing instead of JSON.
const formatText = "text"

// MazeController serves maze generation and lookup.
type MazeController struct {
	mazeService i.MazeService
	logger      *slog.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService, logger *slog.Logger) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller: maze service is required")
	}
	if err := registerValidators(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MazeController{
		mazeService: ms,
		logger:      logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.recent)
		mazes.GET("/:ID", mc.byID)
	}
	route.GET("/replays/:token", mc.replay)
	route.GET("/rankings/hardest", mc.hardest)
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generated, err := mc.mazeService.Generate(ctx.Request.Context(), request.toDomain())
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	response := make([]MazeResponse, 0, len(generated))
	for _, g := range generated {
		response = append(response, newMazeResponse(g))
	}
	ctx.JSON(http.StatusCreated, response)
}

// byID serves a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	g, err := mc.mazeService.ByID(ctx.Request.Context(), id)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}
	mc.writeMaze(ctx, g)
}

// replay rebuilds the maze a replay token describes.
func (mc *MazeController) replay(ctx *gin.Context) {
	g, err := mc.mazeService.Replay(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		mc.writeError(ctx, err)
		return
	}
	mc.writeMaze(ctx, g)
}

// recent lists the latest stored mazes.
func (mc *MazeController) recent(ctx *gin.Context) {
	limit, ok := parseLimit(ctx)
	if !ok {
		return
	}
	records, err := mc.mazeService.Recent(ctx.Request.Context(), limit)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRecordResponses(records))
}

// hardest lists stored mazes by descending path length.
func (mc *MazeController) hardest(ctx *gin.Context) {
	limit, ok := parseLimit(ctx)
	if !ok {
		return
	}
	records, err := mc.mazeService.Hardest(ctx.Request.Context(), limit)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRecordResponses(records))
}

func (mc *MazeController) writeMaze(ctx *gin.Context, g *domain.GeneratedMaze) {
	if ctx.Query("format") == formatText {
		ctx.String(http.StatusOK, g.Maze.String())
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(g))
}

// writeError maps service errors to HTTP statuses.
func (mc *MazeController) writeError(ctx *gin.Context, err error) {
	switch {
	case maze.IsConfigurationError(err), errors.Is(err, i.ErrInvalidBatch):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, i.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, i.ErrInvalidReplayToken):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		mc.logger.Error("request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseLimit reads the optional limit query parameter, answering 400 when
// it is malformed.
func parseLimit(ctx *gin.Context) (int64, bool) {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return 0, false
	}
	return limit, true
}
