package controller

import (
	"ctchen222/tictactoe-minimax/internal/api/models"
	"ctchen222/tictactoe-minimax/internal/api/response"
	"ctchen222/tictactoe-minimax/internal/api/service"
	"ctchen222/tictactoe-minimax/internal/game"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BoardController handles board analysis HTTP requests.
type BoardController struct {
	solverService service.SolverService
}

// NewBoardController creates a new BoardController.
func NewBoardController(solverService service.SolverService) *BoardController {
	return &BoardController{
		solverService: solverService,
	}
}

// Initial returns the state of the empty board.
func (bc *BoardController) Initial(c *gin.Context) {
	response.SuccessResponse(c, bc.solverService.Analyze(c.Request.Context(), game.InitialState()))
}

// Analyze handles the board analysis endpoint.
func (bc *BoardController) Analyze(c *gin.Context) {
	var req models.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	board, ok := parseBoard(c, req.Board)
	if !ok {
		return
	}

	response.SuccessResponse(c, bc.solverService.Analyze(c.Request.Context(), board))
}

// Apply handles the move application endpoint.
func (bc *BoardController) Apply(c *gin.Context) {
	var req models.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	board, ok := parseBoard(c, req.Board)
	if !ok {
		return
	}

	action := game.Action{Row: *req.Action.Row, Col: *req.Action.Col}
	state, err := bc.solverService.Apply(c.Request.Context(), board, action)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	response.SuccessResponse(c, state)
}

// Minimax handles the best move endpoint.
func (bc *BoardController) Minimax(c *gin.Context) {
	var req models.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	board, ok := parseBoard(c, req.Board)
	if !ok {
		return
	}

	response.SuccessResponse(c, bc.solverService.BestMove(c.Request.Context(), board))
}

// parseBoard converts a bound request board and rejects mark counts that legal
// play cannot produce. It writes the error response itself.
func parseBoard(c *gin.Context, rows [][]string) (game.Board, bool) {
	board, err := game.ParseBoard(rows)
	if err == nil {
		err = game.CheckConsistent(board)
	}
	if err != nil {
		response.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return game.Board{}, false
	}
	return board, true
}
