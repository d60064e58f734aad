package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AkshatJain481/1fn-backend/internal/apperrors"
	"github.com/AkshatJain481/1fn-backend/internal/validation"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps catalog errors onto status codes: not-found to 404,
// unique-constraint conflicts to 409, everything else to an opaque 500.
func respondError(c *gin.Context, err error) {
	var notFound *apperrors.NotFoundError
	var conflict *apperrors.ConflictError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: validation.Message(err)})
}

// parseObjectID reads a path parameter as an ObjectID, answering 400 and
// reporting false when it is malformed.
func parseObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return primitive.NilObjectID, false
	}
	return id, true
}
