package controllers

import (
	"net/http"

	"handover-system/internal/entities"
	"handover-system/pkg/utils"

	"github.com/labstack/echo/v4"
)

type referenceBody struct {
	Categories  []string `json:"categories"`
	Filiales    []string `json:"filiales"`
	Directions  []string `json:"directions"`
	GroupesMail []string `json:"groupes_mail"`
	Logiciels   []string `json:"logiciels"`
	Droits      []string `json:"droits"`
}

// GetReferences serves the form vocabularies in one response.
func GetReferences(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, referenceBody{
		Categories:  entities.Categories,
		Filiales:    entities.Filiales,
		Directions:  entities.Directions,
		GroupesMail: entities.GroupesMail,
		Logiciels:   entities.Logiciels,
		Droits:      entities.Droits,
	}, "References fetched", http.StatusOK)
}
