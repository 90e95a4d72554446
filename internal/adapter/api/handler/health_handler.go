package handler

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"google.golang.org/api/iterator"

	"podartshop/pkg/config"
)

type HealthHandler struct {
	firestoreClient *firestore.Client
	cfg             *config.Config
}

var healthHandler *HealthHandler

func NewHealthHandler(firestoreClient *firestore.Client, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		firestoreClient: firestoreClient,
		cfg:             cfg,
	}
}

func SetupHealthHandler(firestoreClient *firestore.Client, cfg *config.Config) {
	healthHandler = NewHealthHandler(firestoreClient, cfg)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "POD Art Shop Backend running",
	})
}

// TestDatabase reports store connectivity by listing up to ten collections.
func (h *HealthHandler) TestDatabase(c echo.Context) error {
	result := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"database_url":      setOrNot(h.cfg.FirebaseProject != ""),
		"database_name":     setOrNot(h.cfg.FirebaseProject != ""),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.firestoreClient == nil {
		return c.JSON(http.StatusOK, result)
	}

	collections := []string{}
	iter := h.firestoreClient.Collections(c.Request().Context())
	for {
		col, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			result["database"] = "connected but error: " + err.Error()
			return c.JSON(http.StatusOK, result)
		}
		collections = append(collections, col.ID)
		if len(collections) == 10 {
			break
		}
	}

	result["database"] = "connected"
	result["connection_status"] = "connected"
	result["collections"] = collections

	return c.JSON(http.StatusOK, result)
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}
