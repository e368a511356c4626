package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gramtop961/aiduc-backend/internal/db"
)

const diagnosticTableCap = 10

type DiagnosticHandler struct {
	dbService *db.DatabaseService
}

func NewDiagnosticHandler(dbService *db.DatabaseService) *DiagnosticHandler {
	return &DiagnosticHandler{dbService: dbService}
}

// Test reports backend and database health for manual debugging.
func (dh *DiagnosticHandler) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_dialect":  nil,
		"database_name":     nil,
		"connection_status": "not connected",
		"tables":            []string{},
	}

	if dh.dbService == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "available"
	response["database_dialect"] = dh.dbService.Dialect()
	response["database_name"] = dh.dbService.Name()
	response["connection_status"] = "connected"

	tables, err := dh.dbService.Tables()
	if err != nil {
		response["database"] = "connected but error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}
	if len(tables) > diagnosticTableCap {
		tables = tables[:diagnosticTableCap]
	}
	response["tables"] = tables
	response["database"] = "connected and working"

	c.JSON(http.StatusOK, response)
}
