package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SankarPatnaik/dataflow-studio/models"
	"github.com/SankarPatnaik/dataflow-studio/storage"
	"github.com/SankarPatnaik/dataflow-studio/validation"
)

type ConnectorController struct {
	Store *storage.Store
}

func NewConnectorController(store *storage.Store) *ConnectorController {
	return &ConnectorController{Store: store}
}

// List handles GET /api/connectors.
func (cc *ConnectorController) List(c *gin.Context) {
	connectors := cc.Store.GetConnectors(currentUserID(c))
	c.JSON(http.StatusOK, connectors)
}

// Get handles GET /api/connectors/:id.
func (cc *ConnectorController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Connector not found")
		return
	}
	connector, ok := cc.Store.GetConnector(id)
	if !ok {
		notFound(c, "Connector not found")
		return
	}
	c.JSON(http.StatusOK, connector)
}

// Create handles POST /api/connectors.
func (cc *ConnectorController) Create(c *gin.Context) {
	var payload models.InsertConnector
	if err := c.ShouldBindJSON(&payload); err != nil {
		badBody(c, "Invalid connector data", err)
		return
	}
	payload.UserID = currentUserID(c)
	if errs := validation.Check(payload); errs != nil {
		invalid(c, "Invalid connector data", errs)
		return
	}
	connector := cc.Store.CreateConnector(payload)
	c.JSON(http.StatusCreated, connector)
}

// Test handles POST /api/connectors/:id/test. The check is simulated; the
// response carries the drawn outcome and the connector as mutated by it.
// An unknown id yields success=false with a null connector, matching the
// dashboard client's expectations.
func (cc *ConnectorController) Test(c *gin.Context) {
	id, _ := pathID(c, "id")
	success := cc.Store.TestConnector(id)
	connector, ok := cc.Store.GetConnector(id)
	var body any
	if ok {
		body = connector
	}
	c.JSON(http.StatusOK, gin.H{"success": success, "connector": body})
}

// Update handles PUT /api/connectors/:id.
func (cc *ConnectorController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Connector not found")
		return
	}
	var updates models.UpdateConnector
	if err := c.ShouldBindJSON(&updates); err != nil {
		badBody(c, "Invalid connector data", err)
		return
	}
	connector, ok := cc.Store.UpdateConnector(id, updates)
	if !ok {
		notFound(c, "Connector not found")
		return
	}
	c.JSON(http.StatusOK, connector)
}

// Delete handles DELETE /api/connectors/:id.
func (cc *ConnectorController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Connector not found")
		return
	}
	if !cc.Store.DeleteConnector(id) {
		notFound(c, "Connector not found")
		return
	}
	c.Status(http.StatusNoContent)
}
